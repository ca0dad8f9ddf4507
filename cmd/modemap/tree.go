package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"modemap/internal/analysis"
	"modemap/internal/filter"
	"modemap/internal/tui"
	"modemap/internal/watch"
	"modemap/pkg/types"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewFilterCmd creates the filter command
func NewFilterCmd() *cobra.Command {
	var (
		dir   string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "filter QUERY",
		Short: "Fuzzy filter the paths of a directory tree",
		Long: `Scan a directory tree and print the paths whose characters contain QUERY
in order, best matches first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = cfg.Filter.MaxResults
			}

			infos, err := analysis.NewWithConfig(cfg).ScanTree(dir)
			if err != nil {
				return err
			}
			result := filter.Filter(analysis.Nodes(infos), args[0], limit)

			if jsonOutput {
				return printJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			for _, m := range result.Matches {
				line := filter.Highlight(m.Path, m.Highlight, matchText)
				if m.Type == types.DirNode {
					line += "/"
				}
				fmt.Fprintln(out, line)
			}
			if result.Truncated > 0 {
				fmt.Fprintln(out, dimText(fmt.Sprintf("... and %d more", result.Truncated)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to filter")
	cmd.Flags().IntVarP(&limit, "limit", "l", filter.DefaultLimit, "Maximum number of results (default from config)")

	return cmd
}

// NewScanCmd creates the scan command
func NewScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan PATH",
		Short: "Sniff files and resolve their editor modes",
		Long: `Scan a file, or every file below a directory, to get its content type,
size and editor mode.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			engine := analysis.NewWithConfig(cfg)

			info, err := os.Stat(path)
			if err != nil {
				// Let the engine produce the typed error
				_, err = engine.Scan(path)
				return err
			}

			if !info.IsDir() {
				result, err := engine.Scan(path)
				if err != nil {
					return err
				}
				if jsonOutput {
					return printJSON(cmd, result)
				}
				fmt.Fprintln(cmd.OutOrStdout(), primaryText("File Analysis:"))
				fmt.Fprintln(cmd.OutOrStdout(), result.String())
				return nil
			}

			results, err := engine.ScanTree(path)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd, results)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PATH\tMODE\tTYPE\tSIZE")
			for _, r := range results {
				if r.IsDir() {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Path, r.DisplayMode(), r.ContentType, humanize.Bytes(uint64(r.Size)))
			}
			return w.Flush()
		},
	}
}

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch DIR",
		Short: "Report the editor mode of files as they are created or written",
		Long:  `Watch DIR and its subdirectories and print the mode of each file created or written until interrupted.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			monitor, err := watch.NewMonitor(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			monitor.SetCallback(func(path string, info *types.FileInfo, err error) {
				if err != nil {
					fmt.Fprintf(out, "%s\t%s\n", path, errorText(err.Error()))
					return
				}
				if jsonOutput {
					fmt.Fprintln(out, info.ToJSON())
					return
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", path, info.DisplayMode(), info.ContentType)
			})

			if err := monitor.AddDirectory(args[0]); err != nil {
				return err
			}
			if err := monitor.Start(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), dimText("Watching "+args[0]+". Press Ctrl+C to stop."))

			<-cmd.Context().Done()
			monitor.Stop()

			status := monitor.Status()
			fmt.Fprintln(cmd.ErrOrStderr(), dimText(fmt.Sprintf("Resolved %d files", status.FilesResolved)))
			return nil
		},
	}
}

// NewBrowseCmd creates the browse command
func NewBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse DIR",
		Short: "Interactively filter a directory tree",
		Long:  `Open an interactive fuzzy filter over DIR. Enter prints the selected file.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			info, ok, err := tui.Run(analysis.NewWithConfig(cfg), dir, cfg.Filter.MaxResults)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if jsonOutput {
				return printJSON(cmd, info)
			}
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return nil
		},
	}
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "modemap %s\n", version)
			return nil
		},
	}
}
