package main

import (
	"fmt"
	"strings"

	"modemap/internal/analysis"
	"modemap/internal/errors"
	"modemap/internal/modes"

	"github.com/spf13/cobra"
)

// NewExtCmd creates the ext command
func NewExtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ext MIME",
		Short: "Print the preferred file extension for a MIME type",
		Long:  `Print the preferred file extension for a MIME type. Unknown types fall back to .txt.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ext := resolver().ExtensionForMimeType(args[0])
			if jsonOutput {
				return printJSON(cmd, map[string]string{"mime_type": args[0], "extension": ext})
			}
			fmt.Fprintln(cmd.OutOrStdout(), ext)
			return nil
		},
	}
}

// NewMimesCmd creates the mimes command
func NewMimesCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "mimes EXT",
		Short: "Print the MIME types registered for a file extension",
		Long: `Print the first MIME type registered for a bare file extension such as
"py", or every one of them with --all. Matching is case sensitive.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := resolver()

			var found []string
			if all {
				found = r.MimeTypesForExtension(args[0])
			} else if mt, ok := r.MimeTypeForExtension(args[0]); ok {
				found = []string{mt}
			}
			if len(found) == 0 {
				return errors.NewLookupError("no MIME type registered for extension", args[0], errors.UnknownExtension, nil)
			}

			if jsonOutput {
				return printJSON(cmd, map[string]interface{}{"extension": args[0], "mime_types": found})
			}
			for _, mt := range found {
				fmt.Fprintln(cmd.OutOrStdout(), mt)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Print every matching MIME type")

	return cmd
}

// NewSplitCmd creates the split command
func NewSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split NAME",
		Short: "Split a filename into base name and extension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, ext, ok := modes.SplitFilename(args[0])
			if !ok {
				return errors.NewInvalidInputError(fmt.Sprintf("filename %q has no extension", args[0]), nil).
					WithContext("filename", args[0])
			}
			if jsonOutput {
				return printJSON(cmd, map[string]string{"base": base, "ext": ext})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "base: %s\next: %s\n", base, ext)
			return nil
		},
	}
}

// NewDetectCmd creates the detect command
func NewDetectCmd() *cobra.Command {
	var (
		mimeType string
		fallback bool
		sniff    bool
		input    bool
	)

	cmd := &cobra.Command{
		Use:   "detect NAME",
		Short: "Detect the editor mode for a filename",
		Long: `Detect the editor mode for a filename. The extension decides first, then
the MIME type given with --mime. With --sniff NAME must be an existing file
whose content is inspected as well. With --input NAME is treated as a
filename typed into an editor and the chosen MIME type is printed too.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !cmd.Flags().Changed("fallback") {
				fallback = cfg.Editor.MimeFallback
			}

			var d modes.Detection
			switch {
			case sniff:
				engine := analysis.NewWithConfig(cfg)
				info, err := engine.Scan(name)
				if err != nil {
					return err
				}
				if info.Mode == "" {
					return errors.NewLookupError("no mode detected", name, errors.UnknownMimeType, nil)
				}
				d = modes.Detection{Filename: name, MimeType: info.ContentType, Mode: info.Mode}
			case input:
				var ok bool
				if d, ok = resolver().DetectFromInput(name, nil); !ok {
					return errors.NewLookupError("no mode detected", name, errors.UnknownExtension, nil)
				}
			default:
				mode, ok := resolver().DetectMode(name, mimeType, fallback)
				if !ok {
					return errors.NewLookupError("no mode detected", name, errors.UnknownMimeType, nil)
				}
				d = modes.Detection{Filename: name, MimeType: mimeType, Mode: mode}
			}

			if jsonOutput {
				return printJSON(cmd, d)
			}
			if input {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", d.Filename, d.MimeType, d.Mode)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Mode)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mimeType, "mime", "m", "", "MIME type used when the filename decides nothing")
	cmd.Flags().BoolVarP(&fallback, "fallback", "f", true, "Resolve the extension through the MIME table (default from config)")
	cmd.Flags().BoolVarP(&sniff, "sniff", "s", false, "Inspect the file content")
	cmd.Flags().BoolVarP(&input, "input", "i", false, "Treat NAME as typed filename input")
	cmd.MarkFlagsMutuallyExclusive("sniff", "input")

	return cmd
}

// NewProposeCmd creates the propose command
func NewProposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "propose NAME MIME",
		Short: "Propose a filename for a MIME type",
		Long: `Keep the base name of NAME and use the preferred extension of MIME. An
empty NAME or one without extension gets the configured default base name.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := resolver().ProposeFilename(args[0], args[1])
			if jsonOutput {
				return printJSON(cmd, map[string]string{"filename": name})
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

type entryView struct {
	modes.Entry
	Extension string `json:"extension"`
	Preview   bool   `json:"preview"`
}

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show MIME",
		Short: "Show the table entry for a MIME type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := resolver()
			entry, ok := r.Lookup(args[0])
			if !ok {
				return errors.NewLookupError("unknown MIME type", args[0], errors.UnknownMimeType, nil)
			}

			view := entryView{
				Entry:     entry,
				Extension: r.ExtensionForMimeType(entry.MimeType),
				Preview:   r.PreviewSupported(entry.Mode),
			}
			if jsonOutput {
				return printJSON(cmd, view)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, primaryText(view.MimeType))
			fmt.Fprintf(out, "Patterns: %s\n", strings.Join(view.Patterns, ", "))
			fmt.Fprintf(out, "Mode: %s\n", orNone(view.Mode))
			fmt.Fprintf(out, "Extension: %s\n", view.Extension)
			fmt.Fprintf(out, "Preview: %t\n", view.Preview)
			return nil
		},
	}
}

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var (
		mode      string
		listModes bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered MIME types and their modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := resolver()
			out := cmd.OutOrStdout()

			if listModes {
				all := r.Modes()
				if jsonOutput {
					return printJSON(cmd, all)
				}
				for _, m := range all {
					fmt.Fprintln(out, m)
				}
				return nil
			}

			entries := []modes.Entry{}
			for _, mt := range r.MimeTypes() {
				entry, _ := r.Lookup(mt)
				if mode != "" && entry.Mode != mode {
					continue
				}
				entries = append(entries, entry)
			}

			if jsonOutput {
				return printJSON(cmd, entries)
			}
			for _, entry := range entries {
				fmt.Fprintf(out, "%s\t%s\n", entry.MimeType, orNone(entry.Mode))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Only list MIME types resolving to this mode")
	cmd.Flags().BoolVar(&listModes, "modes", false, "List the distinct modes instead")

	return cmd
}

// NewMatchCmd creates the match command
func NewMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match NAME",
		Short: "List MIME types whose patterns match a whole filename",
		Long: `Match the last segment of NAME against every registered pattern,
including bare filenames such as Makefile or SConstruct.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matched := resolver().MatchFilename(args[0])
			if jsonOutput {
				return printJSON(cmd, matched)
			}
			if len(matched) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), dimText("no patterns match"))
				return nil
			}
			for _, mt := range matched {
				fmt.Fprintln(cmd.OutOrStdout(), mt)
			}
			return nil
		},
	}
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
