package main

import (
	"encoding/json"

	"modemap/internal/config"
	"modemap/internal/errors"
	"modemap/internal/log"
	"modemap/internal/modes"

	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	debug      bool
	jsonOutput bool
	cfg        *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfgFile, debug, jsonOutput = "", false, false
	cfg = config.New()

	rootCmd := &cobra.Command{
		Use:   "modemap",
		Short: "Map MIME types, file extensions and editor modes",
		Long: `modemap resolves file extensions for MIME types, MIME types for file
extensions, and the syntax highlighting mode an editor should use for a
file name. It can also scan, watch and browse a directory tree.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(); err != nil {
				return err
			}
			configureLogging()
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/modemap/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")

	rootCmd.AddCommand(NewExtCmd())
	rootCmd.AddCommand(NewMimesCmd())
	rootCmd.AddCommand(NewSplitCmd())
	rootCmd.AddCommand(NewDetectCmd())
	rootCmd.AddCommand(NewProposeCmd())
	rootCmd.AddCommand(NewShowCmd())
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewMatchCmd())
	rootCmd.AddCommand(NewFilterCmd())
	rootCmd.AddCommand(NewScanCmd())
	rootCmd.AddCommand(NewWatchCmd())
	rootCmd.AddCommand(NewBrowseCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

func loadConfig() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadConfigFile(cfgFile)
		return err
	}

	cfg, err = config.LoadConfig()
	if err != nil {
		// The default location is optional, a broken one only warns
		log.LogWithError(err).Warn("Using default settings")
		cfg = config.New()
	}
	return nil
}

func configureLogging() {
	opts := []log.Option{
		log.WithLevel(cfg.Logging.Level),
		log.WithDestination(cfg.Logging.Output),
	}
	if cfg.Logging.Format == "json" {
		opts = append(opts, log.WithJSON())
	}
	log.Configure(opts...)
	log.SetDebug(debug)
}

func resolver() *modes.Resolver {
	return modes.NewWithConfig(cfg)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode output")
	}
	return nil
}
