// Package main provides the CLI entry point for plancode.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/internal/config"
	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/internal/logging"
)

var (
	configPath string
	verbose    bool

	cfg      *config.Config
	logger   *zap.Logger
	closeLog func() error
)

var rootCmd = &cobra.Command{
	Use:   "plancode",
	Short: "Plan code table tooling",
	Long: `plancode automates plan table maintenance:

  remap    duplicate workbook rows holding old plan codes under their new codes
  mapping  convert a CSV of old/new code pairs into a mapping file
  export   convert as400 premium holiday extracts into a .fac table`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}

		logCfg := cfg.Logging
		logCfg.File = cfg.Resolve(logCfg.File)
		logger, closeLog, err = logging.New(logging.Options{Config: logCfg, Verbose: verbose})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debug("Loaded config", zap.String("path", configPath))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeLog != nil {
			return closeLog()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug messages to the console")

	rootCmd.AddCommand(remapCmd, mappingCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if logger == nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		// Fatal exits the process; the log file is written unbuffered.
		logger.Fatal("Run failed", zap.Error(err))
	}
}
