package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/fac"
)

var (
	exportDir      string
	exportOutput   string
	exportEncoding string
	exportJSON     bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Convert as400 premium holiday extracts into a .fac table",
	Long: `export reads the premium holiday and reinstatement extracts, skipping any
that do not exist, concatenates them, fills missing values with 0, selects and
renames the output columns, prepends the "!2" marker column and writes an
unquoted comma-delimited .fac file.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", "", "Directory holding the extracts (default: export.dir from config)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output .fac file name")
	exportCmd.Flags().StringVar(&exportEncoding, "encoding", "", "Extract encoding: utf-8, windows-1252, iso-8859-1, ibm037")
	exportCmd.Flags().BoolVar(&exportJSON, "json", false, "Print the run summary as JSON")
}

func runExport(cmd *cobra.Command, args []string) error {
	opts, err := cfg.ExportOptions()
	if err != nil {
		return err
	}
	if exportDir != "" {
		opts.Dir = exportDir
	}
	if exportOutput != "" {
		opts.Output = exportOutput
	}
	if exportEncoding != "" {
		opts.Encoding = exportEncoding
	}

	logger.Info("Exporting premium holiday table", zap.String("dir", opts.Dir))
	result, err := fac.Export(cmd.Context(), opts, logger)
	if err != nil {
		return err
	}

	if exportJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
	}
	return nil
}
