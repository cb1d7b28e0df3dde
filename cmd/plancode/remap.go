package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap"
	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/mapping"
	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/matcher"
	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/models"
)

var (
	remapMapping   string
	remapOutput    string
	remapBackslash string
	remapColumns   []string
	remapDryRun    bool
	remapJSON      bool
)

var remapCmd = &cobra.Command{
	Use:   "remap [workbook.xlsm]",
	Short: "Duplicate rows with old plan codes under the new codes",
	Long: `remap scans every sheet of a workbook for cells holding an old plan code,
copies each matching row with the code replaced by its new code, appends the
copies below the sheet's data, and saves the workbook once if anything changed.

The workbook defaults to remap.workbook from the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemap,
}

func init() {
	remapCmd.Flags().StringVarP(&remapMapping, "mapping", "m", "", "Mapping file (.csv or .yaml); default: config, then built-in pairs")
	remapCmd.Flags().StringVarP(&remapOutput, "output", "o", "", "Save the changed workbook here instead of in place")
	remapCmd.Flags().StringVar(&remapBackslash, "backslash", "", "Backslash-led codes: legacy or keep")
	remapCmd.Flags().StringSliceVar(&remapColumns, "columns", nil, "Only scan these columns, e.g. B or A,C")
	remapCmd.Flags().BoolVar(&remapDryRun, "dry-run", false, "Report duplicates without saving")
	remapCmd.Flags().BoolVar(&remapJSON, "json", false, "Print the run summary as JSON")
}

func runRemap(cmd *cobra.Command, args []string) error {
	rc := cfg.Remap
	path := cfg.Resolve(rc.Workbook)
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no workbook given (argument or remap.workbook in config)")
	}

	if cmd.Flags().Changed("backslash") {
		rc.Backslash = remapBackslash
	}
	mode, err := matcher.ParseBackslashMode(rc.Backslash)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("columns") {
		cfg.Remap.Columns = remapColumns
	}
	columns, err := cfg.RemapColumns()
	if err != nil {
		return err
	}

	output := cfg.Resolve(rc.Output)
	if remapOutput != "" {
		output = remapOutput
	}

	m, err := loadMapping(rc.Mapping)
	if err != nil {
		return err
	}

	logger.Info("Remapping workbook",
		zap.String("path", path),
		zap.Int("pairs", m.Len()),
		zap.String("backslash", string(mode)))

	result, err := remap.Run(cmd.Context(), remap.Options{
		Path:       path,
		OutputPath: output,
		Mapping:    m,
		Backslash:  mode,
		Columns:    columns,
		DryRun:     remapDryRun,
	}, logger)
	if err != nil {
		return err
	}

	if remapJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
	}
	return nil
}

func loadMapping(fromConfig string) (*models.Mapping, error) {
	path := cfg.Resolve(fromConfig)
	if remapMapping != "" {
		path = remapMapping
	}
	if path == "" {
		logger.Debug("Using built-in mapping")
		return mapping.Default(), nil
	}
	logger.Debug("Loading mapping", zap.String("path", path))
	return mapping.Load(path)
}
