package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/mapping"
)

var (
	mappingOutput string
	mappingFormat string
)

var mappingCmd = &cobra.Command{
	Use:   "mapping [product_list.csv]",
	Short: "Convert a CSV of old/new plan codes into a mapping file",
	Long: `mapping reads a two-column CSV (old code, new code, with a header row),
validates it, and writes either a YAML mapping file for "remap --mapping"
or, with --format literal, a bracketed list of ('old','new') pairs.`,
	Args: cobra.ExactArgs(1),
	RunE: runMapping,
}

func init() {
	mappingCmd.Flags().StringVarP(&mappingOutput, "output", "o", "", "Output file (default: mapping.yaml, or text_to_py.txt for literal)")
	mappingCmd.Flags().StringVar(&mappingFormat, "format", string(mapping.FormatYAML), "Output format: yaml or literal")
}

func runMapping(cmd *cobra.Command, args []string) error {
	format, err := mapping.ParseFormat(mappingFormat)
	if err != nil {
		return err
	}

	m, err := mapping.Load(args[0])
	if err != nil {
		return err
	}

	output := mappingOutput
	if output == "" {
		output = "mapping.yaml"
		if format == mapping.FormatLiteral {
			output = "text_to_py.txt"
		}
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := mapping.Write(f, m.Pairs(), format); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	for _, p := range m.Pairs() {
		logger.Debug("Mapped pair", zap.String("from", p.From), zap.String("to", p.To))
	}
	logger.Info("Wrote mapping", zap.String("path", output), zap.Int("pairs", m.Len()), zap.String("format", string(format)))
	return nil
}
