package fac

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Options configures an export run.
type Options struct {
	// Dir is the directory the sources and output are resolved against.
	Dir string
	// Sources are the extract file names, read in order.
	Sources []string
	// Output is the .fac file name.
	Output string
	// Schema declares column types and the output selection.
	Schema Schema
	// Encoding names the source file encoding (utf-8, windows-1252, iso-8859-1, ibm037).
	Encoding string
	// MarkerHeader and MarkerValue define the constant leading column.
	MarkerHeader string
	MarkerValue  string
	// LineEnding is LF or CRLF.
	LineEnding string
}

// DefaultOptions returns the premium holiday export settings.
func DefaultOptions() Options {
	return Options{
		Dir:          ".",
		Sources:      DefaultSources(),
		Output:       "PREM_HOL_INFO.fac",
		Schema:       DefaultSchema(),
		Encoding:     "utf-8",
		MarkerHeader: "!2",
		MarkerValue:  "*",
		LineEnding:   LF,
	}
}

// SourceSummary reports what one source contributed.
type SourceSummary struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Rows   int    `json:"rows"`
}

// ExportResult summarizes an export run.
type ExportResult struct {
	Sources []SourceSummary `json:"sources"`
	Rows    int             `json:"rows"`
	Output  string          `json:"output"`
}

func (o Options) resolve(name string) string {
	if filepath.IsAbs(name) || o.Dir == "" {
		return name
	}
	return filepath.Join(o.Dir, name)
}

// Export reads the sources, concatenates them, fills missing values with
// zero, selects and renames the output columns, prepends the marker column
// and writes the .fac file. Absent sources are skipped with a warning.
func Export(ctx context.Context, opts Options, logger *zap.Logger) (*ExportResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := opts.Schema.Validate(); err != nil {
		return nil, err
	}
	enc, err := LookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{Output: opts.resolve(opts.Output)}
	var frames []*Frame
	for _, name := range opts.Sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := opts.resolve(name)
		logger.Info("Reading from source", zap.String("path", path))

		src, err := ReadSource(path, name, opts.Schema, enc)
		if err != nil {
			return nil, err
		}
		if src.Status == StatusAbsent {
			logger.Debug("Source file does not exist", zap.String("path", path), zap.Stack("stack"))
			logger.Warn("No such file, skipping source", zap.String("path", path))
		}
		result.Sources = append(result.Sources, SourceSummary{
			Name:   name,
			Status: src.Status.String(),
			Rows:   src.Frame.Len(),
		})
		if src.Frame != nil {
			frames = append(frames, src.Frame)
		}
	}
	if len(frames) == 0 {
		return nil, ErrNoSources
	}

	all := Concat(frames...)
	all.FillZero()
	selected, err := all.Select(opts.Schema.Outputs)
	if err != nil {
		return nil, err
	}
	table := selected.WithMarker(opts.MarkerHeader, opts.MarkerValue)

	logger.Info("Writing to output", zap.String("path", result.Output), zap.Int("rows", table.Len()))
	out, err := os.Create(result.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}
	if err := WriteUnquoted(out, table, opts.LineEnding); err != nil {
		out.Close()
		return nil, fmt.Errorf("failed to write output: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}

	result.Rows = table.Len()
	logger.Info("Completed", zap.Int("rows", result.Rows))
	return result, nil
}
