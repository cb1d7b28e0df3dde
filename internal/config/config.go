// Package config loads plancode settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/fac"
	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/matcher"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "plancode.yaml"

// Config holds all plancode configuration.
type Config struct {
	Remap   RemapConfig   `yaml:"remap"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`

	// dir is the directory of the loaded file; relative paths resolve against it.
	dir string
}

// RemapConfig configures the workbook mutator.
type RemapConfig struct {
	Workbook string `yaml:"workbook"`
	Output   string `yaml:"output"`
	// Mapping is a .csv or .yaml pair file. Empty uses the built-in mapping.
	Mapping   string   `yaml:"mapping"`
	Backslash string   `yaml:"backslash"` // legacy, keep
	Columns   []string `yaml:"columns"`   // column letters, e.g. [B]
}

// ExportConfig configures the .fac exporter.
type ExportConfig struct {
	Dir          string     `yaml:"dir"`
	Sources      []string   `yaml:"sources"`
	Output       string     `yaml:"output"`
	Encoding     string     `yaml:"encoding"`
	MarkerHeader string     `yaml:"marker_header"`
	MarkerValue  string     `yaml:"marker_value"`
	LineEnding   string     `yaml:"line_ending"` // lf, crlf
	Schema       fac.Schema `yaml:"schema"`
}

// LoggingConfig configures the debug log file and console output.
type LoggingConfig struct {
	File         string `yaml:"file"`
	Level        string `yaml:"level"`
	ConsoleLevel string `yaml:"console_level"`
	MaxSizeMB    int    `yaml:"max_size_mb"`
	MaxBackups   int    `yaml:"max_backups"`
	MaxAgeDays   int    `yaml:"max_age_days"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	opts := fac.DefaultOptions()
	return &Config{
		Remap: RemapConfig{
			Backslash: string(matcher.BackslashLegacy),
		},
		Export: ExportConfig{
			Dir:          opts.Dir,
			Sources:      opts.Sources,
			Output:       opts.Output,
			Encoding:     opts.Encoding,
			MarkerHeader: opts.MarkerHeader,
			MarkerValue:  opts.MarkerValue,
			LineEnding:   "lf",
			Schema:       opts.Schema,
		},
		Logging: LoggingConfig{
			File:         "debug.log",
			Level:        "debug",
			ConsoleLevel: "info",
			MaxSizeMB:    10,
			MaxBackups:   3,
			MaxAgeDays:   30,
		},
		dir: ".",
	}
}

// Load loads configuration from a YAML file.
// Defaults are returned if the file does not exist. Either way, relative
// paths resolve against the directory of path.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.dir = filepath.Dir(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Resolve returns path relative to the config file's directory.
// Absolute and empty paths are returned unchanged.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, path)
}

// Validate checks enum values and the export schema.
func (c *Config) Validate() error {
	if _, err := matcher.ParseBackslashMode(c.Remap.Backslash); err != nil {
		return err
	}
	if _, err := c.RemapColumns(); err != nil {
		return err
	}
	if _, err := fac.LookupEncoding(c.Export.Encoding); err != nil {
		return err
	}
	if _, err := c.LineEnding(); err != nil {
		return err
	}
	if c.Export.Output == "" {
		return fmt.Errorf("export output file not configured")
	}
	if len(c.Export.Sources) == 0 {
		return fmt.Errorf("no export sources configured")
	}
	return c.Export.Schema.Validate()
}

// RemapColumns converts the configured column letters to 1-based indexes.
func (c *Config) RemapColumns() ([]int, error) {
	cols := make([]int, 0, len(c.Remap.Columns))
	for _, name := range c.Remap.Columns {
		n, err := excelize.ColumnNameToNumber(name)
		if err != nil {
			return nil, fmt.Errorf("invalid remap column %q: %w", name, err)
		}
		cols = append(cols, n)
	}
	return cols, nil
}

// LineEnding returns the configured export line terminator.
func (c *Config) LineEnding() (string, error) {
	switch c.Export.LineEnding {
	case "", "lf":
		return fac.LF, nil
	case "crlf":
		return fac.CRLF, nil
	}
	return "", fmt.Errorf("invalid line ending: %s (must be lf or crlf)", c.Export.LineEnding)
}

// ExportOptions builds exporter options with paths resolved.
func (c *Config) ExportOptions() (fac.Options, error) {
	le, err := c.LineEnding()
	if err != nil {
		return fac.Options{}, err
	}
	return fac.Options{
		Dir:          c.Resolve(c.Export.Dir),
		Sources:      c.Export.Sources,
		Output:       c.Export.Output,
		Schema:       c.Export.Schema,
		Encoding:     c.Export.Encoding,
		MarkerHeader: c.Export.MarkerHeader,
		MarkerValue:  c.Export.MarkerValue,
		LineEnding:   le,
	}, nil
}
