// Package mapping loads plan code mappings and writes them for reuse.
package mapping

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/models"
)

// ErrUnsupportedFormat indicates a mapping file extension that cannot be parsed.
var ErrUnsupportedFormat = errors.New("unsupported mapping format")

// File is the YAML layout of a mapping file.
type File struct {
	Pairs []models.Pair `yaml:"pairs"`
}

// Load reads and validates a mapping file. The parser is chosen by extension:
// .csv for a two-column old/new code table with a header row, .yaml/.yml for File.
func Load(path string) (*models.Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mapping: %w", err)
	}
	defer f.Close()

	var pairs []models.Pair
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		pairs, err = ReadCSV(f)
	case ".yaml", ".yml":
		pairs, err = ReadYAML(f)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m, err := models.NewMapping(pairs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ReadCSV reads pairs from a CSV whose first row is a header and whose
// first two columns hold the old and new code. Extra columns are ignored.
func ReadCSV(r io.Reader) ([]models.Pair, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	pairs := make([]models.Pair, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("line %d: expected 2 columns, got %d", line, len(rec))
		}
		pairs = append(pairs, models.Pair{
			From: strings.TrimSpace(rec[0]),
			To:   strings.TrimSpace(rec[1]),
		})
	}
	return pairs, nil
}

// ReadYAML reads pairs from a YAML mapping file.
func ReadYAML(r io.Reader) ([]models.Pair, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}
	return file.Pairs, nil
}
