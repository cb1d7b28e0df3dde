package fac

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
)

// Status tells whether a source contributed rows.
type Status int

const (
	// StatusLoaded means the file was read and parsed.
	StatusLoaded Status = iota
	// StatusAbsent means the file does not exist and contributes no rows.
	StatusAbsent
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusAbsent:
		return "absent"
	}
	return "unknown"
}

// SourceResult is the outcome of reading one source file.
type SourceResult struct {
	Name   string
	Path   string
	Status Status
	Frame  *Frame
}

// naValues are the tokens read as missing values.
var naValues = map[string]bool{
	"": true, "#N/A": true, "#N/A N/A": true, "#NA": true, "-1.#IND": true,
	"-1.#QNAN": true, "-NaN": true, "-nan": true, "1.#IND": true, "1.#QNAN": true,
	"<NA>": true, "N/A": true, "NA": true, "NULL": true, "NaN": true,
	"None": true, "n/a": true, "nan": true, "null": true,
}

// ReadSource reads one source file. A file that does not exist yields
// StatusAbsent and no error; every other failure is a *SourceError.
func ReadSource(path, name string, schema Schema, enc encoding.Encoding) (SourceResult, error) {
	result := SourceResult{Name: name, Path: path}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Status = StatusAbsent
			return result, nil
		}
		return result, &SourceError{Name: name, Err: err}
	}
	defer file.Close()

	frame, err := ReadFrame(decode(file, enc), name, schema)
	if err != nil {
		return result, err
	}
	result.Status = StatusLoaded
	result.Frame = frame
	return result, nil
}

// ReadFrame parses CSV with a header row, converting declared columns to
// their types. Short rows are padded with nulls; long rows are an error.
func ReadFrame(r io.Reader, name string, schema Schema) (*Frame, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &SourceError{Name: name, Err: errors.New("no header row")}
	}
	if err != nil {
		return nil, &SourceError{Name: name, Err: err}
	}

	types := make([]ColumnType, len(header))
	for i, h := range header {
		types[i] = schema.typeOf(h)
	}

	frame := &Frame{Columns: header}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &SourceError{Name: name, Err: err}
		}
		line, _ := reader.FieldPos(0)
		if len(rec) > len(header) {
			return nil, &SourceError{
				Name: name,
				Line: line,
				Err:  fmt.Errorf("expected %d fields, saw %d", len(header), len(rec)),
			}
		}

		row := make([]Value, len(header))
		for i, raw := range rec {
			v, err := convert(raw, types[i])
			if err != nil {
				return nil, &SourceError{Name: name, Line: line, Column: header[i], Err: err}
			}
			row[i] = v
		}
		frame.Rows = append(frame.Rows, row)
	}
	return frame, nil
}

func convert(raw string, t ColumnType) (Value, error) {
	if naValues[raw] {
		return Null, nil
	}
	if t != TypeInt64 {
		return V(raw), nil
	}

	s := strings.TrimSpace(raw)
	if naValues[s] {
		return Null, nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return V(strconv.FormatInt(i, 10)), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return Null, fmt.Errorf("cannot parse %q as %s", raw, TypeInt64)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return Null, fmt.Errorf("%q overflows %s", raw, TypeInt64)
	}
	return V(strconv.FormatInt(int64(f), 10)), nil
}
