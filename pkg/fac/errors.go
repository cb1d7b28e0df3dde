package fac

import (
	"errors"
	"fmt"
)

// ErrNoSources indicates that none of the source files exist.
var ErrNoSources = errors.New("no source files found")

// ErrMissingColumn indicates an output column absent from every source.
var ErrMissingColumn = errors.New("column not found in any source")

// ErrNeedsQuoting indicates a value that cannot be written without quoting.
var ErrNeedsQuoting = errors.New("value needs quoting")

// SourceError represents a source file that exists but cannot be used.
type SourceError struct {
	Name   string
	Line   int    // 1-based line in the file, 0 when not line-specific
	Column string // column name, when the error concerns one value
	Err    error
}

func (e *SourceError) Error() string {
	switch {
	case e.Line > 0 && e.Column != "":
		return fmt.Sprintf("source %q line %d column %q: %v", e.Name, e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("source %q line %d: %v", e.Name, e.Line, e.Err)
	}
	return fmt.Sprintf("source %q: %v", e.Name, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
