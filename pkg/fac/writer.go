package fac

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Line endings accepted by WriteUnquoted.
const (
	LF   = "\n"
	CRLF = "\r\n"
)

// WriteUnquoted writes the header and rows comma-delimited with no quoting.
// A value containing a comma, a double quote, or a line break cannot be
// represented and fails with ErrNeedsQuoting.
func WriteUnquoted(w io.Writer, f *Frame, lineEnding string) error {
	if lineEnding == "" {
		lineEnding = LF
	}
	bw := bufio.NewWriter(w)

	if err := writeLine(bw, f.Columns, lineEnding); err != nil {
		return fmt.Errorf("header: %w", err)
	}

	fields := make([]string, len(f.Columns))
	for r, row := range f.Rows {
		for i := range fields {
			fields[i] = ""
			if i < len(row) && row[i].Valid {
				fields[i] = row[i].S
			}
		}
		if err := writeLine(bw, fields, lineEnding); err != nil {
			return fmt.Errorf("row %d: %w", r+1, err)
		}
	}
	return bw.Flush()
}

func writeLine(bw *bufio.Writer, fields []string, lineEnding string) error {
	for _, s := range fields {
		if strings.ContainsAny(s, ",\"\r\n") {
			return fmt.Errorf("%w: %q", ErrNeedsQuoting, s)
		}
	}
	_, err := bw.WriteString(strings.Join(fields, ",") + lineEnding)
	return err
}
