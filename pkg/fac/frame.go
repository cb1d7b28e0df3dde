package fac

import (
	"fmt"
)

// Value is a nullable cell.
type Value struct {
	S     string
	Valid bool
}

// V returns a non-null value.
func V(s string) Value {
	return Value{S: s, Valid: true}
}

// Null is the missing value.
var Null = Value{}

// Frame is an in-memory table.
type Frame struct {
	Columns []string
	Rows    [][]Value
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Rows)
}

func (f *Frame) index(name string) int {
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Concat stacks frames vertically. Columns are the union in first-seen
// order; a column absent from a frame is null in that frame's rows.
// Nil frames are skipped.
func Concat(frames ...*Frame) *Frame {
	out := &Frame{}
	pos := make(map[string]int)
	for _, f := range frames {
		if f == nil {
			continue
		}
		for _, c := range f.Columns {
			if _, ok := pos[c]; !ok {
				pos[c] = len(out.Columns)
				out.Columns = append(out.Columns, c)
			}
		}
	}

	for _, f := range frames {
		if f == nil {
			continue
		}
		for _, row := range f.Rows {
			merged := make([]Value, len(out.Columns))
			for i, c := range f.Columns {
				if i < len(row) {
					merged[pos[c]] = row[i]
				}
			}
			out.Rows = append(out.Rows, merged)
		}
	}
	return out
}

// FillZero replaces every null with "0".
func (f *Frame) FillZero() {
	for _, row := range f.Rows {
		for i, v := range row {
			if !v.Valid {
				row[i] = V("0")
			}
		}
	}
}

// Select returns the output columns, renamed, in declared order.
func (f *Frame) Select(outputs []Output) (*Frame, error) {
	idx := make([]int, len(outputs))
	out := &Frame{Columns: make([]string, len(outputs))}
	for i, o := range outputs {
		idx[i] = f.index(o.Source)
		if idx[i] < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, o.Source)
		}
		out.Columns[i] = o.Target
	}

	out.Rows = make([][]Value, len(f.Rows))
	for r, row := range f.Rows {
		sel := make([]Value, len(idx))
		for i, j := range idx {
			sel[i] = row[j]
		}
		out.Rows[r] = sel
	}
	return out, nil
}

// WithMarker returns a copy of f with a constant column prepended.
func (f *Frame) WithMarker(header, value string) *Frame {
	out := &Frame{
		Columns: append([]string{header}, f.Columns...),
		Rows:    make([][]Value, len(f.Rows)),
	}
	for r, row := range f.Rows {
		out.Rows[r] = append([]Value{V(value)}, row...)
	}
	return out
}
