// Package models defines data structures for plan code remapping.
package models

// CellKind identifies the type of value held by a cell.
type CellKind int

const (
	// KindEmpty is a cell with no value.
	KindEmpty CellKind = iota
	// KindText is a string cell.
	KindText
	// KindNumber is a numeric cell (int64 or float64).
	KindNumber
	// KindBool is a boolean cell.
	KindBool
)

// Cell is a single typed cell value.
type Cell struct {
	// Kind is the value type.
	Kind CellKind `json:"kind"`
	// Value holds string, int64, float64, bool, or nil for empty cells.
	Value interface{} `json:"value"`
	// Style is the workbook style ID of the source cell, 0 for the default.
	Style int `json:"style,omitempty"`
}

// Text returns a text cell.
func Text(s string) Cell {
	return Cell{Kind: KindText, Value: s}
}

// Number returns a numeric cell. v should be int64 or float64.
func Number(v interface{}) Cell {
	return Cell{Kind: KindNumber, Value: v}
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{Kind: KindEmpty}
}

// WithText returns a text cell keeping c's style.
func (c Cell) WithText(s string) Cell {
	return Cell{Kind: KindText, Value: s, Style: c.Style}
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}

// String returns the cell text for text cells and "" otherwise.
func (c Cell) String() string {
	if s, ok := c.Value.(string); ok && c.Kind == KindText {
		return s
	}
	return ""
}

// Row is a snapshot of one sheet row, anchored at column A.
type Row struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Cells holds the values in column order; Cells[0] is column A.
	Cells []Cell `json:"cells"`
}

// Clone returns a deep copy of the row.
func (r Row) Clone() Row {
	cells := make([]Cell, len(r.Cells))
	copy(cells, r.Cells)
	return Row{R: r.R, Cells: cells}
}

// IsBlank reports whether every cell in the row is empty.
func (r Row) IsBlank() bool {
	for _, c := range r.Cells {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}
