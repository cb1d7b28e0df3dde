package parser

import (
	"fmt"

	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/models"
	"github.com/xuri/excelize/v2"
)

// Bounds is the minimal rectangle containing every non-empty cell.
// All indexes are 1-based and inclusive.
type Bounds struct {
	MinRow int
	MaxRow int
	MinCol int
	MaxCol int
}

// Ref returns the bounds in Excel range notation, e.g. "A1:D10".
func (b Bounds) Ref() string {
	startCell, _ := excelize.CoordinatesToCellName(b.MinCol, b.MinRow)
	endCell, _ := excelize.CoordinatesToCellName(b.MaxCol, b.MaxRow)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// UsedRange finds the used range of rows read by ReadRows.
// The second return value is false when every cell is empty.
func UsedRange(rows []models.Row) (Bounds, bool) {
	b := Bounds{MinRow: -1, MaxRow: -1, MinCol: -1, MaxCol: -1}

	for _, row := range rows {
		for colIdx, cell := range row.Cells {
			if cell.IsEmpty() {
				continue
			}
			col := colIdx + 1
			if b.MinRow < 0 || row.R < b.MinRow {
				b.MinRow = row.R
			}
			if b.MaxRow < 0 || row.R > b.MaxRow {
				b.MaxRow = row.R
			}
			if b.MinCol < 0 || col < b.MinCol {
				b.MinCol = col
			}
			if b.MaxCol < 0 || col > b.MaxCol {
				b.MaxCol = col
			}
		}
	}

	if b.MinRow < 0 {
		return Bounds{}, false
	}
	return b, true
}

// LastUsedRow returns the last row holding data, or 0 for an empty sheet.
func LastUsedRow(rows []models.Row) int {
	b, ok := UsedRange(rows)
	if !ok {
		return 0
	}
	return b.MaxRow
}
