// Package parser reads worksheet contents into typed rows.
package parser

import (
	"strconv"

	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/models"
	"github.com/xuri/excelize/v2"
)

// ReadRows reads the rows of a sheet, anchored at A1, as typed cells.
// Rows between the first row and the last used row are all returned,
// including blank ones, so that R always equals the sheet row number.
func ReadRows(f *excelize.File, sheetName string) ([]models.Row, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	result := make([]models.Row, 0, len(rows))
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cells := make([]models.Cell, len(row))

		for colIdx, raw := range row {
			if raw == "" {
				cells[colIdx] = models.Empty()
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			style, err := f.GetCellStyle(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			cell := toCell(cellType, raw)
			if !cell.IsEmpty() {
				cell.Style = style
			}
			cells[colIdx] = cell
		}

		result = append(result, models.Row{R: rowNum, Cells: cells})
	}

	return result, nil
}

// toCell converts a raw cell value using the cell type stored in the sheet.
func toCell(cellType excelize.CellType, raw string) models.Cell {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return models.Text(raw)
	case excelize.CellTypeError:
		return models.Empty()
	case excelize.CellTypeBool:
		return models.Cell{Kind: models.KindBool, Value: raw == "1" || raw == "TRUE" || raw == "true"}
	}

	// Unset, number, date and formula cells hold either a number or the
	// cached text result.
	v := parseValue(raw)
	if s, ok := v.(string); ok {
		return models.Text(s)
	}
	return models.Number(v)
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
