package parser

import (
	"path/filepath"
	"testing"

	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/models"
	"github.com/xuri/excelize/v2"
)

func TestReadRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "!2")
	f.SetCellValue(sheetName, "B1", "PROD_NAME")
	f.SetCellValue(sheetName, "A2", "*")
	f.SetCellValue(sheetName, "B2", "CGG01A")
	f.SetCellValue(sheetName, "C2", 10)
	f.SetCellValue(sheetName, "D2", 0.25)
	f.SetCellValue(sheetName, "E2", true)
	f.SetCellValue(sheetName, "B4", "100")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ReadRows(f2, sheetName)
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if row.R != i+1 {
			t.Errorf("Expected row %d, got %d", i+1, row.R)
		}
	}

	if got := rows[1].Cells[1]; got.Kind != models.KindText || got.Value != "CGG01A" {
		t.Errorf("Expected text 'CGG01A', got %+v", got)
	}
	if got := rows[1].Cells[2]; got.Kind != models.KindNumber || got.Value != int64(10) {
		t.Errorf("Expected int64(10), got %v (type: %T)", got.Value, got.Value)
	}
	if got := rows[1].Cells[3]; got.Kind != models.KindNumber || got.Value != 0.25 {
		t.Errorf("Expected 0.25, got %v", got.Value)
	}
	if got := rows[1].Cells[4]; got.Kind != models.KindBool || got.Value != true {
		t.Errorf("Expected bool true, got %+v", got)
	}

	if !rows[2].IsBlank() {
		t.Errorf("Expected row 3 to be blank, got %+v", rows[2])
	}

	// Numeric-looking text stays text.
	if got := rows[3].Cells[1]; got.Kind != models.KindText || got.Value != "100" {
		t.Errorf("Expected text '100', got %+v", got)
	}
}

func TestReadRowsMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ReadRows(f, "Nope"); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"CGG01A", "CGG01A"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestToCell(t *testing.T) {
	tests := []struct {
		cellType excelize.CellType
		raw      string
		expected models.Cell
	}{
		{excelize.CellTypeSharedString, "10", models.Text("10")},
		{excelize.CellTypeFormula, "10", models.Number(int64(10))},
		{excelize.CellTypeFormula, "CGG01A", models.Text("CGG01A")},
		{excelize.CellTypeError, "#N/A", models.Empty()},
		{excelize.CellTypeUnset, "45322", models.Number(int64(45322))},
	}

	for _, tt := range tests {
		result := toCell(tt.cellType, tt.raw)
		if result != tt.expected {
			t.Errorf("toCell(%v, %q) = %+v, expected %+v", tt.cellType, tt.raw, result, tt.expected)
		}
	}
}
