package parser

import (
	"testing"

	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/models"
)

func row(r int, cells ...models.Cell) models.Row {
	return models.Row{R: r, Cells: cells}
}

func TestUsedRange(t *testing.T) {
	e := models.Empty()
	x := models.Text("x")

	tests := []struct {
		name     string
		rows     []models.Row
		ok       bool
		expected Bounds
		ref      string
	}{
		{"empty", nil, false, Bounds{}, ""},
		{"all blank", []models.Row{row(1, e, e), row(2)}, false, Bounds{}, ""},
		{"single", []models.Row{row(1, x)}, true, Bounds{1, 1, 1, 1}, "A1:A1"},
		{
			"offset with trailing blanks",
			[]models.Row{row(1), row(2, e, x), row(3, e, e, x), row(4, e), row(5)},
			true,
			Bounds{MinRow: 2, MaxRow: 3, MinCol: 2, MaxCol: 3},
			"B2:C3",
		},
	}

	for _, tt := range tests {
		got, ok := UsedRange(tt.rows)
		if ok != tt.ok {
			t.Errorf("%s: ok = %v, expected %v", tt.name, ok, tt.ok)
			continue
		}
		if got != tt.expected {
			t.Errorf("%s: UsedRange = %+v, expected %+v", tt.name, got, tt.expected)
		}
		if ok && got.Ref() != tt.ref {
			t.Errorf("%s: Ref = %q, expected %q", tt.name, got.Ref(), tt.ref)
		}
	}
}

func TestLastUsedRow(t *testing.T) {
	rows := []models.Row{row(1, models.Text("a")), row(2), row(3, models.Number(int64(1))), row(4)}
	if got := LastUsedRow(rows); got != 3 {
		t.Errorf("LastUsedRow = %d, expected 3", got)
	}
	if got := LastUsedRow(nil); got != 0 {
		t.Errorf("LastUsedRow(nil) = %d, expected 0", got)
	}
}
