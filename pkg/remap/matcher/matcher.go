package matcher

import (
	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/models"
)

// Matcher duplicates rows whose text cells hold a mapped plan code.
type Matcher struct {
	// Mapping holds the old → new code pairs.
	Mapping *models.Mapping
	// Backslash selects the rewrite of backslash-led codes.
	Backslash BackslashMode
	// Columns restricts the scan to these 1-based columns. Empty scans every cell.
	Columns []int
}

// New returns a Matcher scanning every column in legacy backslash mode.
func New(m *models.Mapping) *Matcher {
	return &Matcher{Mapping: m, Backslash: BackslashLegacy}
}

func (m *Matcher) scans(col int) bool {
	if len(m.Columns) == 0 {
		return true
	}
	for _, c := range m.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Duplicate returns a copy of row with every matching cell substituted.
// ok is false, and no copy is made, when no cell matches.
func (m *Matcher) Duplicate(row models.Row) (dup models.Row, hits []models.Hit, ok bool) {
	for colIdx, cell := range row.Cells {
		if cell.Kind != models.KindText || !m.scans(colIdx+1) {
			continue
		}
		text := cell.String()
		q := Clean(text)
		to, found := m.Mapping.Lookup(q.Core)
		if !found {
			continue
		}
		if !ok {
			dup = row.Clone()
			ok = true
		}
		rendered := Render(q, to, m.Backslash)
		dup.Cells[colIdx] = cell.WithText(rendered)
		hits = append(hits, models.Hit{R: row.R, C: colIdx + 1, From: text, To: rendered})
	}
	return dup, hits, ok
}

// DuplicateRows returns the duplicates of all matching rows in source order.
func (m *Matcher) DuplicateRows(rows []models.Row) ([]models.Row, []models.Hit) {
	var dups []models.Row
	var hits []models.Hit
	for _, row := range rows {
		dup, h, ok := m.Duplicate(row)
		if !ok {
			continue
		}
		dups = append(dups, dup)
		hits = append(hits, h...)
	}
	return dups, hits
}
