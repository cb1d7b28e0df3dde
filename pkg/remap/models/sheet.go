package models

// Hit records one substituted cell.
type Hit struct {
	// R is the source row index (1-based).
	R int `json:"r"`
	// C is the column index (1-based).
	C int `json:"c"`
	// From is the original cell text.
	From string `json:"from"`
	// To is the text written into the duplicate.
	To string `json:"to"`
}

// SheetResult summarizes the update of a single sheet.
type SheetResult struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Scanned is the number of rows inspected.
	Scanned int `json:"scanned"`
	// LastUsedRow is the last used row before appending (0 for an empty sheet).
	LastUsedRow int `json:"last_used_row"`
	// FirstNewRow is the row index of the first appended duplicate (0 when none).
	FirstNewRow int `json:"first_new_row,omitempty"`
	// Added is the number of duplicate rows appended.
	Added int `json:"added"`
	// Hits lists the substituted cells.
	Hits []Hit `json:"hits,omitempty"`
}

// Changed reports whether duplicates were appended to the sheet.
func (s SheetResult) Changed() bool {
	return s.Added > 0
}
