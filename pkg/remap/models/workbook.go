package models

// RunResult summarizes a remap run over a workbook.
type RunResult struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds per-sheet results in workbook order.
	Sheets []SheetResult `json:"sheets"`
	// Saved reports whether the workbook was written.
	Saved bool `json:"saved"`
	// SavedTo is the path written, when Saved is true.
	SavedTo string `json:"saved_to,omitempty"`
}

// Changed reports whether any sheet produced duplicates.
func (r RunResult) Changed() bool {
	for _, s := range r.Sheets {
		if s.Changed() {
			return true
		}
	}
	return false
}

// Added returns the total number of duplicate rows across sheets.
func (r RunResult) Added() int {
	n := 0
	for _, s := range r.Sheets {
		n += s.Added
	}
	return n
}
