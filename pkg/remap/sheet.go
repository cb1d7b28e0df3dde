package remap

import (
	"go.uber.org/zap"

	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/matcher"
	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/models"
	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/parser"
)

// UpdateSheet appends the duplicates of every matching row below the sheet's
// last used row. When write is false the duplicates are only counted.
func UpdateSheet(book Book, sheet string, m *matcher.Matcher, write bool, logger *zap.Logger) (models.SheetResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("sheet", sheet))
	logger.Info("Processing sheet")

	result := models.SheetResult{Name: sheet}

	rows, err := book.ReadRows(sheet)
	if err != nil {
		return result, NewSheetError(sheet, "read", err)
	}
	result.Scanned = len(rows)
	result.LastUsedRow = parser.LastUsedRow(rows)
	if bounds, ok := parser.UsedRange(rows); ok {
		logger.Debug("Used range", zap.String("range", bounds.Ref()))
	}

	dups, hits := m.DuplicateRows(rows)
	for _, h := range hits {
		logger.Info("Found target product",
			zap.String("from", h.From),
			zap.String("to", h.To),
			zap.Int("row", h.R),
			zap.Int("col", h.C))
	}
	result.Hits = hits

	if len(dups) == 0 {
		logger.Info("No matching rows found")
		return result, nil
	}

	result.FirstNewRow = result.LastUsedRow + 1
	result.Added = len(dups)
	if write {
		if err := book.WriteRows(sheet, result.FirstNewRow, dups); err != nil {
			return result, NewSheetError(sheet, "write", err)
		}
	}
	logger.Info("Added new rows",
		zap.Int("rows", result.Added),
		zap.Int("first_row", result.FirstNewRow),
		zap.Bool("dry_run", !write))
	return result, nil
}
