package remap

import (
	"context"
	"errors"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/models"
)

// Run duplicates mapped rows across every sheet of the workbook at opts.Path
// and saves the workbook once if any sheet changed. The workbook is always
// closed before Run returns.
func Run(ctx context.Context, opts Options, logger *zap.Logger) (*models.RunResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Mapping == nil {
		return nil, errors.New("remap: mapping is required")
	}

	result := &models.RunResult{BookName: filepath.Base(opts.Path)}
	m := opts.matcher()

	err := WithBook(opts.opener(), opts.Path, func(book Book) error {
		sheets := book.SheetNames()
		if len(sheets) == 0 {
			return ErrNoSheets
		}

		for _, sheet := range sheets {
			if err := ctx.Err(); err != nil {
				return err
			}
			sr, err := UpdateSheet(book, sheet, m, !opts.DryRun, logger)
			if err != nil {
				return err
			}
			result.Sheets = append(result.Sheets, sr)
		}

		if !result.Changed() {
			logger.Info("No changes were made to the file. No target products found.")
			return nil
		}
		if opts.DryRun {
			logger.Info("Dry run, workbook not saved", zap.Int("rows", result.Added()))
			return nil
		}

		target := opts.Path
		if opts.OutputPath != "" && opts.OutputPath != opts.Path {
			target = opts.OutputPath
			if err := book.SaveAs(target); err != nil {
				return err
			}
		} else if err := book.Save(); err != nil {
			return err
		}
		result.Saved = true
		result.SavedTo = target
		logger.Info("Process completed. Changes saved", zap.String("path", target), zap.Int("rows", result.Added()))
		return nil
	})
	if err != nil {
		return result, err
	}
	return result, nil
}
