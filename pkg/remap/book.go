package remap

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/models"
	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/parser"
)

// Book is an open workbook.
type Book interface {
	// SheetNames lists the sheets in workbook order.
	SheetNames() []string
	// ReadRows reads the used range of a sheet anchored at A1.
	ReadRows(sheet string) ([]models.Row, error)
	// WriteRows writes rows starting at startRow, column A, skipping empty
	// cells and applying each cell's style.
	WriteRows(sheet string, startRow int, rows []models.Row) error
	// Save writes the workbook back to the path it was opened from.
	Save() error
	// SaveAs writes the workbook to path.
	SaveAs(path string) error
	// Close releases the workbook.
	Close() error
}

// Opener opens a Book.
type Opener interface {
	Open(path string) (Book, error)
}

// WithBook opens path, runs fn, and closes the book on every exit path.
// Nothing is closed when opening fails. A close error is joined to fn's error.
func WithBook(opener Opener, path string, fn func(Book) error) (err error) {
	book, err := opener.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := book.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close workbook: %w", cerr))
		}
	}()
	return fn(book)
}

// ExcelOpener opens workbooks with excelize.
type ExcelOpener struct{}

// Open opens an .xlsx or .xlsm workbook.
func (ExcelOpener) Open(path string) (Book, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	return &excelBook{f: f}, nil
}

type excelBook struct {
	f *excelize.File
}

func (b *excelBook) SheetNames() []string {
	return b.f.GetSheetList()
}

func (b *excelBook) ReadRows(sheet string) ([]models.Row, error) {
	return parser.ReadRows(b.f, sheet)
}

func (b *excelBook) WriteRows(sheet string, startRow int, rows []models.Row) error {
	for i, row := range rows {
		rowNum := startRow + i
		for colIdx, cell := range row.Cells {
			if cell.IsEmpty() {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return err
			}
			if err := b.f.SetCellValue(sheet, cellName, cell.Value); err != nil {
				return err
			}
			if cell.Style != 0 {
				if err := b.f.SetCellStyle(sheet, cellName, cellName, cell.Style); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (b *excelBook) Save() error {
	return b.f.Save()
}

func (b *excelBook) SaveAs(path string) error {
	return b.f.SaveAs(path)
}

func (b *excelBook) Close() error {
	return b.f.Close()
}
