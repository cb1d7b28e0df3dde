// Package remap duplicates workbook rows holding mapped plan codes.
package remap

import (
	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/matcher"
	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/models"
)

// Options configures a remap run.
type Options struct {
	// Path is the workbook to update (.xlsx or .xlsm).
	Path string
	// OutputPath, when set, receives the changed workbook instead of Path.
	OutputPath string
	// Mapping holds the old → new code pairs.
	Mapping *models.Mapping
	// Backslash selects the rewrite of backslash-led codes.
	Backslash matcher.BackslashMode
	// Columns restricts the scan to these 1-based columns. Empty scans every cell.
	Columns []int
	// DryRun reports duplicates without writing or saving.
	DryRun bool
	// Opener opens the workbook. If nil, ExcelOpener is used.
	Opener Opener
}

func (o Options) matcher() *matcher.Matcher {
	mode := o.Backslash
	if mode == "" {
		mode = matcher.BackslashLegacy
	}
	return &matcher.Matcher{
		Mapping:   o.Mapping,
		Backslash: mode,
		Columns:   o.Columns,
	}
}

func (o Options) opener() Opener {
	if o.Opener != nil {
		return o.Opener
	}
	return ExcelOpener{}
}
