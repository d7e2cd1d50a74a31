// Package xlsx materializes a layout plan as a printable spreadsheet.
//
// The package is purely a sink: it consumes the finished Plan and knows
// nothing about grouping or packing decisions. One visual column of the plan
// maps to seven spreadsheet columns plus a gap column:
//
//	取引先 | 顧客 | 案件名 | 名前 | 所属 | 空列 | グレード
//
// Fonts, merges, borders and the A4 landscape print setup mirror the manual
// chart this tool replaces.
package xlsx

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/myoshida/orgchart/pkg/config"
	"github.com/myoshida/orgchart/pkg/errors"
	"github.com/myoshida/orgchart/pkg/layout"
)

const sheetName = "構成図"

// Spreadsheet geometry. Column A is a fixed left margin; each visual column
// occupies seven content columns plus one gap column.
const (
	leftMargin         = 1
	excelColsPerVisual = 7
	gapCols            = 1
	stride             = excelColsPerVisual + gapCols
)

// Column offsets within one visual column (0-based).
const (
	colClient   = 0
	colCustomer = 1
	colProject  = 2
	colName     = 3
	colDept     = 4
	colEmpty    = 5
	colGrade    = 6
)

// Title row plus one blank row above the content.
const (
	titleRows       = 2
	contentStartRow = titleRows + 1
)

const fontFamily = "ＭＳ Ｐゴシック"

// Column width conversion. The stored XML width differs from the width the
// spreadsheet UI displays; the conversion depends on the Normal style font's
// max digit width (9px for the font above) and a fixed pixel padding.
const (
	colWidthMDW     = 9.0
	colWidthPadding = 7.0
)

func storedWidth(display float64) float64 {
	if display <= 0 {
		return 0
	}
	return float64(int((display+colWidthPadding/colWidthMDW)*256)) / 256
}

// TitleLabel returns the calendar label of the chart title. An explicit
// configured title wins; otherwise the label derives from now using the
// Reiwa era convention (R{year-2018}年{month}月).
func TitleLabel(cfg config.Config, now time.Time) string {
	if cfg.Title != "" {
		return cfg.Title
	}
	return fmt.Sprintf("R%d年%d月", now.Year()-2018, int(now.Month()))
}

// Render materializes plan into a new workbook.
func Render(plan *layout.Plan, cfg config.Config) (*excelize.File, error) {
	r := &renderer{
		f:      excelize.NewFile(),
		cfg:    cfg,
		plan:   plan,
		styles: make(map[string]int),
		cells:  make(map[cellRef]cellText),
	}
	if err := r.render(); err != nil {
		r.f.Close()
		return nil, err
	}
	return r.f, nil
}

// Save writes the workbook into dir under a timestamped name and returns the
// full output path.
func Save(f *excelize.File, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "create output dir %s", dir)
	}
	path := filepath.Join(dir, fmt.Sprintf("構成図_%s.xlsx", now.Format("20060102_150405")))
	if err := f.SaveAs(path); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "save workbook %s", path)
	}
	return path, nil
}

// cellRef addresses one cell during the text pass so the border pass can
// recombine each cell's font with its border into a single style.
type cellRef struct{ row, col int }

type cellText struct {
	font  fontKind
	align alignKind
}

type renderer struct {
	f    *excelize.File
	cfg  config.Config
	plan *layout.Plan

	styles map[string]int
	cells  map[cellRef]cellText

	pageBreakRows []int
	lastRow       int
}

func (r *renderer) render() error {
	if err := r.setupSheet(); err != nil {
		return err
	}
	if err := r.writeTitle(); err != nil {
		return err
	}
	if err := r.writePages(); err != nil {
		return err
	}
	if err := r.setupColumnWidths(); err != nil {
		return err
	}
	return r.setupPrint()
}

func (r *renderer) setupSheet() error {
	if err := r.f.SetSheetName("Sheet1", sheetName); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "rename sheet")
	}
	if err := r.f.SetDefaultFont(fontFamily); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "set default font")
	}
	showGrid := false
	view := "pageBreakPreview"
	if err := r.f.SetSheetView(sheetName, 0, &excelize.ViewOptions{
		ShowGridLines: &showGrid,
		View:          &view,
	}); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "set sheet view")
	}
	return nil
}

func (r *renderer) writeTitle() error {
	cell, _ := excelize.CoordinatesToCellName(1+leftMargin, 2)
	title := fmt.Sprintf("【%s】", TitleLabel(r.cfg, time.Now()))
	if err := r.f.SetCellValue(sheetName, cell, title); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write title")
	}
	style, err := r.style(fontTitle, alignNone, borderSpec{})
	if err != nil {
		return err
	}
	if err := r.f.SetCellStyle(sheetName, cell, cell, style); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "style title")
	}
	return nil
}

// writePages walks the plan and writes every page's columns, recording row
// page-break positions between pages.
func (r *renderer) writePages() error {
	startRow := contentStartRow
	for _, page := range r.plan.Pages {
		maxRows := 0
		for _, column := range page.Columns {
			if err := r.writeColumn(column, startRow); err != nil {
				return err
			}
			if column.Rows > maxRows {
				maxRows = column.Rows
			}
		}
		// One blank row below the tallest column, like the gap a client
		// leaves after its last block.
		pageEnd := startRow + maxRows
		if pageEnd > r.lastRow {
			r.lastRow = pageEnd
		}
		r.pageBreakRows = append(r.pageBreakRows, pageEnd)
		startRow = pageEnd + titleRows
	}
	// No break after the final page.
	if n := len(r.pageBreakRows); n > 0 {
		r.pageBreakRows = r.pageBreakRows[:n-1]
	}
	return nil
}

// writeColumn writes one visual column's segments top to bottom.
func (r *renderer) writeColumn(column *layout.Column, startRow int) error {
	base := column.Index*stride + 1 + leftMargin
	row := startRow
	for i, seg := range column.Segments {
		if i > 0 {
			row++ // gap row between clients
		}
		next, err := r.writeSegment(seg, base, row)
		if err != nil {
			return err
		}
		row = next
	}
	return nil
}
