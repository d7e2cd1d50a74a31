package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/myoshida/orgchart/pkg/errors"
)

// setupColumnWidths fixes the widths of all visual columns. Widths are
// always set for a full page worth of columns so trailing pages line up.
func (r *renderer) setupColumnWidths() error {
	lay := r.cfg.Layout

	if err := r.setColWidth(1, lay.WidthMargin); err != nil {
		return err
	}
	widths := [excelColsPerVisual]float64{
		colClient:   lay.WidthClient,
		colCustomer: lay.WidthCustomer,
		colProject:  lay.WidthProject,
		colName:     lay.WidthName,
		colDept:     lay.WidthDept,
		colEmpty:    lay.WidthEmpty,
		colGrade:    lay.WidthGrade,
	}
	for vc := 0; vc < lay.ColumnsPerPage; vc++ {
		base := vc*stride + 1 + leftMargin
		for offset, w := range widths {
			if err := r.setColWidth(base+offset, w); err != nil {
				return err
			}
		}
		if gapCols > 0 {
			if err := r.setColWidth(base+excelColsPerVisual, lay.WidthGap); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *renderer) setColWidth(col int, display float64) error {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "column %d", col)
	}
	if err := r.f.SetColWidth(sheetName, name, name, storedWidth(display)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "set width of column %s", name)
	}
	return nil
}

// setupPrint configures A4 landscape printing: reduced scale, tight margins,
// a print area pinned to one page width, and row breaks between layout pages.
func (r *renderer) setupPrint() error {
	size := 9 // A4
	orientation := "landscape"
	scale := uint(48)
	if err := r.f.SetPageLayout(sheetName, &excelize.PageLayoutOptions{
		Size:        &size,
		Orientation: &orientation,
		AdjustTo:    &scale,
	}); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "set page layout")
	}

	const cm = 1.0 / 2.54 // margins are stored in inches
	top, bottom := 0.5*cm, 0.5*cm
	left, right := 0.8*cm, 0.8*cm
	header, footer := 0.8*cm, 0.8*cm
	if err := r.f.SetPageMargins(sheetName, &excelize.PageLayoutMarginsOptions{
		Top:    &top,
		Bottom: &bottom,
		Left:   &left,
		Right:  &right,
		Header: &header,
		Footer: &footer,
	}); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "set page margins")
	}

	lastColNum := leftMargin + r.cfg.Layout.ColumnsPerPage*stride
	lastCol, err := excelize.ColumnNumberToName(lastColNum)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "print area column")
	}
	lastRow := r.lastRow
	if lastRow < contentStartRow {
		lastRow = contentStartRow
	}
	if err := r.f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: fmt.Sprintf("%s!$A$1:$%s$%d", sheetName, lastCol, lastRow),
		Scope:    sheetName,
	}); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "set print area")
	}

	// Horizontal page boundary right after the last visual column.
	breakCell, _ := excelize.CoordinatesToCellName(lastColNum+1, 1)
	if err := r.f.InsertPageBreak(sheetName, breakCell); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "insert column break")
	}

	for _, breakRow := range r.pageBreakRows {
		cell, _ := excelize.CoordinatesToCellName(1, breakRow+1)
		if err := r.f.InsertPageBreak(sheetName, cell); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "insert row break at %d", breakRow)
		}
	}
	return nil
}
