package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/myoshida/orgchart/pkg/errors"
)

// fontKind selects one of the chart's fixed fonts.
type fontKind int

const (
	fontNone fontKind = iota
	fontTitle
	fontClient
	fontCustomer
	fontProject
	fontPerson
	fontInfo
)

// alignKind selects one of the chart's fixed alignments.
type alignKind int

const (
	alignNone alignKind = iota
	alignRight
	alignShrink
	alignCenterShrink
)

// Border line styles, by the spreadsheet format's style numbers.
const (
	borderNone   = 0
	borderThin   = 1
	borderMedium = 2
	borderHair   = 7
)

type borderSpec struct {
	top, bottom, left, right int
}

func (f fontKind) font() *excelize.Font {
	switch f {
	case fontTitle:
		return &excelize.Font{Family: fontFamily, Size: 11, Bold: true}
	case fontClient:
		return &excelize.Font{Family: fontFamily, Size: 20, Bold: true, Italic: true}
	case fontCustomer:
		return &excelize.Font{Family: fontFamily, Size: 14, Italic: true}
	case fontProject, fontPerson:
		return &excelize.Font{Family: fontFamily, Size: 9}
	case fontInfo:
		return &excelize.Font{Family: fontFamily, Size: 9, Italic: true}
	default:
		return nil
	}
}

func (a alignKind) alignment() *excelize.Alignment {
	switch a {
	case alignRight:
		return &excelize.Alignment{Horizontal: "right"}
	case alignShrink:
		return &excelize.Alignment{ShrinkToFit: true}
	case alignCenterShrink:
		return &excelize.Alignment{Vertical: "center", ShrinkToFit: true}
	default:
		return nil
	}
}

func (b borderSpec) borders() []excelize.Border {
	var out []excelize.Border
	add := func(side string, style int) {
		if style != borderNone {
			out = append(out, excelize.Border{Type: side, Style: style, Color: "000000"})
		}
	}
	add("top", b.top)
	add("bottom", b.bottom)
	add("left", b.left)
	add("right", b.right)
	return out
}

// style returns a cached style id for the font/alignment/border combination.
// Styles are workbook-global in the file format, so the cache keeps the
// workbook from accumulating one style per cell.
func (r *renderer) style(f fontKind, a alignKind, b borderSpec) (int, error) {
	key := fmt.Sprintf("%d|%d|%d,%d,%d,%d", f, a, b.top, b.bottom, b.left, b.right)
	if id, ok := r.styles[key]; ok {
		return id, nil
	}
	id, err := r.f.NewStyle(&excelize.Style{
		Font:      f.font(),
		Alignment: a.alignment(),
		Border:    b.borders(),
	})
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "create style")
	}
	r.styles[key] = id
	return id, nil
}

// setCell writes a value and records its font and alignment for the border
// pass, which owns the final cell styling.
func (r *renderer) setCell(row, col int, value string, f fontKind, a alignKind) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "cell coordinates (%d,%d)", col, row)
	}
	if err := r.f.SetCellValue(sheetName, cell, value); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write cell %s", cell)
	}
	r.cells[cellRef{row, col}] = cellText{font: f, align: a}
	return nil
}

func (r *renderer) merge(row1, col1, row2, col2 int) error {
	from, _ := excelize.CoordinatesToCellName(col1, row1)
	to, _ := excelize.CoordinatesToCellName(col2, row2)
	if err := r.f.MergeCell(sheetName, from, to); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "merge %s:%s", from, to)
	}
	return nil
}
