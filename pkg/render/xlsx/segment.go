package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/myoshida/orgchart/pkg/errors"
	"github.com/myoshida/orgchart/pkg/layout"
)

// segmentState collects, while the segment's text is written, everything the
// border pass needs afterwards.
type segmentState struct {
	base      int // first spreadsheet column of the visual column (1-based)
	startRow  int
	clientRow int

	// borderStarts maps a row boundary (the lower row's number) to the
	// column offset the horizontal rule starts at.
	borderStarts map[int]int

	// memberRanges lists employee-row runs of two or more, drawn with hair
	// rules between them.
	memberRanges [][2]int

	// mergedRows holds rows starting a two-row merged cell; no horizontal
	// rule may cut through a merge.
	mergedRows map[int]bool

	customerVlines [][2]int
	projectVlines  [][2]int
}

// writeSegment writes one client segment at row and returns the next free row.
func (r *renderer) writeSegment(seg *layout.Segment, base, row int) (int, error) {
	st := &segmentState{
		base:         base,
		startRow:     row,
		clientRow:    row,
		borderStarts: make(map[int]int),
		mergedRows:   make(map[int]bool),
	}

	// Client header: name merged over two rows and six columns, with the
	// division label and headcount in the grade column beside it.
	if err := r.setCell(row, base+colClient, seg.Client, fontClient, alignCenterShrink); err != nil {
		return 0, err
	}
	if err := r.merge(row, base+colClient, row+1, base+colClient+5); err != nil {
		return 0, err
	}
	st.mergedRows[row] = true
	if err := r.setCell(row, base+colGrade, fmt.Sprintf("営業:%s", seg.Division), fontInfo, alignRight); err != nil {
		return 0, err
	}
	if err := r.setCell(row+1, base+colGrade, fmt.Sprintf("%d名", seg.Headcount), fontInfo, alignRight); err != nil {
		return 0, err
	}
	row += 2
	st.borderStarts[row] = colCustomer

	for i, block := range seg.Blocks {
		if i > 0 {
			st.borderStarts[row] = colCustomer
		}
		next, err := r.writeBlock(block, st, row)
		if err != nil {
			return 0, err
		}
		row = next
	}

	if err := r.applyBorders(st, row-1); err != nil {
		return 0, err
	}
	return row, nil
}

// writeBlock writes one customer block at row and returns the next free row.
func (r *renderer) writeBlock(block *layout.Block, st *segmentState, row int) (int, error) {
	base := st.base
	customerRow := row

	rows := block.Rows
	for i := 0; i < len(rows); i++ {
		switch rows[i].Kind {
		case layout.RowCustomerHeader:
			if err := r.setCell(row, base+colCustomer, rows[i].Text, fontCustomer, alignCenterShrink); err != nil {
				return 0, err
			}
			if err := r.merge(row, base+colCustomer, row+1, base+colEmpty); err != nil {
				return 0, err
			}
			st.mergedRows[row] = true
			if err := r.setCell(row+1, base+colGrade, fmt.Sprintf("%d名", rows[i].Headcount), fontInfo, alignRight); err != nil {
				return 0, err
			}
			row++

		case layout.RowBlank:
			row++
			st.borderStarts[row] = colProject

		case layout.RowProjectHeader:
			st.borderStarts[row] = colProject
			projectRow := row
			if err := r.setCell(row, base+colProject, rows[i].Text, fontProject, alignShrink); err != nil {
				return 0, err
			}
			if err := r.merge(row, base+colProject, row, base+colEmpty); err != nil {
				return 0, err
			}
			if err := r.setCell(row, base+colGrade, fmt.Sprintf("%d名", rows[i].Headcount), fontInfo, alignRight); err != nil {
				return 0, err
			}
			row++
			st.borderStarts[row] = colName

			// Employee lines directly below the project name.
			firstMember := row
			for i+1 < len(rows) && rows[i+1].Kind == layout.RowEmployee {
				i++
				emp := rows[i]
				if err := r.setCell(row, base+colName, emp.Text, fontPerson, alignShrink); err != nil {
					return 0, err
				}
				if err := r.setCell(row, base+colDept, emp.Department, fontPerson, alignNone); err != nil {
					return 0, err
				}
				if emp.Grade != "" {
					if err := r.setCell(row, base+colGrade, emp.Grade, fontPerson, alignNone); err != nil {
						return 0, err
					}
				}
				row++
			}
			lastMember := row - 1
			if lastMember > firstMember {
				st.memberRanges = append(st.memberRanges, [2]int{firstMember, lastMember})
				for mr := firstMember + 1; mr <= lastMember; mr++ {
					st.borderStarts[mr] = colName
				}
			}
			if lastMember >= projectRow+1 {
				st.projectVlines = append(st.projectVlines, [2]int{projectRow + 1, lastMember})
			}
		}
	}

	st.customerVlines = append(st.customerVlines, [2]int{customerRow + 2, row - 1})
	return row, nil
}

// isMemberPair reports whether the rows above and below a boundary belong to
// the same project's employee run.
func isMemberPair(above, below int, memberRanges [][2]int) bool {
	for _, rng := range memberRanges {
		if rng[0] <= above && above <= rng[1] && rng[0] <= below && below <= rng[1] {
			return true
		}
	}
	return false
}

// resolveH returns the horizontal rule drawn at a row boundary for a given
// column offset: hair between employees of one project, thin at grouping
// boundaries, none where the rule does not reach the column.
func resolveH(boundary, colOffset int, st *segmentState) int {
	start, ok := st.borderStarts[boundary]
	if !ok {
		return borderNone
	}
	if colOffset < start {
		return borderNone
	}
	if isMemberPair(boundary-1, boundary, st.memberRanges) {
		return borderHair
	}
	return borderThin
}

// applyBorders draws the segment's box: a medium outline, level-dependent
// inner horizontal rules, and the vertical rules separating the hierarchy
// columns. Each cell's border is combined with the font recorded during the
// text pass into one style.
func (r *renderer) applyBorders(st *segmentState, endRow int) error {
	if endRow < st.startRow {
		return nil
	}
	colStart := st.base
	colEnd := st.base + excelColsPerVisual - 1

	for row := st.startRow; row <= endRow; row++ {
		for col := colStart; col <= colEnd; col++ {
			offset := col - colStart
			var b borderSpec

			switch {
			case row == st.startRow:
				b.top = borderMedium
			case st.mergedRows[row-1]:
				// inside a merged cell
			default:
				b.top = resolveH(row, offset, st)
			}

			switch {
			case row == endRow:
				b.bottom = borderMedium
			case st.mergedRows[row]:
				// inside a merged cell
			default:
				b.bottom = resolveH(row+1, offset, st)
			}

			if col == colStart {
				b.left = borderMedium
			}
			if col == colEnd {
				b.right = borderMedium
			}

			// Vertical rules between the hierarchy columns.
			if offset == colClient && row >= st.clientRow+2 {
				b.right = borderThin
			}
			if offset == colCustomer {
				for _, rng := range st.customerVlines {
					if rng[0] <= row && row <= rng[1] {
						b.right = borderThin
						break
					}
				}
			}
			if offset == colProject {
				for _, rng := range st.projectVlines {
					if rng[0] <= row && row <= rng[1] {
						b.right = borderThin
						break
					}
				}
			}

			text := r.cells[cellRef{row, col}]
			style, err := r.style(text.font, text.align, b)
			if err != nil {
				return err
			}
			cell, _ := excelize.CoordinatesToCellName(col, row)
			if err := r.f.SetCellStyle(sheetName, cell, cell, style); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "style cell %s", cell)
			}
		}
	}
	return nil
}
