package layout

import (
	"github.com/myoshida/orgchart/pkg/config"
	"github.com/myoshida/orgchart/pkg/errors"
	"github.com/myoshida/orgchart/pkg/orgtree"
)

// Engine packs a sorted, aggregated tree into a column-flow plan.
//
// The engine is a strict forward pass: blocks are placed in tree order,
// a placed block is never revisited, and the whole computation is
// deterministic. Engines are cheap values; use one per run.
type Engine struct {
	cfg config.Layout
}

// NewEngine creates an engine with the given layout configuration.
func NewEngine(cfg config.Layout) Engine {
	return Engine{cfg: cfg}
}

// cursor tracks the current insertion point during packing.
type cursor struct {
	plan   *Plan
	cfg    config.Layout
	page   *Page
	column *Column
	offset int // rows consumed in the current column, gaps included
}

// Plan packs the tree.
//
// Placement rules:
//   - each customer block is atomic; if it does not fit in the remaining
//     row budget of the current column, the column closes and the block goes
//     to the next column (or the first column of a new page)
//   - every column that carries any of a client's blocks starts that run
//     with the client header; continuation headers are marked Continued
//   - a block taller than the row budget is placed as the sole content of a
//     fresh column rather than split
//   - one blank row separates a client's last block from the next client
//
// An empty tree yields a plan with zero pages. Non-positive layout bounds
// are rejected before any packing happens.
func (e Engine) Plan(tree *orgtree.Tree) (*Plan, error) {
	if e.cfg.ColumnsPerPage <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout,
			"columns_per_page must be positive, got %d", e.cfg.ColumnsPerPage)
	}
	if e.cfg.MaxRowsPerColumn <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout,
			"max_rows_per_column must be positive, got %d", e.cfg.MaxRowsPerColumn)
	}

	plan := &Plan{
		ColumnsPerPage:   e.cfg.ColumnsPerPage,
		MaxRowsPerColumn: e.cfg.MaxRowsPerColumn,
	}
	cur := &cursor{plan: plan, cfg: e.cfg}

	for _, division := range tree.Divisions {
		for _, client := range division.Clients {
			cur.placeClient(division, client)
		}
	}
	return plan, nil
}

// placeClient lays out one client's customer blocks, opening continuation
// segments whenever a block moves to a new column.
func (c *cursor) placeClient(division *orgtree.Division, client *orgtree.Client) {
	firstRows := 0
	if len(client.Customers) > 0 {
		firstRows = client.Customers[0].Rows
	}
	c.ensureFit(orgtree.ClientHeaderRows + firstRows)
	seg := c.beginSegment(division, client, false)

	for _, customer := range client.Customers {
		if !c.fitsBlock(seg, customer.Rows) {
			c.nextColumn()
			seg = c.beginSegment(division, client, true)
		}
		seg.Blocks = append(seg.Blocks, buildBlock(customer))
		c.offset += customer.Rows
		c.column.Rows = c.offset
	}

	// Gap before whatever client comes next; not counted against the column
	// unless another segment follows in it.
	c.offset += orgtree.ClientGapRows
}

// fitsBlock reports whether a block of the given height may be placed at the
// cursor. A block that exceeds the remaining budget is still accepted when it
// would be the sole content of its column (just below seg's header at the top
// of a fresh column): oversized blocks overflow rather than split.
func (c *cursor) fitsBlock(seg *Segment, rows int) bool {
	if c.offset+rows <= c.cfg.MaxRowsPerColumn {
		return true
	}
	return len(seg.Blocks) == 0 &&
		len(c.column.Segments) == 1 && c.column.Segments[0] == seg &&
		c.offset == orgtree.ClientHeaderRows
}

// ensureFit opens a new column when the current one cannot take rows more
// rows. A fresh column accepts anything; overflow is resolved per block by
// fitsBlock.
func (c *cursor) ensureFit(rows int) {
	if c.column == nil || c.offset == 0 {
		return
	}
	if c.offset+rows > c.cfg.MaxRowsPerColumn {
		c.nextColumn()
	}
}

// beginSegment opens a client segment at the cursor, emitting the header.
func (c *cursor) beginSegment(division *orgtree.Division, client *orgtree.Client, continued bool) *Segment {
	c.ensureColumn()
	seg := &Segment{
		Client:    client.Name,
		Division:  division.Key,
		Headcount: client.Headcount,
		Continued: continued,
	}
	c.column.Segments = append(c.column.Segments, seg)
	c.offset += orgtree.ClientHeaderRows
	c.column.Rows = c.offset
	return seg
}

// ensureColumn lazily creates the first page and column, so an empty tree
// produces an empty plan.
func (c *cursor) ensureColumn() {
	if c.column != nil {
		return
	}
	c.newPage()
	c.newColumn()
}

func (c *cursor) nextColumn() {
	c.ensureColumn()
	if len(c.page.Columns) >= c.cfg.ColumnsPerPage {
		c.newPage()
	}
	c.newColumn()
}

func (c *cursor) newPage() {
	c.page = &Page{Index: len(c.plan.Pages)}
	c.plan.Pages = append(c.plan.Pages, c.page)
}

func (c *cursor) newColumn() {
	c.column = &Column{Index: len(c.page.Columns)}
	c.page.Columns = append(c.page.Columns, c.column)
	c.offset = 0
}

// buildBlock flattens a customer subtree into its printed rows.
func buildBlock(customer *orgtree.Customer) *Block {
	block := &Block{
		Customer:  customer.Name,
		Headcount: customer.Headcount,
		Rows:      make([]Row, 0, customer.Rows),
	}
	block.Rows = append(block.Rows,
		Row{Kind: RowCustomerHeader, Text: customer.Name, Headcount: customer.Headcount},
		Row{Kind: RowBlank},
	)
	for _, project := range customer.Projects {
		block.Rows = append(block.Rows,
			Row{Kind: RowProjectHeader, Text: project.Name, Headcount: project.Headcount})
		for _, employee := range project.Employees {
			block.Rows = append(block.Rows, Row{
				Kind:       RowEmployee,
				Text:       employee.Name,
				Department: employee.Department,
				Grade:      employee.Grade,
			})
		}
	}
	return block
}
