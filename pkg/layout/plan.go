// Package layout packs the sorted staffing hierarchy into a printable
// column-flow layout.
//
// The produced plan is an ordered tree of Page → Column → Segment → Block →
// Row. A Block is one customer subtree and is atomic: it is never split
// across columns. A Segment is the run of one client's blocks inside a single
// column, carrying the client header that labels them; when a client's blocks
// continue into the next column the header repeats there as a new segment
// marked Continued.
package layout

// RowKind discriminates the printed row types inside a block.
type RowKind string

const (
	// RowCustomerHeader is the customer name row. The renderer merges it
	// with the blank row below into one header cell.
	RowCustomerHeader RowKind = "customer-header"

	// RowBlank is the spacer row of a customer header.
	RowBlank RowKind = "blank"

	// RowProjectHeader is a project name row.
	RowProjectHeader RowKind = "project-header"

	// RowEmployee is one employee line.
	RowEmployee RowKind = "employee"
)

// Row is one printed line of a block.
type Row struct {
	Kind RowKind `json:"kind"`

	// Text is the customer name, project name or employee name depending on
	// Kind.
	Text string `json:"text,omitempty"`

	// Department and Grade are set on employee rows only.
	Department string `json:"department,omitempty"`
	Grade      string `json:"grade,omitempty"`

	// Headcount is set on customer and project header rows.
	Headcount int `json:"headcount,omitempty"`
}

// Block is the atomic packing unit: one customer with all its project and
// employee rows.
type Block struct {
	Customer  string `json:"customer"`
	Headcount int    `json:"headcount"`
	Rows      []Row  `json:"rows"`
}

// RowCount returns the printed height of the block.
func (b *Block) RowCount() int { return len(b.Rows) }

// Segment is one client's run of blocks within a single column, labeled by
// the client header printed above it.
type Segment struct {
	Client    string `json:"client"`
	Division  string `json:"division"`
	Headcount int    `json:"headcount"`

	// Continued is true when this segment continues a client whose previous
	// blocks were placed in an earlier column, i.e. the header is a repeat.
	Continued bool `json:"continued,omitempty"`

	Blocks []*Block `json:"blocks"`
}

// Column is a fixed-height vertical slice of a page.
type Column struct {
	Index    int        `json:"index"`
	Segments []*Segment `json:"segments"`

	// Rows is the number of printed rows the column carries, headers and
	// inter-client gaps included, trailing gap excluded. At most the
	// configured row budget except for the documented oversized-block case.
	Rows int `json:"rows"`
}

// Page is an ordered sequence of columns, at most ColumnsPerPage of them.
type Page struct {
	Index   int       `json:"index"`
	Columns []*Column `json:"columns"`
}

// Plan is the finished layout handed to the renderer.
type Plan struct {
	Pages []*Page `json:"pages"`

	// ColumnsPerPage and MaxRowsPerColumn echo the configuration the plan
	// was packed with.
	ColumnsPerPage   int `json:"columns_per_page"`
	MaxRowsPerColumn int `json:"max_rows_per_column"`
}

// BlockCount returns the total number of placed blocks.
func (p *Plan) BlockCount() int {
	var n int
	for _, page := range p.Pages {
		for _, col := range page.Columns {
			for _, seg := range col.Segments {
				n += len(seg.Blocks)
			}
		}
	}
	return n
}

// Header returns the client header labeling the column's first segment, or
// "" for a column with no segments.
func (c *Column) Header() string {
	if len(c.Segments) == 0 {
		return ""
	}
	return c.Segments[0].Client
}
