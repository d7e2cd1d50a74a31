// Package orgtree builds the grouped staffing hierarchy the chart is made of.
//
// The hierarchy has five levels:
//
//	Division → Client → Customer → Project → Employee
//
// Records are grouped bottom-up by exact display-name equality, headcounts and
// printed row heights are aggregated onto every node, and siblings are ordered
// per level-specific rules. The tree is built once per run and never mutated
// after sorting; layout consumes it read-only.
package orgtree

// Employee is a leaf of the tree: one staffed person.
type Employee struct {
	ID         string
	Name       string
	Department string

	// Grade is the display grade. Empty for BP staff and for grades the
	// roster marks as absent.
	Grade string

	// BP marks externally-sourced staff, always ordered after own-company
	// employees.
	BP bool

	// Executive marks own-company employees ordered before all graded staff.
	Executive bool
}

// Project is a staffing engagement under a Customer.
type Project struct {
	Name      string
	Employees []*Employee

	// Headcount is the number of employees, set by Aggregate.
	Headcount int

	// Rows is the printed height: one name row plus one row per employee.
	// Set by Aggregate.
	Rows int
}

// Customer is a sub-grouping under a Client. One Customer subtree is the
// atomic unit of the column-flow layout.
type Customer struct {
	Name     string
	Projects []*Project

	Headcount int

	// Rows is the printed height: the customer header (name row plus blank
	// row) and the project blocks below it. Set by Aggregate.
	Rows int
}

// Client is a contracting counterparty. It belongs to exactly one Division.
type Client struct {
	Name      string
	Customers []*Customer

	Headcount int

	// Rows is the nominal printed height when no column break occurs: the
	// client header plus all customer blocks. Columns that continue a client
	// repeat the header, so the real total can be larger. Set by Aggregate.
	Rows int
}

// Division is a top-level sales bucket.
type Division struct {
	Key     string
	Clients []*Client

	Headcount int
}

// Tree is the full hierarchy for one run.
type Tree struct {
	Divisions []*Division
}

// Headcount returns the total number of employees in the tree.
func (t *Tree) Headcount() int {
	var n int
	for _, d := range t.Divisions {
		n += d.Headcount
	}
	return n
}

// CustomerCount returns the number of customer blocks in the tree, which is
// the number of atomic units the layout engine will place.
func (t *Tree) CustomerCount() int {
	var n int
	for _, d := range t.Divisions {
		for _, c := range d.Clients {
			n += len(c.Customers)
		}
	}
	return n
}

// Printed row heights of the fixed header parts.
const (
	// ClientHeaderRows is the height of a client header: the client name
	// (merged over two rows) with the division label and headcount beside it.
	ClientHeaderRows = 2

	// CustomerHeaderRows is the height of a customer header: the customer
	// name merged over a name row and a blank row.
	CustomerHeaderRows = 2

	// ProjectHeaderRows is the height of a project name row.
	ProjectHeaderRows = 1

	// ClientGapRows is the blank gap after a client's last customer block.
	ClientGapRows = 1
)
