package orgtree

import (
	"fmt"
	"strings"

	"github.com/myoshida/orgchart/pkg/config"
	"github.com/myoshida/orgchart/pkg/roster"
)

// SkippedRecord is a roster row excluded from the tree, with the reason.
type SkippedRecord struct {
	Record roster.EmployeeRecord
	Reason string
}

// Report summarizes what Build did with the input records.
type Report struct {
	// Total is the number of records offered to the builder.
	Total int

	// Skipped lists records excluded from the tree. Skipping is a
	// data-quality condition, never an error.
	Skipped []SkippedRecord
}

// Placed returns the number of records that made it into the tree.
func (r Report) Placed() int {
	return r.Total - len(r.Skipped)
}

// Builder groups flat roster records into the staffing hierarchy.
type Builder struct {
	cfg config.Config
}

// NewBuilder creates a builder with the given configuration.
func NewBuilder(cfg config.Config) *Builder {
	return &Builder{cfg: cfg}
}

// Build groups records into a Division → Client → Customer → Project →
// Employee tree.
//
// Division membership derives from the client display name via the configured
// division tables; unmapped clients fall into the trailing "other" bucket.
// Records missing a required field are skipped and reported, not fatal.
//
// Sibling order in the returned tree is first-seen insertion order; Sort
// establishes the display order afterwards. Headcounts and row heights are
// zero until Aggregate runs.
func (b *Builder) Build(records []roster.EmployeeRecord) (*Tree, Report) {
	tree := &Tree{}
	report := Report{Total: len(records)}

	divisions := make(map[string]*Division)

	for _, rec := range records {
		if reason := b.missingField(rec); reason != "" {
			report.Skipped = append(report.Skipped, SkippedRecord{Record: rec, Reason: reason})
			continue
		}

		clientName := displayName(rec.ClientName, b.cfg.ClientDisplay)
		customerName := displayName(rec.CustomerName, b.cfg.CustomerDisplay)
		divisionKey := b.cfg.DivisionFor(clientName)

		division, ok := divisions[divisionKey]
		if !ok {
			division = &Division{Key: divisionKey}
			divisions[divisionKey] = division
			tree.Divisions = append(tree.Divisions, division)
		}

		client := findOrAddClient(division, clientName)
		customer := findOrAddCustomer(client, customerName)
		project := findOrAddProject(customer, rec.ProjectName)
		project.Employees = append(project.Employees, b.newEmployee(rec))
	}

	return tree, report
}

// missingField returns a reason string when rec lacks a required grouping
// field, or "" when the record is usable.
func (b *Builder) missingField(rec roster.EmployeeRecord) string {
	switch {
	case rec.ID == "":
		return "missing employee id"
	case rec.ClientName == "":
		return fmt.Sprintf("employee %s: missing client name", rec.ID)
	case rec.CustomerName == "":
		return fmt.Sprintf("employee %s: missing customer name", rec.ID)
	case rec.ProjectName == "":
		return fmt.Sprintf("employee %s: missing project name", rec.ID)
	}
	return ""
}

func (b *Builder) newEmployee(rec roster.EmployeeRecord) *Employee {
	bp := b.cfg.BPPrefix != "" && strings.HasPrefix(rec.Department, b.cfg.BPPrefix)

	grade := ""
	if !bp {
		grade = rec.Grade
		if display, ok := b.cfg.GradeDisplay[rec.Grade]; ok {
			grade = display
		}
	}

	return &Employee{
		ID:         rec.ID,
		Name:       rec.Name,
		Department: rec.Department,
		Grade:      grade,
		BP:         bp,
		Executive:  !bp && b.cfg.ExecutiveMarker != "" && strings.Contains(rec.Department, b.cfg.ExecutiveMarker),
	}
}

func findOrAddClient(d *Division, name string) *Client {
	for _, c := range d.Clients {
		if c.Name == name {
			return c
		}
	}
	c := &Client{Name: name}
	d.Clients = append(d.Clients, c)
	return c
}

func findOrAddCustomer(c *Client, name string) *Customer {
	for _, cu := range c.Customers {
		if cu.Name == name {
			return cu
		}
	}
	cu := &Customer{Name: name}
	c.Customers = append(c.Customers, cu)
	return cu
}

func findOrAddProject(cu *Customer, name string) *Project {
	for _, p := range cu.Projects {
		if p.Name == name {
			return p
		}
	}
	p := &Project{Name: name}
	cu.Projects = append(cu.Projects, p)
	return p
}
