package orgtree

import "testing"

// makeCustomer builds a customer with the given project sizes.
func makeCustomer(name string, projectSizes ...int) *Customer {
	cu := &Customer{Name: name}
	for i, size := range projectSizes {
		p := &Project{Name: name + "-p" + string(rune('0'+i))}
		for j := 0; j < size; j++ {
			p.Employees = append(p.Employees, &Employee{ID: "e", Name: "社員"})
		}
		cu.Projects = append(cu.Projects, p)
	}
	return cu
}

func TestAggregateHeadcounts(t *testing.T) {
	tree := &Tree{
		Divisions: []*Division{
			{
				Key: "A",
				Clients: []*Client{
					{
						Name: "NSD",
						Customers: []*Customer{
							makeCustomer("X", 2, 3),
							makeCustomer("Y", 1),
						},
					},
					{
						Name:      "NEC",
						Customers: []*Customer{makeCustomer("Z", 4)},
					},
				},
			},
		},
	}

	Aggregate(tree)

	div := tree.Divisions[0]
	if div.Headcount != 10 {
		t.Errorf("division headcount = %d, want 10", div.Headcount)
	}

	// Invariant: every node's headcount equals the sum of its children's.
	for _, client := range div.Clients {
		var sum int
		for _, customer := range client.Customers {
			var customerSum int
			for _, project := range customer.Projects {
				if project.Headcount != len(project.Employees) {
					t.Errorf("project %s headcount = %d, want %d",
						project.Name, project.Headcount, len(project.Employees))
				}
				customerSum += project.Headcount
			}
			if customer.Headcount != customerSum {
				t.Errorf("customer %s headcount = %d, want %d",
					customer.Name, customer.Headcount, customerSum)
			}
			sum += customer.Headcount
		}
		if client.Headcount != sum {
			t.Errorf("client %s headcount = %d, want %d", client.Name, client.Headcount, sum)
		}
	}
}

func TestAggregateRowHeights(t *testing.T) {
	// One customer: header(2) + project(1+2) + project(1+3) = 9 rows.
	cu := makeCustomer("X", 2, 3)
	tree := &Tree{Divisions: []*Division{
		{Key: "A", Clients: []*Client{{Name: "NSD", Customers: []*Customer{cu}}}},
	}}

	Aggregate(tree)

	if got := cu.Projects[0].Rows; got != 3 {
		t.Errorf("project rows = %d, want 3 (name row + 2 employees)", got)
	}
	if cu.Rows != 9 {
		t.Errorf("customer rows = %d, want 9", cu.Rows)
	}
	// Client: header(2) + customer(9).
	if got := tree.Divisions[0].Clients[0].Rows; got != 11 {
		t.Errorf("client rows = %d, want 11", got)
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	cu := makeCustomer("X", 2)
	tree := &Tree{Divisions: []*Division{
		{Key: "A", Clients: []*Client{{Name: "NSD", Customers: []*Customer{cu}}}},
	}}

	Aggregate(tree)
	first := cu.Rows
	Aggregate(tree)
	if cu.Rows != first {
		t.Errorf("rows after second Aggregate = %d, want %d", cu.Rows, first)
	}
}

func TestTreeCounts(t *testing.T) {
	tree := &Tree{Divisions: []*Division{
		{Key: "A", Clients: []*Client{
			{Name: "NSD", Customers: []*Customer{makeCustomer("X", 1), makeCustomer("Y", 2)}},
		}},
		{Key: "B", Clients: []*Client{
			{Name: "NEC", Customers: []*Customer{makeCustomer("Z", 3)}},
		}},
	}}
	Aggregate(tree)

	if got := tree.Headcount(); got != 6 {
		t.Errorf("Headcount() = %d, want 6", got)
	}
	if got := tree.CustomerCount(); got != 3 {
		t.Errorf("CustomerCount() = %d, want 3", got)
	}
}
