package orgtree

// Aggregate annotates every node with its headcount and printed row height,
// bottom-up. It is a pure fold with no failure modes; call it once after
// Build and again only if the tree ever changes (it does not, after layout
// begins).
//
// Row heights:
//   - an employee occupies exactly one row
//   - a project occupies its name row plus its employee rows
//   - a customer occupies its two header rows plus its project blocks
//   - a client nominally occupies its two header rows plus its customer
//     blocks; columns that continue a client repeat the header, which the
//     layout engine accounts for separately
func Aggregate(t *Tree) {
	for _, division := range t.Divisions {
		division.Headcount = 0
		for _, client := range division.Clients {
			client.Headcount = 0
			client.Rows = ClientHeaderRows
			for _, customer := range client.Customers {
				customer.Headcount = 0
				customer.Rows = CustomerHeaderRows
				for _, project := range customer.Projects {
					project.Headcount = len(project.Employees)
					project.Rows = ProjectHeaderRows + project.Headcount
					customer.Headcount += project.Headcount
					customer.Rows += project.Rows
				}
				client.Headcount += customer.Headcount
				client.Rows += customer.Rows
			}
			division.Headcount += client.Headcount
		}
	}
}
