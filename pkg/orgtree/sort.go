package orgtree

import (
	"sort"

	"github.com/myoshida/orgchart/pkg/config"
)

// Sort reorders every level of the tree in place into canonical display
// order. Aggregate must have run first, since headcounts are the sort key.
//
// Ordering rules:
//   - divisions follow the configured declaration order, with the "other"
//     bucket last
//   - clients, customers and projects sort by descending headcount; equal
//     headcounts keep first-seen order
//   - employees sort executives first, then own-company staff by grade rank,
//     then staff with unrecognized grades, then BP staff; ties keep
//     first-seen order
//
// All comparisons are deterministic, so repeated runs on the same input
// produce identical trees.
func Sort(t *Tree, cfg config.Config) {
	sortDivisions(t, cfg)
	for _, division := range t.Divisions {
		sort.SliceStable(division.Clients, func(i, j int) bool {
			return division.Clients[i].Headcount > division.Clients[j].Headcount
		})
		for _, client := range division.Clients {
			sort.SliceStable(client.Customers, func(i, j int) bool {
				return client.Customers[i].Headcount > client.Customers[j].Headcount
			})
			for _, customer := range client.Customers {
				sort.SliceStable(customer.Projects, func(i, j int) bool {
					return customer.Projects[i].Headcount > customer.Projects[j].Headcount
				})
				for _, project := range customer.Projects {
					sortEmployees(project.Employees, cfg)
				}
			}
		}
	}
}

func sortDivisions(t *Tree, cfg config.Config) {
	rank := make(map[string]int)
	for i, key := range cfg.DivisionOrder() {
		rank[key] = i
	}
	unranked := len(rank)
	pos := func(d *Division) int {
		if r, ok := rank[d.Key]; ok {
			return r
		}
		return unranked
	}
	sort.SliceStable(t.Divisions, func(i, j int) bool {
		return pos(t.Divisions[i]) < pos(t.Divisions[j])
	})
}

// Employee sort buckets, ordered.
const (
	bucketExecutive = iota
	bucketGraded
	bucketBP
)

func employeeBucket(e *Employee) int {
	switch {
	case e.BP:
		return bucketBP
	case e.Executive:
		return bucketExecutive
	default:
		return bucketGraded
	}
}

func sortEmployees(employees []*Employee, cfg config.Config) {
	sort.SliceStable(employees, func(i, j int) bool {
		bi, bj := employeeBucket(employees[i]), employeeBucket(employees[j])
		if bi != bj {
			return bi < bj
		}
		if bi != bucketGraded {
			return false // keep first-seen order within executive and BP buckets
		}
		return cfg.GradeRank(employees[i].Grade) < cfg.GradeRank(employees[j].Grade)
	})
}
