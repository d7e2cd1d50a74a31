package orgtree

import (
	"testing"

	"github.com/myoshida/orgchart/pkg/config"
)

func sortedTestTree() *Tree {
	return &Tree{Divisions: []*Division{
		{Key: config.DivisionOther, Clients: []*Client{
			{Name: "未登録商事", Customers: []*Customer{makeCustomer("W", 1)}},
		}},
		{Key: "B", Clients: []*Client{
			{Name: "NEC", Customers: []*Customer{makeCustomer("V", 2)}},
		}},
		{Key: "A", Clients: []*Client{
			{Name: "小口", Customers: []*Customer{makeCustomer("X", 1)}},
			{Name: "大口", Customers: []*Customer{
				makeCustomer("Y", 1),
				makeCustomer("Z", 4, 2),
			}},
		}},
	}}
}

func TestSortDivisionsFixedOrder(t *testing.T) {
	cfg := testConfig()
	tree := sortedTestTree()
	Aggregate(tree)
	Sort(tree, cfg)

	want := []string{"A", "B", config.DivisionOther}
	for i, key := range want {
		if tree.Divisions[i].Key != key {
			t.Errorf("division[%d] = %q, want %q", i, tree.Divisions[i].Key, key)
		}
	}
}

func TestSortByDescendingHeadcount(t *testing.T) {
	cfg := testConfig()
	tree := sortedTestTree()
	Aggregate(tree)
	Sort(tree, cfg)

	divA := tree.Divisions[0]
	if divA.Clients[0].Name != "大口" {
		t.Errorf("first client = %q, want 大口 (larger headcount)", divA.Clients[0].Name)
	}

	// Customers within 大口: Z (6 employees) before Y (1).
	customers := divA.Clients[0].Customers
	if customers[0].Name != "Z" || customers[1].Name != "Y" {
		t.Errorf("customers = [%s %s], want [Z Y]", customers[0].Name, customers[1].Name)
	}

	// Projects within Z: 4 employees before 2.
	projects := customers[0].Projects
	if projects[0].Headcount < projects[1].Headcount {
		t.Errorf("projects not in descending headcount: %d then %d",
			projects[0].Headcount, projects[1].Headcount)
	}
}

func TestSortTiesKeepFirstSeenOrder(t *testing.T) {
	cfg := testConfig()
	tree := &Tree{Divisions: []*Division{
		{Key: "A", Clients: []*Client{
			{Name: "先客", Customers: []*Customer{makeCustomer("X", 2)}},
			{Name: "後客", Customers: []*Customer{makeCustomer("Y", 2)}},
		}},
	}}
	Aggregate(tree)
	Sort(tree, cfg)

	clients := tree.Divisions[0].Clients
	if clients[0].Name != "先客" || clients[1].Name != "後客" {
		t.Errorf("equal-headcount clients reordered: [%s %s]", clients[0].Name, clients[1].Name)
	}
}

func TestSortEmployees(t *testing.T) {
	cfg := testConfig()
	project := &Project{Name: "P", Employees: []*Employee{
		{ID: "1", Name: "BP先", BP: true},
		{ID: "2", Name: "NC", Grade: "NC"},
		{ID: "3", Name: "無等級", Grade: "不明"},
		{ID: "4", Name: "GM", Grade: "GM"},
		{ID: "5", Name: "役員", Executive: true, Grade: ""},
		{ID: "6", Name: "BP後", BP: true},
		{ID: "7", Name: "SM", Grade: "SM"},
	}}
	tree := &Tree{Divisions: []*Division{
		{Key: "A", Clients: []*Client{
			{Name: "NSD", Customers: []*Customer{
				{Name: "X", Projects: []*Project{project}},
			}},
		}},
	}}
	Aggregate(tree)
	Sort(tree, cfg)

	var got []string
	for _, e := range project.Employees {
		got = append(got, e.Name)
	}
	// Executive first, then grades in rank order, then blank grade (なし is a
	// configured low rank), then unrecognized, then BP in first-seen order.
	want := []string{"役員", "GM", "SM", "NC", "無等級", "BP先", "BP後"}
	if len(got) != len(want) {
		t.Fatalf("employees = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("employee[%d] = %q, want %q (full order %v)", i, got[i], want[i], got)
		}
	}
}

func TestSortEmployeesGradeInvariant(t *testing.T) {
	cfg := testConfig()
	employees := []*Employee{
		{ID: "1", Grade: "EN"},
		{ID: "2", Grade: "GM"},
		{ID: "3", BP: true},
		{ID: "4", Grade: "MA"},
		{ID: "5", BP: true},
	}
	sortEmployees(employees, cfg)

	// Grade rank must be non-decreasing across own-company staff, and every
	// BP employee must come after every own-company employee.
	lastOwn := -1
	firstBP := len(employees)
	prevRank := -1
	for i, e := range employees {
		if e.BP {
			if i < firstBP {
				firstBP = i
			}
			continue
		}
		lastOwn = i
		rank := cfg.GradeRank(e.Grade)
		if rank < prevRank {
			t.Errorf("grade rank decreased at index %d", i)
		}
		prevRank = rank
	}
	if lastOwn > firstBP {
		t.Errorf("own-company employee at %d after BP at %d", lastOwn, firstBP)
	}
}
