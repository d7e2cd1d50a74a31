// Package roster reads employee assignment records from tabular roster files.
//
// The package owns character-encoding handling and column-to-field mapping;
// downstream consumers only see typed EmployeeRecord values. Records are
// immutable once read.
package roster

// EmployeeRecord is one row of the roster: an employee and the client,
// customer and project it is staffed on.
type EmployeeRecord struct {
	ID           string // employee number
	Name         string
	Department   string
	CustomerName string // ユーザー名
	ClientName   string // 取引先名
	ProjectName  string // 業務名
	Grade        string // raw grade as it appears in the roster
}

// Roster column headers as they appear in the source file.
const (
	colID       = "社員番号"
	colName     = "名前"
	colDept     = "所属部署"
	colCustomer = "ユーザー名"
	colClient   = "取引先名"
	colProject  = "業務名"
	colGrade    = "グレード"
)

// requiredColumns are the headers the roster file must carry. Extra columns
// (業務コード, 状況, 役職, ...) are ignored.
var requiredColumns = []string{
	colID, colName, colDept, colCustomer, colClient, colProject, colGrade,
}
