package pipeline

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/myoshida/orgchart/pkg/config"
)

const rosterCSV = `社員番号,名前,所属部署,ユーザー名,取引先名,業務名,グレード
1001,山田太郎,第一部,顧客X,TIS西日本,案件P,GM
1002,佐藤花子,第一部,顧客X,TIS西日本,案件P,SM
1003,鈴木一郎,第二部,顧客Y,未知商事,案件Q,EN
1004,欠落次郎,第二部,顧客Y,未知商事,,EN
`

// writeRoster writes the fixture roster as Shift_JIS, the encoding the
// reader defaults to.
func writeRoster(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, japanese.ShiftJIS.NewEncoder())
	if _, err := io.WriteString(w, rosterCSV); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "roster.csv")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func silentLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestExecuteEndToEnd(t *testing.T) {
	outDir := t.TempDir()
	opts := Options{
		Input:     writeRoster(t),
		OutputDir: outDir,
		PlanJSON:  filepath.Join(outDir, "plan.json"),
		Now:       time.Date(2026, time.January, 15, 9, 30, 0, 0, time.UTC),
		Logger:    silentLogger(),
	}

	result, err := NewRunner(silentLogger()).Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.RunID == "" {
		t.Error("RunID is empty")
	}
	if result.Stats.RecordCount != 4 {
		t.Errorf("RecordCount = %d, want 4", result.Stats.RecordCount)
	}
	if got := result.Report.Placed(); got != 3 {
		t.Errorf("Placed() = %d, want 3", got)
	}
	if len(result.Report.Skipped) != 1 {
		t.Fatalf("Skipped = %d, want 1", len(result.Report.Skipped))
	}
	if result.Report.Skipped[0].Record.ID != "1004" {
		t.Errorf("skipped record = %s, want 1004", result.Report.Skipped[0].Record.ID)
	}

	// TIS西日本 maps to division A, the unmapped client falls into other.
	if got := len(result.Tree.Divisions); got != 2 {
		t.Fatalf("divisions = %d, want 2", got)
	}
	if result.Tree.Divisions[0].Key != "A" {
		t.Errorf("first division = %s, want A", result.Tree.Divisions[0].Key)
	}
	if result.Tree.Divisions[1].Key != config.DivisionOther {
		t.Errorf("second division = %s, want %s", result.Tree.Divisions[1].Key, config.DivisionOther)
	}

	if result.Plan == nil || len(result.Plan.Pages) != 1 {
		t.Fatalf("plan pages = %v, want 1 page", result.Plan)
	}
	if got := result.Plan.BlockCount(); got != 2 {
		t.Errorf("BlockCount() = %d, want 2", got)
	}

	if filepath.Base(result.OutputPath) != "構成図_20260115_093000.xlsx" {
		t.Errorf("output path = %s", result.OutputPath)
	}
	if _, err := os.Stat(result.OutputPath); err != nil {
		t.Errorf("workbook not written: %v", err)
	}
	if _, err := os.Stat(opts.PlanJSON); err != nil {
		t.Errorf("plan JSON not written: %v", err)
	}
}

func TestExecuteMissingInput(t *testing.T) {
	_, err := NewRunner(silentLogger()).Execute(context.Background(), Options{})
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if !strings.Contains(err.Error(), "input roster path is required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExecuteInputNotFound(t *testing.T) {
	opts := Options{
		Input:     filepath.Join(t.TempDir(), "missing.csv"),
		OutputDir: t.TempDir(),
		Logger:    silentLogger(),
	}
	if _, err := NewRunner(silentLogger()).Execute(context.Background(), opts); err == nil {
		t.Fatal("expected error for missing roster file")
	}
}

func TestOptionsOverrides(t *testing.T) {
	opts := Options{
		Input:            "roster.csv",
		Title:            "R7年12月",
		ColumnsPerPage:   3,
		MaxRowsPerColumn: 40,
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if opts.Config.Title != "R7年12月" {
		t.Errorf("Title = %q", opts.Config.Title)
	}
	if opts.Config.Layout.ColumnsPerPage != 3 {
		t.Errorf("ColumnsPerPage = %d", opts.Config.Layout.ColumnsPerPage)
	}
	if opts.Config.Layout.MaxRowsPerColumn != 40 {
		t.Errorf("MaxRowsPerColumn = %d", opts.Config.Layout.MaxRowsPerColumn)
	}
	if opts.OutputDir != "." {
		t.Errorf("OutputDir = %q, want .", opts.OutputDir)
	}
}

func TestOptionsDoNotMutateCallerConfig(t *testing.T) {
	shared := config.Default()
	opts := Options{
		Input:            "roster.csv",
		Config:           &shared,
		Title:            "R7年12月",
		ColumnsPerPage:   3,
		MaxRowsPerColumn: 40,
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}

	if opts.Config == &shared {
		t.Fatal("options should own a copy of the configuration")
	}
	if opts.Config.Layout.ColumnsPerPage != 3 || opts.Config.Title != "R7年12月" {
		t.Errorf("overrides not applied: %+v", opts.Config)
	}
	if shared.Title != "" {
		t.Errorf("caller Title mutated to %q", shared.Title)
	}
	if shared.Layout.ColumnsPerPage != 5 || shared.Layout.MaxRowsPerColumn != 90 {
		t.Errorf("caller layout mutated: %+v", shared.Layout)
	}
}

func TestOptionsInvalidOverride(t *testing.T) {
	opts := Options{Input: "roster.csv", ColumnsPerPage: -1}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Fatal("expected validation error for negative columns per page")
	}
}
