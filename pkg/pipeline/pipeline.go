// Package pipeline provides the core generation pipeline for orgchart.
//
// This package implements the complete read → build → layout → render
// pipeline used by the CLI. Centralizing this logic keeps behavior
// consistent across entry points.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Read: Parse employee records from a roster CSV
//  2. Build: Group records into the division/client/customer/project tree,
//     aggregate headcounts and row heights, and sort each level
//  3. Layout: Pack customer blocks into paginated columns
//  4. Render: Write the printable workbook
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Input:     "roster.csv",
//	    OutputDir: "out",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.OutputPath)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/myoshida/orgchart/pkg/config"
	"github.com/myoshida/orgchart/pkg/errors"
	"github.com/myoshida/orgchart/pkg/layout"
	"github.com/myoshida/orgchart/pkg/orgtree"
)

// Options contains all configuration for the generation pipeline.
type Options struct {
	// Input is the path to the roster CSV.
	Input string `json:"input"`

	// Encoding selects the roster's character encoding. Empty means the
	// reader's default (Shift_JIS).
	Encoding string `json:"encoding,omitempty"`

	// ConfigPath points at a TOML configuration file. Empty means the
	// built-in defaults.
	ConfigPath string `json:"config_path,omitempty"`

	// OutputDir is the directory the workbook is written to.
	OutputDir string `json:"output_dir,omitempty"`

	// PlanJSON, when set, additionally writes the layout plan as JSON to
	// this path.
	PlanJSON string `json:"plan_json,omitempty"`

	// Title overrides the sheet title. Empty derives the current
	// Japanese era month.
	Title string `json:"title,omitempty"`

	// ColumnsPerPage and MaxRowsPerColumn override the configured layout
	// bounds when non-zero.
	ColumnsPerPage   int `json:"columns_per_page,omitempty"`
	MaxRowsPerColumn int `json:"max_rows_per_column,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger    `json:"-"`
	Config *config.Config `json:"-"`
	Now    time.Time      `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline execution.
	RunID string

	// Tree is the built hierarchy.
	Tree *orgtree.Tree

	// Report describes which records were placed and which were skipped.
	Report orgtree.Report

	// Plan is the computed column layout.
	Plan *layout.Plan

	// OutputPath is the path of the written workbook.
	OutputPath string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RecordCount int
	PageCount   int
	ReadTime    time.Duration
	BuildTime   time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input roster path is required")
	}

	cfg := config.Default()
	switch {
	case o.Config != nil:
		// Options own their configuration from here on; overrides below
		// must not write through to the caller's value.
		cfg = *o.Config
	case o.ConfigPath != "":
		loaded, err := config.Load(o.ConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	o.Config = &cfg
	if o.Title != "" {
		o.Config.Title = o.Title
	}
	if o.ColumnsPerPage != 0 {
		o.Config.Layout.ColumnsPerPage = o.ColumnsPerPage
	}
	if o.MaxRowsPerColumn != 0 {
		o.Config.Layout.MaxRowsPerColumn = o.MaxRowsPerColumn
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}

	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// newRunID returns an identifier for one pipeline execution.
func newRunID() string {
	return uuid.NewString()
}
