package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/myoshida/orgchart/pkg/config"
	"github.com/myoshida/orgchart/pkg/layout"
	"github.com/myoshida/orgchart/pkg/observability"
	"github.com/myoshida/orgchart/pkg/orgtree"
	"github.com/myoshida/orgchart/pkg/render/xlsx"
	"github.com/myoshida/orgchart/pkg/roster"
)

// Runner executes the generation pipeline.
//
// The Runner is stateless except for the logger - it does not store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to the default logger.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete read → build → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{RunID: newRunID()}
	hooks := observability.Pipeline()
	cfg := *opts.Config

	// Stage 1: Read
	readStart := time.Now()
	hooks.OnReadStart(ctx, opts.Input)
	records, err := roster.ReadFile(ctx, opts.Input, roster.Options{Encoding: roster.Encoding(opts.Encoding)})
	result.Stats.ReadTime = time.Since(readStart)
	hooks.OnReadComplete(ctx, opts.Input, len(records), result.Stats.ReadTime, err)
	if err != nil {
		return nil, err
	}
	result.Stats.RecordCount = len(records)

	opts.Logger.Info("read roster",
		"records", len(records),
		"duration", result.Stats.ReadTime)

	// Stage 2: Build
	buildStart := time.Now()
	hooks.OnBuildStart(ctx, len(records))
	tree, report := orgtree.NewBuilder(cfg).Build(records)
	orgtree.Aggregate(tree)
	orgtree.Sort(tree, cfg)
	result.Tree = tree
	result.Report = report
	result.Stats.BuildTime = time.Since(buildStart)
	hooks.OnBuildComplete(ctx, len(tree.Divisions), len(report.Skipped), result.Stats.BuildTime, nil)

	reader := observability.Reader()
	for _, skipped := range report.Skipped {
		reader.OnRecordSkipped(ctx, skipped.Record.ID, skipped.Reason)
		opts.Logger.Warn("skipped record",
			"employee", skipped.Record.ID,
			"name", skipped.Record.Name,
			"reason", skipped.Reason)
	}

	opts.Logger.Info("built hierarchy",
		"divisions", len(tree.Divisions),
		"customers", tree.CustomerCount(),
		"placed", report.Placed(),
		"skipped", len(report.Skipped),
		"duration", result.Stats.BuildTime)

	// Stage 3: Layout
	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, tree.CustomerCount())
	plan, err := layout.NewEngine(cfg.Layout).Plan(tree)
	result.Stats.LayoutTime = time.Since(layoutStart)
	pageCount := 0
	if plan != nil {
		pageCount = len(plan.Pages)
	}
	hooks.OnLayoutComplete(ctx, pageCount, result.Stats.LayoutTime, err)
	if err != nil {
		return nil, err
	}
	result.Plan = plan
	result.Stats.PageCount = pageCount

	opts.Logger.Info("computed layout",
		"pages", pageCount,
		"blocks", plan.BlockCount(),
		"duration", result.Stats.LayoutTime)

	if opts.PlanJSON != "" {
		if err := layout.ExportJSON(plan, opts.PlanJSON); err != nil {
			return nil, err
		}
		opts.Logger.Info("exported layout plan", "path", opts.PlanJSON)
	}

	// Stage 4: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.OutputDir)
	path, err := r.renderWorkbook(plan, cfg, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, path, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.OutputPath = path

	opts.Logger.Info("wrote workbook",
		"path", path,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderWorkbook renders the plan and saves the workbook under the output
// directory.
func (r *Runner) renderWorkbook(plan *layout.Plan, cfg config.Config, opts Options) (string, error) {
	// Pin the title to the run timestamp so the sheet and the filename
	// agree.
	cfg.Title = xlsx.TitleLabel(cfg, opts.Now)

	f, err := xlsx.Render(plan, cfg)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return xlsx.Save(f, opts.OutputDir, opts.Now)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
