// Package pkg provides the core libraries for orgchart generation.
//
// # Overview
//
// Orgchart transforms an employee roster into a printable organization
// chart. The pkg directory is organized into five main areas:
//
//  1. [roster] - Roster CSV ingestion
//  2. [orgtree] - Hierarchy construction, aggregation and ordering
//  3. [layout] - Column-flow pagination of customer blocks
//  4. [render/xlsx] - Workbook rendering
//  5. [pipeline] - Orchestration (read → build → layout → render)
//
// # Architecture
//
// The typical data flow through orgchart:
//
//	Roster CSV (Shift_JIS)
//	         ↓
//	    [roster] package (decode employee records)
//	         ↓
//	    [orgtree] package (group, aggregate, sort)
//	         ↓
//	    [layout] package (pack blocks into paginated columns)
//	         ↓
//	    [render/xlsx] package (styled workbook output)
//
// # Quick Start
//
// Run the whole pipeline through [pipeline.Runner]:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:     "roster.csv",
//	    OutputDir: "out",
//	})
//
// Supporting packages: [config] for TOML configuration, [errors] for
// machine-readable error codes, [observability] for instrumentation hooks,
// and [buildinfo] for version metadata.
//
// [roster]: github.com/myoshida/orgchart/pkg/roster
// [orgtree]: github.com/myoshida/orgchart/pkg/orgtree
// [layout]: github.com/myoshida/orgchart/pkg/layout
// [render/xlsx]: github.com/myoshida/orgchart/pkg/render/xlsx
// [pipeline]: github.com/myoshida/orgchart/pkg/pipeline
// [pipeline.Runner]: github.com/myoshida/orgchart/pkg/pipeline#Runner
// [config]: github.com/myoshida/orgchart/pkg/config
// [errors]: github.com/myoshida/orgchart/pkg/errors
// [observability]: github.com/myoshida/orgchart/pkg/observability
// [buildinfo]: github.com/myoshida/orgchart/pkg/buildinfo
package pkg
