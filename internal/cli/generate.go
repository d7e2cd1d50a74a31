package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/myoshida/orgchart/pkg/errors"
	"github.com/myoshida/orgchart/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	input      string // roster CSV path
	configPath string // TOML configuration file
	outputDir  string // workbook output directory
	planJSON   string // optional layout plan JSON path
	encoding   string // roster encoding override
	title      string // sheet title override
	columns    int    // columns per page override
	maxRows    int    // rows per column override
}

// newGenerateCmd creates the generate command.
//
// It runs the full read, build, layout and render pipeline and prints a
// per-division summary of the generated chart.
func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the org chart workbook from a roster CSV",
		Long: `Generate reads an employee roster CSV (Shift_JIS by default), groups
employees into the division/client/customer/project hierarchy, packs the
hierarchy into paginated columns, and writes a timestamped Excel workbook.`,
		Example: `  # Generate from a roster with the built-in configuration
  orgchart generate --input roster.csv

  # Custom configuration and output directory
  orgchart generate --input roster.csv --config orgchart.toml --output-dir out

  # Inspect the computed layout without opening the workbook
  orgchart generate --input roster.csv --plan-json plan.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "roster CSV path (required)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", ".", "directory the workbook is written to")
	cmd.Flags().StringVar(&opts.planJSON, "plan-json", "", "also write the layout plan as JSON to this path")
	cmd.Flags().StringVar(&opts.encoding, "encoding", "", "roster encoding (shift-jis or utf-8)")
	cmd.Flags().StringVar(&opts.title, "title", "", "sheet title (default: current era month, e.g. R8年1月)")
	cmd.Flags().IntVar(&opts.columns, "columns", 0, "columns per page (overrides configuration)")
	cmd.Flags().IntVar(&opts.maxRows, "max-rows", 0, "rows per column (overrides configuration)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// runGenerate executes the pipeline and prints the summary.
func runGenerate(cmd *cobra.Command, opts generateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Input:            opts.input,
		ConfigPath:       opts.configPath,
		OutputDir:        opts.outputDir,
		PlanJSON:         opts.planJSON,
		Encoding:         opts.encoding,
		Title:            opts.title,
		ColumnsPerPage:   opts.columns,
		MaxRowsPerColumn: opts.maxRows,
		Logger:           logger,
	})
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}
	prog.done(fmt.Sprintf("Placed %d employees on %d pages", result.Tree.Headcount(), result.Stats.PageCount))

	printSummary(result)
	return nil
}
