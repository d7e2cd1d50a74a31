package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/myoshida/orgchart/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + styleWarning.Render(msg))
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + styleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + styleDim.Render(iconArrow) + " " + styleValue.Render(path))
}

// =============================================================================
// Run Summary
// =============================================================================

// printSummary prints the per-division breakdown of a completed run.
func printSummary(result *pipeline.Result) {
	fmt.Println()
	fmt.Println(styleTitle.Render("Org chart"))

	for _, division := range result.Tree.Divisions {
		fmt.Println("  " + styleValue.Render(fmt.Sprintf("営業%s", division.Key)) +
			styleDim.Render(" · ") +
			styleNumber.Render(fmt.Sprintf("%d", division.Headcount)) + styleDim.Render("名"))
		for _, client := range division.Clients {
			printDetail("%s (%d名, %d顧客)", client.Name, client.Headcount, len(client.Customers))
		}
	}

	printDetail("%d pages · %d columns/page · %d rows/column",
		result.Stats.PageCount, result.Plan.ColumnsPerPage, result.Plan.MaxRowsPerColumn)

	if skipped := len(result.Report.Skipped); skipped > 0 {
		printWarning("%d records skipped", skipped)
		for _, rec := range result.Report.Skipped {
			printDetail("%s %s: %s", rec.Record.ID, rec.Record.Name, rec.Reason)
		}
	}

	printSuccess("Workbook written")
	printFile(result.OutputPath)
}
