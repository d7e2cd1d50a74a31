// Package render groups the output backends for computed layouts.
//
// # Overview
//
// A layout plan describes pages of columns filled with client segments and
// customer blocks; the subpackages here materialize a plan into concrete
// artifacts:
//
//   - [xlsx]: The printable Excel workbook, styled for A4 landscape output
//
// The workbook renderer works in two passes per segment. A text pass writes
// cell values and records each cell's font and alignment, then a border pass
// draws the segment box and rules, combining the recorded text styling with
// the border of every cell into one style.
//
//	f, err := xlsx.Render(plan, cfg)
//	path, err := xlsx.Save(f, "out", time.Now())
//
// [xlsx]: github.com/myoshida/orgchart/pkg/render/xlsx
package render
