package debugs

import (
	"github.com/reusee/turing/runs"
	"github.com/reusee/turing/views"
)

// ReportGlobals exposes a finished run to starlark.
func ReportGlobals(report *runs.Report, blank string) map[string]any {
	return map[string]any{
		"report": report,
		"output": report.Output,
		"tape":   report.Tape,
		"state":  report.State,
		"cursor": report.Cursor,
		"steps":  report.Steps,
		"render": func() string {
			return views.RenderTape(report.Tape, report.Cursor, blank)
		},
	}
}
