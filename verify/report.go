package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/pasm/api"
	"github.com/sarchlab/pasm/config"
	"github.com/sarchlab/pasm/core"
	"github.com/sarchlab/pasm/token"
)

// VerificationReport represents a complete verification report
type VerificationReport struct {
	Name       string
	TokenCount int
	LintIssues []Issue
	Errors     []Issue
	Warnings   []Issue

	// Ran is false when lint found errors and the program was not executed.
	Ran    bool
	RunErr error
	Result api.Result
}

// GenerateReport lints the source and, if lint finds no errors, runs it on a
// fresh platform with print output discarded.
func GenerateReport(
	name, src string,
	markers core.LoopMarkers,
) *VerificationReport {
	tokens := token.TokenizeText(src)

	report := &VerificationReport{
		Name:       name,
		TokenCount: len(tokens),
	}

	report.LintIssues = RunLint(tokens, markers)

	for _, issue := range report.LintIssues {
		if issue.Severity == SeverityError {
			report.Errors = append(report.Errors, issue)
		} else {
			report.Warnings = append(report.Warnings, issue)
		}
	}

	if len(report.Errors) > 0 {
		return report
	}

	p := config.MakePlatformBuilder().
		WithOutput(io.Discard).
		WithLoopMarkers(markers).
		Build()

	report.Ran = true
	report.Result, report.RunErr = p.RunSource(src)

	return report
}

// Passed tells whether lint found no errors and the run succeeded.
func (r *VerificationReport) Passed() bool {
	return len(r.Errors) == 0 && r.Ran && r.RunErr == nil
}

// WriteReport writes a formatted report to a writer
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "VERIFICATION REPORT: %s\n", r.Name)
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "%d lines tokenized\n", r.TokenCount)

	fmt.Fprintln(w, "\nSTAGE 1: STATIC LINT CHECKS")

	if len(r.LintIssues) == 0 {
		fmt.Fprintln(w, "No lint issues found")
	} else {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetTitle("Lint Issues")
		t.AppendHeader(table.Row{"Line", "Severity", "Type", "Message"})

		for _, issue := range r.LintIssues {
			t.AppendRow(table.Row{
				issue.Line, issue.Severity, issue.Type, issue.Message,
			})
		}

		t.Render()
	}

	fmt.Fprintln(w, "\nSTAGE 2: RUN")

	switch {
	case !r.Ran:
		fmt.Fprintf(w, "Skipped: %d lint errors\n", len(r.Errors))
	case r.RunErr != nil:
		fmt.Fprintf(w, "Run failed: %v\n", r.RunErr)
	default:
		fmt.Fprintf(w, "Run completed, stack %v\n", r.Result.Stack)
	}

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintf(w, "Lint: %d errors, %d warnings\n", len(r.Errors), len(r.Warnings))

	if r.Passed() {
		fmt.Fprintln(w, "PASSED")
	} else {
		fmt.Fprintln(w, "FAILED")
	}
}

// SaveReportToFile saves the report to a file
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)

	return nil
}
