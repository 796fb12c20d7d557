// Package verify provides static checks and a verification report for pasm
// programs.
//
// Verification runs in two stages:
//
// 1. Static Lint (lint.go): checks the token stream without executing it
//   - SYNTAX checks: unknown mnemonics
//   - OPERAND checks: arithmetic arity, text/text arithmetic, literal division by zero
//   - LOOP checks: missing end marker, nested or repeated loop markers, missing count
//   - VARIABLE checks: malformed and duplicate declarations, undeclared references
//
// 2. Run (report.go): when lint finds no errors the program is executed on a
// fresh platform and its output stack is recorded.
//
// # Severity
//
// Errors are conditions that abort a run. Warnings are legal programs whose
// behavior is easy to misread, for example a duplicate declaration, which
// makes every reference produce one result per declaration.
//
// # Usage Example
//
//	tokens := token.TokenizeText(src)
//	issues := verify.RunLint(tokens, core.DefaultLoopMarkers)
//	for _, issue := range issues {
//	    log.Printf("[%s/%s] line %d: %s", issue.Severity, issue.Type, issue.Line, issue.Message)
//	}
//
//	report := verify.GenerateReport("prog.pasm", src, core.DefaultLoopMarkers)
//	report.WriteReport(os.Stdout)
package verify

// IssueType categorizes lint issues
type IssueType string

const (
	IssueSyntax   IssueType = "SYNTAX"   // Unknown mnemonic
	IssueOperand  IssueType = "OPERAND"  // Operands an instruction cannot use
	IssueLoop     IssueType = "LOOP"     // Loop region problems
	IssueVariable IssueType = "VARIABLE" // Declaration and reference problems
)

// Severity tells whether an issue aborts a run.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Issue represents a single lint issue
type Issue struct {
	Type     IssueType
	Severity Severity
	Line     int // 1-based source line, 0 if not applicable
	Message  string
	Details  map[string]interface{}
}

// HasErrors tells whether any issue has error severity.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}

	return false
}
