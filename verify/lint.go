package verify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sarchlab/pasm/core"
	"github.com/sarchlab/pasm/token"
)

// RunLint performs static lint checks on a tokenized program. The checks
// follow what the builder and the executor do with the same tokens, so an
// error-free result means the program assembles and its literal operands are
// usable. Returns a list of issues found, or empty list if no issues.
func RunLint(tokens []token.Token, markers core.LoopMarkers) []Issue {
	var issues []Issue

	start, end := core.FindLoop(tokens, markers)
	issues = append(issues, checkLoop(tokens, markers, start, end)...)

	inBody := func(i int) bool {
		return start >= 0 && end >= 0 && i > start && i < end
	}

	// A body repeated zero times is never assembled.
	skipBody := false
	if start >= 0 && end >= 0 {
		count, _ := core.LoopCount(tokens[start].Text)
		skipBody = count == 0
	}

	vars := make(map[string][]core.Value)
	for i, tok := range tokens {
		if tok.Kind != token.Variable || inBody(i) {
			continue
		}

		issues = append(issues, checkDeclaration(tok, vars)...)
	}

	for i, tok := range tokens {
		if tok.Kind != token.Operation || (skipBody && inBody(i)) {
			continue
		}

		issues = append(issues, checkOperation(tok, vars, inBody(i))...)
	}

	return issues
}

func checkLoop(
	tokens []token.Token,
	markers core.LoopMarkers,
	start, end int,
) []Issue {
	var issues []Issue

	if start < 0 {
		for _, tok := range tokens {
			if core.IsLoopEnd(tok, markers) {
				issues = append(issues, Issue{
					Type:     IssueLoop,
					Severity: SeverityWarning,
					Line:     tok.Line,
					Message:  fmt.Sprintf("%s without %s is ignored", tok.Text, markers.Start),
				})
			}
		}

		return issues
	}

	startTok := tokens[start]

	if end < 0 {
		return append(issues, Issue{
			Type:     IssueLoop,
			Severity: SeverityError,
			Line:     startTok.Line,
			Message:  fmt.Sprintf("%s has no matching %s", startTok.Text, markers.End),
		})
	}

	count, ok := core.LoopCount(startTok.Text)

	switch {
	case !ok:
		issues = append(issues, Issue{
			Type:     IssueLoop,
			Severity: SeverityWarning,
			Line:     startTok.Line,
			Message:  fmt.Sprintf("%s has no count; the body repeats zero times", startTok.Text),
		})
	case count > core.MaxLoopCount:
		issues = append(issues, Issue{
			Type:     IssueLoop,
			Severity: SeverityError,
			Line:     startTok.Line,
			Message:  fmt.Sprintf("loop count %d exceeds %d", count, core.MaxLoopCount),
			Details:  map[string]interface{}{"count": count},
		})
	}

	for i := start + 1; i < end; i++ {
		tok := tokens[i]

		switch {
		case core.IsLoopStart(tok, markers):
			issues = append(issues, Issue{
				Type:     IssueLoop,
				Severity: SeverityWarning,
				Line:     tok.Line,
				Message:  "nested loops are not supported; the inner marker is ignored",
				Details:  map[string]interface{}{"outer": startTok.Line},
			})
		case tok.Kind == token.Label, tok.Kind == token.Directive, tok.Kind == token.Variable:
			issues = append(issues, Issue{
				Type:     IssueLoop,
				Severity: SeverityWarning,
				Line:     tok.Line,
				Message:  fmt.Sprintf("%s inside the loop body is dropped", tok.Kind),
				Details:  map[string]interface{}{"text": tok.Text},
			})
		}
	}

	for i := end + 1; i < len(tokens); i++ {
		if core.IsLoopStart(tokens[i], markers) {
			issues = append(issues, Issue{
				Type:     IssueLoop,
				Severity: SeverityWarning,
				Line:     tokens[i].Line,
				Message:  "only the first loop region is unrolled; this marker is ignored",
				Details:  map[string]interface{}{"first": startTok.Line},
			})
		}
	}

	return issues
}

func checkDeclaration(tok token.Token, vars map[string][]core.Value) []Issue {
	decl := strings.TrimPrefix(tok.Text, string(token.VariableSigil))

	resolved, err := core.ResolveVariables([]string{decl})
	if err != nil {
		return []Issue{{
			Type:     IssueVariable,
			Severity: SeverityError,
			Line:     tok.Line,
			Message:  err.Error(),
		}}
	}

	v := resolved[0]

	var issues []Issue
	if prev, ok := vars[v.Name]; ok {
		issues = append(issues, Issue{
			Type:     IssueVariable,
			Severity: SeverityWarning,
			Line:     tok.Line,
			Message: fmt.Sprintf(
				"%s is declared %d times; every declaration contributes to each reference",
				v.Name, len(prev)+1),
		})
	}

	vars[v.Name] = append(vars[v.Name], v.Value)

	return issues
}

func checkOperation(
	tok token.Token,
	vars map[string][]core.Value,
	inLoop bool,
) []Issue {
	inst, err := core.ParseInstruction(tok.Text)
	if err != nil {
		issue := Issue{
			Type:     IssueSyntax,
			Severity: SeverityError,
			Line:     tok.Line,
			Message:  err.Error(),
			Details:  map[string]interface{}{"loop": inLoop},
		}

		mnemonic := strings.Fields(tok.Text)[0]
		if s := findClosestMnemonic(mnemonic); s != "" {
			issue.Message += fmt.Sprintf("; did you mean %q?", s)
			issue.Details["suggestion"] = s
		}

		return []Issue{issue}
	}

	if !inst.Operation.IsArithmetic() {
		return nil
	}

	if len(inst.Operands) != 2 {
		return []Issue{{
			Type:     IssueOperand,
			Severity: SeverityError,
			Line:     tok.Line,
			Message: fmt.Sprintf("%s expects 2 operands, got %d",
				inst.Operation, len(inst.Operands)),
		}}
	}

	a, b := inst.Operands[0], inst.Operands[1]

	if a.IsText() && b.IsText() {
		return []Issue{{
			Type:     IssueOperand,
			Severity: SeverityError,
			Line:     tok.Line,
			Message:  fmt.Sprintf("%s cannot combine two text operands", inst.Operation),
		}}
	}

	var issues []Issue
	divisors := []core.Value{b}

	for _, operand := range []core.Value{a, b} {
		if operand.IsInteger() {
			continue
		}

		values, ok := vars[operand.Text]
		if !ok {
			issues = append(issues, Issue{
				Type:     IssueVariable,
				Severity: SeverityWarning,
				Line:     tok.Line,
				Message:  fmt.Sprintf("%s is not declared; the instruction yields no result", operand.Text),
			})

			continue
		}

		for _, v := range values {
			if v.IsText() {
				issues = append(issues, Issue{
					Type:     IssueOperand,
					Severity: SeverityError,
					Line:     tok.Line,
					Message:  fmt.Sprintf("%s holds text and cannot be used by %s", operand.Text, inst.Operation),
				})
			}
		}

		if operand == b {
			divisors = values
		}
	}

	if inst.Operation == core.Div {
		for _, d := range divisors {
			if d.IsInteger() && d.Int == 0 {
				issues = append(issues, Issue{
					Type:     IssueOperand,
					Severity: SeverityError,
					Line:     tok.Line,
					Message:  "division by zero",
				})

				break
			}
		}
	}

	return issues
}

// findClosestMnemonic finds the closest mnemonic using fuzzy matching
func findClosestMnemonic(target string) string {
	ranks := fuzzy.RankFindFold(target, core.Mnemonics())
	if len(ranks) == 0 {
		return ""
	}

	sort.Sort(ranks)

	return ranks[0].Target
}
