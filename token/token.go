// Package token classifies raw pasm source lines into tokens.
package token

import (
	"fmt"
	"strings"
)

// Kind tells what a source line is.
type Kind int

const (
	End Kind = iota
	Operation
	Comment
	Label
	Directive
	Variable
)

// Sigils that select the kind of a non-empty line.
const (
	CommentSigil   = ';'
	DirectiveSigil = '.'
	LabelSigil     = '#'
	VariableSigil  = '@'
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case End:
		return "End"
	case Operation:
		return "Operation"
	case Comment:
		return "Comment"
	case Label:
		return "Label"
	case Directive:
		return "Directive"
	case Variable:
		return "Variable"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is one classified source line. Text keeps the trimmed line verbatim so
// that later stages can split it again.
type Token struct {
	Kind Kind
	Text string
	Line int // 1-based, 0 when unknown
}

func (t Token) String() string {
	if t.Kind == End {
		return "End of line"
	}

	return fmt.Sprintf("%s: %s", t.Kind, t.Text)
}

// Classify builds the token of a single line.
func Classify(line string) Token {
	text := strings.TrimSpace(line)
	if text == "" {
		return Token{Kind: End}
	}

	switch text[0] {
	case CommentSigil:
		return Token{Kind: Comment, Text: text}
	case DirectiveSigil:
		return Token{Kind: Directive, Text: text}
	case LabelSigil:
		return Token{Kind: Label, Text: text}
	case VariableSigil:
		return Token{Kind: Variable, Text: text}
	default:
		return Token{Kind: Operation, Text: text}
	}
}

// Tokenize classifies every line in order. Exactly one token is produced per
// line.
func Tokenize(lines []string) []Token {
	tokens := make([]Token, 0, len(lines))

	for i, line := range lines {
		tok := Classify(line)
		tok.Line = i + 1
		tokens = append(tokens, tok)
	}

	return tokens
}

// TokenizeText splits source text into lines and tokenizes them.
func TokenizeText(text string) []Token {
	if text == "" {
		return nil
	}

	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	return Tokenize(lines)
}
