package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sarchlab/pasm/token"
)

// LoopMarkers are the directive substrings that open and close the loop
// region.
type LoopMarkers struct {
	Start string
	End   string
}

// DefaultLoopMarkers matches `.loop <count>` ... `.endloop`.
var DefaultLoopMarkers = LoopMarkers{Start: ".loop", End: ".endloop"}

// loopRegion is the single loop of a program after the body has been spliced
// out of the token stream.
type loopRegion struct {
	found bool
	start int // index of the start directive in the remaining tokens
	body  []token.Token
}

func isMarker(tok token.Token, marker string) bool {
	return tok.Kind == token.Directive && strings.Contains(tok.Text, marker)
}

// FindLoop returns the index of the first start marker and of the first end
// marker after it. end is -1 when the start marker is not closed; both are -1
// when there is no loop.
func FindLoop(tokens []token.Token, markers LoopMarkers) (start, end int) {
	start, end = -1, -1

	for i, tok := range tokens {
		if isMarker(tok, markers.Start) {
			start = i
			break
		}
	}

	if start < 0 {
		return start, end
	}

	for i := start + 1; i < len(tokens); i++ {
		if isMarker(tokens[i], markers.End) {
			end = i
			break
		}
	}

	return start, end
}

// IsLoopStart tells whether the token is a directive containing the start
// marker.
func IsLoopStart(tok token.Token, markers LoopMarkers) bool {
	return isMarker(tok, markers.Start)
}

// IsLoopEnd tells whether the token is a directive containing the end marker.
func IsLoopEnd(tok token.Token, markers LoopMarkers) bool {
	return isMarker(tok, markers.End)
}

// MaxLoopCount is the largest repeat count a loop may have.
const MaxLoopCount = 1 << 20

// LoopCount returns the repeat count of a start directive. ok is false when
// the directive has no count, in which case the count is 0.
func LoopCount(directive string) (count int, ok bool) {
	fields := strings.Fields(directive)
	if len(fields) < 2 {
		return 0, false
	}

	for _, f := range fields[1:] {
		n, err := strconv.ParseInt(f, 10, 0)
		if err == nil && n >= 0 {
			return int(n), true
		}
	}

	return 0, false
}

// extractLoop moves every token strictly between the loop markers into the
// loop body. Both markers stay in the returned stream. The body is not
// scanned again, so markers inside it are plain tokens.
func extractLoop(
	tokens []token.Token,
	markers LoopMarkers,
) ([]token.Token, loopRegion, error) {
	start, end := FindLoop(tokens, markers)
	if start < 0 {
		return tokens, loopRegion{}, nil
	}

	if end < 0 {
		return nil, loopRegion{}, fmt.Errorf("line %d: %w",
			tokens[start].Line, ErrMissingLoopEnd)
	}

	body := make([]token.Token, end-start-1)
	copy(body, tokens[start+1:end])

	remaining := make([]token.Token, 0, len(tokens)-len(body))
	remaining = append(remaining, tokens[:start+1]...)
	remaining = append(remaining, tokens[end:]...)

	return remaining, loopRegion{found: true, start: start, body: body}, nil
}

// loopCount returns the repeat count of the start directive, refusing counts
// above MaxLoopCount.
func loopCount(tok token.Token) (int, error) {
	count, _ := LoopCount(tok.Text)
	if count > MaxLoopCount {
		return 0, fmt.Errorf("line %d: %w: %d > %d",
			tok.Line, ErrLoopCountTooLarge, count, MaxLoopCount)
	}

	return count, nil
}

// unroll parses the Operation tokens of the body count times. Every other
// kind of token in the body is dropped.
func (r loopRegion) unroll(count int) ([]Instruction, error) {
	var insts []Instruction

	for i := 0; i < count; i++ {
		for _, tok := range r.body {
			if tok.Kind != token.Operation {
				continue
			}

			inst, err := ParseInstruction(tok.Text)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", tok.Line, err)
			}

			insts = append(insts, inst)
		}
	}

	return insts, nil
}
