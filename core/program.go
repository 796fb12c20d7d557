package core

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sarchlab/pasm/token"
)

// Program is the assembled form of a source file. Declarations are the raw
// `name value` texts of variable lines, in declaration order; they are
// resolved when the program is mapped to a core.
type Program struct {
	Instructions []Instruction
	Declarations []string
}

type buildConfig struct {
	markers LoopMarkers
}

// A BuildOption changes how BuildProgram reads tokens.
type BuildOption func(*buildConfig)

// WithLoopMarkers replaces the default `.loop` / `.endloop` markers.
func WithLoopMarkers(markers LoopMarkers) BuildOption {
	return func(c *buildConfig) {
		c.markers = markers
	}
}

// BuildProgram turns tokens into instructions and pending declarations. The
// loop region, if any, is unrolled in place of its start directive.
func BuildProgram(tokens []token.Token, opts ...BuildOption) (Program, error) {
	cfg := buildConfig{markers: DefaultLoopMarkers}
	for _, opt := range opts {
		opt(&cfg)
	}

	tokens, loop, err := extractLoop(tokens, cfg.markers)
	if err != nil {
		return Program{}, err
	}

	prog := Program{}

	for i, tok := range tokens {
		switch tok.Kind {
		case token.Operation:
			inst, err := ParseInstruction(tok.Text)
			if err != nil {
				return Program{}, fmt.Errorf("line %d: %w", tok.Line, err)
			}

			prog.Instructions = append(prog.Instructions, inst)
		case token.Variable:
			prog.Declarations = append(prog.Declarations,
				strings.TrimPrefix(tok.Text, string(token.VariableSigil)))
		case token.Label:
			logLabel(tok)
		case token.Directive:
			if loop.found && i == loop.start {
				count, err := loopCount(tok)
				if err != nil {
					return Program{}, err
				}

				slog.Debug("Loop", "Line", tok.Line, "Count", count, "Body", len(loop.body))

				insts, err := loop.unroll(count)
				if err != nil {
					return Program{}, err
				}

				prog.Instructions = append(prog.Instructions, insts...)

				continue
			}

			logDirective(tok)
		}
	}

	return prog, nil
}

func logLabel(tok token.Token) {
	switch tok.Text {
	case "#data":
		slog.Debug("Data section", "Line", tok.Line)
	case "#code":
		slog.Debug("Code section", "Line", tok.Line)
	default:
		slog.Debug("Label", "Line", tok.Line, "Text", tok.Text)
	}
}

func logDirective(tok token.Token) {
	switch tok.Text {
	case ".main":
		slog.Debug("Main program", "Line", tok.Line)
	case ".end":
		slog.Debug("End of program", "Line", tok.Line)
	default:
		slog.Debug("Directive", "Line", tok.Line, "Text", tok.Text)
	}
}

// Variables resolves the declarations of the program.
func (p Program) Variables() ([]Variable, error) {
	return ResolveVariables(p.Declarations)
}
