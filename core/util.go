package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	LevelTrace slog.Level = slog.LevelInfo + 1
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// PrintProgram renders the instructions and variables of a program.
func PrintProgram(w io.Writer, prog Program) error {
	vars, err := prog.Variables()
	if err != nil {
		return err
	}

	instTable := table.NewWriter()
	instTable.SetTitle("Instructions")
	instTable.AppendHeader(table.Row{"#", "Op", "Operands"})

	for i, inst := range prog.Instructions {
		instTable.AppendRow(table.Row{i, inst.Operation, operandList(inst.Operands)})
	}

	fmt.Fprintln(w, instTable.Render())
	fmt.Fprintln(w)

	fmt.Fprintln(w, renderVariables(vars))

	return nil
}

func renderVariables(vars []Variable) string {
	varTable := table.NewWriter()
	varTable.SetTitle("Variables")
	varTable.AppendHeader(table.Row{"#", "Name", "Kind", "Value"})

	for i, v := range vars {
		kind := "Integer"
		if v.Value.IsText() {
			kind = "Text"
		}
		varTable.AppendRow(table.Row{i, v.Name, kind, v.Value.String()})
	}

	return varTable.Render()
}

func operandList(operands []Value) string {
	s := ""
	for i, o := range operands {
		if i > 0 {
			s += " "
		}
		if o.IsText() {
			s += fmt.Sprintf("%q", o.Text)
		} else {
			s += o.String()
		}
	}

	return s
}

// PrintState renders what is left in the core: pending instructions, the
// result queue and the output stack.
func (c *Core) PrintState(w io.Writer) {
	state := &c.state

	fmt.Fprintf(w, "==============State@%s PC=%d==============\n", c.Name(), state.PC)

	codeTable := table.NewWriter()
	codeTable.SetTitle("Pending Instructions")
	codeTable.AppendHeader(table.Row{"#", "Inst"})
	codeTable.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMin: 24},
	})
	for i, inst := range state.Code {
		codeTable.AppendRow(table.Row{state.PC + i, inst.String()})
	}
	fmt.Fprintln(w, codeTable.Render())

	fmt.Fprintln(w, renderVariables(state.Variables))

	stackTable := table.NewWriter()
	stackTable.SetTitle("Results / Stack")
	stackTable.AppendHeader(table.Row{"Queue", "Results", "Stack"})
	stackTable.AppendRow(table.Row{"Values", operandList(state.Results), fmt.Sprint(state.Stack)})
	fmt.Fprintln(w, stackTable.Render())

	fmt.Fprintln(w, "================================================")
}

func LogState(state *coreState) {
	slog.Debug("StateCheckpoint",
		"PC", state.PC,
		"Pending", len(state.Code),
		"Variables", len(state.Variables),
		"Results", len(state.Results),
		"Stack", state.Stack,
		"Printed", len(state.Printed),
	)
}
