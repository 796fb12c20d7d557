package core

import (
	"fmt"
	"io"
	"strings"
)

type coreState struct {
	PC        int
	Code      []Instruction
	Variables []Variable

	Results []Value
	Stack   []int64
	Printed []string

	Out     io.Writer
	Drained bool
	Err     error
}

type instEmulator struct {
}

type arithmeticFunc func(a, b int64) (int64, error)

var arithmetic = map[Operation]arithmeticFunc{
	Add: func(a, b int64) (int64, error) { return a + b, nil },
	Sub: func(a, b int64) (int64, error) { return a - b, nil },
	Mul: func(a, b int64) (int64, error) { return a * b, nil },
	Div: func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}

		return a / b, nil
	},
}

// RunInst executes one instruction. The instruction is owned by the call;
// its operands are consumed as they are used.
func (i instEmulator) RunInst(inst Instruction, state *coreState) error {
	instFuncs := map[Operation]func(Instruction, *coreState) error{
		Add:   i.runArithmetic,
		Sub:   i.runArithmetic,
		Mul:   i.runArithmetic,
		Div:   i.runArithmetic,
		Print: i.runPrint,
	}

	instFunc, ok := instFuncs[inst.Operation]
	if !ok {
		return fmt.Errorf("%w: %s at PC %d", ErrInvalidMnemonic, inst.Operation, state.PC)
	}

	return instFunc(inst, state)
}

// runArithmetic pops a then b. When one side is text it names variables, and
// one result is produced per matching variable.
func (i instEmulator) runArithmetic(inst Instruction, state *coreState) error {
	if len(inst.Operands) != 2 {
		return fmt.Errorf("%w: %s expects 2 operands, got %d",
			ErrInvalidOperands, inst.Operation, len(inst.Operands))
	}

	compute := arithmetic[inst.Operation]
	a, _ := inst.popOperand()
	b, _ := inst.popOperand()

	switch {
	case a.IsInteger() && b.IsInteger():
		return i.pushResult(compute, a.Int, b.Int, state)
	case a.IsInteger() && b.IsText():
		for _, v := range lookupVariables(state.Variables, b.Text) {
			bv, err := i.integerOf(v)
			if err != nil {
				return err
			}

			if err := i.pushResult(compute, a.Int, bv, state); err != nil {
				return err
			}
		}
	case a.IsText() && b.IsInteger():
		for _, v := range lookupVariables(state.Variables, a.Text) {
			av, err := i.integerOf(v)
			if err != nil {
				return err
			}

			if err := i.pushResult(compute, av, b.Int, state); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: %s %s %s",
			ErrInvalidOperands, inst.Operation, a, b)
	}

	return nil
}

func (i instEmulator) integerOf(v Variable) (int64, error) {
	if !v.Value.IsInteger() {
		return 0, fmt.Errorf("%w: variable %s holds text %q",
			ErrInvalidOperands, v.Name, v.Value.Text)
	}

	return v.Value.Int, nil
}

func (i instEmulator) pushResult(
	compute arithmeticFunc,
	a, b int64,
	state *coreState,
) error {
	res, err := compute(a, b)
	if err != nil {
		return err
	}

	state.Results = append(state.Results, Integer(res))

	return nil
}

// runPrint writes one line. Text operands that name variables print the
// values of every match; other text prints literally without quotes.
func (i instEmulator) runPrint(inst Instruction, state *coreState) error {
	var pieces []string

	for {
		operand, ok := inst.popOperand()
		if !ok {
			break
		}

		if operand.IsInteger() {
			pieces = append(pieces, operand.String())
			continue
		}

		matches := lookupVariables(state.Variables, operand.Text)
		if len(matches) == 0 {
			pieces = append(pieces, stripQuotes(operand.Text))
			continue
		}

		for _, v := range matches {
			pieces = append(pieces, v.Value.String())
		}
	}

	return i.emitLine(strings.Join(pieces, " "), state)
}

func (i instEmulator) emitLine(line string, state *coreState) error {
	state.Printed = append(state.Printed, line)

	if state.Out == nil {
		return nil
	}

	if _, err := fmt.Fprintln(state.Out, line); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// drain moves every result out of the result queue. Integers go to the stack,
// text is emitted as a line.
func (i instEmulator) drain(state *coreState) error {
	results := state.Results
	state.Results = nil

	for _, r := range results {
		if r.IsInteger() {
			state.Stack = append(state.Stack, r.Int)
			continue
		}

		if err := i.emitLine(stripQuotes(r.Text), state); err != nil {
			return err
		}
	}

	state.Drained = true

	return nil
}
