package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMnemonic is returned when an operation line starts with an
	// unknown mnemonic.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrInvalidOperands is returned when an arithmetic instruction does not
	// have exactly two operands, or has operands that cannot be combined.
	ErrInvalidOperands = errors.New("invalid operands")

	// ErrDivisionByZero is returned by div with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrMissingLoopEnd is returned when a loop start marker has no matching
	// end marker after it.
	ErrMissingLoopEnd = errors.New("loop start without loop end")

	// ErrLoopCountTooLarge is returned when a loop count exceeds
	// MaxLoopCount.
	ErrLoopCountTooLarge = errors.New("loop count too large")

	// ErrMalformedDeclaration is returned for a variable declaration without a
	// name.
	ErrMalformedDeclaration = errors.New("malformed variable declaration")
)

// ExecError reports the instruction that aborted a run.
type ExecError struct {
	Index       int
	Instruction Instruction
	Err         error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("instruction %d (%s): %v", e.Index, e.Instruction, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
