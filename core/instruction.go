package core

import (
	"fmt"
	"strings"
)

// Operation is what an instruction does.
type Operation int

const (
	Add Operation = iota
	Sub
	Mul
	Div
	Print
)

var mnemonics = map[string]Operation{
	"add":   Add,
	"sub":   Sub,
	"mul":   Mul,
	"div":   Div,
	"print": Print,
}

// ParseOperation maps a mnemonic to its operation.
func ParseOperation(mnemonic string) (Operation, error) {
	op, ok := mnemonics[mnemonic]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMnemonic, mnemonic)
	}

	return op, nil
}

// Mnemonics lists every accepted mnemonic in operation order.
func Mnemonics() []string {
	return []string{Add.String(), Sub.String(), Mul.String(), Div.String(), Print.String()}
}

// String returns the canonical lowercase mnemonic.
func (o Operation) String() string {
	switch o {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case Div:
		return "div"
	case Print:
		return "print"
	default:
		return fmt.Sprintf("Operation(%d)", int(o))
	}
}

// IsArithmetic tells whether the operation takes exactly two operands and
// produces a result.
func (o Operation) IsArithmetic() bool {
	return o == Add || o == Sub || o == Mul || o == Div
}

// Instruction is an operation with its operands in source order.
type Instruction struct {
	Operation Operation
	Operands  []Value
}

// ParseInstruction splits an operation line on whitespace. The first word is
// the mnemonic and every other word becomes an operand. Text operands keep
// their quote characters.
func ParseInstruction(text string) (Instruction, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return Instruction{}, fmt.Errorf("%w: empty operation", ErrInvalidMnemonic)
	}

	op, err := ParseOperation(words[0])
	if err != nil {
		return Instruction{}, err
	}

	inst := Instruction{Operation: op}
	for _, w := range words[1:] {
		inst.Operands = append(inst.Operands, ParseValue(w))
	}

	return inst, nil
}

// popOperand removes and returns the first operand.
func (i *Instruction) popOperand() (Value, bool) {
	if len(i.Operands) == 0 {
		return Value{}, false
	}

	v := i.Operands[0]
	i.Operands = i.Operands[1:]

	return v, true
}

func (i Instruction) String() string {
	parts := make([]string, 0, len(i.Operands)+1)
	parts = append(parts, i.Operation.String())
	for _, o := range i.Operands {
		parts = append(parts, o.String())
	}

	return strings.Join(parts, " ")
}
