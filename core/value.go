package core

import (
	"strconv"
	"strings"
)

// ValueKind tells which field of a Value is meaningful.
type ValueKind int

const (
	IntegerValue ValueKind = iota
	TextValue
)

// Value is either a 64-bit signed integer or a piece of text. It is used both
// as an instruction operand and as an execution result.
type Value struct {
	Kind ValueKind
	Int  int64
	Text string
}

// Integer wraps an int64.
func Integer(i int64) Value {
	return Value{Kind: IntegerValue, Int: i}
}

// Text wraps a string.
func Text(s string) Value {
	return Value{Kind: TextValue, Text: s}
}

// ParseValue returns an Integer if the word parses as a base-10 int64, and a
// Text holding the raw word otherwise.
func ParseValue(word string) Value {
	if i, err := strconv.ParseInt(word, 10, 64); err == nil {
		return Integer(i)
	}

	return Text(word)
}

func (v Value) IsInteger() bool {
	return v.Kind == IntegerValue
}

func (v Value) IsText() bool {
	return v.Kind == TextValue
}

// String renders integers in decimal and text as-is.
func (v Value) String() string {
	if v.IsInteger() {
		return strconv.FormatInt(v.Int, 10)
	}

	return v.Text
}

func stripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}
