package asm

import (
	"errors"

	"github.com/ezrec/shyasm/translate"
)

var f = translate.From

var (
	// Encoder errors
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrLabelEmpty      = errors.New(f("label has no name"))
	ErrOperandCount    = errors.New(f("wrong number of operands"))
	ErrOperandInvalid  = errors.New(f("operand invalid"))
	ErrDataSyntax      = errors.New(f("data line must be <address> <value>"))
	ErrDataValue       = errors.New(f("data value invalid"))
	ErrInstructionHead = errors.New(f("line must start with a label or command"))
)

// ErrLabelMissing reports a reference to an undefined label.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrParseExpression reports a $(...) expression that is not an integer.
type ErrParseExpression struct {
	Expr string
	Err  error
}

func (err ErrParseExpression) Error() string {
	if err.Err == nil {
		return f("$(%v) is not a valid expression", err.Expr)
	}
	return f("$(%v) is not a valid expression: %v", err.Expr, err.Err)
}

func (err ErrParseExpression) Unwrap() error {
	return err.Err
}

// ErrSyntax locates an error within a section of the source.
type ErrSyntax struct {
	Section SectionID
	LineNo  int
	Line    string
	Err     error
}

func (err ErrSyntax) Error() string {
	return f("%v line %d '%v' %v", err.Section, err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
