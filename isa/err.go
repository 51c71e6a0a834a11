package isa

import (
	"github.com/ezrec/shyasm/translate"
)

var f = translate.From

// Kind enumerates the closed set of core error kinds.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_ALLOCATION         = Kind(0) // allocation failure
	KIND_INVALID_ADDRESS    = Kind(1) // invalid address
	KIND_INVALID_TYPE       = Kind(2) // invalid type
	KIND_REGISTER_NOT_FOUND = Kind(3) // register not found
	KIND_UNKNOWN_COMMAND    = Kind(4) // unknown command
	KIND_OVERFLOW           = Kind(5) // overflow
	KIND_INVALID_OPERATION  = Kind(6) // invalid operation
)

// Error is implemented only by the error types of this package.
type Error interface {
	error
	Kind() Kind
	isaError()
}

// ErrAllocation reports a resource that could not be created.
type ErrAllocation struct {
	Message string
}

func (err ErrAllocation) Error() string {
	return f("%v: %v", KIND_ALLOCATION, err.Message)
}

func (ErrAllocation) Kind() Kind { return KIND_ALLOCATION }
func (ErrAllocation) isaError()  {}

// ErrInvalidAddress reports a raw address that cannot be accessed.
type ErrInvalidAddress struct {
	Message string
	Raw     uint32
}

func (err ErrInvalidAddress) Error() string {
	return f("%v 0x%08x: %v", KIND_INVALID_ADDRESS, err.Raw, err.Message)
}

func (ErrInvalidAddress) Kind() Kind { return KIND_INVALID_ADDRESS }
func (ErrInvalidAddress) isaError()  {}

// ErrInvalidType reports a classification mismatch. Type names the kind
// that was actually found.
type ErrInvalidType struct {
	Message string
	Type    string
}

func (err ErrInvalidType) Error() string {
	return f("%v %v: %v", KIND_INVALID_TYPE, err.Type, err.Message)
}

func (ErrInvalidType) Kind() Kind { return KIND_INVALID_TYPE }
func (ErrInvalidType) isaError()  {}

// ErrRegisterNotFound reports a Register region offset with no register.
type ErrRegisterNotFound struct {
	Message string
	Offset  uint32
}

func (err ErrRegisterNotFound) Error() string {
	return f("%v 0x%02x: %v", KIND_REGISTER_NOT_FOUND, err.Offset, err.Message)
}

func (ErrRegisterNotFound) Kind() Kind { return KIND_REGISTER_NOT_FOUND }
func (ErrRegisterNotFound) isaError()  {}

// ErrUnknownCommand reports a mnemonic absent from the command table.
type ErrUnknownCommand struct {
	Message  string
	Mnemonic string
}

func (err ErrUnknownCommand) Error() string {
	return f("%v '%v': %v", KIND_UNKNOWN_COMMAND, err.Mnemonic, err.Message)
}

func (ErrUnknownCommand) Kind() Kind { return KIND_UNKNOWN_COMMAND }
func (ErrUnknownCommand) isaError()  {}

// ErrOverflow reports a value or cursor past its limit.
type ErrOverflow struct {
	Message string
}

func (err ErrOverflow) Error() string {
	return f("%v: %v", KIND_OVERFLOW, err.Message)
}

func (ErrOverflow) Kind() Kind { return KIND_OVERFLOW }
func (ErrOverflow) isaError()  {}

// ErrInvalidOperation reports an operation the value's type does not support.
type ErrInvalidOperation struct {
	Message string
	Type    string
}

func (err ErrInvalidOperation) Error() string {
	return f("%v on %v: %v", KIND_INVALID_OPERATION, err.Type, err.Message)
}

func (ErrInvalidOperation) Kind() Kind { return KIND_INVALID_OPERATION }
func (ErrInvalidOperation) isaError()  {}
