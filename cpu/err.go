package cpu

import (
	"errors"

	"github.com/ezrec/cpu32/translate"
)

var f = translate.From

var (
	// Status errors
	ErrHalted                = errors.New(f("halted"))
	ErrIllegalInstruction    = errors.New(f("illegal instruction"))
	ErrIllegalOperand        = errors.New(f("illegal operand"))
	ErrInvalidAddress        = errors.New(f("invalid address"))
	ErrInvalidStackOperation = errors.New(f("invalid stack operation"))
	ErrDivByZero             = errors.New(f("division by zero"))
	ErrIOError               = errors.New(f("i/o error"))
	ErrStatusUnknown         = errors.New(f("status unknown"))

	// Lifecycle errors
	ErrDestroyed = errors.New(f("cpu destroyed"))

	// Loader errors
	ErrFormat     = errors.New(f("binary file corrupted"))
	ErrAllocation = errors.New(f("allocation error"))

	// Configuration errors
	ErrInstructionSet = errors.New(f("instruction set unknown"))
)

// ErrOpcode identifies the instruction that moved the CPU out of STATUS_OK.
type ErrOpcode struct {
	Ip int32
	Op Op
}

func (eo ErrOpcode) Error() string {
	return f("ip 0x%04x op %v", uint32(eo.Ip), eo.Op.String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrLoad reports a read failure while loading a binary, with the byte offset.
type ErrLoad struct {
	Offset int
	Err    error
}

func (err ErrLoad) Error() string {
	return f("offset %v %v", err.Offset, err.Err)
}

func (err ErrLoad) Unwrap() error {
	return err.Err
}
