package cpu

// Status is the execution status of the CPU.
// STATUS_OK is the only status in which instructions execute.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_OK                      = Status(0) // ok
	STATUS_HALTED                  = Status(1) // halted
	STATUS_ILLEGAL_INSTRUCTION     = Status(2) // illegal instruction
	STATUS_ILLEGAL_OPERAND         = Status(3) // illegal operand
	STATUS_INVALID_ADDRESS         = Status(4) // invalid address
	STATUS_INVALID_STACK_OPERATION = Status(5) // invalid stack operation
	STATUS_DIV_BY_ZERO             = Status(6) // div by zero
	STATUS_IO_ERROR                = Status(7) // io error
)

var statusErr = [...]error{
	STATUS_OK:                      nil,
	STATUS_HALTED:                  ErrHalted,
	STATUS_ILLEGAL_INSTRUCTION:     ErrIllegalInstruction,
	STATUS_ILLEGAL_OPERAND:         ErrIllegalOperand,
	STATUS_INVALID_ADDRESS:         ErrInvalidAddress,
	STATUS_INVALID_STACK_OPERATION: ErrInvalidStackOperation,
	STATUS_DIV_BY_ZERO:             ErrDivByZero,
	STATUS_IO_ERROR:                ErrIOError,
}

// Terminal returns true for every status other than STATUS_OK.
func (st Status) Terminal() bool {
	return st != STATUS_OK
}

// Err returns the sentinel error for the status, or nil for STATUS_OK.
func (st Status) Err() error {
	if st < 0 || int(st) >= len(statusErr) {
		return ErrStatusUnknown
	}
	return statusErr[st]
}
