package io

import (
	"errors"
	"io"

	"github.com/ezrec/cpu32/translate"
)

var f = translate.From

var (
	// Console errors
	ErrEndOfInput = io.EOF
	ErrNoInput    = errors.New(f("no input attached"))
	ErrNoOutput   = errors.New(f("no output attached"))
)

// ErrNumber reports text that is not a 32-bit decimal integer.
type ErrNumber string

func (err ErrNumber) Error() string {
	return f("'%v' is not a number", string(err))
}
