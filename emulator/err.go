package emulator

import (
	"errors"

	"github.com/ezrec/cpu32/translate"
)

var f = translate.From

var (
	ErrNotLoaded = errors.New(f("no program loaded"))
	ErrWatch     = errors.New(f("watch expression triggered"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip  int32
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("ip %d %v", err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrWatchExpression reports a watch expression that can not be used.
type ErrWatchExpression struct {
	Expr string
	Err  error
}

func (err *ErrWatchExpression) Error() string {
	return f("watch '%v' %v", err.Expr, err.Err)
}

func (err *ErrWatchExpression) Unwrap() error {
	return err.Err
}
