package io

import (
	"errors"
	"io"
	"strconv"
)

// Tape provides sequential console I/O over an io.Reader for input and an
// io.Writer for output. Input is read one byte at a time, so nothing past
// the last consumed value is taken from the reader.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	hasInput  bool
	lastInput byte
}

var _ Console = (*Tape)(nil)

// Rewind drops any byte held back from the last ReadInt.
// The underlying streams can not be rewound.
func (tc *Tape) Rewind() {
	tc.hasInput = false
}

// readByte returns the next input byte.
func (tc *Tape) readByte() (value byte, err error) {
	if tc.hasInput {
		tc.hasInput = false
		value = tc.lastInput
		return
	}

	if tc.Input == nil {
		err = ErrNoInput
		return
	}

	var one [1]byte
	for {
		var n int
		n, err = tc.Input.Read(one[:])
		if n == 1 {
			value = one[0]
			err = nil
			return
		}
		if err != nil {
			return
		}
	}
}

// unreadByte holds back a byte for the next read.
func (tc *Tape) unreadByte(value byte) {
	tc.lastInput = value
	tc.hasInput = true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// ReadChar reads a single byte.
func (tc *Tape) ReadChar() (value byte, err error) {
	return tc.readByte()
}

// ReadInt reads an optionally signed decimal integer, after skipping
// leading white space. The byte following the number is held back.
func (tc *Tape) ReadInt() (value int32, err error) {
	var c byte
	for {
		c, err = tc.readByte()
		if err != nil {
			return
		}
		if !isSpace(c) {
			break
		}
	}

	var text []byte
	if c == '+' || c == '-' {
		text = append(text, c)
		c, err = tc.readByte()
		if errors.Is(err, io.EOF) {
			err = ErrNumber(text)
		}
		if err != nil {
			return
		}
	}

	digits := 0
	for {
		if c < '0' || c > '9' {
			tc.unreadByte(c)
			break
		}
		text = append(text, c)
		digits++

		c, err = tc.readByte()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			return
		}
	}

	if digits == 0 {
		err = ErrNumber(text)
		return
	}

	v64, err := strconv.ParseInt(string(text), 10, 32)
	if err != nil {
		err = ErrNumber(text)
		return
	}

	value = int32(v64)
	return
}

// WriteInt writes value in decimal.
func (tc *Tape) WriteInt(value int32) (err error) {
	if tc.Output == nil {
		err = ErrNoOutput
		return
	}

	_, err = io.WriteString(tc.Output, strconv.FormatInt(int64(value), 10))
	return
}

// WriteChar writes a single byte.
func (tc *Tape) WriteChar(value byte) (err error) {
	if tc.Output == nil {
		err = ErrNoOutput
		return
	}

	_, err = tc.Output.Write([]byte{value})
	return
}
