// Package io provides the host byte stream used by the cpu32 console
// instructions. Tape reads and writes an io.Reader and io.Writer pair.
package io

// Console is the host side of the in, get, out and put instructions.
type Console interface {
	// ReadInt reads a signed decimal integer, skipping leading white space.
	// Returns ErrEndOfInput if the input ends before any digit.
	ReadInt() (value int32, err error)
	// ReadChar reads a single byte.
	// Returns ErrEndOfInput at the end of the input.
	ReadChar() (value byte, err error)
	// WriteInt writes value in decimal.
	WriteInt(value int32) error
	// WriteChar writes a single byte.
	WriteChar(value byte) error
}
