package cpu

import (
	"bufio"
	"errors"
	"io"
	"slices"
)

const (
	MEMORY_CHUNK   = 1024    // Memory is allocated in chunks of this many words.
	MEMORY_LIMIT   = 1 << 24 // Maximum memory size, in words.
	STACK_CAPACITY = 256     // Default stack capacity, in words.
)

// Memory is the word buffer of a loaded program.
// The program occupies the leading words, the stack the trailing
// StackCapacity words. Everything in between is zero.
type Memory struct {
	Words         []int32 // Program words, zero fill, then the stack region.
	Program       int     // Count of program words.
	StackCapacity int     // Stack region size, in words.
}

// StackBottom returns the index of the last word of memory.
func (mem *Memory) StackBottom() int {
	return len(mem.Words) - 1
}

// StackLimit returns the index of the last word below the stack region.
func (mem *Memory) StackLimit() int {
	return mem.StackBottom() - mem.StackCapacity
}

// memorySize returns the buffer size, in words, for a program and its stack.
// The program is always followed by at least one word, and the buffer
// grows in whole chunks until the stack fits behind the program.
func memorySize(program int, stackCapacity int) (size int) {
	size = (program/MEMORY_CHUNK + 1) * MEMORY_CHUNK
	need := program + stackCapacity
	if size < need {
		size = ((need + MEMORY_CHUNK - 1) / MEMORY_CHUNK) * MEMORY_CHUNK
	}
	return
}

// NewMemory builds the memory for an already decoded program.
func NewMemory(program []int32, stackCapacity int) (mem *Memory, err error) {
	if stackCapacity < 0 || stackCapacity > MEMORY_LIMIT || len(program) > MEMORY_LIMIT {
		err = ErrAllocation
		return
	}

	size := memorySize(len(program), stackCapacity)
	if size > MEMORY_LIMIT {
		err = ErrAllocation
		return
	}

	words := make([]int32, size)
	copy(words, program)

	mem = &Memory{
		Words:         words,
		Program:       len(program),
		StackCapacity: stackCapacity,
	}

	return
}

// LoadMemory reads a binary program and allocates its memory.
//
// The stream is consumed one byte at a time; each group of four bytes
// becomes one word, least significant byte first. A stream whose length
// is not a whole number of words is rejected with ErrFormat, and no
// memory is returned on any error.
func LoadMemory(r io.Reader, stackCapacity int) (mem *Memory, err error) {
	if stackCapacity < 0 || stackCapacity > MEMORY_LIMIT {
		err = ErrAllocation
		return
	}

	in := bufio.NewReader(r)

	program := make([]int32, 0, MEMORY_CHUNK)
	var word uint32
	var count int
	for {
		var value byte
		value, err = in.ReadByte()
		count++
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			err = ErrLoad{Offset: count - 1, Err: err}
			return
		}

		word |= uint32(value) << (8 * ((count - 1) % 4))
		if count%4 != 0 {
			continue
		}

		if len(program) == cap(program) {
			if len(program)+MEMORY_CHUNK > MEMORY_LIMIT {
				err = ErrAllocation
				return
			}
			program = slices.Grow(program, MEMORY_CHUNK)
		}
		program = append(program, int32(word))
		word = 0
	}

	// The end-of-stream read is counted, so a whole number of
	// words leaves exactly one extra byte.
	if count%4 != 1 {
		err = ErrFormat
		return
	}

	return NewMemory(program, stackCapacity)
}
