package cpu

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{Data: make([]int32, 4)}
	assert.True(s.Empty())
	assert.False(s.Full())

	ok := s.Push(0x12345678)
	assert.True(ok)
	assert.False(s.Empty())
	assert.Equal(1, s.Size)
	assert.Equal(int32(0x12345678), s.Data[3])

	ok = s.Push(-2)
	assert.True(ok)
	assert.Equal(int32(-2), s.Data[2])
}

func TestStack_Push_Full(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{Data: make([]int32, 2)}
	assert.True(s.Push(1))
	assert.True(s.Push(2))
	assert.True(s.Full())

	assert.False(s.Push(3))
	assert.Equal(2, s.Size)
	assert.Equal([]int32{2, 1}, s.Data)

	// No stack region at all.
	s = &Stack{}
	assert.True(s.Full())
	assert.False(s.Push(1))
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{Data: make([]int32, 4)}
	s.Push(0x12345678)
	s.Push(-0x543210ff)

	val, ok := s.Pop()
	assert.True(ok)
	assert.Equal(int32(-0x543210ff), val)
	assert.Equal(1, s.Size)

	// Pop leaves the vacated slot as it was.
	assert.Equal(int32(-0x543210ff), s.Data[2])

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(int32(0x12345678), val)
	assert.Equal(0, s.Size)
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{Data: make([]int32, 4)}
	val, ok := s.Pop()
	assert.False(ok)
	assert.Equal(int32(0), val)
	assert.Equal(0, s.Size)
}

func TestStack_Discard(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{Data: make([]int32, 4)}
	s.Push(10)
	s.Push(20)

	val, ok := s.Discard()
	assert.True(ok)
	assert.Equal(int32(20), val)
	assert.Equal([]int32{0, 0, 0, 10}, s.Data)

	val, ok = s.Discard()
	assert.True(ok)
	assert.Equal(int32(10), val)
	assert.Equal([]int32{0, 0, 0, 0}, s.Data)

	_, ok = s.Discard()
	assert.False(ok)
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{Data: make([]int32, 4)}
	_, ok := s.Peek()
	assert.False(ok)

	s.Push(0x12345678)
	s.Push(0x3bcdef01)

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(int32(0x3bcdef01), val)
	assert.Equal(2, s.Size)
}

func TestStack_Frame(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{Data: make([]int32, 4)}
	s.Push(11)
	s.Push(22)

	table := []struct {
		base   int32
		offset int32
		index  int
		ok     bool
	}{
		{0, 0, 2, true},
		{0, 1, 3, true},
		{1, 0, 3, true},
		{0, -1, 1, true},
		{-2, 0, 0, true},
		{0, 2, 0, false},
		{0, -3, 0, false},
		{0x7fffffff, 0x7fffffff, 0, false},
		{-0x80000000, -0x80000000, 0, false},
	}

	for _, entry := range table {
		index, ok := s.Frame(entry.base, entry.offset)
		assert.Equal(entry.ok, ok, "%d %d", entry.base, entry.offset)
		if entry.ok {
			assert.Equal(entry.index, index, "%d %d", entry.base, entry.offset)
		}
	}
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{Data: []int32{1, 2, 3, 4}, Size: 2}
	s.Reset()
	assert.True(s.Empty())
	assert.Equal([]int32{0, 0, 0, 0}, s.Data)
}

func TestStack_All(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{Data: make([]int32, 4)}
	assert.Empty(slices.Collect(s.All()))

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal([]int32{1, 2, 3}, slices.Collect(s.All()))

	for value := range s.All() {
		assert.Equal(int32(1), value)
		break
	}
}
