package cpu

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestLoadMemory(t *testing.T) {
	assert := assert.New(t)

	data := []byte{
		0x01, 0x02, 0x03, 0x04,
		0xff, 0xff, 0xff, 0xff,
		0x00, 0x00, 0x00, 0x80,
	}

	mem, err := LoadMemory(bytes.NewReader(data), 16)
	if !assert.NoError(err) {
		return
	}

	assert.Equal(3, mem.Program)
	assert.Equal(16, mem.StackCapacity)
	assert.Equal(MEMORY_CHUNK, len(mem.Words))
	assert.Equal([]int32{0x04030201, -1, -0x80000000}, mem.Words[:3])
	assert.Equal(make([]int32, MEMORY_CHUNK-3), mem.Words[3:])
	assert.Equal(MEMORY_CHUNK-1, mem.StackBottom())
	assert.Equal(MEMORY_CHUNK-17, mem.StackLimit())
}

func TestLoadMemory_Empty(t *testing.T) {
	assert := assert.New(t)

	mem, err := LoadMemory(bytes.NewReader(nil), STACK_CAPACITY)
	if !assert.NoError(err) {
		return
	}

	assert.Equal(0, mem.Program)
	assert.Equal(MEMORY_CHUNK, len(mem.Words))
}

func TestLoadMemory_Format(t *testing.T) {
	assert := assert.New(t)

	for _, size := range []int{1, 2, 3, 5, 6, 7, 4097} {
		mem, err := LoadMemory(bytes.NewReader(make([]byte, size)), STACK_CAPACITY)
		assert.ErrorIs(err, ErrFormat, "size %d", size)
		assert.Nil(mem)
	}
}

func TestLoadMemory_ReadError(t *testing.T) {
	assert := assert.New(t)

	errBroken := errors.New("broken")
	mem, err := LoadMemory(iotest.ErrReader(errBroken), STACK_CAPACITY)
	assert.ErrorIs(err, errBroken)
	assert.ErrorAs(err, &ErrLoad{})
	assert.Nil(mem)

	// Fails part way through.
	r := iotest.TimeoutReader(bytes.NewReader(make([]byte, 8)))
	mem, err = LoadMemory(iotest.OneByteReader(r), STACK_CAPACITY)
	assert.ErrorIs(err, iotest.ErrTimeout)
	assert.Nil(mem)
}

func TestLoadMemory_Allocation(t *testing.T) {
	assert := assert.New(t)

	for _, capacity := range []int{-1, MEMORY_LIMIT + 1} {
		mem, err := LoadMemory(bytes.NewReader(nil), capacity)
		assert.ErrorIs(err, ErrAllocation)
		assert.Nil(mem)
	}

	mem, err := NewMemory(make([]int32, MEMORY_LIMIT-10), 100)
	assert.ErrorIs(err, ErrAllocation)
	assert.Nil(mem)
}

func TestMemorySize(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		program  int
		capacity int
		size     int
	}{
		{0, 0, 1024},
		{0, 256, 1024},
		{767, 256, 1024},
		{768, 256, 1024},
		{769, 256, 2048},
		{1000, 256, 2048},
		{1023, 0, 1024},
		{1024, 0, 2048},
		{0, 1024, 1024},
		{0, 1025, 2048},
		{10, 5000, 5120},
	}

	for _, entry := range table {
		size := memorySize(entry.program, entry.capacity)
		assert.Equal(entry.size, size, "%d %d", entry.program, entry.capacity)
		assert.GreaterOrEqual(size, entry.program+entry.capacity)
		assert.Zero(size % MEMORY_CHUNK)
	}
}

func TestNewMemory(t *testing.T) {
	assert := assert.New(t)

	mem, err := NewMemory([]int32{1, 2, 3}, 1024)
	if !assert.NoError(err) {
		return
	}

	assert.Equal(2048, len(mem.Words))
	assert.Equal(3, mem.Program)
	assert.Equal(1023, mem.StackLimit())
	assert.Equal([]int32{1, 2, 3}, mem.Words[:3])
}
