package cpu

import (
	"iter"
)

// Stack is the stack region of memory.
//
// Data is the slice of memory from the word after the stack limit up to
// and including the stack bottom, so Data[len(Data)-1] is the stack
// bottom. The stack grows towards Data[0].
type Stack struct {
	Data []int32 // Stack region of memory.
	Size int     // Occupied slots.
}

// top returns the Data index of the most recently pushed value.
func (s *Stack) top() int {
	return len(s.Data) - s.Size
}

func (s *Stack) Push(value int32) (ok bool) {
	if s.Full() {
		return
	}

	s.Data[s.top()-1] = value
	s.Size++
	return true
}

func (s *Stack) Pop() (value int32, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Size--
	}
	return
}

// Discard pops the top of the stack, and zeroes the vacated slot.
func (s *Stack) Discard() (value int32, ok bool) {
	value, ok = s.Pop()
	if ok {
		s.Data[s.top()-1] = 0
	}
	return
}

func (s *Stack) Empty() bool {
	return s.Size == 0
}

func (s *Stack) Full() bool {
	return s.Size >= len(s.Data)
}

func (s *Stack) Peek() (value int32, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[s.top()], true
}

// Frame returns the Data index of the frame relative slot
// 'top + base + offset + 1'. The slot must be within the stack region.
func (s *Stack) Frame(base int32, offset int32) (index int, ok bool) {
	slot := int64(s.top()) + int64(base) + int64(offset)
	if slot < 0 || slot >= int64(len(s.Data)) {
		return
	}

	return int(slot), true
}

// Reset empties the stack, and zeroes the whole stack region.
func (s *Stack) Reset() {
	clear(s.Data)
	s.Size = 0
}

// All iterates over the occupied slots, from the stack bottom to the top.
func (s *Stack) All() iter.Seq[int32] {
	return func(yield func(value int32) bool) {
		for n := len(s.Data) - 1; n >= s.top(); n-- {
			if !yield(s.Data[n]) {
				return
			}
		}
	}
}
