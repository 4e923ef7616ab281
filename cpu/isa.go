package cpu

import (
	"iter"
	"slices"
)

// InstructionSet selects which instruction groups the CPU decodes.
type InstructionSet int

//go:generate go tool stringer -linecomment -type=InstructionSet
const (
	ISA_BASE = InstructionSet(0) // base
	ISA_JUMP = InstructionSet(1) // jump
	ISA_CALL = InstructionSet(2) // call
)

// ParseInstructionSet returns the instruction set by name.
func ParseInstructionSet(name string) (set InstructionSet, err error) {
	for _, set = range []InstructionSet{ISA_BASE, ISA_JUMP, ISA_CALL} {
		if set.String() == name {
			return
		}
	}

	err = ErrInstructionSet
	return
}

// Count returns the number of opcodes in the instruction set.
func (set InstructionSet) Count() int {
	switch set {
	case ISA_BASE:
		return int(OP_POP) + 1
	case ISA_JUMP:
		return int(OP_JGT) + 1
	case ISA_CALL:
		return int(OP_RET) + 1
	}

	return 0
}

// HasResult returns true if the instruction set has the result register.
func (set InstructionSet) HasResult() bool {
	return set == ISA_JUMP || set == ISA_CALL
}

// Table returns a copy of the opcode table for the instruction set.
func (set InstructionSet) Table() []Opcode {
	return slices.Clone(opcodes[:set.Count()])
}

// Opcodes iterates over the instruction set, in opcode order.
func (set InstructionSet) Opcodes() iter.Seq[Opcode] {
	return slices.Values(opcodes[:set.Count()])
}

// Lookup decodes an opcode word for the instruction set.
func (set InstructionSet) Lookup(word int32) (oc Opcode, ok bool) {
	if word < 0 || int(word) >= set.Count() {
		return
	}

	return opcodes[word], true
}
