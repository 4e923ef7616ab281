package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Instruction is a decoded instruction.
type Instruction struct {
	Ip     int32   // Word index of the opcode word.
	Opcode Opcode  // Decoded opcode.
	Args   []int32 // Operand words.
}

// registerName returns the assembly name of a REG operand.
func registerName(sel int32) string {
	if sel >= 0 && sel < 4 {
		return string(rune('A' + sel))
	}
	return fmt.Sprintf("?%d", sel)
}

// String returns the assembly language representation of this instruction.
func (inst Instruction) String() string {
	words := []string{inst.Opcode.Op.String()}
	for n, operand := range inst.Opcode.Operands {
		if n >= len(inst.Args) {
			words = append(words, "?")
			continue
		}
		arg := inst.Args[n]
		switch operand {
		case OPERAND_REG:
			words = append(words, registerName(arg))
		case OPERAND_INDEX:
			words = append(words, fmt.Sprintf("@%d", arg))
		default:
			words = append(words, fmt.Sprintf("%d", arg))
		}
	}

	return strings.Join(words, " ")
}

// Decode decodes the instruction at word index ip.
// An opcode outside the instruction set, or an instruction that runs
// past the end of words, is not decoded.
func (set InstructionSet) Decode(words []int32, ip int) (inst Instruction, ok bool) {
	if ip < 0 || ip >= len(words) {
		return
	}

	oc, ok := set.Lookup(words[ip])
	if !ok || ip+oc.Length() > len(words) {
		ok = false
		return
	}

	inst = Instruction{
		Ip:     int32(ip),
		Opcode: oc,
		Args:   words[ip+1 : ip+oc.Length()],
	}
	return
}

// Listing is a line of a program disassembly.
type Listing struct {
	Ip    int32   // Word index of the first word.
	Words []int32 // Words covered by the line.
	Text  string  // Disassembly text.
}

// Disassemble iterates over the program words of memory.
// Words that do not decode are listed as '.word' data.
func (mem *Memory) Disassemble(set InstructionSet) iter.Seq[Listing] {
	return func(yield func(line Listing) bool) {
		words := mem.Words[:mem.Program]
		for ip := 0; ip < len(words); {
			line := Listing{Ip: int32(ip)}
			inst, ok := set.Decode(words, ip)
			if ok {
				line.Words = words[ip : ip+inst.Opcode.Length()]
				line.Text = inst.String()
			} else {
				line.Words = words[ip : ip+1]
				line.Text = fmt.Sprintf(".word %d", words[ip])
			}
			if !yield(line) {
				return
			}
			ip += len(line.Words)
		}
	}
}
