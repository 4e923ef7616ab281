package cpu

import (
	"strings"
)

// Op is an opcode number, as found in the first word of an instruction.
type Op int32

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NOP   = Op(0)  // nop
	OP_HALT  = Op(1)  // halt
	OP_ADD   = Op(2)  // add
	OP_SUB   = Op(3)  // sub
	OP_MUL   = Op(4)  // mul
	OP_DIV   = Op(5)  // div
	OP_INC   = Op(6)  // inc
	OP_DEC   = Op(7)  // dec
	OP_LOOP  = Op(8)  // loop
	OP_MOVR  = Op(9)  // movr
	OP_LOAD  = Op(10) // load
	OP_STORE = Op(11) // store
	OP_IN    = Op(12) // in
	OP_GET   = Op(13) // get
	OP_OUT   = Op(14) // out
	OP_PUT   = Op(15) // put
	OP_SWAP  = Op(16) // swap
	OP_PUSH  = Op(17) // push
	OP_POP   = Op(18) // pop
	OP_CMP   = Op(19) // cmp
	OP_JMP   = Op(20) // jmp
	OP_JZ    = Op(21) // jz
	OP_JNZ   = Op(22) // jnz
	OP_JGT   = Op(23) // jgt
	OP_CALL  = Op(24) // call
	OP_RET   = Op(25) // ret
)

// Operand is the kind of an operand word following the opcode word.
type Operand int

//go:generate go tool stringer -linecomment -type=Operand
const (
	OPERAND_REG   = Operand(0) // reg
	OPERAND_VALUE = Operand(1) // value
	OPERAND_INDEX = Operand(2) // index
)

// Outcome is the result of an instruction handler.
type Outcome int

const (
	OUTCOME_STOPPED  = Outcome(0) // Status was set; instruction pointer is left alone.
	OUTCOME_CONTINUE = Outcome(1) // Advance the instruction pointer by the opcode length.
	OUTCOME_JUMPED   = Outcome(2) // Handler has already set the instruction pointer.
)

// handler executes an instruction, given its operand words.
type handler func(cpu *Cpu, args []int32) Outcome

// Opcode describes a single entry of an instruction set.
type Opcode struct {
	Op       Op        // Opcode number.
	Operands []Operand // Operand words following the opcode word.

	handler handler
}

// Length returns the instruction length in words, including the opcode word.
func (oc Opcode) Length() int {
	return 1 + len(oc.Operands)
}

// Signature returns the instruction as it would be written, ie 'movr REG VALUE'.
func (oc Opcode) Signature() string {
	words := []string{oc.Op.String()}
	for _, operand := range oc.Operands {
		words = append(words, strings.ToUpper(operand.String()))
	}
	return strings.Join(words, " ")
}

var (
	_reg      = []Operand{OPERAND_REG}
	_reg_reg  = []Operand{OPERAND_REG, OPERAND_REG}
	_reg_imm  = []Operand{OPERAND_REG, OPERAND_VALUE}
	_index    = []Operand{OPERAND_INDEX}
	_operands = []Operand{}
)

// opcodes is the complete table, in opcode order.
// Each instruction set is a prefix of it.
var opcodes = [...]Opcode{
	{OP_NOP, _operands, (*Cpu).doNop},
	{OP_HALT, _operands, (*Cpu).doHalt},
	{OP_ADD, _reg, (*Cpu).doAdd},
	{OP_SUB, _reg, (*Cpu).doSub},
	{OP_MUL, _reg, (*Cpu).doMul},
	{OP_DIV, _reg, (*Cpu).doDiv},
	{OP_INC, _reg, (*Cpu).doInc},
	{OP_DEC, _reg, (*Cpu).doDec},
	{OP_LOOP, _index, (*Cpu).doLoop},
	{OP_MOVR, _reg_imm, (*Cpu).doMovr},
	{OP_LOAD, _reg_imm, (*Cpu).doLoad},
	{OP_STORE, _reg_imm, (*Cpu).doStore},
	{OP_IN, _reg, (*Cpu).doIn},
	{OP_GET, _reg, (*Cpu).doGet},
	{OP_OUT, _reg, (*Cpu).doOut},
	{OP_PUT, _reg, (*Cpu).doPut},
	{OP_SWAP, _reg_reg, (*Cpu).doSwap},
	{OP_PUSH, _reg, (*Cpu).doPush},
	{OP_POP, _reg, (*Cpu).doPop},
	{OP_CMP, _reg_reg, (*Cpu).doCmp},
	{OP_JMP, _index, (*Cpu).doJmp},
	{OP_JZ, _index, (*Cpu).doJz},
	{OP_JNZ, _index, (*Cpu).doJnz},
	{OP_JGT, _index, (*Cpu).doJgt},
	{OP_CALL, _index, (*Cpu).doCall},
	{OP_RET, _operands, (*Cpu).doRet},
}

// Opcode returns the table entry for the opcode, whatever the instruction set.
func (op Op) Opcode() (oc Opcode, ok bool) {
	if op < 0 || int(op) >= len(opcodes) {
		return
	}
	return opcodes[op], true
}
