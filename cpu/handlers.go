package cpu

import (
	"errors"

	"github.com/ezrec/cpu32/io"
)

// stop sets a terminal status.
func (cpu *Cpu) stop(status Status) Outcome {
	cpu.status = status
	return OUTCOME_STOPPED
}

// jump sets the instruction pointer.
func (cpu *Cpu) jump(index int32) Outcome {
	cpu.Ip = index
	return OUTCOME_JUMPED
}

// register returns the register for a REG operand.
func (cpu *Cpu) register(sel int32) (reg *int32, ok bool) {
	if sel < 0 || int(sel) >= len(cpu.Register) {
		return
	}

	return &cpu.Register[sel], true
}

// setResult updates the result register, if the instruction set has one.
func (cpu *Cpu) setResult(value int32) {
	if cpu.Set.HasResult() {
		cpu.Result = value
	}
}

// doAlu performs 'A <- A op REG'.
func (cpu *Cpu) doAlu(op Op, args []int32) Outcome {
	reg, ok := cpu.register(args[0])
	if !ok {
		return cpu.stop(STATUS_ILLEGAL_OPERAND)
	}

	a := cpu.Register[REG_A]
	value := *reg

	switch op {
	case OP_ADD:
		a += value
	case OP_SUB:
		a -= value
	case OP_MUL:
		a *= value
	case OP_DIV:
		if value == 0 {
			return cpu.stop(STATUS_DIV_BY_ZERO)
		}
		// MinInt32 / -1 wraps to MinInt32.
		a /= value
	default:
		return cpu.stop(STATUS_ILLEGAL_INSTRUCTION)
	}

	cpu.Register[REG_A] = a
	cpu.setResult(a)
	return OUTCOME_CONTINUE
}

// doStep performs 'REG <- REG + delta'.
func (cpu *Cpu) doStep(args []int32, delta int32) Outcome {
	reg, ok := cpu.register(args[0])
	if !ok {
		return cpu.stop(STATUS_ILLEGAL_OPERAND)
	}

	*reg += delta
	cpu.setResult(*reg)
	return OUTCOME_CONTINUE
}

func (cpu *Cpu) doNop(args []int32) Outcome {
	return cpu.jump(cpu.Ip + 1)
}

func (cpu *Cpu) doHalt(args []int32) Outcome {
	cpu.Ip++
	return cpu.stop(STATUS_HALTED)
}

func (cpu *Cpu) doAdd(args []int32) Outcome { return cpu.doAlu(OP_ADD, args) }
func (cpu *Cpu) doSub(args []int32) Outcome { return cpu.doAlu(OP_SUB, args) }
func (cpu *Cpu) doMul(args []int32) Outcome { return cpu.doAlu(OP_MUL, args) }
func (cpu *Cpu) doDiv(args []int32) Outcome { return cpu.doAlu(OP_DIV, args) }
func (cpu *Cpu) doInc(args []int32) Outcome { return cpu.doStep(args, 1) }
func (cpu *Cpu) doDec(args []int32) Outcome { return cpu.doStep(args, -1) }

// doLoop jumps to INDEX while C is not zero. C is not decremented.
func (cpu *Cpu) doLoop(args []int32) Outcome {
	if cpu.Register[REG_C] != 0 {
		return cpu.jump(args[0])
	}
	return OUTCOME_CONTINUE
}

func (cpu *Cpu) doMovr(args []int32) Outcome {
	reg, ok := cpu.register(args[0])
	if !ok {
		return cpu.stop(STATUS_ILLEGAL_OPERAND)
	}

	*reg = args[1]
	return OUTCOME_CONTINUE
}

// doLoad copies the frame slot 'top + D + OFFSET + 1' into REG.
func (cpu *Cpu) doLoad(args []int32) Outcome {
	index, ok := cpu.Stack.Frame(cpu.Register[REG_D], args[1])
	if !ok {
		return cpu.stop(STATUS_INVALID_STACK_OPERATION)
	}

	reg, ok := cpu.register(args[0])
	if !ok {
		return cpu.stop(STATUS_ILLEGAL_OPERAND)
	}

	*reg = cpu.Stack.Data[index]
	return OUTCOME_CONTINUE
}

// doStore copies REG into the frame slot 'top + D + OFFSET + 1'.
func (cpu *Cpu) doStore(args []int32) Outcome {
	index, ok := cpu.Stack.Frame(cpu.Register[REG_D], args[1])
	if !ok {
		return cpu.stop(STATUS_INVALID_STACK_OPERATION)
	}

	reg, ok := cpu.register(args[0])
	if !ok {
		return cpu.stop(STATUS_ILLEGAL_OPERAND)
	}

	cpu.Stack.Data[index] = *reg
	return OUTCOME_CONTINUE
}

// doInput reads a value into REG. At the end of input, C is set to 0
// and REG to -1.
func (cpu *Cpu) doInput(args []int32, read func(console Console) (int32, error)) Outcome {
	reg, ok := cpu.register(args[0])
	if !ok {
		return cpu.stop(STATUS_ILLEGAL_OPERAND)
	}

	if cpu.console == nil {
		return cpu.stop(STATUS_IO_ERROR)
	}

	value, err := read(cpu.console)
	if errors.Is(err, io.ErrEndOfInput) {
		cpu.Register[REG_C] = 0
		value = -1
	} else if err != nil {
		return cpu.stop(STATUS_IO_ERROR)
	}

	*reg = value
	return OUTCOME_CONTINUE
}

func (cpu *Cpu) doIn(args []int32) Outcome {
	return cpu.doInput(args, func(console Console) (int32, error) {
		return console.ReadInt()
	})
}

func (cpu *Cpu) doGet(args []int32) Outcome {
	return cpu.doInput(args, func(console Console) (value int32, err error) {
		char, err := console.ReadChar()
		return int32(char), err
	})
}

func (cpu *Cpu) doOut(args []int32) Outcome {
	reg, ok := cpu.register(args[0])
	if !ok {
		return cpu.stop(STATUS_ILLEGAL_OPERAND)
	}

	if cpu.console == nil || cpu.console.WriteInt(*reg) != nil {
		return cpu.stop(STATUS_IO_ERROR)
	}

	return OUTCOME_CONTINUE
}

// doPut writes REG as a single character, which must be in [0, 254].
func (cpu *Cpu) doPut(args []int32) Outcome {
	reg, ok := cpu.register(args[0])
	if !ok || *reg < 0 || *reg >= 255 {
		return cpu.stop(STATUS_ILLEGAL_OPERAND)
	}

	if cpu.console == nil || cpu.console.WriteChar(byte(*reg)) != nil {
		return cpu.stop(STATUS_IO_ERROR)
	}

	return OUTCOME_CONTINUE
}

func (cpu *Cpu) doSwap(args []int32) Outcome {
	reg1, ok1 := cpu.register(args[0])
	reg2, ok2 := cpu.register(args[1])
	if !ok1 || !ok2 {
		return cpu.stop(STATUS_ILLEGAL_OPERAND)
	}

	*reg1, *reg2 = *reg2, *reg1
	return OUTCOME_CONTINUE
}

func (cpu *Cpu) doPush(args []int32) Outcome {
	reg, ok := cpu.register(args[0])
	if !ok {
		return cpu.stop(STATUS_ILLEGAL_OPERAND)
	}

	if !cpu.Stack.Push(*reg) {
		return cpu.stop(STATUS_INVALID_STACK_OPERATION)
	}

	return OUTCOME_CONTINUE
}

func (cpu *Cpu) doPop(args []int32) Outcome {
	if cpu.Stack.Empty() {
		return cpu.stop(STATUS_INVALID_STACK_OPERATION)
	}

	reg, ok := cpu.register(args[0])
	if !ok {
		return cpu.stop(STATUS_ILLEGAL_OPERAND)
	}

	*reg, _ = cpu.Stack.Pop()
	return OUTCOME_CONTINUE
}

// doCmp sets 'result <- REG1 - REG2'.
func (cpu *Cpu) doCmp(args []int32) Outcome {
	reg1, ok1 := cpu.register(args[0])
	reg2, ok2 := cpu.register(args[1])
	if !ok1 || !ok2 {
		return cpu.stop(STATUS_ILLEGAL_OPERAND)
	}

	cpu.Result = *reg1 - *reg2
	return OUTCOME_CONTINUE
}

func (cpu *Cpu) doJmp(args []int32) Outcome {
	return cpu.jump(args[0])
}

func (cpu *Cpu) doJz(args []int32) Outcome {
	if cpu.Result == 0 {
		return cpu.jump(args[0])
	}
	return OUTCOME_CONTINUE
}

func (cpu *Cpu) doJnz(args []int32) Outcome {
	if cpu.Result != 0 {
		return cpu.jump(args[0])
	}
	return OUTCOME_CONTINUE
}

func (cpu *Cpu) doJgt(args []int32) Outcome {
	if cpu.Result > 0 {
		return cpu.jump(args[0])
	}
	return OUTCOME_CONTINUE
}

// doCall pushes the index of the next instruction, and jumps to INDEX.
func (cpu *Cpu) doCall(args []int32) Outcome {
	next := cpu.Ip + int32(1+len(args))
	if !cpu.Stack.Push(next) {
		return cpu.stop(STATUS_INVALID_STACK_OPERATION)
	}

	return cpu.jump(args[0])
}

// doRet pops the return index into the instruction pointer.
func (cpu *Cpu) doRet(args []int32) Outcome {
	index, ok := cpu.Stack.Discard()
	if !ok {
		return cpu.stop(STATUS_INVALID_STACK_OPERATION)
	}

	return cpu.jump(index)
}
