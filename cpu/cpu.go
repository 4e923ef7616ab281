package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"strings"

	"github.com/ezrec/cpu32/io"
)

// Console is the host byte stream used by the in, get, out and put instructions.
type Console io.Console

// Register selectors, as encoded in REG operands.
const (
	REG_A = 0
	REG_B = 1
	REG_C = 2
	REG_D = 3
)

// Cpu is the simulation context for the register machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Set InstructionSet // Active instruction set.

	Ip       int32    // Current instruction pointer, a word index into memory.
	Register [4]int32 // Register bank: A, B, C, D.
	Result   int32    // Result register, for ISA_JUMP and ISA_CALL.
	Stack    Stack    // Stack region of memory.

	Memory      *Memory // Memory, or nil once destroyed.
	StackBottom int     // Index of the last word of memory.
	StackLimit  int     // Index of the last word below the stack region.

	Ticks int // Executed instruction counter.

	status  Status
	table   []Opcode
	console Console
}

// NewCpu creates a CPU for a loaded memory, and resets it.
func NewCpu(mem *Memory, set InstructionSet) (cpu *Cpu) {
	cpu = &Cpu{
		Set:         set,
		Memory:      mem,
		StackBottom: mem.StackBottom(),
		StackLimit:  mem.StackLimit(),
		table:       set.Table(),
	}

	cpu.Stack.Data = mem.Words[cpu.StackLimit+1 : cpu.StackBottom+1]

	cpu.Reset()

	return
}

// SetConsole attaches the host byte stream.
func (cpu *Cpu) SetConsole(console Console) {
	cpu.console = console
}

// Reset the CPU state.
// - Clears the registers, the status, and the instruction pointer.
// - Empties the stack, and zeroes the stack region.
// - Zeros the tick counter.
// Program words are left as loaded.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Result = 0
	cpu.status = STATUS_OK
	cpu.Ip = 0
	cpu.Stack.Reset()
	cpu.Ticks = 0
}

// Destroy releases the memory. The CPU can not be used afterwards.
func (cpu *Cpu) Destroy() {
	if cpu.Verbose && cpu.Memory != nil {
		log.Printf("cpu: destroy")
	}

	cpu.Memory = nil
	cpu.Stack.Data = nil
	cpu.Stack.Size = 0
	cpu.StackBottom = -1
	cpu.StackLimit = -1
	cpu.table = nil
}

// Status returns the current status.
func (cpu *Cpu) Status() Status {
	return cpu.status
}

// Peek returns the value of a register by name:
// 'A', 'B', 'C', 'D', 'S' (stack size) or 'I' (instruction pointer).
// Any other name returns 0.
func (cpu *Cpu) Peek(name byte) int32 {
	switch name {
	case 'A', 'B', 'C', 'D':
		return cpu.Register[name-'A']
	case 'S':
		return int32(cpu.Stack.Size)
	case 'I':
		return cpu.Ip
	}

	return 0
}

// Registers iterates over the named registers, in peek order.
// The result register 'R' is included when the instruction set has it.
func (cpu *Cpu) Registers() iter.Seq2[string, int32] {
	return func(yield func(name string, value int32) bool) {
		for _, name := range []byte("ABCDSI") {
			if !yield(string(name), cpu.Peek(name)) {
				return
			}
		}
		if cpu.Set.HasResult() {
			yield("R", cpu.Result)
		}
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "A: %d, B: %d, C: %d, D: %d\n",
		cpu.Register[REG_A], cpu.Register[REG_B], cpu.Register[REG_C], cpu.Register[REG_D])
	fmt.Fprintf(&sb, "Stack size: %d\n", cpu.Stack.Size)
	sb.WriteString("Stack:")
	for value := range cpu.Stack.All() {
		fmt.Fprintf(&sb, " %d", value)
	}
	sb.WriteString("\n")
	if cpu.Set.HasResult() {
		fmt.Fprintf(&sb, "Result: %d\n", cpu.Result)
	}
	fmt.Fprintf(&sb, "Status: %v\n", cpu.status)
	fmt.Fprintf(&sb, "Instruction pointer: %d\n", cpu.Ip)

	return sb.String()
}

// Fetch decodes the instruction at the instruction pointer.
// On failure the CPU status is set, and ok is false.
func (cpu *Cpu) Fetch() (oc Opcode, args []int32, ok bool) {
	ip := int(cpu.Ip)
	if ip < 0 || ip > cpu.StackLimit {
		cpu.status = STATUS_INVALID_ADDRESS
		return
	}

	words := cpu.Memory.Words
	if int(words[ip]) < 0 || int(words[ip]) >= len(cpu.table) {
		cpu.status = STATUS_ILLEGAL_INSTRUCTION
		return
	}
	oc = cpu.table[words[ip]]

	end := ip + oc.Length()
	if end-1 > cpu.StackLimit {
		cpu.status = STATUS_INVALID_ADDRESS
		return
	}

	return oc, words[ip+1 : end], true
}

// Step executes a single instruction.
//
// A CPU that is not in STATUS_OK is left untouched, and the error for its
// status is returned. Otherwise the instruction is fetched and executed,
// and any status other than STATUS_OK is returned as an error joined with
// the ErrOpcode of the instruction.
func (cpu *Cpu) Step() (err error) {
	if cpu.Memory == nil {
		err = ErrDestroyed
		return
	}

	if cpu.status != STATUS_OK {
		err = cpu.status.Err()
		return
	}

	ip := cpu.Ip
	op := Op(-1)
	defer func() {
		if cpu.status != STATUS_OK {
			err = errors.Join(ErrOpcode{Ip: ip, Op: op}, cpu.status.Err())
		}
	}()

	oc, args, ok := cpu.Fetch()
	if !ok {
		if cpu.status == STATUS_INVALID_ADDRESS && ip >= 0 && int(ip) <= cpu.StackLimit {
			op = Op(cpu.Memory.Words[ip])
		}
		return
	}
	op = oc.Op

	if cpu.Verbose {
		log.Printf("%04x: %v", ip, Instruction{Ip: ip, Opcode: oc, Args: args})
	}

	cpu.Ticks++

	switch oc.handler(cpu, args) {
	case OUTCOME_CONTINUE:
		cpu.Ip += int32(oc.Length())
	case OUTCOME_JUMPED, OUTCOME_STOPPED:
		// Handler is responsible for the instruction pointer.
	}

	return
}

// Run executes up to maxSteps instructions.
//
// Returns the number of steps if the budget ran out or the CPU halted,
// and the negated number (including the faulting step) if any other
// status stopped the run. A CPU that has already stopped takes one
// no-op step, so it reports 1 when halted and -1 when faulted.
// A budget of zero or less, or a destroyed CPU, returns 0.
func (cpu *Cpu) Run(maxSteps int) (steps int) {
	if maxSteps <= 0 || cpu.Memory == nil {
		return
	}

	for steps < maxSteps {
		_ = cpu.Step()
		steps++
		switch cpu.status {
		case STATUS_OK:
			continue
		case STATUS_HALTED:
			return
		default:
			return -steps
		}
	}

	return
}
