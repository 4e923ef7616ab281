// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"io"
	"log"

	"github.com/ezrec/cpu32/cpu"
	cio "github.com/ezrec/cpu32/io"
)

// Emulator state. CPU + memory + console.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation, once loaded.

	Set           cpu.InstructionSet // Instruction set for the next Load.
	StackCapacity int                // Stack capacity for the next Load, in words.

	Tape  cio.Tape // Console channel.
	Watch *Watch   // If set, Tick stops with ErrWatch when it evaluates true.
}

// NewEmulator creates a new emulator, for the full instruction set with
// the default stack capacity.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Set:           cpu.ISA_CALL,
		StackCapacity: cpu.STACK_CAPACITY,
	}

	return
}

// Load reads a binary program, and creates a CPU to run it.
// Any previously loaded program is destroyed.
func (emu *Emulator) Load(r io.Reader) (err error) {
	mem, err := cpu.LoadMemory(r, emu.StackCapacity)
	if err != nil {
		return
	}

	emu.Close()

	if emu.Verbose {
		log.Printf("emulator: %v program words, %v memory words, %v set",
			mem.Program, len(mem.Words), emu.Set)
	}

	emu.Cpu = cpu.NewCpu(mem, emu.Set)
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.SetConsole(&emu.Tape)

	return
}

// Close destroys the loaded program, if any.
func (emu *Emulator) Close() (err error) {
	if emu.Cpu != nil {
		emu.Cpu.Destroy()
		emu.Cpu = nil
	}

	return
}

// Reset the CPU, keeping the loaded program.
func (emu *Emulator) Reset() (err error) {
	if emu.Cpu == nil {
		err = ErrNotLoaded
		return
	}

	emu.Tape.Rewind()
	emu.Cpu.Reset()

	return
}

// Tick performs a single instruction of the emulator.
//
// Returns done when the CPU halts. Any other status is returned as an
// ErrRuntime. When an instruction was executed and left the CPU running
// or halted, the watch expression is evaluated; if it is true, ErrWatch
// is returned.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Cpu == nil {
		err = ErrNotLoaded
		return
	}

	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	ip := emu.Cpu.Ip
	ticks := emu.Cpu.Ticks
	defer func() {
		if err != nil && !errors.Is(err, ErrWatch) {
			err = &ErrRuntime{Ip: ip, Err: err}
		}
	}()

	err = emu.Cpu.Step()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
	}
	if err != nil {
		return
	}

	if emu.Watch != nil && emu.Cpu.Ticks != ticks {
		var hit bool
		hit, err = emu.Watch.Eval(emu.Cpu)
		if err != nil {
			return
		}
		if hit {
			err = ErrWatch
			return
		}
	}

	return
}

// Run ticks the emulator up to maxSteps times.
//
// The step count follows cpu.Run: positive when the budget ran out or the
// CPU halted, negative when the CPU faulted, and 1 or -1 for a CPU that
// had already stopped. A watch hit stops the run with a positive count
// and ErrWatch.
func (emu *Emulator) Run(maxSteps int) (steps int, err error) {
	if emu.Cpu == nil {
		err = ErrNotLoaded
		return
	}

	if emu.Watch == nil && !emu.Verbose {
		steps = emu.Cpu.Run(maxSteps)
		if steps < 0 {
			err = &ErrRuntime{Ip: emu.Cpu.Ip, Err: emu.Cpu.Status().Err()}
		}
		return
	}

	for steps < maxSteps {
		var done bool
		done, err = emu.Tick()
		steps++
		if errors.Is(err, ErrWatch) || done {
			return
		}
		if err != nil {
			steps = -steps
			return
		}
	}

	return
}
