// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"maps"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/cpu32/cpu"
	"github.com/ezrec/cpu32/emulator"
	"github.com/ezrec/cpu32/translate"
)

var f = translate.From

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "%v\n", f("Usage: %v [options] (run|trace|list) [STACK_CAPACITY] FILE", os.Args[0]))
	flag.PrintDefaults()

	fmt.Fprintf(out, "\n%v\n", f("Watch expression names:"))
	names := maps.Collect(emulator.WatchNames())
	for _, name := range slices.Sorted(maps.Keys(names)) {
		fmt.Fprintf(out, "  %-8v %v\n", name, names[name])
	}
}

func main() {
	var set string
	var steps int
	var watch string
	var input string
	var output string
	var verbose bool
	var lang string

	flag.StringVar(&set, "x", cpu.ISA_CALL.String(), "Instruction set (base, jump, call)")
	flag.IntVar(&steps, "n", math.MaxInt32, "Step budget for run")
	flag.StringVar(&watch, "b", "", "Watch expression; stop when it is true")
	flag.StringVar(&input, "i", "-", "Console input")
	flag.StringVar(&output, "o", "-", "Console output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "L", "", "Message locales, colon separated (default $"+translate.ENV_LANG+" or the system locales)")
	flag.Usage = usage

	flag.Parse()

	if len(lang) != 0 {
		translate.SetLocales(strings.Split(lang, ":")...)
	}

	if flag.NArg() < 2 || flag.NArg() > 3 {
		flag.Usage()
		os.Exit(1)
	}

	mode := flag.Arg(0)
	file := flag.Arg(flag.NArg() - 1)

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	var err error
	emu.Set, err = cpu.ParseInstructionSet(set)
	if err != nil {
		log.Fatalf("-x %v: %v", set, err)
	}

	if flag.NArg() == 3 {
		emu.StackCapacity, err = strconv.Atoi(flag.Arg(1))
		if err != nil || emu.StackCapacity < 0 {
			log.Fatalf("%v", f("Invalid stack capacity '%v'", flag.Arg(1)))
		}
	}

	if len(watch) != 0 {
		emu.Watch, err = emulator.NewWatch(watch)
		if err != nil {
			log.Fatalf("-b: %v", err)
		}
	}

	inf, err := os.Open(file)
	if err != nil {
		log.Fatalf("%v: %v", file, err)
	}
	err = emu.Load(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", file, err)
	}
	defer emu.Close()

	if input == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	switch mode {
	case "run":
		doRun(emu, steps)
	case "trace":
		doTrace(emu)
	case "list":
		doList(emu)
	default:
		flag.Usage()
		os.Exit(1)
	}
}

// doRun runs to completion, then prints the final state.
func doRun(emu *emulator.Emulator, steps int) {
	result, err := emu.Run(steps)
	if errors.Is(err, emulator.ErrWatch) {
		fmt.Println(f("watch '%v' triggered", emu.Watch.Expr))
	} else if err != nil && emu.Verbose {
		log.Printf("%v", err)
	}

	fmt.Print(emu.Cpu.String())
	fmt.Printf("%v %d\n", f("run result:"), result)
}

// doTrace executes one instruction per keypress, printing the state
// after each one.
func doTrace(emu *emulator.Emulator) {
	kb := openKeyboard(os.Stdin)
	defer kb.Close()

	fmt.Println(f("Press Enter to execute the next instruction or type 'q' to quit."))
	for {
		key, ok := kb.Key()
		if !ok || key == 'q' {
			return
		}
		if key != '\n' && key != ' ' {
			continue
		}

		if inst, ok := emu.Set.Decode(emu.Cpu.Memory.Words, int(emu.Cpu.Ip)); ok {
			fmt.Printf("%04d: %v\n", inst.Ip, inst)
		}

		done, err := emu.Tick()
		fmt.Print(emu.Cpu.String())
		if errors.Is(err, emulator.ErrWatch) {
			fmt.Println(f("watch '%v' triggered", emu.Watch.Expr))
			if !done {
				continue
			}
		}
		if done || err != nil {
			fmt.Println(f("finished"))
			return
		}
	}
}

// doList prints the disassembly of the program words.
func doList(emu *emulator.Emulator) {
	for line := range emu.Cpu.Memory.Disassemble(emu.Set) {
		fmt.Printf("%04d:", line.Ip)
		for _, word := range line.Words {
			fmt.Printf(" %08x", uint32(word))
		}
		fmt.Printf("\t%v\n", line.Text)
	}
}
