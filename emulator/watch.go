package emulator

import (
	"iter"
	"maps"
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/cpu32/cpu"
	"github.com/ezrec/cpu32/internal"
)

// Names visible to a watch expression.
var _watch_names = map[string]string{
	"A":      "register A",
	"B":      "register B",
	"C":      "register C",
	"D":      "register D",
	"S":      "stack size",
	"I":      "instruction pointer",
	"R":      "result register (jump and call sets only)",
	"status": "status name, ie 'ok' or 'halted'",
	"stack":  "list of stack values, top first",
}

// Watch is a compiled Starlark expression over the CPU state,
// such as 'A > 10 and stack[0] == 3'.
type Watch struct {
	Expr string // Source expression.

	program *starlark.Program
}

// WatchNames returns the names visible to a watch expression, with their descriptions.
func WatchNames() iter.Seq2[string, string] {
	return maps.All(_watch_names)
}

// NewWatch compiles a watch expression.
func NewWatch(expr string) (w *Watch, err error) {
	opts := syntax.FileOptions{}
	src := "rc = (" + expr + ")\n"
	isPredeclared := func(name string) bool {
		_, ok := _watch_names[name]
		return ok
	}

	_, prog, err := starlark.SourceProgramOptions(&opts, "watch", src, isPredeclared)
	if err != nil {
		err = &ErrWatchExpression{Expr: expr, Err: err}
		return
	}

	w = &Watch{
		Expr:    expr,
		program: prog,
	}

	return
}

// registerValues converts the CPU registers to Starlark values.
func registerValues(cp *cpu.Cpu) iter.Seq2[string, starlark.Value] {
	return func(yield func(name string, value starlark.Value) bool) {
		for name, value := range cp.Registers() {
			if !yield(name, starlark.MakeInt(int(value))) {
				return
			}
		}
	}
}

// machineValues converts the CPU status and stack to Starlark values.
func machineValues(cp *cpu.Cpu) iter.Seq2[string, starlark.Value] {
	return func(yield func(name string, value starlark.Value) bool) {
		if !yield("status", starlark.String(cp.Status().String())) {
			return
		}

		values := slices.Collect(cp.Stack.All())
		slices.Reverse(values)
		list := make([]starlark.Value, len(values))
		for n, value := range values {
			list[n] = starlark.MakeInt(int(value))
		}
		yield("stack", starlark.NewList(list))
	}
}

// Eval evaluates the expression against the CPU state, and returns its truth value.
func (w *Watch) Eval(cp *cpu.Cpu) (hit bool, err error) {
	thread := starlark.Thread{Name: "watch"}
	predeclared := starlark.StringDict(maps.Collect(internal.Concat2(registerValues(cp), machineValues(cp))))

	globals, err := w.program.Init(&thread, predeclared)
	if err != nil {
		err = &ErrWatchExpression{Expr: w.Expr, Err: err}
		return
	}

	rc, ok := globals["rc"]
	if !ok {
		return
	}

	hit = bool(rc.Truth())
	return
}
