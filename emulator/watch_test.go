package emulator

import (
	"bytes"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cpu32/cpu"
)

func TestNewWatch(t *testing.T) {
	assert := assert.New(t)

	for _, expr := range []string{"A > 1", "status == 'halted'", "len(stack) > 2 and stack[0] == I", "R"} {
		watch, err := NewWatch(expr)
		assert.NoError(err, expr)
		if assert.NotNil(watch, expr) {
			assert.Equal(expr, watch.Expr)
		}
	}

	for _, expr := range []string{"A >", "Z == 1", "A = 1"} {
		watch, err := NewWatch(expr)
		assert.Nil(watch, expr)
		var werr *ErrWatchExpression
		if assert.ErrorAs(err, &werr, expr) {
			assert.Equal(expr, werr.Expr)
		}
	}
}

func TestWatchNames(t *testing.T) {
	assert := assert.New(t)

	names := maps.Collect(WatchNames())
	for _, name := range []string{"A", "B", "C", "D", "S", "I", "R", "status", "stack"} {
		assert.Contains(names, name)
	}
	assert.Len(names, 9)
}

func TestWatch_Eval(t *testing.T) {
	assert := assert.New(t)

	mem, err := cpu.LoadMemory(bytes.NewReader(program(
		int32(cpu.OP_MOVR), cpu.REG_A, 11,
		int32(cpu.OP_PUSH), cpu.REG_A,
		int32(cpu.OP_MOVR), cpu.REG_A, 22,
		int32(cpu.OP_PUSH), cpu.REG_A,
		int32(cpu.OP_CMP), cpu.REG_B, cpu.REG_A,
		int32(cpu.OP_HALT),
	)), 16)
	if !assert.NoError(err) {
		return
	}

	cp := cpu.NewCpu(mem, cpu.ISA_JUMP)
	assert.Equal(6, cp.Run(100))

	table := map[string]bool{
		"A == 22":            true,
		"B == 0 and C == 0":  true,
		"D != 0":             false,
		"S == 2":             true,
		"I == 14":            true,
		"R == -22":           true,
		"status == 'halted'": true,
		"status == 'ok'":     false,
		"stack == [22, 11]":  true,
		"stack[0] > 20":      true,
		"None":               false,
		"[x for x in stack]": true,
	}

	for expr, expected := range table {
		watch, err := NewWatch(expr)
		if !assert.NoError(err, expr) {
			continue
		}
		hit, err := watch.Eval(cp)
		assert.NoError(err, expr)
		assert.Equal(expected, hit, expr)
	}

	watch, err := NewWatch("stack[5]")
	if assert.NoError(err) {
		_, err = watch.Eval(cp)
		var werr *ErrWatchExpression
		assert.ErrorAs(err, &werr)
	}
}
