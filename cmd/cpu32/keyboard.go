package main

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// keyboard reads single keypresses from a terminal in cbreak mode.
// If the input is not a terminal, it reads the input as is.
type keyboard struct {
	input *os.File

	terminal bool
	canAttr  unix.Termios
	cbrAttr  unix.Termios
}

// openKeyboard puts the input terminal into cbreak mode.
func openKeyboard(input *os.File) (kb *keyboard) {
	kb = &keyboard{input: input}

	err := termios.Tcgetattr(input.Fd(), &kb.canAttr)
	if err != nil {
		return
	}

	kb.cbrAttr = kb.canAttr
	termios.Cfmakecbreak(&kb.cbrAttr)
	err = termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &kb.cbrAttr)
	if err != nil {
		return
	}

	kb.terminal = true
	return
}

// Close restores canonical mode.
func (kb *keyboard) Close() (err error) {
	if kb.terminal {
		err = termios.Tcsetattr(kb.input.Fd(), termios.TCIFLUSH, &kb.canAttr)
		kb.terminal = false
	}

	return
}

// Key waits for the next keypress. ok is false at the end of the input.
func (kb *keyboard) Key() (key byte, ok bool) {
	var one [1]byte
	for {
		n, err := kb.input.Read(one[:])
		if n == 1 {
			return one[0], true
		}
		if err != nil {
			return
		}
	}
}
