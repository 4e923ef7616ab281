// Package cpu implements the word-addressed 32-bit register machine.
//
// The CPU consists of an instruction pointer, four 32-bit general-purpose
// registers (A, B, C, D), an optional result register used by comparisons
// and conditional jumps, and a stack that occupies the trailing words of
// memory. Programs are loaded from a binary stream of little-endian words.
//
// Three instruction sets are available: the base set, the base set with
// absolute and conditional jumps, and the jump set with call and return.
// Faults never trap; they move the CPU into a terminal status that holds
// until the next Reset.
package cpu
