package isa

import (
	"iter"
	"slices"
)

// Opcode is the one-byte encoding of a command.
type Opcode uint8

// Command is an entry of the command table.
type Command struct {
	Mnemonic string // Assembly mnemonic.
	Opcode   Opcode // Encoded opcode, in the Command region.
	Operands int    // Number of operands the command takes.
}

// Address returns the command's location in the Command region.
func (cmd Command) Address() Address {
	return Address(cmd.Opcode)
}

// commandList is the command table in opcode order.
var commandList = []Command{
	// Arithmetic
	{"adda", 0x20, 2},
	{"addn", 0x21, 2},
	{"suba", 0x22, 2},
	{"subn", 0x23, 2},
	{"mula", 0x24, 2},
	{"muln", 0x25, 2},
	{"diva", 0x26, 2},
	{"divn", 0x27, 2},
	// Bitwise
	{"lsa", 0x28, 2},
	{"lsn", 0x29, 2},
	{"rsa", 0x2A, 2},
	{"rsn", 0x2B, 2},
	{"anda", 0x2C, 2},
	{"andn", 0x2D, 2},
	{"ora", 0x2E, 2},
	{"orn", 0x2F, 2},
	{"xora", 0x30, 2},
	{"xorn", 0x31, 2},
	{"nota", 0x32, 1},
	// Comparison, result in rs
	{"equa", 0x33, 2},
	{"equn", 0x34, 2},
	{"biga", 0x35, 2},
	{"bign", 0x36, 2},
	{"bigequa", 0x37, 2},
	{"bigequn", 0x38, 2},
	{"smaa", 0x39, 2},
	{"sman", 0x3A, 2},
	{"smaequa", 0x3B, 2},
	{"smaequn", 0x3C, 2},
	// Direct memory
	{"seta", 0x3D, 2},
	{"setn", 0x3E, 2},
	// Indirect memory
	{"geta", 0x3F, 2},
	{"getn", 0x40, 2},
	{"puta", 0x41, 2},
	{"putn", 0x42, 2},
	// Stack
	{"pusha", 0x43, 1},
	{"pushn", 0x44, 1},
	{"popa", 0x45, 1},
	{"pop", 0x46, 0},
	// Control flow
	{"jmpa", 0x47, 1},
	{"jmpn", 0x48, 1},
	{"ujmpa", 0x49, 1},
	{"ujmpn", 0x4A, 1},
	{"calla", 0x4B, 1},
	{"calln", 0x4C, 1},
	{"ret", 0x4D, 0},
	// I/O
	{"ina", 0x4E, 1},
	{"inaasc", 0x4F, 1},
	{"outa", 0x50, 1},
	{"outn", 0x51, 1},
	{"outaasc", 0x52, 1},
	{"outnasc", 0x53, 1},
	// Block transfer from blts, length bltl
	{"blta", 0x54, 1},
}

// commandMap is built once and never modified.
var commandMap = func() map[string]Command {
	m := make(map[string]Command, len(commandList))
	for _, cmd := range commandList {
		m[cmd.Mnemonic] = cmd
	}
	return m
}()

// LookupCommand returns the command table entry for a mnemonic.
func LookupCommand(mnemonic string) (cmd Command, err error) {
	cmd, ok := commandMap[mnemonic]
	if !ok {
		err = ErrUnknownCommand{
			Message:  f("not in command table"),
			Mnemonic: mnemonic,
		}
	}
	return
}

// IsCommand returns true if the mnemonic is in the command table.
func IsCommand(mnemonic string) bool {
	_, ok := commandMap[mnemonic]
	return ok
}

// CommandByOpcode returns the command table entry for an opcode.
func CommandByOpcode(op Opcode) (cmd Command, ok bool) {
	n, ok := slices.BinarySearchFunc(commandList, op, func(c Command, op Opcode) int {
		return int(c.Opcode) - int(op)
	})
	if ok {
		cmd = commandList[n]
	}
	return
}

// Commands iterates over mnemonics and opcodes in opcode order.
func Commands() iter.Seq2[string, uint32] {
	return func(yield func(mnemonic string, opcode uint32) bool) {
		for _, cmd := range commandList {
			if !yield(cmd.Mnemonic, uint32(cmd.Opcode)) {
				return
			}
		}
	}
}
