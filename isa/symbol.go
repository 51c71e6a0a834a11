package isa

import (
	"iter"
)

// Symbol is a name reserved by the ISA: a register or a command mnemonic.
type Symbol struct {
	Name   string
	Region Region // REGION_REG or REGION_COMMAND.
	Value  uint32 // Register address or opcode.
}

func (sym Symbol) String() string {
	return f("%v 0x%02x %v", sym.Region, sym.Value, sym.Name)
}

// Symbols iterates over every register, then every command, each in
// address order.
func Symbols() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for name, addr := range Registers() {
			if !yield(Symbol{Name: name, Region: REGION_REG, Value: addr}) {
				return
			}
		}
		for name, opcode := range Commands() {
			if !yield(Symbol{Name: name, Region: REGION_COMMAND, Value: opcode}) {
				return
			}
		}
	}
}
