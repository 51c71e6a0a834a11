package asm

import (
	"fmt"
	"iter"

	"github.com/ezrec/shyasm/isa"
)

// Disassemble decodes the instructions of a memory image, starting at
// CODE_START and stopping at the first word that is not an opcode, or at the
// end of the written image. Operands
// are shown in hex; the image does not record which were registers.
func Disassemble(mem *isa.Memory) iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		end := isa.Address(CODE_START + mem.Extent())
		for addr := isa.Address(CODE_START); addr < end; addr += INSTRUCTION_WORDS {
			var words [INSTRUCTION_WORDS]uint32
			for n := range words {
				word, err := mem.Read(addr + isa.Address(n))
				if err != nil {
					return
				}
				words[n] = word
			}

			if words[0] > 0xff {
				return
			}
			cmd, ok := isa.CommandByOpcode(isa.Opcode(words[0]))
			if !ok {
				return
			}

			ins := Instruction{
				Address: addr,
				Words:   []string{cmd.Mnemonic},
				Command: cmd,
				Operand: [2]uint32{words[1], words[2]},
			}
			for n := range cmd.Operands {
				ins.Words = append(ins.Words, fmt.Sprintf("%#x", ins.Operand[n]))
			}

			if !yield(ins) {
				return
			}
		}
	}
}
