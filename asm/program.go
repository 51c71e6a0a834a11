package asm

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/shyasm/isa"
)

const (
	CODE_START        = isa.MEM_START // Address of the first instruction.
	INSTRUCTION_WORDS = 3             // Opcode plus two operand words.
)

// Instruction is one encoded line of the CODE section.
type Instruction struct {
	LineNo    int         // Source line number.
	Address   isa.Address // Address of the opcode word.
	Words     []string    // Source lexemes.
	Command   isa.Command // Command table entry.
	Operand   [2]uint32   // Operand words.
	LinkLabel [2]string   // Labels to link into the operand words.
}

// Codes returns the memory words of the instruction.
func (ins *Instruction) Codes() [INSTRUCTION_WORDS]uint32 {
	return [INSTRUCTION_WORDS]uint32{uint32(ins.Command.Opcode), ins.Operand[0], ins.Operand[1]}
}

func (ins *Instruction) String() string {
	return fmt.Sprintf("%v %v", ins.Address, joinWords(ins.Words))
}

// Program is the listing produced from the CODE section.
type Program struct {
	Instructions []Instruction
	Label        map[string]isa.Address // Label name, without the '.', to address.
}

// Debug locates the word at an address within the listing.
type Debug struct {
	*Instruction
	Index int
}

// currentAddress is the address the next instruction is placed at.
func (prog *Program) currentAddress() isa.Address {
	return isa.Address(CODE_START + INSTRUCTION_WORDS*len(prog.Instructions))
}

// Debug finds the instruction covering addr. Instruction is nil if none
// does.
func (prog *Program) Debug(addr isa.Address) (dbg Debug) {
	for n := range prog.Instructions {
		ins := &prog.Instructions[n]
		if addr >= ins.Address && addr < ins.Address+INSTRUCTION_WORDS {
			dbg = Debug{
				Instruction: ins,
				Index:       int(addr - ins.Address),
			}
			break
		}
	}

	return
}

// Codes iterates over the address and value of every instruction word.
func (prog *Program) Codes() iter.Seq2[isa.Address, uint32] {
	return func(yield func(addr isa.Address, code uint32) bool) {
		for n := range prog.Instructions {
			ins := &prog.Instructions[n]
			for index, code := range ins.Codes() {
				if !yield(ins.Address+isa.Address(index), code) {
					return
				}
			}
		}
	}
}

// Binary returns the instruction words in address order.
func (prog *Program) Binary() (bins []uint32) {
	for _, code := range prog.Codes() {
		bins = append(bins, code)
	}

	return
}

// Labels iterates over labels in address order.
func (prog *Program) Labels() iter.Seq2[string, isa.Address] {
	return func(yield func(string, isa.Address) bool) {
		names := slices.SortedFunc(maps.Keys(prog.Label), func(a, b string) int {
			return cmp.Or(cmp.Compare(prog.Label[a], prog.Label[b]), cmp.Compare(a, b))
		})
		for _, name := range names {
			if !yield(name, prog.Label[name]) {
				return
			}
		}
	}
}

// link resolves label references into operand words.
func (prog *Program) link() (err error) {
	for n := range prog.Instructions {
		ins := &prog.Instructions[n]
		for index, label := range ins.LinkLabel {
			if len(label) == 0 {
				continue
			}
			addr, ok := prog.Label[label]
			if !ok {
				err = ErrSyntax{
					Section: SECTION_CODE,
					LineNo:  ins.LineNo,
					Line:    joinWords(ins.Words),
					Err:     ErrLabelMissing(label),
				}
				return
			}
			ins.Operand[index] = uint32(addr)
		}
	}

	return
}

// Store writes every instruction word into mem.
func (prog *Program) Store(mem *isa.Memory) (err error) {
	for addr, code := range prog.Codes() {
		err = mem.Write(code, addr)
		if err != nil {
			return
		}
	}

	return
}
