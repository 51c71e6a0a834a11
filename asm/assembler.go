package asm

import (
	"fmt"
	"io"
	"log"
	"maps"

	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/shyasm/isa"
)

// Predefined system defines.
var sysDefine = DefineMap{
	"CODE_START": fmt.Sprintf("%#x", CODE_START),
	"MEM_START":  fmt.Sprintf("%#x", isa.MEM_START),
	"VRAM_START": fmt.Sprintf("%#x", isa.VRAM_START),
	"IO_START":   fmt.Sprintf("%#x", isa.IO_START),
}

// Assembler turns ShyISA source into a memory image.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine DefineMap // Predefines, overridden by the DEFINE section.
}

// Predefine defines a macro before the source is read. A DEFINE section
// entry of the same name takes precedence. An empty name is ignored.
func (asm *Assembler) Predefine(name string, value string) {
	if len(name) == 0 {
		return
	}

	if asm.predefine == nil {
		asm.predefine = DefineMap{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// dump renders a value for verbose logs.
func dump(value any) string {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	return printer.Sprint(value)
}

// Preprocess strips comments, expands defines and evaluates expressions.
func (asm *Assembler) Preprocess(text string) (src *Source, err error) {
	defines := maps.Clone(sysDefine)
	maps.Copy(defines, asm.predefine)

	src = NewSource(text).StripComments().ExpandDefines(defines)
	if asm.Verbose {
		log.Printf("defines: %v", dump(src.Defines()))
	}

	src, err = src.Evaluate()
	return
}

// AssembleInto assembles text into mem. DATA is written first; CODE is
// written after, so an instruction overwrites data at the same address.
func (asm *Assembler) AssembleInto(text string, mem *isa.Memory) (prog *Program, err error) {
	if mem == nil {
		err = isa.ErrAllocation{
			Message: f("no memory image to assemble into"),
		}
		return
	}

	src, err := asm.Preprocess(text)
	if err != nil {
		return
	}
	text = src.String()

	if body, lineno, ok := sectionBody(text, SECTION_DATA); ok {
		err = asm.parseData(mem, body, lineno)
		if err != nil {
			return
		}
	}

	body, lineno, ok := sectionBody(text, SECTION_CODE)
	if !ok {
		prog = &Program{Label: make(map[string]isa.Address)}
		return
	}

	prog, err = asm.parseCode(body, lineno)
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("labels: %v", dump(prog.Label))
	}

	err = prog.Store(mem)
	return
}

// Assemble reads the source from r and assembles it into a new memory
// image.
func (asm *Assembler) Assemble(r io.Reader) (mem *isa.Memory, prog *Program, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	mem = isa.NewMemory()
	prog, err = asm.AssembleInto(string(data), mem)
	if err != nil {
		mem = nil
		prog = nil
	}

	return
}
