package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/shyasm/isa"
)

const helloSource = `// Print a greeting
___DEFINE___
MSG 0x00100200
LEN 5
___DATA___
MSG "Hello"
$(MSG+LEN) 0
___CODE___
.main
  setn blts MSG       /* source */
  setn bltl LEN
  blta 0x0
.halt setn ex 1
  jmpa .halt
`

func TestAssemble(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	mem, prog, err := asm.Assemble(strings.NewReader(helloSource))
	require.NoError(t, err)
	require.NotNil(t, mem)
	require.NotNil(t, prog)

	assert.Equal([]uint32{'H', 'e', 'l', 'l', 'o', 0}, readWords(t, mem, 0x00100200, 6))

	assert.Equal([]uint32{
		0x3E, isa.REG_BLTS, 0x00100200,
		0x3E, isa.REG_BLTL, 5,
		0x54, 0, 0,
		0x3E, isa.REG_EX, 1,
		0x47, 0x00100109, 0,
	}, readWords(t, mem, CODE_START, 15))

	assert.Equal(isa.Address(0x00100100), prog.Label["main"])
	assert.Equal(isa.Address(0x00100109), prog.Label["halt"])

	// Source line numbers survive the single-line comments.
	assert.Equal(10, prog.Instructions[0].LineNo)
	assert.Equal(14, prog.Instructions[4].LineNo)
}

func TestAssemblePredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("COUNT", "3")
	asm.Predefine("REG", "2x")
	asm.Predefine("LEN", "9")

	src := "___DEFINE___\nLEN 4\n___CODE___\nsetn REG COUNT\nsetn 1x LEN\nsetn 3x CODE_START\n"
	mem, _, err := asm.Assemble(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal([]uint32{
		0x3E, 0x02, 3,
		0x3E, 0x01, 4,
		0x3E, 0x03, CODE_START,
	}, readWords(t, mem, CODE_START, 9))
}

func TestAssemblePredefineEmpty(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("", "1")

	src, err := asm.Preprocess("___CODE___\npop \n")
	require.NoError(t, err)
	assert.Equal("___CODE___\npop \n", src.String())
	assert.NotContains(src.Defines(), "")
}

func TestAssemblePreprocess(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	src, err := asm.Preprocess("___CODE___\nsetn 1x $(MEM_START + 1) // one past\n")
	require.NoError(t, err)
	assert.Equal("___CODE___\nsetn 1x 0x100101 \n", src.String())
	assert.Equal("0x100", src.Defines()["VRAM_START"])
	assert.Equal("0x70", src.Defines()["IO_START"])
}

func TestAssembleInto(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	var alloc isa.ErrAllocation
	_, err := asm.AssembleInto("___CODE___\npop\n", nil)
	assert.ErrorAs(err, &alloc)

	// CODE is written after DATA.
	mem := isa.NewMemory()
	prog, err := asm.AssembleInto("___DATA___\n0x00100100 {9,9,9,9}\n___CODE___\npop\n", mem)
	require.NoError(t, err)
	assert.Equal(1, len(prog.Instructions))
	assert.Equal([]uint32{0x46, 0, 0, 9}, mem.Word[:4])

	// No CODE section.
	mem.Reset()
	prog, err = asm.AssembleInto("___DATA___\n0x00100100 7\n", mem)
	require.NoError(t, err)
	assert.Equal(0, len(prog.Instructions))
	assert.Equal(uint32(7), mem.Word[0])

	// Empty source.
	prog, err = asm.AssembleInto("", isa.NewMemory())
	require.NoError(t, err)
	assert.Equal(0, len(prog.Label))
}

func TestAssembleErrors(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	var syntax ErrSyntax
	mem, prog, err := asm.Assemble(strings.NewReader("___DATA___\n0x00100100 1\n0x00100101 nope\n"))
	assert.ErrorAs(err, &syntax)
	assert.Equal(SECTION_DATA, syntax.Section)
	assert.Equal(3, syntax.LineNo)
	assert.Nil(mem)
	assert.Nil(prog)

	_, _, err = asm.Assemble(strings.NewReader("___DATA___\n0x1 1\n___CODE___\n\nsetn 1x\n"))
	assert.ErrorAs(err, &syntax)

	_, _, err = asm.Assemble(strings.NewReader("___CODE___\n\nsetn 1x\n"))
	assert.ErrorIs(err, ErrOperandCount)
	assert.ErrorAs(err, &syntax)
	assert.Equal(SECTION_CODE, syntax.Section)
	assert.Equal(3, syntax.LineNo)

	var expr ErrParseExpression
	_, _, err = asm.Assemble(strings.NewReader("___CODE___\nsetn 1x $(1/0)\n"))
	assert.ErrorAs(err, &expr)

	_, _, err = asm.Assemble(strings.NewReader("___CODE___\njmpa .\n"))
	assert.ErrorIs(err, ErrOperandInvalid)

	_, _, err = asm.Assemble(strings.NewReader("___CODE___\n. pop\n"))
	assert.ErrorIs(err, ErrLabelEmpty)
}

func TestAssembleVerbose(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Verbose: true}

	_, prog, err := asm.Assemble(strings.NewReader("___DATA___\n0x00100200 {1,2}\n___CODE___\n.top jmpa .top\n"))
	require.NoError(t, err)
	assert.Equal(isa.Address(CODE_START), prog.Label["top"])
}
