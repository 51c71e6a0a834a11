package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/shyasm/asm"
	"github.com/ezrec/shyasm/isa"
)

func TestWriteSymbols(t *testing.T) {
	assert := assert.New(t)

	prog := &asm.Program{
		Label: map[string]isa.Address{
			"main": 0x00100100,
			"loop": 0x00100106,
		},
	}

	var buf bytes.Buffer
	err := WriteSymbols(&buf, prog)
	require.NoError(t, err)
	assert.Contains(buf.String(), `main: "0x00100100"`)
	assert.Contains(buf.String(), `loop: "0x00100106"`)

	label, err := ReadSymbols(&buf)
	require.NoError(t, err)
	assert.Equal(prog.Label, label)
}

func TestReadSymbols(t *testing.T) {
	assert := assert.New(t)

	label, err := ReadSymbols(strings.NewReader("start: 0x00100100\nend: '1049859'\n"))
	require.NoError(t, err)
	assert.Equal(map[string]isa.Address{
		"start": 0x00100100,
		"end":   1049859,
	}, label)

	label, err = ReadSymbols(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(0, len(label))

	var bad ErrSymbolAddress
	_, err = ReadSymbols(strings.NewReader("start: nowhere\n"))
	assert.ErrorAs(err, &bad)
	assert.Equal("start", bad.Label)
}

func TestSaveSymbols(t *testing.T) {
	assert := assert.New(t)

	filesys := newMemFS()

	a := &asm.Assembler{}
	_, prog, err := a.Assemble(strings.NewReader("___CODE___\n.top pop\n.next jmpa .top\n"))
	require.NoError(t, err)

	err = SaveSymbols(filesys, "out.yaml", prog)
	require.NoError(t, err)

	file, err := filesys.Open("out.yaml")
	require.NoError(t, err)
	defer file.Close()

	label, err := ReadSymbols(file)
	require.NoError(t, err)
	assert.Equal(map[string]isa.Address{
		"top":  0x00100100,
		"next": 0x00100103,
	}, label)
}
