package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupCommand(t *testing.T) {
	assert := assert.New(t)

	cmd, err := LookupCommand("addn")
	assert.NoError(err)
	assert.Equal(Opcode(0x21), cmd.Opcode)
	assert.Equal(2, cmd.Operands)
	assert.Equal(REGION_COMMAND, cmd.Address().Region())

	cmd, err = LookupCommand("blta")
	assert.NoError(err)
	assert.Equal(Opcode(0x54), cmd.Opcode)

	_, err = LookupCommand("nosuch")
	var euc ErrUnknownCommand
	if assert.ErrorAs(err, &euc) {
		assert.Equal("nosuch", euc.Mnemonic)
		assert.Equal(KIND_UNKNOWN_COMMAND, euc.Kind())
	}

	_, err = LookupCommand("ADDN")
	assert.Error(err)
}

func TestCommandTable(t *testing.T) {
	assert := assert.New(t)

	expected := Opcode(0x20)
	for mnemonic, opcode := range Commands() {
		assert.Equal(uint32(expected), opcode, mnemonic)
		assert.True(IsCommand(mnemonic))

		cmd, ok := CommandByOpcode(Opcode(opcode))
		assert.True(ok)
		assert.Equal(mnemonic, cmd.Mnemonic)

		assert.Equal(REGION_COMMAND, Address(opcode).Region())
		expected++
	}
	assert.Equal(Opcode(0x55), expected)

	_, ok := CommandByOpcode(0x55)
	assert.False(ok)
	_, ok = CommandByOpcode(0x1F)
	assert.False(ok)
}

func TestCommandOperands(t *testing.T) {
	assert := assert.New(t)

	for _, mnemonic := range []string{"pop", "ret"} {
		cmd, err := LookupCommand(mnemonic)
		assert.NoError(err)
		assert.Equal(0, cmd.Operands, mnemonic)
	}

	for _, mnemonic := range []string{"nota", "pushn", "jmpn", "calln", "outn", "blta"} {
		cmd, err := LookupCommand(mnemonic)
		assert.NoError(err)
		assert.Equal(1, cmd.Operands, mnemonic)
	}
}
