package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/shyasm/isa"
)

func TestTokenUint32(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		token Token
		value uint32
	}{
		{NewToken("0x10", TOKEN_HEX), 16},
		{NewToken("0XfF", TOKEN_HEX), 255},
		{NewToken("101b", TOKEN_BIN), 5},
		{NewToken("'A'", TOKEN_CHAR), 65},
		{NewToken("1234", TOKEN_DEC), 1234},
		{NewToken("4294967295", TOKEN_DEC), 0xffffffff},
		{NewToken("1x", TOKEN_REG), 0x01},
		{NewToken("pc", TOKEN_REG), isa.REG_PC},
		{NewToken("bltl", TOKEN_REG), isa.REG_BLTL},
	}

	for _, entry := range table {
		value, err := entry.token.Uint32()
		assert.NoError(err, entry.token)
		assert.Equal(entry.value, value, entry.token)
	}
}

func TestTokenUint32Errors(t *testing.T) {
	assert := assert.New(t)

	var invalid isa.ErrInvalidType
	_, err := NewToken("addn", TOKEN_COMMAND).Uint32()
	assert.ErrorAs(err, &invalid)
	assert.Equal("COMMAND", invalid.Type)

	_, err = NewToken(".loop", TOKEN_FLAG).Uint32()
	assert.ErrorAs(err, &invalid)

	_, err = NewToken("{1,2}", TOKEN_ARRAY).Uint32()
	assert.ErrorAs(err, &invalid)

	_, err = NewToken("0x", TOKEN_HEX).Uint32()
	assert.ErrorAs(err, &invalid)

	// Lexemes that do not match their type.
	for _, tok := range []Token{
		NewToken("", TOKEN_CHAR),
		NewToken("'ab'", TOKEN_CHAR),
		NewToken("\"a\"", TOKEN_CHAR),
		NewToken("0", TOKEN_HEX),
		NewToken("", TOKEN_HEX),
		NewToken("", TOKEN_DEC),
		NewToken("b", TOKEN_BIN),
	} {
		_, err = tok.Uint32()
		assert.ErrorAs(err, &invalid, tok.String())
	}

	var overflow isa.ErrOverflow
	_, err = NewToken("4294967296", TOKEN_DEC).Uint32()
	assert.ErrorAs(err, &overflow)

	_, err = NewToken("0x100000000", TOKEN_HEX).Uint32()
	assert.ErrorAs(err, &overflow)
}

func TestTokenTokenizer(t *testing.T) {
	assert := assert.New(t)

	tk, err := NewToken("{'A',2,3}", TOKEN_ARRAY).Tokenizer()
	assert.NoError(err)
	assert.Equal([]Token{
		NewToken("'A'", TOKEN_CHAR),
		NewToken("2", TOKEN_DEC),
		NewToken("3", TOKEN_DEC),
	}, tk.tokens)

	tk, err = NewToken(`"Hi"`, TOKEN_STRING).Tokenizer()
	assert.NoError(err)
	assert.Equal([]Token{
		NewToken("'H'", TOKEN_CHAR),
		NewToken("'i'", TOKEN_CHAR),
	}, tk.tokens)

	tk, err = NewToken("{}", TOKEN_ARRAY).Tokenizer()
	assert.NoError(err)
	assert.Equal(0, tk.Len())

	tk, err = NewToken("{0x1,nope,101b}", TOKEN_ARRAY).Tokenizer()
	assert.NoError(err)
	assert.Equal([]Token{
		NewToken("0x1", TOKEN_HEX),
		NewToken("nope", TOKEN_ANY),
		NewToken("101b", TOKEN_BIN),
	}, tk.tokens)

	var invalid isa.ErrInvalidOperation
	_, err = NewToken("0x10", TOKEN_HEX).Tokenizer()
	assert.ErrorAs(err, &invalid)
	assert.Equal("HEX", invalid.Type)

	for _, tok := range []Token{
		NewToken("{", TOKEN_ARRAY),
		NewToken("", TOKEN_ARRAY),
		NewToken("1,2}", TOKEN_ARRAY),
		NewToken("\"", TOKEN_STRING),
		NewToken("", TOKEN_STRING),
	} {
		_, err = tok.Tokenizer()
		assert.ErrorAs(err, &invalid, tok.String())
	}
}

func TestTokenNumeric(t *testing.T) {
	assert := assert.New(t)

	assert.True(TOKEN_CHAR.Numeric())
	assert.True(TOKEN_REG.Numeric())
	assert.False(TOKEN_STRING.Numeric())
	assert.False(TOKEN_COMMAND.Numeric())
	assert.Equal(`DEC "12"`, NewToken("12", TOKEN_DEC).String())
}
