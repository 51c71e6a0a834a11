package asm

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ezrec/shyasm/isa"
)

// TokenType is the lexical class of a token.
type TokenType int

//go:generate go tool stringer -linecomment -type=TokenType
const (
	TOKEN_LINE_COMMENT        = TokenType(0)  // LINE_COMMENT
	TOKEN_BLOCK_COMMENT_START = TokenType(1)  // BLOCK_COMMENT_START
	TOKEN_BLOCK_COMMENT_END   = TokenType(2)  // BLOCK_COMMENT_END
	TOKEN_CHAR                = TokenType(3)  // CHAR
	TOKEN_HEX                 = TokenType(4)  // HEX
	TOKEN_DEC                 = TokenType(5)  // DEC
	TOKEN_BIN                 = TokenType(6)  // BIN
	TOKEN_REG                 = TokenType(7)  // REG
	TOKEN_ARRAY               = TokenType(8)  // ARRAY
	TOKEN_STRING              = TokenType(9)  // STRING
	TOKEN_FLAG                = TokenType(10) // FLAG
	TOKEN_COMMAND             = TokenType(11) // COMMAND
	TOKEN_NEXT_LINE           = TokenType(12) // NEXT_LINE
	TOKEN_ANY                 = TokenType(13) // ANY
	TOKEN_EOF                 = TokenType(14) // EOF
)

// Numeric returns true if the token type coerces to a number.
func (tt TokenType) Numeric() bool {
	switch tt {
	case TOKEN_CHAR, TOKEN_HEX, TOKEN_DEC, TOKEN_BIN, TOKEN_REG:
		return true
	}
	return false
}

// Token is a lexeme and its class.
type Token struct {
	text      string
	tokenType TokenType
}

// NewToken creates a token.
func NewToken(text string, tokenType TokenType) Token {
	return Token{text: text, tokenType: tokenType}
}

// Type returns the token's class.
func (tok Token) Type() TokenType {
	return tok.tokenType
}

// Text returns the token's lexeme.
func (tok Token) Text() string {
	return tok.text
}

func (tok Token) String() string {
	return tok.tokenType.String() + " " + strconv.Quote(tok.text)
}

// parseUint parses digits in a radix, mapping strconv failures into the
// isa error family.
func (tok Token) parseUint(digits string, base int) (value uint32, err error) {
	v64, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = isa.ErrOverflow{
				Message: f("%v does not fit in 32 bits", tok.text),
			}
		} else {
			err = tok.malformed()
		}
		return
	}

	value = uint32(v64)
	return
}

// malformed reports a lexeme that does not have the shape of its type.
func (tok Token) malformed() error {
	return isa.ErrInvalidType{
		Message: f("malformed %v literal %v", tok.tokenType, tok.text),
		Type:    tok.tokenType.String(),
	}
}

// delimitedBy returns true if the lexeme is wrapped in open and close.
func (tok Token) delimitedBy(open, close byte) bool {
	text := tok.text
	return len(text) >= 2 && text[0] == open && text[len(text)-1] == close
}

// Uint32 coerces the token into a number. Registers yield their offset in
// the Register region.
func (tok Token) Uint32() (value uint32, err error) {
	text := tok.text

	switch tok.tokenType {
	case TOKEN_CHAR:
		if len(text) != 3 || !tok.delimitedBy('\'', '\'') {
			err = tok.malformed()
			return
		}
		value = uint32(text[1])
	case TOKEN_HEX:
		if len(text) < 2 {
			err = tok.malformed()
			return
		}
		value, err = tok.parseUint(text[2:], 16)
	case TOKEN_DEC:
		value, err = tok.parseUint(text, 10)
	case TOKEN_BIN:
		value, err = tok.parseUint(strings.TrimSuffix(text, "b"), 2)
	case TOKEN_REG:
		addr, ok := isa.RegisterAddress(text)
		if !ok {
			err = isa.ErrInvalidType{
				Message: f("%v is not a register name", text),
				Type:    tok.tokenType.String(),
			}
			return
		}
		value, err = addr.OffsetIn(isa.REGION_REG, "Token.Uint32")
	default:
		err = isa.ErrInvalidType{
			Message: f("%v is not numeric", text),
			Type:    tok.tokenType.String(),
		}
	}

	return
}

// Tokenizer re-lexes a composite token. An ARRAY yields one token per
// comma separated element; a STRING yields one CHAR per character.
func (tok Token) Tokenizer() (tk *Tokenizer, err error) {
	switch {
	case tok.tokenType == TOKEN_ARRAY && !tok.delimitedBy('{', '}'),
		tok.tokenType == TOKEN_STRING && !tok.delimitedBy('"', '"'):
		err = isa.ErrInvalidOperation{
			Message: f("malformed %v %v", tok.tokenType, tok.text),
			Type:    tok.tokenType.String(),
		}
		return
	}

	switch tok.tokenType {
	case TOKEN_ARRAY:
		interior := tok.text[1 : len(tok.text)-1]
		var tokens []Token
		if len(interior) != 0 {
			for field := range strings.SplitSeq(interior, ",") {
				tokens = append(tokens, lexElement(field))
			}
		}
		tk = &Tokenizer{tokens: tokens}
	case TOKEN_STRING:
		interior := tok.text[1 : len(tok.text)-1]
		tokens := make([]Token, 0, len(interior))
		for n := range len(interior) {
			tokens = append(tokens, NewToken("'"+interior[n:n+1]+"'", TOKEN_CHAR))
		}
		tk = &Tokenizer{tokens: tokens}
	default:
		err = isa.ErrInvalidOperation{
			Message: f("only ARRAY and STRING tokens can be re-lexed"),
			Type:    tok.tokenType.String(),
		}
	}

	return
}

// lexElement lexes one array field. A field that does not lex to exactly
// one token becomes an ANY token, which fails numeric coercion.
func lexElement(field string) Token {
	tokens := lex(field)
	if len(tokens) == 1 {
		return tokens[0]
	}
	return NewToken(field, TOKEN_ANY)
}
