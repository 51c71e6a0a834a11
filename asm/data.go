package asm

import (
	"log"
	"math"

	"github.com/ezrec/shyasm/isa"
)

// dataWords returns the words a DATA value occupies.
func dataWords(tok Token) (words []uint32, err error) {
	switch tok.Type() {
	case TOKEN_CHAR, TOKEN_HEX, TOKEN_DEC, TOKEN_BIN:
		var value uint32
		value, err = tok.Uint32()
		words = []uint32{value}
	case TOKEN_STRING, TOKEN_ARRAY:
		var tk *Tokenizer
		tk, err = tok.Tokenizer()
		if err != nil {
			return
		}
		for _, elem := range tk.All() {
			switch elem.Type() {
			case TOKEN_CHAR, TOKEN_HEX, TOKEN_DEC, TOKEN_BIN:
			default:
				err = ErrDataValue
				return
			}
			var value uint32
			value, err = elem.Uint32()
			if err != nil {
				return
			}
			words = append(words, value)
		}
	default:
		err = ErrDataValue
	}

	return
}

// parseDataLine stores one '<address> <value>' line into mem.
func (asm *Assembler) parseDataLine(mem *isa.Memory, tokens []Token) (err error) {
	if len(tokens) == 0 {
		return
	}

	if len(tokens) != 2 {
		err = ErrDataSyntax
		return
	}

	switch tokens[0].Type() {
	case TOKEN_HEX, TOKEN_DEC, TOKEN_BIN:
	default:
		err = ErrDataSyntax
		return
	}

	base, err := tokens[0].Uint32()
	if err != nil {
		return
	}

	words, err := dataWords(tokens[1])
	if err != nil {
		return
	}

	if uint64(base)+uint64(len(words)) > math.MaxUint32+1 {
		err = isa.ErrOverflow{
			Message: f("%d words at 0x%08x pass the end of the address space", len(words), base),
		}
		return
	}

	for n, word := range words {
		addr := isa.Address(base) + isa.Address(n)
		err = mem.Write(word, addr)
		if err != nil {
			return
		}
	}

	if asm.Verbose {
		log.Printf("%v: %v word(s)", isa.Address(base), len(words))
	}

	return
}

// parseData stores the body of a DATA section into mem, first line at
// lineno.
func (asm *Assembler) parseData(mem *isa.Memory, body string, lineno int) (err error) {
	tk := NewTokenizer(body)
	for n, tokens := range tk.Lines() {
		err = asm.parseDataLine(mem, tokens)
		if err != nil {
			err = ErrSyntax{
				Section: SECTION_DATA,
				LineNo:  lineno + n - 1,
				Line:    joinWords(lexemes(tokens)),
				Err:     err,
			}
			return
		}
	}

	return
}
