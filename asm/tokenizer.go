package asm

import (
	"iter"
	"strings"

	"github.com/ezrec/shyasm/isa"
)

// isSpace matches the separators of the assembly grammar.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// isHexDigit matches [0-9a-fA-F].
func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isDigit matches [0-9].
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// word returns the length of the whitespace delimited word at the start of
// src. The delimiter is not part of the word.
func word(src string) (n int) {
	for n < len(src) && !isSpace(src[n]) {
		n++
	}
	return
}

// A classifier returns the length of the lexeme it accepts at the start of
// src, or 0 to reject.
type classifier func(src string) int

func literal(lit string) classifier {
	return func(src string) int {
		if strings.HasPrefix(src, lit) {
			return len(lit)
		}
		return 0
	}
}

func lexChar(src string) int {
	if len(src) >= 3 && src[0] == '\'' && src[2] == '\'' {
		return 3
	}
	return 0
}

func lexHex(src string) (n int) {
	if len(src) < 2 || src[0] != '0' || (src[1] != 'x' && src[1] != 'X') {
		return
	}
	n = 2
	for n < len(src) && isHexDigit(src[n]) {
		n++
	}
	return
}

func lexBin(src string) (n int) {
	for n < len(src) && (src[n] == '0' || src[n] == '1') {
		n++
	}
	if n == 0 || n == len(src) || src[n] != 'b' {
		return 0
	}
	return n + 1
}

func lexDec(src string) (n int) {
	for n < len(src) && isDigit(src[n]) {
		n++
	}
	if n < len(src) && !isSpace(src[n]) {
		return 0
	}
	return
}

func lexReg(src string) (n int) {
	n = word(src)
	if _, ok := isa.RegisterAddress(src[:n]); !ok {
		return 0
	}
	return
}

// delimited accepts open ... close with no embedded whitespace.
func delimited(open, close byte) classifier {
	return func(src string) int {
		if len(src) == 0 || src[0] != open {
			return 0
		}
		for n := 1; n < len(src); n++ {
			switch {
			case src[n] == close:
				return n + 1
			case isSpace(src[n]):
				return 0
			}
		}
		return 0
	}
}

func lexFlag(src string) (n int) {
	if len(src) == 0 || src[0] != '.' {
		return
	}
	return word(src)
}

func lexCommand(src string) (n int) {
	n = word(src)
	if !isa.IsCommand(src[:n]) {
		return 0
	}
	return
}

// grammar is tried in order at each position; the first match wins.
var grammar = []struct {
	tokenType TokenType
	match     classifier
}{
	{TOKEN_NEXT_LINE, literal("\n")},
	{TOKEN_LINE_COMMENT, literal("//")},
	{TOKEN_BLOCK_COMMENT_START, literal("/*")},
	{TOKEN_BLOCK_COMMENT_END, literal("*/")},
	{TOKEN_CHAR, lexChar},
	{TOKEN_HEX, lexHex},
	{TOKEN_BIN, lexBin},
	{TOKEN_DEC, lexDec},
	{TOKEN_REG, lexReg},
	{TOKEN_ARRAY, delimited('{', '}')},
	{TOKEN_STRING, delimited('"', '"')},
	{TOKEN_FLAG, lexFlag},
	{TOKEN_COMMAND, lexCommand},
}

// scan returns the next token of src and the remaining input.
func scan(src string) (tok Token, rest string) {
	for len(src) != 0 && src[0] != '\n' && isSpace(src[0]) {
		src = src[1:]
	}

	if len(src) == 0 {
		tok = NewToken("", TOKEN_EOF)
		return
	}

	for _, rule := range grammar {
		n := rule.match(src)
		if n > 0 {
			tok = NewToken(src[:n], rule.tokenType)
			rest = src[n:]
			return
		}
	}

	n := word(src)
	tok = NewToken(src[:n], TOKEN_ANY)
	rest = src[n:]
	return
}

// lex eagerly tokenizes the whole input.
func lex(src string) (tokens []Token) {
	for {
		var tok Token
		tok, src = scan(src)
		if tok.Type() == TOKEN_EOF {
			return
		}
		tokens = append(tokens, tok)
	}
}

// Tokenizer is a fixed token sequence with a read cursor.
type Tokenizer struct {
	tokens []Token
	index  int
}

// NewTokenizer tokenizes input.
func NewTokenizer(input string) (tk *Tokenizer) {
	tk = &Tokenizer{
		tokens: lex(input),
	}
	return
}

// Len returns the number of tokens.
func (tk *Tokenizer) Len() int {
	return len(tk.tokens)
}

// Token returns the token at index i without moving the cursor.
func (tk *Tokenizer) Token(i int) (tok Token, err error) {
	if i < 0 || i >= len(tk.tokens) {
		err = isa.ErrOverflow{
			Message: f("token %d of %d", i, len(tk.tokens)),
		}
		return
	}

	tok = tk.tokens[i]
	return
}

// Next returns the token at the cursor and advances it.
func (tk *Tokenizer) Next() (tok Token, err error) {
	tok, err = tk.Token(tk.index)
	if err != nil {
		return
	}

	tk.index++
	return
}

// Reset rewinds the cursor to the first token.
func (tk *Tokenizer) Reset() {
	tk.index = 0
}

// All iterates over every token regardless of the cursor.
func (tk *Tokenizer) All() iter.Seq2[int, Token] {
	return func(yield func(int, Token) bool) {
		for n, tok := range tk.tokens {
			if !yield(n, tok) {
				return
			}
		}
	}
}

// Lines iterates over the token sequence split at NEXT_LINE tokens,
// yielding the 1-based line number and the tokens of that line.
func (tk *Tokenizer) Lines() iter.Seq2[int, []Token] {
	return func(yield func(int, []Token) bool) {
		lineno := 1
		start := 0
		for n, tok := range tk.tokens {
			if tok.Type() != TOKEN_NEXT_LINE {
				continue
			}
			if !yield(lineno, tk.tokens[start:n]) {
				return
			}
			lineno++
			start = n + 1
		}
		if start < len(tk.tokens) {
			yield(lineno, tk.tokens[start:])
		}
	}
}

// String joins the lexemes with single spaces. No space is placed around
// a NEXT_LINE token.
func (tk *Tokenizer) String() string {
	var sb strings.Builder

	for n, tok := range tk.tokens {
		if n > 0 && tok.Type() != TOKEN_NEXT_LINE && tk.tokens[n-1].Type() != TOKEN_NEXT_LINE {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Text())
	}

	return sb.String()
}
