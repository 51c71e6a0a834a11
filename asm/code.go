package asm

import (
	"log"
	"strings"

	"github.com/ezrec/shyasm/isa"
)

// joinWords rebuilds a source line from its lexemes.
func joinWords(words []string) string {
	return strings.Join(words, " ")
}

// lexemes returns the text of each token.
func lexemes(tokens []Token) (words []string) {
	words = make([]string, len(tokens))
	for n, tok := range tokens {
		words[n] = tok.Text()
	}
	return
}

// labelName returns the name of a FLAG token, without the '.'.
func labelName(tok Token) (name string, err error) {
	name = strings.TrimPrefix(tok.Text(), ".")
	if len(name) == 0 {
		err = ErrLabelEmpty
	}
	return
}

// operand encodes one instruction operand. Registers encode as their
// address. Labels are left for linking.
func operand(tok Token) (value uint32, label string, err error) {
	switch {
	case tok.Type().Numeric():
		value, err = tok.Uint32()
	case tok.Type() == TOKEN_FLAG:
		label, err = labelName(tok)
		if err != nil {
			err = ErrOperandInvalid
		}
	default:
		err = ErrOperandInvalid
	}

	return
}

// parseInstruction encodes one CODE line, recording any labels that
// precede the command.
func (asm *Assembler) parseInstruction(prog *Program, tokens []Token, lineno int) (err error) {
	for len(tokens) > 0 && tokens[0].Type() == TOKEN_FLAG {
		var label string
		label, err = labelName(tokens[0])
		if err != nil {
			return
		}
		if _, ok := prog.Label[label]; ok {
			err = ErrLabelDuplicate
			return
		}
		prog.Label[label] = prog.currentAddress()
		tokens = tokens[1:]
	}

	if len(tokens) == 0 {
		return
	}

	head := tokens[0]
	switch head.Type() {
	case TOKEN_COMMAND, TOKEN_ANY:
	default:
		err = ErrInstructionHead
		return
	}

	cmd, err := isa.LookupCommand(head.Text())
	if err != nil {
		return
	}

	args := tokens[1:]
	if len(args) != cmd.Operands {
		err = ErrOperandCount
		return
	}

	ins := Instruction{
		LineNo:  lineno,
		Address: prog.currentAddress(),
		Words:   lexemes(tokens),
		Command: cmd,
	}

	for n, arg := range args {
		ins.Operand[n], ins.LinkLabel[n], err = operand(arg)
		if err != nil {
			return
		}
	}

	if asm.Verbose {
		log.Printf("%v: %v %v", ins.Address, joinWords(ins.Words), ins.Codes())
	}

	prog.Instructions = append(prog.Instructions, ins)
	return
}

// parseCode encodes the body of a CODE section, first line at lineno.
func (asm *Assembler) parseCode(body string, lineno int) (prog *Program, err error) {
	prog = &Program{
		Label: make(map[string]isa.Address),
	}

	tk := NewTokenizer(body)
	for n, tokens := range tk.Lines() {
		err = asm.parseInstruction(prog, tokens, lineno+n-1)
		if err != nil {
			err = ErrSyntax{
				Section: SECTION_CODE,
				LineNo:  lineno + n - 1,
				Line:    joinWords(lexemes(tokens)),
				Err:     err,
			}
			return
		}
	}

	err = prog.link()
	return
}
