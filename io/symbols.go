package io

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/shyasm/asm"
	"github.com/ezrec/shyasm/isa"
)

// WriteSymbols writes the program's labels as a YAML map of label name to
// hex address.
func WriteSymbols(file io.Writer, prog *asm.Program) (err error) {
	symbols := make(map[string]string, len(prog.Label))
	for name, addr := range prog.Labels() {
		symbols[name] = fmt.Sprintf("0x%08x", uint32(addr))
	}

	enc := yaml.NewEncoder(file)
	err = enc.Encode(symbols)
	if err != nil {
		return
	}

	err = enc.Close()
	return
}

// ReadSymbols reads a symbol map written by WriteSymbols.
func ReadSymbols(file io.Reader) (label map[string]isa.Address, err error) {
	var symbols map[string]string
	err = yaml.NewDecoder(file).Decode(&symbols)
	if err == io.EOF {
		err = nil
	}
	if err != nil {
		return
	}

	label = make(map[string]isa.Address, len(symbols))
	for name, value := range symbols {
		addr, perr := strconv.ParseUint(value, 0, 32)
		if perr != nil {
			err = ErrSymbolAddress{Label: name, Value: value}
			return
		}
		label[name] = isa.Address(addr)
	}

	return
}

// SaveSymbols writes the symbol map to a file.
func SaveSymbols(filesys CreateFS, name string, prog *asm.Program) (err error) {
	file, err := filesys.Create(name)
	if err != nil {
		return
	}
	defer func() {
		cerr := file.Close()
		if err == nil {
			err = cerr
		}
	}()

	err = WriteSymbols(file, prog)
	return
}
