// Package isa models the ShyISA instruction-set architecture for the
// assembler.
//
// A single flat 32-bit address space is partitioned into five regions:
// registers, commands (opcodes), I/O ports, video memory and main memory.
// Address classifies raw values into those regions, RegisterFile holds the
// thirty named registers, the command table maps mnemonics to opcodes, and
// Memory is the word image that an assembler run fills in.
//
// Every fallible operation returns an error from the closed Error family.
package isa
