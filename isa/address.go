package isa

import (
	"fmt"
)

// Region is one of the five disjoint partitions of the address space.
type Region int

//go:generate go tool stringer -linecomment -type=Region
const (
	REGION_REG     = Region(0) // Reg
	REGION_COMMAND = Region(1) // Command
	REGION_IO      = Region(2) // IO
	REGION_VRAM    = Region(3) // VRAM
	REGION_MEM     = Region(4) // Mem
)

// Region base addresses. Each region extends up to the next base; Mem
// extends to the top of the 32-bit space.
const (
	REG_START     = 0x00000000
	COMMAND_START = 0x00000020
	IO_START      = 0x00000070
	VRAM_START    = 0x00000100
	MEM_START     = 0x00100100
)

// Address is a raw 32-bit ShyISA address.
type Address uint32

// Region classifies the address. Every value belongs to exactly one region.
func (addr Address) Region() Region {
	switch {
	case addr < COMMAND_START:
		return REGION_REG
	case addr < IO_START:
		return REGION_COMMAND
	case addr < VRAM_START:
		return REGION_IO
	case addr < MEM_START:
		return REGION_VRAM
	default:
		return REGION_MEM
	}
}

// Base returns the first raw address of the region.
func (r Region) Base() uint32 {
	switch r {
	case REGION_REG:
		return REG_START
	case REGION_COMMAND:
		return COMMAND_START
	case REGION_IO:
		return IO_START
	case REGION_VRAM:
		return VRAM_START
	case REGION_MEM:
		return MEM_START
	}
	panic(fmt.Sprintf("isa: unknown region %d", int(r)))
}

// Span returns the number of addresses in the region.
func (r Region) Span() uint64 {
	switch r {
	case REGION_REG:
		return COMMAND_START - REG_START
	case REGION_COMMAND:
		return IO_START - COMMAND_START
	case REGION_IO:
		return VRAM_START - IO_START
	case REGION_VRAM:
		return MEM_START - VRAM_START
	case REGION_MEM:
		return (1 << 32) - MEM_START
	}
	panic(fmt.Sprintf("isa: unknown region %d", int(r)))
}

// Offset returns the address relative to the base of its own region.
func (addr Address) Offset() uint32 {
	return uint32(addr) - addr.Region().Base()
}

// OffsetIn returns the region-relative offset, failing with ErrInvalidType
// when the address is not in the expected region. The context names the
// caller in the error message.
func (addr Address) OffsetIn(expected Region, context string) (offset uint32, err error) {
	actual := addr.Region()
	if actual != expected {
		err = ErrInvalidType{
			Message: f("expected %v address in %v", expected, context),
			Type:    actual.String(),
		}
		return
	}

	offset = addr.Offset()
	return
}

// String formats the address as 8 hex digits.
func (addr Address) String() string {
	return fmt.Sprintf("0x%08x", uint32(addr))
}
