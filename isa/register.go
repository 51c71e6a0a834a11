package isa

import (
	"iter"
)

// Register offsets within the Register region.
const (
	REG_GP_COUNT = 16 // General purpose registers 0x00-0x0F.

	REG_PC   = 0x10 // Program counter.
	REG_MD   = 0x11 // Display mode (0 text, otherwise graphic).
	REG_SP   = 0x12 // Stack pointer.
	REG_TM   = 0x13 // Timer.
	REG_TA1  = 0x14 // Timer interrupt handler address.
	REG_TA2  = 0x15 // Timer interrupt return address.
	REG_M1   = 0x16 // Music: sine.
	REG_M2   = 0x17 // Music: square.
	REG_M3   = 0x18 // Music: triangle.
	REG_M4   = 0x19 // Music: sawtooth.
	REG_RS   = 0x1A // Comparison result.
	REG_EX   = 0x1B // Exit request.
	REG_BLTS = 0x1C // Block transfer source.
	REG_BLTL = 0x1D // Block transfer length.

	REG_COUNT = 0x1E // Mapped registers; 0x1E and 0x1F are unmapped.
)

// registerNames is indexed by register offset. 0x00 would be "0x", which
// lexes as a hex literal, and 0x0E would be "ex", which names the exit
// register; both are reached by address only.
var registerNames = [REG_COUNT]string{
	"", "1x", "2x", "3x", "4x", "5x", "6x", "7x",
	"8x", "9x", "ax", "bx", "cx", "dx", "", "fx",
	"pc", "md", "sp", "tm", "ta1", "ta2", "m1", "m2",
	"m3", "m4", "rs", "ex", "blts", "bltl",
}

// registerMap maps register names to their addresses.
var registerMap = func() map[string]Address {
	m := make(map[string]Address, REG_COUNT)
	for n, name := range registerNames {
		if len(name) != 0 {
			m[name] = Address(REG_START + n)
		}
	}
	return m
}()

// RegisterAddress returns the address of a named register.
func RegisterAddress(name string) (addr Address, ok bool) {
	addr, ok = registerMap[name]
	return
}

// RegisterName returns the name of the register at the offset.
func RegisterName(offset uint32) (name string, ok bool) {
	if offset >= REG_COUNT {
		return
	}
	name = registerNames[offset]
	ok = len(name) != 0
	return
}

// Registers iterates over register names and addresses in address order.
func Registers() iter.Seq2[string, uint32] {
	return func(yield func(name string, addr uint32) bool) {
		for offset := range uint32(REG_COUNT) {
			name, ok := RegisterName(offset)
			if !ok {
				continue
			}
			if !yield(name, REG_START+offset) {
				return
			}
		}
	}
}

// DisplayMode is the mode selected by the md register.
type DisplayMode int

//go:generate go tool stringer -linecomment -type=DisplayMode
const (
	MODE_TEXT    = DisplayMode(0) // text
	MODE_GRAPHIC = DisplayMode(1) // graphic
)

// RegisterStatus is a read-only projection of the register file.
type RegisterStatus struct {
	Exit     bool        // Exit register is non-zero.
	Mode     DisplayMode // Display mode.
	TimerOne bool        // Timer equals one.
	MusicOn  bool        // Any music register is non-zero.
	TA1      uint32      // Timer handler address.
	TA2      uint32      // Timer return address.
	Music    [4]uint32   // Music registers m1-m4.
}

// RegisterFile holds the general and special purpose registers of one
// ISA context.
type RegisterFile struct {
	value [REG_COUNT]uint32
}

// NewRegisterFile creates a register file with every register zeroed.
func NewRegisterFile() (rf *RegisterFile) {
	rf = &RegisterFile{}
	return
}

// lookup resolves an address to a register slot.
func (rf *RegisterFile) lookup(addr Address, context string) (slot *uint32, err error) {
	offset, err := addr.OffsetIn(REGION_REG, context)
	if err != nil {
		return
	}

	if offset >= REG_COUNT {
		err = ErrRegisterNotFound{
			Message: f("no register mapped in %v", context),
			Offset:  offset,
		}
		return
	}

	slot = &rf.value[offset]
	return
}

// Read returns the value of the register at addr.
func (rf *RegisterFile) Read(addr Address) (value uint32, err error) {
	slot, err := rf.lookup(addr, "RegisterFile.Read")
	if err != nil {
		return
	}

	value = *slot
	return
}

// Write stores value into the register at addr.
func (rf *RegisterFile) Write(value uint32, addr Address) (err error) {
	slot, err := rf.lookup(addr, "RegisterFile.Write")
	if err != nil {
		return
	}

	*slot = value
	return
}

// Snapshot reports the register state the machine polls once per cycle.
func (rf *RegisterFile) Snapshot() (status RegisterStatus) {
	v := &rf.value

	status.Exit = v[REG_EX] != 0
	if v[REG_MD] != 0 {
		status.Mode = MODE_GRAPHIC
	}
	status.TimerOne = v[REG_TM] == 1
	status.Music = [4]uint32{v[REG_M1], v[REG_M2], v[REG_M3], v[REG_M4]}
	for _, m := range status.Music {
		if m != 0 {
			status.MusicOn = true
		}
	}
	status.TA1 = v[REG_TA1]
	status.TA2 = v[REG_TA2]

	return
}
