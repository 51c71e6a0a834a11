package isa

// MEMORY_WORDS is the capacity of the memory image in 32-bit words.
const MEMORY_WORDS = 0x01000000

// Memory is the word image of the Mem region. The backing store is heap
// allocated; pass it by pointer.
type Memory struct {
	Word []uint32
}

// NewMemory creates a zeroed memory image.
func NewMemory() (mem *Memory) {
	mem = &Memory{
		Word: make([]uint32, MEMORY_WORDS),
	}
	return
}

// index resolves an address to an index into Word.
func (mem *Memory) index(addr Address, context string) (index uint32, err error) {
	index, err = addr.OffsetIn(REGION_MEM, context)
	if err != nil {
		return
	}

	if uint64(index) >= uint64(len(mem.Word)) {
		err = ErrInvalidAddress{
			Message: f("beyond memory image of %d words in %v", len(mem.Word), context),
			Raw:     uint32(addr),
		}
		return
	}

	return
}

// Read returns the word at addr.
func (mem *Memory) Read(addr Address) (value uint32, err error) {
	index, err := mem.index(addr, "Memory.Read")
	if err != nil {
		return
	}

	value = mem.Word[index]
	return
}

// Write stores value at addr.
func (mem *Memory) Write(value uint32, addr Address) (err error) {
	index, err := mem.index(addr, "Memory.Write")
	if err != nil {
		return
	}

	mem.Word[index] = value
	return
}

// Extent returns the index one past the last non-zero word.
func (mem *Memory) Extent() (extent int) {
	for extent = len(mem.Word); extent > 0; extent-- {
		if mem.Word[extent-1] != 0 {
			break
		}
	}
	return
}

// Reset zeroes the image.
func (mem *Memory) Reset() {
	clear(mem.Word)
}
