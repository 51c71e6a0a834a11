package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFile_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()

	for offset := uint32(0); offset < REG_COUNT; offset++ {
		value, err := rf.Read(Address(offset))
		assert.NoError(err)
		assert.Equal(uint32(0), value)

		err = rf.Write(0x1000+offset, Address(offset))
		assert.NoError(err)
	}

	for offset := uint32(0); offset < REG_COUNT; offset++ {
		value, err := rf.Read(Address(offset))
		assert.NoError(err)
		assert.Equal(0x1000+offset, value)
	}
}

func TestRegisterFile_NotFound(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()

	for _, raw := range []uint32{0x1E, 0x1F} {
		_, err := rf.Read(Address(raw))
		var enf ErrRegisterNotFound
		if assert.ErrorAs(err, &enf) {
			assert.Equal(raw, enf.Offset)
		}

		err = rf.Write(1, Address(raw))
		assert.ErrorAs(err, &enf)
	}
}

func TestRegisterFile_WrongRegion(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()

	_, err := rf.Read(Address(0x20))
	var eit ErrInvalidType
	if assert.ErrorAs(err, &eit) {
		assert.Equal("Command", eit.Type)
	}

	err = rf.Write(1, Address(MEM_START))
	if assert.ErrorAs(err, &eit) {
		assert.Equal("Mem", eit.Type)
	}
}

func TestRegisterFile_Snapshot(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()

	status := rf.Snapshot()
	assert.Equal(RegisterStatus{Mode: MODE_TEXT}, status)

	assert.NoError(rf.Write(1, REG_EX))
	assert.NoError(rf.Write(2, REG_MD))
	assert.NoError(rf.Write(1, REG_TM))
	assert.NoError(rf.Write(440, REG_M3))
	assert.NoError(rf.Write(0x00100200, REG_TA1))
	assert.NoError(rf.Write(0x00100300, REG_TA2))

	status = rf.Snapshot()
	assert.True(status.Exit)
	assert.Equal(MODE_GRAPHIC, status.Mode)
	assert.True(status.TimerOne)
	assert.True(status.MusicOn)
	assert.Equal([4]uint32{0, 0, 440, 0}, status.Music)
	assert.Equal(uint32(0x00100200), status.TA1)
	assert.Equal(uint32(0x00100300), status.TA2)

	assert.NoError(rf.Write(2, REG_TM))
	assert.False(rf.Snapshot().TimerOne)
}

func TestRegisterNames(t *testing.T) {
	assert := assert.New(t)

	addr, ok := RegisterAddress("1x")
	assert.True(ok)
	assert.Equal(Address(0x01), addr)

	addr, ok = RegisterAddress("sp")
	assert.True(ok)
	assert.Equal(Address(REG_SP), addr)

	addr, ok = RegisterAddress("ex")
	assert.True(ok)
	assert.Equal(Address(REG_EX), addr)

	_, ok = RegisterAddress("SP")
	assert.False(ok)
	_, ok = RegisterAddress("")
	assert.False(ok)

	name, ok := RegisterName(REG_BLTL)
	assert.True(ok)
	assert.Equal("bltl", name)

	_, ok = RegisterName(0x00)
	assert.False(ok)
	_, ok = RegisterName(0x1E)
	assert.False(ok)

	count := 0
	for name, raw := range Registers() {
		addr, ok := RegisterAddress(name)
		assert.True(ok)
		assert.Equal(Address(raw), addr)
		count++
	}
	assert.Equal(REG_COUNT-2, count)
}

func TestDisplayModeString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("text", MODE_TEXT.String())
	assert.Equal("graphic", MODE_GRAPHIC.String())
}
