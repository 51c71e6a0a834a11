package io

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/ezrec/shyasm/isa"
)

// WORD_BYTES is the size of one image word on disk.
const WORD_BYTES = 4

// WriteImage writes the memory image as big-endian words. A trimmed image
// stops after the last non-zero word.
func WriteImage(file io.Writer, mem *isa.Memory, trim bool) (err error) {
	words := mem.Word
	if trim {
		words = words[:mem.Extent()]
	}

	bw := bufio.NewWriter(file)
	err = binary.Write(bw, binary.BigEndian, words)
	if err != nil {
		return
	}

	err = bw.Flush()
	return
}

// ReadImage loads a memory image written by WriteImage. A trimmed image is
// zero filled to the full memory size.
func ReadImage(file io.Reader) (mem *isa.Memory, err error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return
	}

	if len(data)%WORD_BYTES != 0 {
		err = ErrImageSize
		return
	}

	mem = isa.NewMemory()
	if len(data)/WORD_BYTES > len(mem.Word) {
		mem = nil
		err = ErrImageTooLarge
		return
	}

	for n := range len(data) / WORD_BYTES {
		mem.Word[n] = binary.BigEndian.Uint32(data[n*WORD_BYTES:])
	}

	return
}

// SaveImage writes the memory image to a file.
func SaveImage(filesys CreateFS, name string, mem *isa.Memory, trim bool) (err error) {
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

	err = WriteImage(file, mem, trim)
	return
}

// LoadImage reads a memory image from a file.
func LoadImage(filesys CreateFS, name string) (mem *isa.Memory, err error) {
	file, err := filesys.Open(name)
	if err != nil {
		return
	}
	defer file.Close()

	mem, err = ReadImage(file)
	return
}
