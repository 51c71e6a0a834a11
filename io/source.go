package io

import (
	"io/fs"
)

// ReadSource reads assembly source text.
func ReadSource(filesys fs.FS, name string) (text string, err error) {
	data, err := fs.ReadFile(filesys, name)
	if err != nil {
		return
	}

	text = string(data)
	return
}
