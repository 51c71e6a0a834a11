package io

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CreateFS is a file system that can also create files.
type CreateFS interface {
	fs.FS
	// Create creates or truncates a file for writing.
	Create(name string) (file io.WriteCloser, err error)
}

// DirFS is the host file system rooted at a directory. Unlike os.DirFS, names
// may be absolute or climb out of the root, as command line paths do.
type DirFS string

var _ CreateFS = DirFS("")

func (dir DirFS) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(string(dir), name)
}

// Open opens a file for reading.
func (dir DirFS) Open(name string) (file fs.File, err error) {
	return os.Open(dir.path(name))
}

// Create creates or truncates a file for writing.
func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	return os.Create(dir.path(name))
}
