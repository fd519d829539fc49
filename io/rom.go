package io

import (
	"bytes"
	"io"
	"io/fs"
)

// ROM_NAME is the resource name used when a program image has no file name.
const ROM_NAME = "rom"

// Rom holds a program image exactly as read from the host.
type Rom struct {
	Name string // Name of the image, for diagnostics.
	Data []byte // Image bytes.
}

var _ io.ReaderFrom = (*Rom)(nil)

// Load reads the named image from fsys, replacing any previous image.
func (rom *Rom) Load(fsys fs.FS, name string) (err error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		err = &ErrIo{Name: name, Err: err}
		return
	}

	rom.Name = name
	rom.Data = data

	return
}

// ReadFrom reads the whole image from r until EOF.
func (rom *Rom) ReadFrom(r io.Reader) (n int64, err error) {
	var buf bytes.Buffer

	name := rom.Name
	if len(name) == 0 {
		name = ROM_NAME
	}

	n, err = buf.ReadFrom(r)
	if err != nil {
		err = &ErrIo{Name: name, Err: err}
		return
	}

	rom.Name = name
	rom.Data = buf.Bytes()

	return
}

// Len returns the size of the image in bytes.
func (rom *Rom) Len() int {
	return len(rom.Data)
}
