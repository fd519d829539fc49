package io

import (
	"errors"

	"github.com/ezrec/chip8/translate"
)

var f = translate.From

var (
	// Keypad errors
	ErrKeypadStarted = errors.New(f("keypad already started"))
	ErrKeypadInput   = errors.New(f("keypad has no input"))
)

// ErrIo wraps a host read or write failure with the name of the resource.
type ErrIo struct {
	Name string
	Err  error
}

func (err *ErrIo) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrIo) Unwrap() error {
	return err.Err
}
