package emulator

import (
	"github.com/ezrec/chip8/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc   uint16 // Address of the instruction.
	Word uint16 // Instruction word at Pc.
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%03x [%04x] %v", err.Pc, err.Word, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrConfig indicates a configuration global with an unusable value.
type ErrConfig struct {
	Name string // Global name.
	Want string // Expected value.
	Got  string // Value found.
}

func (err *ErrConfig) Error() string {
	return f("config %v: want %v, got %v", err.Name, err.Want, err.Got)
}
