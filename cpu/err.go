package cpu

import (
	"errors"

	"github.com/ezrec/chip8/translate"
)

var f = translate.From

var (
	// Program loading errors
	ErrProgramTooLarge = errors.New(f("program too large"))

	// Cpu errors
	ErrStackOverflow  = errors.New(f("stack overflow"))
	ErrStackUnderflow = errors.New(f("stack underflow"))
	ErrPcRange        = errors.New(f("pc out of range"))
	ErrHalted         = errors.New(f("halted"))
	ErrKeyInvalid     = errors.New(f("key invalid"))
)

// ErrOpcode reports an instruction word that does not decode.
type ErrOpcode uint16

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x", uint16(eo))
}

// Is matches any ErrOpcode, whatever the word.
func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrProgramSize reports the size of a rejected program image.
type ErrProgramSize int

func (es ErrProgramSize) Error() string {
	return f("program is 0x%x bytes, limit 0x%x", int(es), PROGRAM_LIMIT)
}

func (es ErrProgramSize) Unwrap() error {
	return ErrProgramTooLarge
}
