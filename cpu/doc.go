// Package cpu implements the CHIP-8 interpreter core.
//
// The core owns 4KiB of memory with the hexadecimal font in the reserved
// interpreter area, sixteen 8-bit registers (v0-vf), the index register (I),
// the program counter, a sixteen entry call stack, a 64x32 monochrome
// framebuffer, the delay and sound timers, and the state of the sixteen key
// hexadecimal keypad.
//
// Each call to Cpu.Step performs a single fetch, decode, execute and timer
// cycle. Decoding produces an Instruction value, so the decode table can be
// inspected and tested apart from execution. The core never blocks: the
// wait-for-key instruction parks the core in MODE_AWAIT_KEY until the keypad
// reports a new press.
package cpu
