// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log"
	"maps"
	"strconv"
	"time"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/internal"
	"github.com/ezrec/chip8/io"
)

const (
	EMULATOR_HZ = 60 // Default cycles per second; the timers run at one tick per cycle.
)

var _emulator_defines = map[string]string{
	"EMULATOR_HZ": fmt.Sprintf("%v", EMULATOR_HZ),
}

// Emulator state. CPU + IO collaborators.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	Rom    io.Rom    // Program image, reloaded on every Reset.
	Keypad io.Keypad // Key input, polled every Tick.
	Screen io.Screen // Frame output, written on redraw.
	Beeper io.Beeper // Tone output.
}

// NewEmulator creates a new emulator.
func NewEmulator(quirks cpu.Quirks) (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(quirks),
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		emu.Keypad.Defines(),
	)
}

// Apply a configuration to the core and the keypad. An empty keymap name
// selects the default keymap.
func (emu *Emulator) Apply(config Config) (err error) {
	keymap, ok := io.KEYMAPS[config.Keymap]
	if !ok && len(config.Keymap) != 0 {
		err = &ErrConfig{Name: "keymap", Want: "keymap name", Got: strconv.Quote(config.Keymap)}
		return
	}

	emu.Cpu.Quirks = config.Quirks
	emu.Keypad.Hold = config.Hold
	emu.Keypad.Keymap = keymap

	return
}

// Load a program image from fsys, and reset. On error the current image
// and the core state are left as they were.
func (emu *Emulator) Load(fsys fs.FS, name string) (err error) {
	var rom io.Rom
	err = rom.Load(fsys, name)
	if err != nil {
		return
	}

	if rom.Len() > cpu.PROGRAM_LIMIT {
		err = cpu.ErrProgramSize(rom.Len())
		return
	}

	if emu.Verbose {
		log.Printf("emulator: %v: %d bytes", name, rom.Len())
	}

	emu.Rom = rom
	err = emu.Reset()

	return
}

// Reset the core and reload the current program image. An image too large
// to load leaves the core untouched.
func (emu *Emulator) Reset() (err error) {
	if emu.Rom.Len() > cpu.PROGRAM_LIMIT {
		err = cpu.ErrProgramSize(emu.Rom.Len())
		return
	}

	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()
	emu.Keypad.Release()
	emu.Beeper.Reset()

	err = emu.Cpu.LoadProgram(emu.Rom.Data)

	return
}

// tick runs one cycle, keeping the core error apart from the collaborator
// errors.
func (emu *Emulator) tick() (done bool, step error, output error) {
	emu.Cpu.SetKeys(emu.Keypad.Poll())

	step = emu.Cpu.Step()
	done = emu.Cpu.Mode() == cpu.MODE_HALTED

	if emu.Cpu.Redraw() {
		frame := emu.Cpu.Framebuffer()
		output = emu.Screen.Present(&frame)
		emu.Cpu.ClearRedraw()
	}

	output = errors.Join(output, emu.Beeper.Update(emu.Cpu.Tone()))

	return
}

// runtime wraps err with the location of the instruction at pc.
func (emu *Emulator) runtime(pc uint16, word uint16, err error) error {
	if err == nil {
		return nil
	}

	return &ErrRuntime{Pc: pc, Word: word, Err: err}
}

// Tick performs a single cycle of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc()
	word := uint16(emu.Cpu.Peek(pc))<<8 | uint16(emu.Cpu.Peek(pc+1))

	done, step, output := emu.tick()
	err = emu.runtime(pc, word, errors.Join(step, output))

	return
}

// Run ticks the emulator once per pace event until the core halts, ctx is
// done, or cycles ticks have run. A nil pace runs unthrottled; zero cycles
// has no limit. Unknown opcodes outside of strict mode do not stop the run,
// but collaborator errors on the same cycle still do.
func (emu *Emulator) Run(ctx context.Context, pace <-chan time.Time, cycles int) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	for n := 0; cycles <= 0 || n < cycles; n++ {
		if pace != nil {
			select {
			case <-ctx.Done():
				return
			case <-pace:
			}
		} else if ctx.Err() != nil {
			return
		}

		pc := emu.Cpu.Pc()
		word := uint16(emu.Cpu.Peek(pc))<<8 | uint16(emu.Cpu.Peek(pc+1))

		done, step, output := emu.tick()
		if !done && errors.Is(step, cpu.ErrOpcode(0)) {
			step = nil
		}

		err = emu.runtime(pc, word, errors.Join(step, output))
		if done || err != nil {
			return
		}
	}

	return
}
