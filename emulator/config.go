// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"
	"log"
	"math"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/io"
)

// Config is the result of a configuration script.
type Config struct {
	Quirks cpu.Quirks // Core quirks.
	Hz     int        // Cycles per second.
	Hold   int        // Keypad polls a press is held for.
	Keymap string     // Name of the keymap, a key of io.KEYMAPS.
}

// DefaultConfig returns the configuration used when no script is given.
func DefaultConfig() Config {
	return Config{
		Hz:     EMULATOR_HZ,
		Hold:   io.KEYPAD_HOLD,
		Keymap: "qwerty",
	}
}

// ParseConfig runs a Starlark configuration script and collects the globals
// it sets. Each define is predeclared, as an int when it parses as one.
// Defines may be nil. Unrecognized globals are ignored.
//
// Recognized globals:
//
//	index_wrap  = bool  # FX1E masks I to 12 bits
//	sprite_wrap = bool  # DXYN wraps at the display edges
//	strict      = bool  # unknown opcodes halt the core
//	hz          = int   # cycles per second, > 0
//	hold        = int   # keypad hold in polls, > 0
//	keymap      = str   # "qwerty" or "hex"
func ParseConfig(name string, src []byte, defines iter.Seq2[string, string]) (config Config, err error) {
	config = DefaultConfig()

	thread := starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", name, msg)
		},
	}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	if defines != nil {
		for key, str := range defines {
			value, _err := strconv.ParseInt(str, 0, 64)
			if _err != nil {
				pred[key] = starlark.String(str)
			} else {
				pred[key] = starlark.MakeInt64(value)
			}
		}
	}

	globals, err := starlark.ExecFileOptions(&opts, &thread, name, src, pred)
	if err != nil {
		return
	}

	for key, value := range globals {
		switch key {
		case "index_wrap":
			config.Quirks.IndexWrap, err = configBool(key, value)
		case "sprite_wrap":
			config.Quirks.SpriteWrap, err = configBool(key, value)
		case "strict":
			config.Quirks.Strict, err = configBool(key, value)
		case "hz":
			config.Hz, err = configPositive(key, value)
		case "hold":
			config.Hold, err = configPositive(key, value)
		case "keymap":
			config.Keymap, err = configKeymap(key, value)
		}
		if err != nil {
			return
		}
	}

	return
}

func configBool(key string, value starlark.Value) (b bool, err error) {
	st_bool, ok := value.(starlark.Bool)
	if !ok {
		err = &ErrConfig{Name: key, Want: "bool", Got: value.Type()}
		return
	}

	b = bool(st_bool)
	return
}

func configPositive(key string, value starlark.Value) (n int, err error) {
	st_int, ok := value.(starlark.Int)
	if !ok {
		err = &ErrConfig{Name: key, Want: "int", Got: value.Type()}
		return
	}

	n64, ok := st_int.Int64()
	if !ok || n64 <= 0 || n64 > math.MaxInt32 {
		err = &ErrConfig{Name: key, Want: "positive int", Got: st_int.String()}
		return
	}

	n = int(n64)
	return
}

func configKeymap(key string, value starlark.Value) (name string, err error) {
	st_str, ok := value.(starlark.String)
	if !ok {
		err = &ErrConfig{Name: key, Want: "string", Got: value.Type()}
		return
	}

	name = string(st_str)
	if _, ok = io.KEYMAPS[name]; !ok {
		err = &ErrConfig{Name: key, Want: "keymap name", Got: strconv.Quote(name)}
		return
	}

	return
}
