// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command chip8 runs a CHIP-8 program image in the terminal.
//
// Keys are read from standard input as it is delivered. A terminal in its
// default line-buffered mode only delivers them after Enter; put it in raw
// mode first (eg. `stty raw -echo`) for live keypad input.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/emulator"
)

// Terminal home and clear, written before each frame.
const TERM_HOME = "\x1b[H\x1b[2J"

func main() {
	var script string
	var hz int
	var cycles int
	var strict bool
	var verbose bool
	var quiet bool

	flag.StringVar(&script, "c", "", ".star configuration file")
	flag.IntVar(&hz, "z", 0, "Cycles per second (default from configuration)")
	flag.IntVar(&cycles, "n", 0, "Stop after this many cycles, 0 for no limit")
	flag.BoolVar(&strict, "s", false, "Strict mode, unknown opcodes halt")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&quiet, "q", false, "Quiet mode, no screen output")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [flags] program.ch8\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Keys arrive on stdin; use a raw mode terminal (stty raw -echo) for live input.\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected one program image, got %v", os.Args[0], flag.Args())
	}
	path := flag.Arg(0)

	emu := emulator.NewEmulator(cpu.Quirks{})
	emu.Verbose = verbose

	config := emulator.DefaultConfig()
	if len(script) != 0 {
		src, err := os.ReadFile(script)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}

		config, err = emulator.ParseConfig(script, src, emu.Defines())
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
	}
	if strict {
		config.Quirks.Strict = true
	}
	if hz > 0 {
		config.Hz = hz
	}
	err := emu.Apply(config)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	err = emu.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	emu.Keypad.Input = os.Stdin
	err = emu.Keypad.Start(ctx)
	if err != nil {
		stop()
		log.Fatalf("stdin: %v", err)
	}

	if !quiet {
		emu.Screen.Output = os.Stdout
		emu.Screen.Prefix = TERM_HOME
		emu.Beeper.Output = os.Stdout
	}

	period := max(time.Second/time.Duration(config.Hz), time.Nanosecond)
	pace := time.NewTicker(period)

	err = emu.Run(ctx, pace.C, cycles)
	pace.Stop()
	stop()
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	if verbose {
		log.Printf("%v: %d cycles", path, emu.Ticks)
	}
}
