package io

import (
	"context"
	"fmt"
	"io"
	"iter"
	"maps"
)

const (
	KEYPAD_SIZE   = 16 // Number of keys on the hex keypad.
	KEYPAD_HOLD   = 6  // Default number of polls a pressed key stays down.
	KEYPAD_BUFFER = 64 // Host key bytes buffered between polls.
)

var _keypad_defines = map[string]string{
	"KEYPAD_SIZE": fmt.Sprintf("%v", KEYPAD_SIZE),
	"KEYPAD_HOLD": fmt.Sprintf("%v", KEYPAD_HOLD),
}

// KEYMAP_QWERTY maps the left hand block of a QWERTY keyboard onto the
// 4x4 hex keypad layout.
var KEYMAP_QWERTY = map[byte]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xc,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xd,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xe,
	'z': 0xa, 'x': 0x0, 'c': 0xb, 'v': 0xf,
}

// KEYMAP_HEX maps the hex digit characters onto the key of the same value.
var KEYMAP_HEX = map[byte]uint8{
	'0': 0x0, '1': 0x1, '2': 0x2, '3': 0x3,
	'4': 0x4, '5': 0x5, '6': 0x6, '7': 0x7,
	'8': 0x8, '9': 0x9, 'a': 0xa, 'b': 0xb,
	'c': 0xc, 'd': 0xd, 'e': 0xe, 'f': 0xf,
}

// KEYMAPS names the keymaps selectable from configuration.
var KEYMAPS = map[string]map[byte]uint8{
	"qwerty": KEYMAP_QWERTY,
	"hex":    KEYMAP_HEX,
}

// Keypad turns a stream of host key bytes into hex keypad state.
//
// Terminals report presses but not releases, so a press holds its key down
// for Hold calls of Poll.
type Keypad struct {
	Input  io.Reader      // Host key bytes.
	Keymap map[byte]uint8 // Host byte to key. Nil selects KEYMAP_QWERTY.
	Hold   int            // Polls a press is held for. Zero selects KEYPAD_HOLD.

	keys chan uint8
	held [KEYPAD_SIZE]int
	down [KEYPAD_SIZE]bool // State returned by the last Poll.
	gap  [KEYPAD_SIZE]bool // Report released once before the held press.
}

// Defines returns an iter of defines for the keypad.
func (kp *Keypad) Defines() iter.Seq2[string, string] {
	return maps.All(_keypad_defines)
}

// Lookup maps a host byte to a key. Upper case letters match their
// lower case entries.
func (kp *Keypad) Lookup(ch byte) (key uint8, ok bool) {
	keymap := kp.Keymap
	if keymap == nil {
		keymap = KEYMAP_QWERTY
	}

	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}

	key, ok = keymap[ch]
	return
}

// Start launches the reader goroutine. It stops at the end of the input,
// on a read error, or when ctx is done and the next byte arrives.
func (kp *Keypad) Start(ctx context.Context) (err error) {
	if kp.Input == nil {
		err = ErrKeypadInput
		return
	}

	if kp.keys != nil {
		err = ErrKeypadStarted
		return
	}

	kp.keys = make(chan uint8, KEYPAD_BUFFER)

	go kp.read(ctx, kp.keys)

	return
}

func (kp *Keypad) read(ctx context.Context, keys chan<- uint8) {
	defer close(keys)

	var one [1]byte
	for {
		_, err := kp.Input.Read(one[:])
		if err != nil {
			return
		}

		key, ok := kp.Lookup(one[0])
		if !ok {
			continue
		}

		select {
		case keys <- key:
		case <-ctx.Done():
			return
		}
	}
}

// Press holds key down for the next Hold polls. Pressing a key that the
// last Poll reported down first reports it released for one poll, so each
// press, auto-repeat included, is seen as a new edge.
func (kp *Keypad) Press(key uint8) {
	hold := kp.Hold
	if hold <= 0 {
		hold = KEYPAD_HOLD
	}

	key %= KEYPAD_SIZE
	kp.held[key] = hold
	kp.gap[key] = kp.down[key]
}

// Release lets go of every held key.
func (kp *Keypad) Release() {
	kp.held = [KEYPAD_SIZE]int{}
	kp.down = [KEYPAD_SIZE]bool{}
	kp.gap = [KEYPAD_SIZE]bool{}
}

// Poll drains pending presses without blocking and returns the key state.
func (kp *Keypad) Poll() (state [KEYPAD_SIZE]bool) {
drain:
	for kp.keys != nil {
		select {
		case key, ok := <-kp.keys:
			if !ok {
				kp.keys = nil
				break drain
			}
			kp.Press(key)
		default:
			break drain
		}
	}

	for key, count := range kp.held {
		switch {
		case kp.gap[key]:
			kp.gap[key] = false
		case count > 0:
			state[key] = true
			kp.held[key]--
		}
	}

	kp.down = state

	return
}
