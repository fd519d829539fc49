package io

import (
	"io"
)

const (
	BEEPER_BEL  = '\a'     // Written on each rising edge of the tone.
	BEEPER_NAME = "beeper" // Resource name in write errors.
)

// Beeper turns the level of the tone signal into discrete beeps.
type Beeper struct {
	Output io.Writer // Destination of the BEL bytes. May be nil.

	Beeps int // Rising edges seen since creation.
	tone  bool
}

// Tone reports the last level passed to Update.
func (bp *Beeper) Tone() bool {
	return bp.tone
}

// Update records the tone level and beeps when it goes from off to on.
func (bp *Beeper) Update(tone bool) (err error) {
	rising := tone && !bp.tone
	bp.tone = tone

	if !rising {
		return
	}

	bp.Beeps++

	if bp.Output == nil {
		return
	}

	_, err = bp.Output.Write([]byte{BEEPER_BEL})
	if err != nil {
		err = &ErrIo{Name: BEEPER_NAME, Err: err}
	}

	return
}

// Reset drops the tone level without beeping.
func (bp *Beeper) Reset() {
	bp.tone = false
}
