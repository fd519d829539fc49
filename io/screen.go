package io

import (
	"io"
	"strings"
)

const (
	SCREEN_ON   = '#'      // Default rune for a lit pixel.
	SCREEN_OFF  = '.'      // Default rune for a dark pixel.
	SCREEN_NAME = "screen" // Resource name in write errors.
)

// Frame is a monochrome pixel grid.
type Frame interface {
	Width() int
	Height() int
	Pixel(x, y int) bool
}

// Screen presents frames as text, one line per pixel row.
type Screen struct {
	Output io.Writer // Destination of the rendered frames.
	Prefix string    // Written before each frame, eg. a terminal home sequence.
	On     rune      // Lit pixel. Zero selects SCREEN_ON.
	Off    rune      // Dark pixel. Zero selects SCREEN_OFF.

	Frames int // Frames presented since creation.
}

// Render returns the text form of frame.
func (sc *Screen) Render(frame Frame) string {
	on, off := sc.On, sc.Off
	if on == 0 {
		on = SCREEN_ON
	}
	if off == 0 {
		off = SCREEN_OFF
	}

	var text strings.Builder
	text.WriteString(sc.Prefix)
	for y := range frame.Height() {
		for x := range frame.Width() {
			if frame.Pixel(x, y) {
				text.WriteRune(on)
			} else {
				text.WriteRune(off)
			}
		}
		text.WriteByte('\n')
	}

	return text.String()
}

// Present writes frame to the output. A nil output only counts the frame.
func (sc *Screen) Present(frame Frame) (err error) {
	sc.Frames++

	if sc.Output == nil {
		return
	}

	_, err = io.WriteString(sc.Output, sc.Render(frame))
	if err != nil {
		err = &ErrIo{Name: SCREEN_NAME, Err: err}
	}

	return
}
