package cpu

import (
	"strings"
)

const (
	DISPLAY_WIDTH  = 64 // Framebuffer width in pixels.
	DISPLAY_HEIGHT = 32 // Framebuffer height in pixels.
	SPRITE_WIDTH   = 8  // Sprite width in pixels, one byte per row.
)

// Framebuffer is the monochrome display, one byte (0 or 1) per pixel,
// row major.
type Framebuffer [DISPLAY_WIDTH * DISPLAY_HEIGHT]byte

func (fb *Framebuffer) Width() int {
	return DISPLAY_WIDTH
}

func (fb *Framebuffer) Height() int {
	return DISPLAY_HEIGHT
}

// Pixel returns true if the pixel is set. Out of range pixels are unset.
func (fb *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= DISPLAY_WIDTH || y < 0 || y >= DISPLAY_HEIGHT {
		return false
	}
	return fb[y*DISPLAY_WIDTH+x] != 0
}

// Clear all pixels.
func (fb *Framebuffer) Clear() {
	clear(fb[:])
}

// Draw XORs an 8 pixel wide sprite, one byte per row with the MSB leftmost,
// onto the framebuffer at (x, y). The origin is taken modulo the display
// size. Pixels beyond the right or bottom edge are clipped, or wrap to the
// opposite edge if wrap is set.
//
// Returns true if any set pixel was cleared.
func (fb *Framebuffer) Draw(x, y int, rows []byte, wrap bool) (collision bool) {
	x %= DISPLAY_WIDTH
	y %= DISPLAY_HEIGHT

	for row, bits := range rows {
		py := y + row
		if py >= DISPLAY_HEIGHT {
			if !wrap {
				break
			}
			py %= DISPLAY_HEIGHT
		}
		for col := range SPRITE_WIDTH {
			if bits&(0x80>>col) == 0 {
				continue
			}
			px := x + col
			if px >= DISPLAY_WIDTH {
				if !wrap {
					break
				}
				px %= DISPLAY_WIDTH
			}
			pixel := &fb[py*DISPLAY_WIDTH+px]
			if *pixel != 0 {
				collision = true
			}
			*pixel ^= 1
		}
	}

	return
}

// String renders the framebuffer, '#' for set and '.' for unset pixels.
func (fb *Framebuffer) String() string {
	var sb strings.Builder
	sb.Grow((DISPLAY_WIDTH + 1) * DISPLAY_HEIGHT)
	for y := range DISPLAY_HEIGHT {
		for x := range DISPLAY_WIDTH {
			if fb.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
