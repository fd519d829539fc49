// Package io provides the host side collaborators of the CHIP-8 core:
// the program image loader (Rom), keypad input (Keypad), the framebuffer
// presenter (Screen) and the tone signal (Beeper).
package io
