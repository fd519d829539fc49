package cpu

// Mode is the execution mode of the core.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_RUNNING   = Mode(0) // running
	MODE_AWAIT_KEY = Mode(1) // await-key
	MODE_HALTED    = Mode(2) // halted
)

// Quirks selects between behaviours that differ across CHIP-8
// interpreters.
type Quirks struct {
	IndexWrap  bool // FX1E masks I to 12 bits.
	SpriteWrap bool // DXYN wraps sprites at the edges instead of clipping.
	Strict     bool // Unknown opcodes halt the core.
}
