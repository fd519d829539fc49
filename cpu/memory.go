package cpu

const (
	MEMORY_SIZE   = 0x1000 // Size of the address space.
	MEMORY_MASK   = 0x0fff // Mask of a valid address.
	PROGRAM_START = 0x200  // Load and entry address of programs.
	PROGRAM_LIMIT = MEMORY_SIZE - PROGRAM_START
	FONT_BASE     = 0x050 // Address of the hexadecimal font.
	FONT_HEIGHT   = 5     // Bytes per font glyph.
	KEY_COUNT     = 16    // Keys on the hexadecimal keypad.
	REGISTER_FLAG = 0xf   // vf, the carry/borrow/collision flag.
)

// FONT is the 4x5 glyph table for the hexadecimal digits 0-F.
var FONT = [16 * FONT_HEIGHT]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the CHIP-8 address space.
type Memory [MEMORY_SIZE]byte

// Read a byte. The address is masked to the address space.
func (mem *Memory) Read(addr uint16) byte {
	return mem[addr&MEMORY_MASK]
}

// Write a byte. The address is masked to the address space.
func (mem *Memory) Write(addr uint16, value byte) {
	mem[addr&MEMORY_MASK] = value
}

// Word reads the big-endian instruction word at addr.
func (mem *Memory) Word(addr uint16) uint16 {
	return uint16(mem.Read(addr))<<8 | uint16(mem.Read(addr+1))
}
