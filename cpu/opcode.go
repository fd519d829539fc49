package cpu

import (
	"fmt"
)

// CodeOp is a decoded CHIP-8 operation.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_UNKNOWN   = CodeOp(0)  // unknown
	OP_CLS       = CodeOp(1)  // cls
	OP_RET       = CodeOp(2)  // ret
	OP_JP        = CodeOp(3)  // jp
	OP_CALL      = CodeOp(4)  // call
	OP_SE_IMM    = CodeOp(5)  // se.imm
	OP_SNE_IMM   = CodeOp(6)  // sne.imm
	OP_SE_REG    = CodeOp(7)  // se.reg
	OP_LD_IMM    = CodeOp(8)  // ld.imm
	OP_ADD_IMM   = CodeOp(9)  // add.imm
	OP_LD_REG    = CodeOp(10) // ld.reg
	OP_OR        = CodeOp(11) // or
	OP_AND       = CodeOp(12) // and
	OP_XOR       = CodeOp(13) // xor
	OP_ADD_REG   = CodeOp(14) // add.reg
	OP_SUB       = CodeOp(15) // sub
	OP_SHR       = CodeOp(16) // shr
	OP_SUBN      = CodeOp(17) // subn
	OP_SHL       = CodeOp(18) // shl
	OP_SNE_REG   = CodeOp(19) // sne.reg
	OP_LD_I      = CodeOp(20) // ld.i
	OP_JP_V0     = CodeOp(21) // jp.v0
	OP_RND       = CodeOp(22) // rnd
	OP_DRW       = CodeOp(23) // drw
	OP_SKP       = CodeOp(24) // skp
	OP_SKNP      = CodeOp(25) // sknp
	OP_LD_VX_DT  = CodeOp(26) // ld.vx.dt
	OP_LD_VX_K   = CodeOp(27) // ld.vx.k
	OP_LD_DT_VX  = CodeOp(28) // ld.dt.vx
	OP_LD_ST_VX  = CodeOp(29) // ld.st.vx
	OP_ADD_I     = CodeOp(30) // add.i
	OP_LD_F      = CodeOp(31) // ld.f
	OP_LD_B      = CodeOp(32) // ld.b
	OP_LD_MEM_VX = CodeOp(33) // ld.mem.vx
	OP_LD_VX_MEM = CodeOp(34) // ld.vx.mem
)

// Instruction is a decoded instruction word with its operands.
//
// All operand fields are extracted from every word, whether or not the
// operation uses them.
type Instruction struct {
	Word uint16 // Raw instruction word.
	Op   CodeOp // Decoded operation.
	X    uint8  // Second nibble, a register index.
	Y    uint8  // Third nibble, a register index.
	N    uint8  // Fourth nibble.
	NN   uint8  // Low byte.
	NNN  uint16 // Low 12 bits, an address.
}

// Decode an instruction word.
func Decode(word uint16) (inst Instruction) {
	inst = Instruction{
		Word: word,
		X:    uint8((word >> 8) & 0xf),
		Y:    uint8((word >> 4) & 0xf),
		N:    uint8(word & 0xf),
		NN:   uint8(word & 0xff),
		NNN:  word & 0xfff,
	}

	inst.Op = decodeOp(word)

	return
}

// decodeOp classifies by family (top nibble), then by the low nibble or
// low byte for the families that need it.
func decodeOp(word uint16) CodeOp {
	n := word & 0xf
	nn := word & 0xff

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00e0:
			return OP_CLS
		case 0x00ee:
			return OP_RET
		}
	case 0x1:
		return OP_JP
	case 0x2:
		return OP_CALL
	case 0x3:
		return OP_SE_IMM
	case 0x4:
		return OP_SNE_IMM
	case 0x5:
		if n == 0 {
			return OP_SE_REG
		}
	case 0x6:
		return OP_LD_IMM
	case 0x7:
		return OP_ADD_IMM
	case 0x8:
		switch n {
		case 0x0:
			return OP_LD_REG
		case 0x1:
			return OP_OR
		case 0x2:
			return OP_AND
		case 0x3:
			return OP_XOR
		case 0x4:
			return OP_ADD_REG
		case 0x5:
			return OP_SUB
		case 0x6:
			return OP_SHR
		case 0x7:
			return OP_SUBN
		case 0xe:
			return OP_SHL
		}
	case 0x9:
		if n == 0 {
			return OP_SNE_REG
		}
	case 0xa:
		return OP_LD_I
	case 0xb:
		return OP_JP_V0
	case 0xc:
		return OP_RND
	case 0xd:
		return OP_DRW
	case 0xe:
		switch nn {
		case 0x9e:
			return OP_SKP
		case 0xa1:
			return OP_SKNP
		}
	case 0xf:
		switch nn {
		case 0x07:
			return OP_LD_VX_DT
		case 0x0a:
			return OP_LD_VX_K
		case 0x15:
			return OP_LD_DT_VX
		case 0x18:
			return OP_LD_ST_VX
		case 0x1e:
			return OP_ADD_I
		case 0x29:
			return OP_LD_F
		case 0x33:
			return OP_LD_B
		case 0x55:
			return OP_LD_MEM_VX
		case 0x65:
			return OP_LD_VX_MEM
		}
	}

	return OP_UNKNOWN
}

// String returns the instruction word, operation and operands.
func (inst Instruction) String() string {
	return fmt.Sprintf("%04x %v x:%x y:%x n:%x nn:%02x nnn:%03x",
		inst.Word, inst.Op, inst.X, inst.Y, inst.N, inst.NN, inst.NNN)
}
