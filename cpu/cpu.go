// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"math/rand/v2"
	"time"
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE":    fmt.Sprintf("0x%x", MEMORY_SIZE),
	"PROGRAM_START":  fmt.Sprintf("0x%x", PROGRAM_START),
	"PROGRAM_LIMIT":  fmt.Sprintf("0x%x", PROGRAM_LIMIT),
	"FONT_BASE":      fmt.Sprintf("0x%x", FONT_BASE),
	"STACK_LIMIT":    fmt.Sprintf("0x%x", STACK_LIMIT),
	"DISPLAY_WIDTH":  fmt.Sprintf("0x%x", DISPLAY_WIDTH),
	"DISPLAY_HEIGHT": fmt.Sprintf("0x%x", DISPLAY_HEIGHT),
	"KEY_COUNT":      fmt.Sprintf("0x%x", KEY_COUNT),
}

// Cpu is the CHIP-8 interpreter core.
//
// The core is not safe for concurrent use; callers serialize calls.
type Cpu struct {
	Verbose bool   // Set to enable verbose logging.
	Quirks  Quirks // Compatibility behaviours.

	Ticks int // Cycles since reset.

	memory   Memory
	register [16]uint8
	index    uint16
	pc       uint16
	stack    Stack
	display  Framebuffer
	delay    uint8
	sound    uint8
	keypad   [KEY_COUNT]bool
	redraw   bool

	mode      Mode
	fault     error
	awaitReg  uint8
	awaitKeys [KEY_COUNT]bool // Keypad as of the last await check.

	source *rand.PCG
	rand   *rand.Rand
}

// NewCpu creates a reset CPU. The random source used by CXNN is seeded
// from the wall clock once, here.
func NewCpu(quirks Quirks) (cpu *Cpu) {
	source := rand.NewPCG(uint64(time.Now().UnixNano()), 0)
	cpu = &Cpu{
		Quirks: quirks,
		source: source,
		rand:   rand.New(source),
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Seed reseeds the random source, for reproducible runs.
func (cpu *Cpu) Seed(seed uint64) {
	cpu.source.Seed(seed, 0)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %03X\n", "pc", cpu.pc)
	text += fmt.Sprintf("% 5s: %03X\n", "i", cpu.index)
	for n, val := range cpu.register {
		text += fmt.Sprintf("% 5s: %02X\n", fmt.Sprintf("v%x", n), val)
	}
	if val, ok := cpu.stack.Peek(); ok {
		text += fmt.Sprintf("% 5s: %03X (%d)\n", "stack", val, cpu.stack.Sp)
	} else {
		text += fmt.Sprintf("% 5s: ---\n", "stack")
	}
	text += fmt.Sprintf("% 5s: %02X\n", "dt", cpu.delay)
	text += fmt.Sprintf("% 5s: %02X\n", "st", cpu.sound)
	text += fmt.Sprintf("% 5s: %v\n", "mode", cpu.mode)

	return
}

// Reset the CPU state.
// - Clears memory, registers, stack, framebuffer, keypad and timers.
// - Installs the font.
// - Sets PC to the program start.
// - Requests a redraw, so a blank first frame is presented.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.memory[:])
	clear(cpu.register[:])
	clear(cpu.keypad[:])
	clear(cpu.awaitKeys[:])
	cpu.stack.Reset()
	cpu.display.Clear()
	cpu.index = 0
	cpu.delay = 0
	cpu.sound = 0
	cpu.awaitReg = 0
	cpu.Ticks = 0

	copy(cpu.memory[FONT_BASE:], FONT[:])

	cpu.pc = PROGRAM_START
	cpu.redraw = true
	cpu.fault = nil
	cpu.mode = MODE_RUNNING
}

// LoadProgram copies a program image to PROGRAM_START. Nothing else is
// modified, so callers wanting a clean run Reset first.
func (cpu *Cpu) LoadProgram(data []byte) (err error) {
	if len(data) > PROGRAM_LIMIT {
		err = ErrProgramSize(len(data))
		return
	}

	copy(cpu.memory[PROGRAM_START:], data)

	if cpu.Verbose {
		log.Printf("cpu: loaded 0x%x bytes at 0x%03x", len(data), PROGRAM_START)
	}

	return
}

// Pc returns the address of the next instruction.
func (cpu *Cpu) Pc() uint16 {
	return cpu.pc
}

// I returns the index register.
func (cpu *Cpu) I() uint16 {
	return cpu.index
}

// V returns register vx.
func (cpu *Cpu) V(x uint8) uint8 {
	return cpu.register[x&0xf]
}

func (cpu *Cpu) Delay() uint8 {
	return cpu.delay
}

func (cpu *Cpu) Sound() uint8 {
	return cpu.sound
}

// Tone returns true while a tone should be playing.
func (cpu *Cpu) Tone() bool {
	return cpu.sound > 0
}

// Redraw returns true if the framebuffer changed since the last
// ClearRedraw.
func (cpu *Cpu) Redraw() bool {
	return cpu.redraw
}

// ClearRedraw acknowledges the current framebuffer.
func (cpu *Cpu) ClearRedraw() {
	cpu.redraw = false
}

// Framebuffer returns a snapshot of the display.
func (cpu *Cpu) Framebuffer() Framebuffer {
	return cpu.display
}

// Peek reads a byte of memory.
func (cpu *Cpu) Peek(addr uint16) byte {
	return cpu.memory.Read(addr)
}

// StackDepth returns the number of saved return addresses.
func (cpu *Cpu) StackDepth() int {
	return cpu.stack.Sp
}

func (cpu *Cpu) Mode() Mode {
	return cpu.mode
}

// Fault returns the error that halted the core, if any.
func (cpu *Cpu) Fault() error {
	return cpu.fault
}

// SetKey sets the state of a single key.
func (cpu *Cpu) SetKey(key uint8, pressed bool) (err error) {
	if key >= KEY_COUNT {
		err = ErrKeyInvalid
		return
	}

	cpu.keypad[key] = pressed
	return
}

// SetKeys sets the state of the entire keypad.
func (cpu *Cpu) SetKeys(keys [KEY_COUNT]bool) {
	cpu.keypad = keys
}

// Keys returns the state of the keypad.
func (cpu *Cpu) Keys() [KEY_COUNT]bool {
	return cpu.keypad
}

func (cpu *Cpu) setMode(mode Mode) {
	if cpu.Verbose && mode != cpu.mode {
		log.Printf("cpu: %v -> %v", cpu.mode, mode)
	}
	cpu.mode = mode
}

func (cpu *Cpu) halt(err error) {
	cpu.fault = err
	cpu.setMode(MODE_HALTED)
}

// Fetch decodes the instruction at PC.
func (cpu *Cpu) Fetch() (inst Instruction, err error) {
	if cpu.pc > MEMORY_SIZE-2 {
		err = ErrPcRange
		return
	}

	inst = Decode(cpu.memory.Word(cpu.pc))
	return
}

// Step performs a single cycle: fetch, decode, execute, then the timer
// tick.
//
// An unknown opcode is reported but not fatal, unless Quirks.Strict is set.
// Any other error halts the core, and all following calls return the same
// fault until Reset.
func (cpu *Cpu) Step() (err error) {
	switch cpu.mode {
	case MODE_HALTED:
		err = errors.Join(ErrHalted, cpu.fault)
		return
	case MODE_AWAIT_KEY:
		cpu.awaitKey()
	default:
		var inst Instruction
		inst, err = cpu.Fetch()
		if err == nil {
			err = cpu.Execute(inst)
		}
		if err != nil {
			if cpu.Quirks.Strict || !errors.Is(err, ErrOpcode(0)) {
				cpu.halt(err)
				return
			}
			if cpu.Verbose {
				log.Printf("%03x: %v", cpu.pc-2, err)
			}
		}
	}

	if cpu.delay > 0 {
		cpu.delay--
	}
	if cpu.sound > 0 {
		cpu.sound--
	}

	cpu.Ticks++

	return
}

// awaitKey completes FX0A once a key is pressed that was not pressed at the
// previous check. The lowest such key wins.
func (cpu *Cpu) awaitKey() {
	for key, pressed := range cpu.keypad {
		if pressed && !cpu.awaitKeys[key] {
			cpu.register[cpu.awaitReg] = uint8(key)
			cpu.pc += 2
			cpu.setMode(MODE_RUNNING)
			break
		}
	}

	cpu.awaitKeys = cpu.keypad
}

func flag(cond bool) uint8 {
	if cond {
		return 1
	}
	return 0
}

// Execute executes a single decoded instruction.
//
// Where vf is a flag output it is written after the result, so the flag
// wins when x is f.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	if cpu.Verbose {
		log.Printf("%03x: %v", cpu.pc, inst)
	}

	v := &cpu.register
	mem := &cpu.memory
	x := inst.X
	y := inst.Y

	next_pc := cpu.pc + 2

	switch inst.Op {
	case OP_CLS:
		cpu.display.Clear()
		cpu.redraw = true
	case OP_RET:
		ret, ok := cpu.stack.Pop()
		if !ok {
			err = ErrStackUnderflow
			return
		}
		next_pc = ret
	case OP_JP:
		next_pc = inst.NNN
	case OP_CALL:
		if !cpu.stack.Push(next_pc) {
			err = ErrStackOverflow
			return
		}
		next_pc = inst.NNN
	case OP_SE_IMM:
		if v[x] == inst.NN {
			next_pc += 2
		}
	case OP_SNE_IMM:
		if v[x] != inst.NN {
			next_pc += 2
		}
	case OP_SE_REG:
		if v[x] == v[y] {
			next_pc += 2
		}
	case OP_LD_IMM:
		v[x] = inst.NN
	case OP_ADD_IMM:
		v[x] += inst.NN
	case OP_LD_REG:
		v[x] = v[y]
	case OP_OR:
		v[x] |= v[y]
	case OP_AND:
		v[x] &= v[y]
	case OP_XOR:
		v[x] ^= v[y]
	case OP_ADD_REG:
		sum := uint16(v[x]) + uint16(v[y])
		v[x] = uint8(sum)
		v[REGISTER_FLAG] = flag(sum > 0xff)
	case OP_SUB:
		no_borrow := v[x] >= v[y]
		v[x] -= v[y]
		v[REGISTER_FLAG] = flag(no_borrow)
	case OP_SHR:
		out := v[x] & 1
		v[x] >>= 1
		v[REGISTER_FLAG] = out
	case OP_SUBN:
		no_borrow := v[y] >= v[x]
		v[x] = v[y] - v[x]
		v[REGISTER_FLAG] = flag(no_borrow)
	case OP_SHL:
		out := (v[x] >> 7) & 1
		v[x] <<= 1
		v[REGISTER_FLAG] = out
	case OP_SNE_REG:
		if v[x] != v[y] {
			next_pc += 2
		}
	case OP_LD_I:
		cpu.index = inst.NNN
	case OP_JP_V0:
		next_pc = inst.NNN + uint16(v[0])
	case OP_RND:
		v[x] = inst.NN & uint8(cpu.rand.Uint32())
	case OP_DRW:
		var rows [15]byte
		for n := range inst.N {
			rows[n] = mem.Read(cpu.index + uint16(n))
		}
		collision := cpu.display.Draw(int(v[x]), int(v[y]), rows[:inst.N], cpu.Quirks.SpriteWrap)
		v[REGISTER_FLAG] = flag(collision)
		cpu.redraw = true
	case OP_SKP:
		if cpu.keypad[v[x]&0xf] {
			next_pc += 2
		}
	case OP_SKNP:
		if !cpu.keypad[v[x]&0xf] {
			next_pc += 2
		}
	case OP_LD_VX_DT:
		v[x] = cpu.delay
	case OP_LD_VX_K:
		// Park on this instruction; Step completes it.
		cpu.awaitReg = x
		cpu.awaitKeys = cpu.keypad
		cpu.setMode(MODE_AWAIT_KEY)
		next_pc = cpu.pc
	case OP_LD_DT_VX:
		cpu.delay = v[x]
	case OP_LD_ST_VX:
		cpu.sound = v[x]
	case OP_ADD_I:
		sum := cpu.index + uint16(v[x])
		overflow := sum > MEMORY_MASK
		if cpu.Quirks.IndexWrap {
			sum &= MEMORY_MASK
		}
		cpu.index = sum
		v[REGISTER_FLAG] = flag(overflow)
	case OP_LD_F:
		cpu.index = FONT_BASE + uint16(v[x]&0xf)*FONT_HEIGHT
	case OP_LD_B:
		val := v[x]
		mem.Write(cpu.index, val/100)
		mem.Write(cpu.index+1, (val/10)%10)
		mem.Write(cpu.index+2, val%10)
	case OP_LD_MEM_VX:
		for n := range x + 1 {
			mem.Write(cpu.index+uint16(n), v[n])
		}
	case OP_LD_VX_MEM:
		for n := range x + 1 {
			v[n] = mem.Read(cpu.index + uint16(n))
		}
	default:
		err = ErrOpcode(inst.Word)
		if cpu.Quirks.Strict {
			return
		}
	}

	cpu.pc = next_pc

	return
}
