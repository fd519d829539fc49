package emulator

import (
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/io"
)

func TestParseConfig_Default(t *testing.T) {
	assert := assert.New(t)

	config, err := ParseConfig("empty.star", []byte(""), nil)
	assert.NoError(err)
	assert.Equal(DefaultConfig(), config)
	assert.Equal(EMULATOR_HZ, config.Hz)
	assert.Equal(io.KEYPAD_HOLD, config.Hold)
}

func TestParseConfig(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(cpu.Quirks{})

	src := `
index_wrap = True
sprite_wrap = DISPLAY_WIDTH == 64
strict = False
hz = EMULATOR_HZ * 10
hold = KEYPAD_HOLD // 2
keymap = "hex"
unrelated = [1, 2, 3]
`
	config, err := ParseConfig("chip8.star", []byte(src), emu.Defines())
	assert.NoError(err)
	assert.Equal(cpu.Quirks{IndexWrap: true, SpriteWrap: true}, config.Quirks)
	assert.Equal(600, config.Hz)
	assert.Equal(3, config.Hold)
	assert.Equal("hex", config.Keymap)

	assert.NoError(emu.Apply(config))
	assert.True(emu.Quirks.IndexWrap)
	assert.True(emu.Quirks.SpriteWrap)
	assert.Equal(3, emu.Keypad.Hold)
	key, ok := emu.Keypad.Lookup('4')
	assert.True(ok)
	assert.Equal(uint8(0x4), key)
}

func TestParseConfig_Defines(t *testing.T) {
	assert := assert.New(t)

	defines := maps.All(map[string]string{
		"NUMBER": "0x10",
		"WORD":   "hello",
	})

	config, err := ParseConfig("defines.star", []byte(`hz = NUMBER if WORD == "hello" else 1`), defines)
	assert.NoError(err)
	assert.Equal(16, config.Hz)
}

func TestParseConfig_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		src  string
		name string
		want string
	}){
		{`strict = 1`, "strict", "bool"},
		{`index_wrap = "yes"`, "index_wrap", "bool"},
		{`sprite_wrap = None`, "sprite_wrap", "bool"},
		{`hz = True`, "hz", "int"},
		{`hz = 0`, "hz", "positive int"},
		{`hold = -4`, "hold", "positive int"},
		{`hz = 1 << 40`, "hz", "positive int"},
		{`keymap = 7`, "keymap", "string"},
		{`keymap = "dvorak"`, "keymap", "keymap name"},
	}

	for _, entry := range table {
		_, err := ParseConfig("bad.star", []byte(entry.src), nil)
		var cerr *ErrConfig
		if !assert.True(errors.As(err, &cerr), entry.src) {
			continue
		}
		assert.Equal(entry.name, cerr.Name, entry.src)
		assert.Equal(entry.want, cerr.Want, entry.src)
	}

	_, err := ParseConfig("bad.star", []byte(`keymap = "dvorak"`), nil)
	assert.Equal(`config keymap: want keymap name, got "dvorak"`, err.Error())
}

func TestParseConfig_Script(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseConfig("syntax.star", []byte("hz = = 3"), nil)
	assert.Error(err)

	_, err = ParseConfig("undefined.star", []byte("hz = NOT_DEFINED"), nil)
	assert.Error(err)

	var cerr *ErrConfig
	assert.False(errors.As(err, &cerr))
}

func TestEmulator_Apply(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(cpu.Quirks{})

	config := DefaultConfig()
	config.Keymap = ""
	assert.NoError(emu.Apply(config))
	assert.Nil(emu.Keypad.Keymap)

	config.Keymap = "dvorak"
	config.Quirks.Strict = true
	err := emu.Apply(config)
	var cerr *ErrConfig
	assert.True(errors.As(err, &cerr))
	assert.Equal("keymap", cerr.Name)

	// Nothing applied.
	assert.False(emu.Quirks.Strict)
}
