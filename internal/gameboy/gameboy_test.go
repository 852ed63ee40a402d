package gameboy

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// newROM builds a cartridge image whose entry point jumps to program at
// 0x0150, the way real cartridges skip over the header.
func newROM(typeCode, romCode uint8, program ...uint8) []byte {
	h := cartridge.Header{ROMSizeCode: romCode}
	rom := make([]byte, h.ROMSize())
	copy(rom[0x100:], []byte{0x00, 0xC3, 0x50, 0x01}) // NOP; JP 0x0150
	copy(rom[0x134:], "GBCORE TEST")
	rom[0x147] = typeCode
	rom[0x148] = romCode
	rom[0x14D] = cartridge.ComputeHeaderChecksum(rom)
	copy(rom[0x150:], program)
	return rom
}

func newTestGameBoy(t *testing.T, program []uint8, opts ...Opt) *GameBoy {
	t.Helper()
	g := NewGameBoy(opts...)
	require.NoError(t, g.LoadROM(newROM(0x00, 0x00, program...)))
	return g
}

// TestGameBoy_Fibonacci runs a program that computes the first fibonacci
// numbers into B, C, D, E, H and L before halting, following the register
// convention of the mooneye test suite.
func TestGameBoy_Fibonacci(t *testing.T) {
	g := newTestGameBoy(t, []uint8{
		0x06, 0x03, // LD B,3
		0x0E, 0x05, // LD C,5
		0x78,       // LD A,B
		0x81,       // ADD A,C
		0x57,       // LD D,A
		0x81,       // ADD A,C
		0x5F,       // LD E,A
		0x82,       // ADD A,D
		0x67,       // LD H,A
		0x83,       // ADD A,E
		0x6F,       // LD L,A
		0x76,       // HALT
	})

	n, err := g.Run(32)
	require.NoError(t, err)
	assert.Equal(t, 32, n)
	assert.True(t, g.CPU.Halted())

	r := g.Registers()
	expected := []uint8{3, 5, 8, 13, 21, 34}
	for i, reg := range []types.Register{types.RegB, types.RegC, types.RegD, types.RegE, types.RegH, types.RegL} {
		assert.Equal(t, expected[i], r.Get8(reg), "register %s", reg)
	}
	assert.Equal(t, uint16(0x015E), r.PC)
}

func TestGameBoy_WordOrder(t *testing.T) {
	g := newTestGameBoy(t, []uint8{
		0x01, 0x34, 0x12, // LD BC,0x1234
		0x31, 0x00, 0xD0, // LD SP,0xD000
		0xC5, // PUSH BC
		0x76, // HALT
	})

	_, err := g.Run(6)
	require.NoError(t, err)

	r := g.Registers()
	require.Equal(t, uint16(0x1234), r.BC)

	// the operand fetched by the CPU is the word the bus reads
	operand, err := g.Bus().ReadWord(0x0151)
	require.NoError(t, err)
	assert.Equal(t, r.BC, operand)

	pushed, err := g.Bus().ReadWord(r.SP)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xCFFE), r.SP)
	assert.Equal(t, uint16(0x1234), pushed)

	low, err := g.Bus().ReadByte(r.SP)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x34), low)
}

func TestGameBoy_UndefinedOpcode(t *testing.T) {
	g := newTestGameBoy(t, []uint8{0x00, 0xD3})

	n, err := g.Run(10)
	require.Error(t, err)
	assert.Equal(t, 3, n)
	assert.ErrorIs(t, err, types.ErrUnimplementedOpcode)

	var opErr *cpu.OpcodeError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, uint8(0xD3), opErr.Opcode)
	assert.Equal(t, uint16(0x0151), opErr.PC)

	// the failed step leaves the register file as it was
	assert.Equal(t, uint16(0x0151), g.Registers().PC)

	// halted until reset
	_, again := g.Step()
	assert.Same(t, err, again)
	assert.Same(t, err, g.Err())

	g.Reset()
	assert.NoError(t, g.Err())
	assert.Equal(t, types.PostBoot(), g.Registers())
	_, err = g.Step()
	assert.NoError(t, err)
}

func TestGameBoy_UnsupportedCartridge(t *testing.T) {
	g := NewGameBoy()
	require.NoError(t, g.LoadROM(newROM(0xFC, 0x00)))

	_, err := g.Step()
	require.Error(t, err)
	assert.Equal(t, types.KindUnsupportedCartridgeType, types.KindOf(err))
	assert.Equal(t, uint16(0x0100), g.Registers().PC)
}

func TestGameBoy_LoadROM(t *testing.T) {
	t.Run("oversized", func(t *testing.T) {
		g := NewGameBoy()
		err := g.LoadROM(make([]byte, cartridge.MaxImageSize+1))
		assert.ErrorIs(t, err, types.ErrOversizedImage)
		assert.Nil(t, g.MMU.Cartridge())
	})
	t.Run("truncated", func(t *testing.T) {
		g := NewGameBoy()
		rom := newROM(0x01, 0x01)
		err := g.LoadROM(rom[:len(rom)/2])
		assert.ErrorIs(t, err, types.ErrMalformedImage)
	})
	t.Run("bad checksum", func(t *testing.T) {
		rec := log.NewRecorder()
		g := NewGameBoy(WithLogger(rec))
		rom := newROM(0x00, 0x00)
		rom[0x14D]++
		require.NoError(t, g.LoadROM(rom))
		assert.Len(t, rec.Warnings, 1)
	})
}

func TestGameBoy_Banking(t *testing.T) {
	program := []uint8{
		0x3E, 0x06, // LD A,6
		0xEA, 0x00, 0x20, // LD (0x2000),A
		0x76, // HALT
	}
	rom := newROM(0x01, 0x01, program...)

	t.Run("lenient", func(t *testing.T) {
		rec := log.NewRecorder()
		g := NewGameBoy(WithLogger(rec))
		require.NoError(t, g.LoadROM(rom))

		_, err := g.Run(5)
		require.NoError(t, err)
		assert.Len(t, rec.Warnings, 1)
		assert.Empty(t, rec.Errors)
	})
	t.Run("strict", func(t *testing.T) {
		rec := log.NewRecorder()
		g := NewGameBoy(WithLogger(rec), StrictBanking())
		require.NoError(t, g.LoadROM(rom))

		_, err := g.Run(5)
		require.Error(t, err)
		assert.Equal(t, types.KindBankIndexOutOfRange, types.KindOf(err))
		assert.Empty(t, rec.Warnings)
		assert.Len(t, rec.Errors, 1)
	})
}

type countingPeripheral struct {
	cycles uint64
	steps  int
	resets int
}

func (c *countingPeripheral) Step(cycles uint8, _ types.Bus) error {
	c.cycles += uint64(cycles)
	c.steps++
	return nil
}

func (c *countingPeripheral) Reset() {
	c.cycles, c.steps = 0, 0
	c.resets++
}

func TestGameBoy_Peripherals(t *testing.T) {
	p := &countingPeripheral{}
	g := newTestGameBoy(t, []uint8{0x00, 0x00, 0x76}, WithPeripheral(p))
	require.Equal(t, 1, p.resets)

	_, err := g.Run(8)
	require.NoError(t, err)

	assert.Equal(t, 8, p.steps)
	assert.Equal(t, g.Cycles(), p.cycles)
	// NOP, JP, NOP, NOP, HALT then three idle steps
	assert.Equal(t, uint64(4+16+4+4+4+3*4), g.Cycles())

	g.Reset()
	assert.Equal(t, 2, p.resets)
	assert.Zero(t, g.Cycles())
}

func TestGameBoy_SerialDebugger(t *testing.T) {
	out := &bytes.Buffer{}
	g := newTestGameBoy(t, []uint8{
		0x3E, 'O', // LD A,'O'
		0xE0, 0x01, // LDH (SB),A
		0x3E, 0x81, // LD A,0x81
		0xE0, 0x02, // LDH (SC),A
		0xF0, 0x02, // LDH A,(SC)
		0xE6, 0x80, // AND 0x80
		0x20, 0xFA, // JR NZ,-6
		0x3E, 'K', // LD A,'K'
		0xE0, 0x01, // LDH (SB),A
		0x3E, 0x81, // LD A,0x81
		0xE0, 0x02, // LDH (SC),A
		0xF0, 0x02, // LDH A,(SC)
		0xE6, 0x80, // AND 0x80
		0x20, 0xFA, // JR NZ,-6
		0x76, // HALT
	}, SerialDebugger(out))

	_, err := g.Run(2000)
	require.NoError(t, err)
	assert.True(t, g.CPU.Halted())
	assert.Equal(t, "OK", out.String())

	iflag, err := g.Bus().ReadByte(types.IF)
	require.NoError(t, err)
	assert.NotZero(t, iflag&types.Bit3)
}

func TestGameBoy_WithRegisters(t *testing.T) {
	initial := types.Registers{SP: 0xDFFF, PC: 0x0150}
	g := newTestGameBoy(t, []uint8{0x04, 0x76}, WithRegisters(initial)) // INC B; HALT

	assert.Equal(t, initial, g.Registers())
	_, err := g.Step()
	require.NoError(t, err)
	regs := g.Registers()
	assert.Equal(t, uint8(1), regs.Get8(types.RegB))

	g.Reset()
	assert.Equal(t, initial, g.Registers())
}

func TestGameBoy_Eject(t *testing.T) {
	g := newTestGameBoy(t, nil)

	b, err := g.Bus().ReadByte(0x0101)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xC3), b)

	g.Eject()
	b, err = g.Bus().ReadByte(0x0101)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xFF), b)

	// with no cartridge the bus floats, which decodes as RST 38H
	_, err = g.Step()
	assert.NoError(t, err)
}
