package mmu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/types"
)

// newCartridge returns a 4 bank image of the given type with 4 RAM banks,
// where every ROM bank starts with its bank number.
func newCartridge(t *testing.T, typeCode uint8) *cartridge.Cartridge {
	t.Helper()
	rom := make([]byte, 4*0x4000)
	for bank := 0; bank < 4; bank++ {
		rom[bank*0x4000] = uint8(bank)
	}
	rom[0x147] = typeCode
	rom[0x148] = 0x01
	rom[0x149] = 0x03
	c, err := cartridge.New(rom)
	require.NoError(t, err)
	return c
}

func TestMMU_NoCartridge(t *testing.T) {
	m := NewMMU(nil)
	for _, address := range []uint16{0x0000, 0x4000, 0x7FFF, 0xA000, 0xBFFF} {
		v, err := m.ReadByte(address)
		require.NoError(t, err)
		assert.Equal(t, uint8(0xFF), v, "address %04X", address)
		assert.NoError(t, m.WriteByte(address, 0x12))
	}
}

func TestMMU_Internal(t *testing.T) {
	m := NewMMU(nil)

	tests := []struct {
		name    string
		address uint16
	}{
		{"VRAM", 0x8000},
		{"VRAM end", 0x9FFF},
		{"WRAM", 0xC000},
		{"WRAM end", 0xDFFF},
		{"OAM", 0xFE00},
		{"I/O", 0xFF00},
		{"HRAM", 0xFF80},
		{"HRAM end", 0xFFFE},
		{"IE", 0xFFFF},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value := uint8(0x10 + i)
			require.NoError(t, m.WriteByte(tt.address, value))
			v, err := m.ReadByte(tt.address)
			require.NoError(t, err)
			assert.Equal(t, value, v)
		})
	}
}

func TestMMU_Echo(t *testing.T) {
	m := NewMMU(nil)

	require.NoError(t, m.WriteByte(0xC123, 0x42))
	v, _ := m.ReadByte(0xE123)
	assert.Equal(t, uint8(0x42), v)

	require.NoError(t, m.WriteByte(0xFDFF, 0x24))
	v, _ = m.ReadByte(0xDDFF)
	assert.Equal(t, uint8(0x24), v)
}

func TestMMU_Unusable(t *testing.T) {
	m := NewMMU(nil)
	require.NoError(t, m.WriteByte(0xFEA0, 0x00))
	v, _ := m.ReadByte(0xFEA0)
	assert.Equal(t, uint8(0xFF), v)
}

func TestMMU_Word(t *testing.T) {
	m := NewMMU(nil)

	require.NoError(t, m.WriteWord(0xC000, 0x1234))
	low, _ := m.ReadByte(0xC000)
	high, _ := m.ReadByte(0xC001)
	assert.Equal(t, uint8(0x34), low, "low byte at the lower address")
	assert.Equal(t, uint8(0x12), high)

	w, err := m.ReadWord(0xC000)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), w)

	// words straddling the top of the address space wrap to 0x0000
	require.NoError(t, m.WriteWord(0xFFFF, 0xABCD))
	ie, _ := m.ReadByte(0xFFFF)
	assert.Equal(t, uint8(0xCD), ie)
}

func TestMMU_Cartridge(t *testing.T) {
	m := NewMMU(nil)
	require.NoError(t, m.Insert(newCartridge(t, 0x03))) // MBC1+RAM+BATTERY
	assert.NotNil(t, m.Cartridge())

	t.Run("ROM banks", func(t *testing.T) {
		v, _ := m.ReadByte(0x4000)
		assert.Equal(t, uint8(1), v)

		require.NoError(t, m.WriteByte(0x2000, 0x03))
		v, _ = m.ReadByte(0x4000)
		assert.Equal(t, uint8(3), v)

		v, _ = m.ReadByte(0x0000)
		assert.Equal(t, uint8(0), v, "ROM writes must never mutate ROM")
	})
	t.Run("RAM", func(t *testing.T) {
		require.NoError(t, m.WriteByte(0x0000, 0x0A))
		require.NoError(t, m.WriteWord(0xA000, 0xBEEF))
		w, err := m.ReadWord(0xA000)
		require.NoError(t, err)
		assert.Equal(t, uint16(0xBEEF), w)
	})
	t.Run("eject", func(t *testing.T) {
		m.Eject()
		assert.Nil(t, m.Cartridge())
		v, _ := m.ReadByte(0x4000)
		assert.Equal(t, uint8(0xFF), v)
	})
}

func TestMMU_UnsupportedCartridge(t *testing.T) {
	m := NewMMU(nil)
	require.NoError(t, m.Insert(newCartridge(t, 0xFC)))

	_, err := m.ReadByte(0x0100)
	assert.ErrorIs(t, err, types.ErrUnsupportedCartridgeType)
	_, err = m.ReadWord(0x0100)
	assert.ErrorIs(t, err, types.ErrUnsupportedCartridgeType)
	assert.ErrorIs(t, m.WriteWord(0xA000, 0), types.ErrUnsupportedCartridgeType)

	// internal memory is unaffected
	assert.NoError(t, m.WriteByte(0xC000, 1))

	// a word straddling VRAM and cartridge RAM fails without a partial write
	assert.ErrorIs(t, m.WriteWord(0x9FFF, 0x1234), types.ErrUnsupportedCartridgeType)
	v, err := m.ReadByte(0x9FFF)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestMMU_Reset(t *testing.T) {
	m := NewMMU(nil)
	require.NoError(t, m.WriteByte(0xC000, 0x42))
	require.NoError(t, m.WriteByte(0xFFFF, 0x1F))
	m.Reset()

	v, _ := m.ReadByte(0xC000)
	assert.Zero(t, v)
	v, _ = m.ReadByte(0xFFFF)
	assert.Zero(t, v)
}
