package cartridge

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// MemoryBankedCartridge2 has up to 256kB of ROM and a built-in RAM of
// 512 half-bytes. ROM bank select and RAM enable share 0x0000-0x3FFF and
// are told apart by bit 8 of the address.
type MemoryBankedCartridge2 struct {
	*banks

	ramg bool
	romb uint
}

// NewMemoryBankedCartridge2 returns a new MemoryBankedCartridge2 cartridge.
func NewMemoryBankedCartridge2(b *banks) *MemoryBankedCartridge2 {
	return &MemoryBankedCartridge2{
		banks: b,
		romb:  1 % b.romBanks,
	}
}

// Read returns the value from the cartridges ROM or RAM, depending on the bank
// selected.
func (m *MemoryBankedCartridge2) Read(address uint16) (uint8, error) {
	switch {
	case address < types.ROMBankN:
		return m.rom[address], nil
	case address < types.VRAM:
		return m.readROM(m.romb, address), nil
	default:
		if !m.ramg {
			return 0xFF, nil
		}
		return m.ram[address&0x01FF] | 0xF0, nil
	}
}

func (m *MemoryBankedCartridge2) Write(address uint16, value uint8) error {
	switch {
	case address < types.ROMBankN:
		if address&0x100 == 0x100 {
			bank, err := m.clampROM(uint(utils.ZeroAdjust8(value & 0x0F)))
			if err != nil {
				return err
			}
			m.romb = bank
		} else {
			m.ramg = isRAMEnable(value)
		}
	case address < types.VRAM:
		// no registers
	default:
		if m.ramg {
			m.ram[address&0x01FF] = value & 0x0F
		}
	}
	return nil
}
