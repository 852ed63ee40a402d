package cartridge

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// MemoryBankedCartridge1 represents a MemoryBankedCartridge1 cartridge. This
// cartridge type has up to 2MB of ROM, and up to 32kB of external RAM.
//
// A 5-bit register selects the low bits of the ROM bank, and a 2-bit register
// selects either the RAM bank or bits 5-6 of the ROM bank, depending on the
// banking mode.
type MemoryBankedCartridge1 struct {
	*banks

	bank1      uint8 // 0x2000-0x3FFF, never 0
	bank2      uint8 // 0x4000-0x5FFF
	ramBanking bool  // 0x6000-0x7FFF
	ramEnabled bool  // 0x0000-0x1FFF

	romBank uint
	ramBank uint
}

// NewMemoryBankedCartridge1 returns a new MemoryBankedCartridge1 cartridge.
func NewMemoryBankedCartridge1(b *banks) *MemoryBankedCartridge1 {
	return &MemoryBankedCartridge1{
		banks:   b,
		bank1:   1,
		romBank: 1 % b.romBanks,
	}
}

// Read returns the value from the cartridges ROM or RAM, depending on the bank
// selected.
func (m *MemoryBankedCartridge1) Read(address uint16) (uint8, error) {
	switch {
	case address < types.ROMBankN:
		return m.rom[address], nil // first bank is always fixed
	case address < types.VRAM:
		return m.readROM(m.romBank, address), nil
	default:
		if !m.ramEnabled {
			return 0xFF, nil
		}
		return m.readRAM(m.ramBank, address), nil
	}
}

// Write attempts to switch the ROM or RAM bank. A rejected selection
// leaves the bank registers and the mapped banks as they were.
func (m *MemoryBankedCartridge1) Write(address uint16, value uint8) error {
	bank1, bank2, ramBanking := m.bank1, m.bank2, m.ramBanking
	switch {
	case address < types.ROMBankWindow:
		m.ramEnabled = isRAMEnable(value)
		return nil
	case address < types.RAMBankWindow:
		bank1 = utils.ZeroAdjust8(value & 0x1F)
	case address < types.BankingModeWindow:
		bank2 = value & 0x03
	case address < types.VRAM:
		ramBanking = value&0x01 == 0x01
	default:
		if m.ramEnabled {
			m.writeRAM(m.ramBank, address, value)
		}
		return nil
	}

	romBank, ramBank, err := m.resolveBanks(bank1, bank2, ramBanking)
	if err != nil {
		return err
	}
	m.bank1, m.bank2, m.ramBanking = bank1, bank2, ramBanking
	m.romBank, m.ramBank = romBank, ramBank
	return nil
}

// resolveBanks computes the effective ROM and RAM banks from the bank
// registers and the banking mode.
func (m *MemoryBankedCartridge1) resolveBanks(bank1, bank2 uint8, ramBanking bool) (uint, uint, error) {
	romBank, ramBank := uint(bank1), uint(0)
	if ramBanking {
		ramBank = uint(bank2)
	} else {
		romBank |= uint(bank2) << 5
	}

	romBank, err := m.clampROM(romBank)
	if err != nil {
		return 0, 0, err
	}
	ramBank, err = m.clampRAM(ramBank)
	if err != nil {
		return 0, 0, err
	}
	return romBank, ramBank, nil
}
