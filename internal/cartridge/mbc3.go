package cartridge

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// MemoryBankedCartridge3 represents a MemoryBankedCartridge3 cartridge. This
// cartridge type has up to 2MB of ROM, up to 32kB of external RAM, and
// optionally a real time clock.
type MemoryBankedCartridge3 struct {
	*banks

	romBank    uint
	ramBank    uint
	ramEnabled bool

	// clock is nil for cartridges without a timer
	clock         Clock
	clockRegister uint8 // non-zero while a clock register is mapped
	latch         uint8
}

// NewMemoryBankedCartridge3 returns a new MemoryBankedCartridge3 cartridge.
func NewMemoryBankedCartridge3(b *banks, clock Clock) *MemoryBankedCartridge3 {
	return &MemoryBankedCartridge3{
		banks:   b,
		romBank: 1 % b.romBanks,
		clock:   clock,
		latch:   0xFF,
	}
}

// Read returns the value from the cartridges ROM or RAM, depending on the bank
// selected.
func (m *MemoryBankedCartridge3) Read(address uint16) (uint8, error) {
	switch {
	case address < types.ROMBankN:
		return m.rom[address], nil
	case address < types.VRAM:
		return m.readROM(m.romBank, address), nil
	}

	if !m.ramEnabled {
		return 0xFF, nil
	}
	if m.clockRegister != 0 {
		if m.clock == nil {
			return 0xFF, nil
		}
		return m.clock.Read(m.clockRegister), nil
	}
	return m.readRAM(m.ramBank, address), nil
}

// Write attempts to switch the ROM or RAM bank.
func (m *MemoryBankedCartridge3) Write(address uint16, value uint8) error {
	switch {
	case address < types.ROMBankWindow:
		m.ramEnabled = isRAMEnable(value)
	case address < types.RAMBankWindow:
		bank, err := m.clampROM(uint(utils.ZeroAdjust8(value & 0x7F)))
		if err != nil {
			return err
		}
		m.romBank = bank
	case address < types.BankingModeWindow:
		switch {
		case value >= RTCSeconds && value <= RTCDaysHigh:
			m.clockRegister = value
		case value < RTCSeconds:
			bank, err := m.clampRAM(uint(value))
			if err != nil {
				return err
			}
			m.ramBank = bank
			m.clockRegister = 0
		}
	case address < types.VRAM:
		if m.latch == 0x00 && value == 0x01 && m.clock != nil {
			m.clock.Latch()
		}
		m.latch = value
	default:
		if !m.ramEnabled {
			return nil
		}
		if m.clockRegister != 0 {
			if m.clock != nil {
				m.clock.Write(m.clockRegister, value)
			}
			return nil
		}
		m.writeRAM(m.ramBank, address, value)
	}
	return nil
}

// Clock returns the attached clock device, if any.
func (m *MemoryBankedCartridge3) Clock() Clock {
	return m.clock
}
