package cartridge

import "github.com/thelolagemann/gbcore/internal/types"

// MemoryBankedCartridge5 has a 9-bit ROM bank register split across two
// windows, so unlike the other controllers bank 0 may be mapped into
// 0x4000-0x7FFF.
type MemoryBankedCartridge5 struct {
	*banks

	romBank    uint
	ramBank    uint
	ramEnabled bool

	romBankRegister uint
	rumble          bool
}

func NewMemoryBankedCartridge5(b *banks) *MemoryBankedCartridge5 {
	return &MemoryBankedCartridge5{
		banks:           b,
		romBank:         1,
		romBankRegister: 1,
	}
}

func (m *MemoryBankedCartridge5) Read(address uint16) (uint8, error) {
	switch {
	case address < types.ROMBankN:
		return m.rom[address], nil // first bank is always fixed
	case address < types.VRAM:
		return m.readROM(m.romBank, address), nil // switchable bank
	default:
		if !m.ramEnabled {
			return 0xFF, nil
		}
		return m.readRAM(m.ramBank, address), nil
	}
}

// Write updates the bank registers. A rejected selection leaves the
// registers and the mapped banks as they were.
func (m *MemoryBankedCartridge5) Write(address uint16, value uint8) error {
	switch {
	case address < types.ROMBankWindow:
		m.ramEnabled = isRAMEnable(value)
	case address < 0x3000:
		// ROM bank number (lower 8 bits)
		return m.selectROM(m.romBankRegister&0x100 | uint(value))
	case address < types.RAMBankWindow:
		// ROM bank number (upper 1 bit)
		return m.selectROM(m.romBankRegister&0xFF | uint(value&0x01)<<8)
	case address < types.BankingModeWindow:
		bank := uint(value & 0x0F)
		rumble := m.rumble
		if m.header.CartridgeType.HasRumble() {
			rumble = value&0x08 == 0x08
			bank &= 0x07
		}
		bank, err := m.clampRAM(bank)
		if err != nil {
			return err
		}
		m.ramBank, m.rumble = bank, rumble
	case address < types.VRAM:
		// no registers
	default:
		if m.ramEnabled {
			m.writeRAM(m.ramBank, address, value)
		}
	}
	return nil
}

func (m *MemoryBankedCartridge5) selectROM(register uint) error {
	bank, err := m.clampROM(register)
	if err != nil {
		return err
	}
	m.romBankRegister, m.romBank = register, bank
	return nil
}

// Rumbling reports whether the rumble motor is switched on.
func (m *MemoryBankedCartridge5) Rumbling() bool {
	return m.rumble
}
