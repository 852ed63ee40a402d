package cartridge

import "github.com/thelolagemann/gbcore/internal/types"

// ROMCartridge represents a ROM cartridge. This cartridge type is the simplest
// cartridge type and has no MBC; an optional RAM chip is always mapped.
type ROMCartridge struct {
	*banks
}

// NewROMCartridge returns a new ROM cartridge.
func NewROMCartridge(b *banks) *ROMCartridge {
	return &ROMCartridge{banks: b}
}

// Read returns the value at the given address.
func (r *ROMCartridge) Read(address uint16) (uint8, error) {
	if address < types.VRAM {
		return r.rom[address], nil
	}
	return r.readRAM(0, address), nil
}

// Write writes the value to the given address. Writes into the ROM window
// are ignored.
func (r *ROMCartridge) Write(address uint16, value uint8) error {
	if address < types.VRAM {
		r.log.Debugf("rom: ignoring write of %02X to %04X", value, address)
		return nil
	}
	r.writeRAM(0, address, value)
	return nil
}
