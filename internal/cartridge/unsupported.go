package cartridge

import "github.com/thelolagemann/gbcore/internal/types"

// UnsupportedCartridge stands in for cartridge hardware that has no
// controller. Every access fails, so a cartridge that cannot be mapped
// is never mistaken for a plain ROM.
type UnsupportedCartridge struct {
	header Header
}

func NewUnsupportedCartridge(h Header) *UnsupportedCartridge {
	return &UnsupportedCartridge{header: h}
}

func (u *UnsupportedCartridge) err(op string, address uint16) error {
	return types.Errorf(types.KindUnsupportedCartridgeType, "%s %04X: cartridge type %s (0x%02X)",
		op, address, u.header.CartridgeType, u.header.TypeCode)
}

func (u *UnsupportedCartridge) Read(address uint16) (uint8, error) {
	return 0, u.err("read", address)
}

func (u *UnsupportedCartridge) Write(address uint16, value uint8) error {
	return u.err("write", address)
}

func (u *UnsupportedCartridge) RAM() []byte { return nil }

func (u *UnsupportedCartridge) LoadRAM([]byte) {}
