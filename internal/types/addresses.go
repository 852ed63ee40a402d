package types

// Address represents a memory address in the Game Boy's memory,
// which can be read from or written to. It is used to abstract
// away the actual memory addresses, and instead use a more
// readable and understandable interface.
type Address struct {
	// Read is a function that is called when the CPU reads from
	// the address.
	Read func(address uint16) uint8
	// Write is a function that is called when the CPU writes to
	// the address.
	Write func(address uint16, value uint8)
}

// Memory map boundaries. Each region starts at its constant and ends
// where the next one begins.
const (
	ROMBank0    uint16 = 0x0000 // fixed cartridge ROM bank
	ROMBankN    uint16 = 0x4000 // switchable cartridge ROM bank
	VRAM        uint16 = 0x8000
	ExternalRAM uint16 = 0xA000 // switchable cartridge RAM bank
	WRAM        uint16 = 0xC000
	EchoRAM     uint16 = 0xE000 // mirror of WRAM
	OAM         uint16 = 0xFE00
	Unusable    uint16 = 0xFEA0
	IO          uint16 = 0xFF00
	HRAM        uint16 = 0xFF80
	IE          uint16 = 0xFFFF
)

// I/O registers.
const (
	SB uint16 = 0xFF01 // serial transfer data
	SC uint16 = 0xFF02 // serial transfer control
	IF uint16 = 0xFF0F // interrupt flag
)

// MBC control windows inside the cartridge ROM region.
const (
	RAMEnableWindow   uint16 = 0x0000
	ROMBankWindow     uint16 = 0x2000
	RAMBankWindow     uint16 = 0x4000
	BankingModeWindow uint16 = 0x6000
)

// IsCartridgeAddress reports whether address is routed to the cartridge.
func IsCartridgeAddress(address uint16) bool {
	return address < VRAM || (address >= ExternalRAM && address < WRAM)
}
