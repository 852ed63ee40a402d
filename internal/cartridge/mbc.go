package cartridge

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

const (
	romBankSize = 0x4000
	ramBankSize = 0x2000
)

// MemoryBankController translates cartridge addresses (0x0000-0x7FFF and
// 0xA000-0xBFFF) into ROM and RAM cells. Writes into the ROM window are
// control writes and never modify the image.
type MemoryBankController interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, value uint8) error

	// RAM returns the external RAM contents; LoadRAM replaces them.
	RAM() []byte
	LoadRAM([]byte)
}

// Option configures a MemoryBankController.
type Option func(*config)

type config struct {
	log    log.Logger
	strict bool
	clock  Clock
}

// WithLogger sets the logger bank clamping warnings are written to.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

// Strict makes a bank index that exceeds the declared bank count an
// error rather than a warning.
func Strict() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithClock attaches a clock device to an MBC3 cartridge, replacing the
// default RTC of timer cartridges.
func WithClock(clock Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// NewMemoryBankController selects the controller named by the cartridge
// header and sizes it by the header's ROM and RAM size codes.
func NewMemoryBankController(c *Cartridge, opts ...Option) (MemoryBankController, error) {
	cfg := &config{log: log.NewNullLogger()}
	for _, opt := range opts {
		opt(cfg)
	}

	h := c.header
	switch h.CartridgeType {
	case ROM, ROMRAM, ROMRAMBATT:
		b, err := newBanks(c, cfg)
		if err != nil {
			return nil, err
		}
		return NewROMCartridge(b), nil
	case MBC1, MBC1RAM, MBC1RAMBATT:
		b, err := newBanks(c, cfg)
		if err != nil {
			return nil, err
		}
		return NewMemoryBankedCartridge1(b), nil
	case MBC2, MBC2BATT:
		b, err := newBanks(c, cfg)
		if err != nil {
			return nil, err
		}
		return NewMemoryBankedCartridge2(b), nil
	case MBC3, MBC3RAM, MBC3RAMBATT, MBC3TIMERBATT, MBC3TIMERRAMBATT:
		b, err := newBanks(c, cfg)
		if err != nil {
			return nil, err
		}
		clock := cfg.clock
		if clock == nil && h.CartridgeType.HasTimer() {
			clock = NewRTC()
		}
		return NewMemoryBankedCartridge3(b, clock), nil
	case MBC5, MBC5RAM, MBC5RAMBATT, MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		b, err := newBanks(c, cfg)
		if err != nil {
			return nil, err
		}
		return NewMemoryBankedCartridge5(b), nil
	}

	cfg.log.Warnf("cartridge type %s (0x%02X) has no memory bank controller", h.CartridgeType, h.TypeCode)
	return NewUnsupportedCartridge(h), nil
}

// banks holds the storage shared by every banked controller, and the
// bounds every bank index is folded into.
type banks struct {
	rom []byte
	ram []byte

	romBanks uint
	ramBanks uint

	header *Header
	log    log.Logger
	strict bool
}

func newBanks(c *Cartridge, cfg *config) (*banks, error) {
	h := c.header
	romBanks := h.ROMBanks()
	if romBanks == 0 {
		return nil, types.Errorf(types.KindMalformedImage, "unknown ROM size code 0x%02X", h.ROMSizeCode)
	}
	if romBanks*romBankSize > uint(len(c.rom)) {
		return nil, types.Errorf(types.KindMalformedImage,
			"header declares %d ROM banks (%d bytes) but image is %d bytes", romBanks, romBanks*romBankSize, len(c.rom))
	}

	ramSize, ramBanks := h.RAMSize(), h.RAMBanks()
	if h.CartridgeType == MBC2 || h.CartridgeType == MBC2BATT {
		ramSize, ramBanks = 512, 1
	}

	return &banks{
		rom:      c.rom,
		ram:      make([]byte, ramSize),
		romBanks: romBanks,
		ramBanks: ramBanks,
		header:   &h,
		log:      cfg.log,
		strict:   cfg.strict,
	}, nil
}

// clamp folds bank into [0, count). Folding a bank that was out of range
// is reported, as it means the header under-declares the cartridge.
func (b *banks) clamp(kind string, bank, count uint) (uint, error) {
	if bank < count || (count == 0 && bank == 0) {
		return bank, nil
	}
	if b.strict {
		return 0, types.Errorf(types.KindBankIndexOutOfRange, "%s bank %d exceeds %d declared banks", kind, bank, count)
	}
	wrapped := utils.Wrap(bank, count)
	b.log.Warnf("%s bank %d exceeds %d declared banks, using bank %d", kind, bank, count, wrapped)
	return wrapped, nil
}

func (b *banks) clampROM(bank uint) (uint, error) {
	return b.clamp("ROM", bank, b.romBanks)
}

func (b *banks) clampRAM(bank uint) (uint, error) {
	return b.clamp("RAM", bank, b.ramBanks)
}

// readROM reads address from the given bank, which must already be clamped.
func (b *banks) readROM(bank uint, address uint16) uint8 {
	return b.rom[bank*romBankSize+uint(address&0x3FFF)]
}

// ramOffset returns the offset into RAM for address in the given bank,
// and false if the cartridge has no RAM.
func (b *banks) ramOffset(bank uint, address uint16) (uint, bool) {
	if len(b.ram) == 0 {
		return 0, false
	}
	return (bank*ramBankSize + uint(address&0x1FFF)) % uint(len(b.ram)), true
}

func (b *banks) readRAM(bank uint, address uint16) uint8 {
	offset, ok := b.ramOffset(bank, address)
	if !ok {
		return 0xFF
	}
	return b.ram[offset]
}

func (b *banks) writeRAM(bank uint, address uint16, value uint8) {
	if offset, ok := b.ramOffset(bank, address); ok {
		b.ram[offset] = value
	}
}

func (b *banks) RAM() []byte {
	return b.ram
}

func (b *banks) LoadRAM(data []byte) {
	copy(b.ram, data)
}

// ramEnableValue is the low nibble that unlocks external RAM.
const ramEnableValue = 0x0A

func isRAMEnable(value uint8) bool {
	return value&0x0F == ramEnableValue
}
