package cartridge

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/thelolagemann/gbcore/internal/types"
)

type Flag uint8

const (
	FlagOnlyDMG Flag = iota
	FlagSupportsCGB
	FlagOnlyCGB
)

// HeaderEnd is the first byte past the cartridge header.
const HeaderEnd = 0x150

var (
	ramMAP = map[uint8]uint{
		0x00: 0,
		0x01: 2 * 1024,
		0x02: 8 * 1024,
		0x03: 32 * 1024,
		0x04: 128 * 1024,
		0x05: 64 * 1024,
	}

	// legacy ROM size codes with a bank count that isn't a power of two
	romBankMAP = map[uint8]uint{
		0x52: 72,
		0x53: 80,
		0x54: 96,
	}
)

// Text is a header string that may fail to decode.
type Text struct {
	Value string
	Valid bool
}

func (t Text) String() string {
	if !t.Valid {
		return "<invalid>"
	}
	return t.Value
}

// Header represents the header of a cartridge, each cartridge has a header and is
// located at the address space 0x0100-0x014F. The header contains information about
// the cartridge itself, and the hardware it expects to run on.
type Header struct {
	// 0x0134-0x0142 - Title of the game, trailing zero padding trimmed.
	Title Text

	// 0x013F-0x0141 - ManufacturerCode of the game. Overlaps the title.
	ManufacturerCode Text

	// 0x0143 - CGBFlag. In older cartridges this byte was part of the title,
	// but the Colour Game Boy and later models interpret this byte to
	// determine if the cartridge is compatible with the Colour Game Boy.
	CGBFlag uint8

	// 0x0144 - NewLicenseeCode of the game. Only the first of its two
	// bytes is decoded.
	NewLicenseeCode Text

	// 0x0146 - SGBFlag, 0x03 if the game supports SGB functions.
	SGBFlag uint8

	// 0x0147 - CartridgeType, decoded from TypeCode.
	CartridgeType Type
	TypeCode      uint8

	// 0x0148 - ROMSizeCode (32kB x (1 << n))
	ROMSizeCode uint8
	// 0x0149 - RAMSizeCode
	RAMSizeCode uint8

	DestinationCode uint8
	OldLicenseeCode uint8
	MaskROMVersion  uint8
	HeaderChecksum  uint8
	GlobalChecksum  uint16

	checksum uint8
}

// ParseHeader parses the header of the given ROM image, which must be at
// least 0x150 bytes long.
func ParseHeader(rom []byte) (Header, error) {
	if len(rom) < HeaderEnd {
		return Header{}, types.Errorf(types.KindMalformedImage, "image is %d bytes, header needs %d", len(rom), HeaderEnd)
	}

	h := Header{
		Title:            readText(rom, 0x134, 0x143),
		ManufacturerCode: readText(rom, 0x13F, 0x142),
		CGBFlag:          rom[0x143],
		NewLicenseeCode:  readText(rom, 0x144, 0x145),
		SGBFlag:          rom[0x146],
		CartridgeType:    ParseType(rom[0x147]),
		TypeCode:         rom[0x147],
		ROMSizeCode:      rom[0x148],
		RAMSizeCode:      rom[0x149],
		DestinationCode:  rom[0x14A],
		OldLicenseeCode:  rom[0x14B],
		MaskROMVersion:   rom[0x14C],
		HeaderChecksum:   rom[0x14D],
		GlobalChecksum:   uint16(rom[0x14E])<<8 | uint16(rom[0x14F]),
		checksum:         ComputeHeaderChecksum(rom),
	}

	return h, nil
}

// readText decodes rom[start:end] as UTF-8, trimming trailing zero padding.
// Invalid text yields an invalid Text rather than an error.
func readText(rom []byte, start, end int) Text {
	b := rom[start:end]
	if !utf8.Valid(b) {
		return Text{}
	}
	return Text{Value: string(bytes.TrimRight(b, "\x00")), Valid: true}
}

// ComputeHeaderChecksum computes the checksum of 0x0134-0x014C the way the
// boot ROM does.
func ComputeHeaderChecksum(rom []byte) uint8 {
	var x uint8
	for _, b := range rom[0x134:0x14D] {
		x = x - b - 1
	}
	return x
}

// ChecksumValid reports whether the stored header checksum matches.
func (h *Header) ChecksumValid() bool {
	return h.checksum == h.HeaderChecksum
}

func (h *Header) Mode() Flag {
	switch h.CGBFlag {
	case 0x80:
		return FlagSupportsCGB
	case 0xC0:
		return FlagOnlyCGB
	default:
		return FlagOnlyDMG
	}
}

func (h *Header) GameboyColor() bool {
	return h.Mode() != FlagOnlyDMG
}

// SuperGameboy reports whether the cartridge supports SGB functions.
func (h *Header) SuperGameboy() bool {
	return h.SGBFlag == 0x03
}

func (h *Header) Hardware() string {
	switch h.Mode() {
	case FlagSupportsCGB, FlagOnlyCGB:
		return "CGB"
	default:
		return "DMG"
	}
}

// ROMBanks returns the number of 16kB ROM banks declared by the header,
// or 0 if the size code is unknown.
func (h *Header) ROMBanks() uint {
	if h.ROMSizeCode <= 0x08 {
		return 2 << h.ROMSizeCode
	}
	return romBankMAP[h.ROMSizeCode]
}

// ROMSize returns the declared ROM size in bytes.
func (h *Header) ROMSize() uint {
	return h.ROMBanks() * romBankSize
}

// RAMSize returns the declared external RAM size in bytes.
func (h *Header) RAMSize() uint {
	return ramMAP[h.RAMSizeCode]
}

// RAMBanks returns the number of 8kB RAM banks. A 2kB RAM still
// occupies a single bank.
func (h *Header) RAMBanks() uint {
	size := h.RAMSize()
	if size == 0 {
		return 0
	}
	if size < ramBankSize {
		return 1
	}
	return size / ramBankSize
}

func (h *Header) String() string {
	return fmt.Sprintf("%s | %s | Mode: %s | ROM Size: %dkB | RAM Size: %dkB",
		h.Title, h.CartridgeType, h.Hardware(), h.ROMSize()/1024, h.RAMSize()/1024)
}
