// Package cartridge provides the cartridge image, its header, and the
// memory bank controllers that map it into the address space.
package cartridge

import (
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gbcore/internal/types"
)

// MaxImageSize is the largest cartridge image that will be accepted.
const MaxImageSize = 1_572_864

// Cartridge is an immutable cartridge image together with its header.
type Cartridge struct {
	rom    []byte
	header Header
}

// New validates the given image and parses its header. The image is
// copied, so the caller may reuse rom.
func New(rom []byte) (*Cartridge, error) {
	if len(rom) > MaxImageSize {
		return nil, types.Errorf(types.KindOversizedImage, "image is %d bytes, maximum is %d", len(rom), MaxImageSize)
	}

	header, err := ParseHeader(rom)
	if err != nil {
		return nil, err
	}

	c := &Cartridge{
		rom:    make([]byte, len(rom)),
		header: header,
	}
	copy(c.rom, rom)

	return c, nil
}

func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the decoded title, or an empty string if it could not
// be decoded.
func (c *Cartridge) Title() string {
	return c.header.Title.Value
}

// Size returns the length of the image in bytes.
func (c *Cartridge) Size() int {
	return len(c.rom)
}

// Fingerprint returns a 64-bit hash of the whole image.
func (c *Cartridge) Fingerprint() uint64 {
	return xxhash.Sum64(c.rom)
}
