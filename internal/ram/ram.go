// Package ram provides a basic RAM implementation.
package ram

// RAM represents a block of RAM.
type RAM interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	Reset()
	Size() int
}

type ram struct {
	data []uint8
}

// NewRAM returns a new RAM of the given size. Addresses are folded into
// the block, so a RAM of 0x2000 bytes answers 0x2000 as 0x0000.
func NewRAM(size uint32) RAM {
	return &ram{
		data: make([]uint8, size),
	}
}

// Read returns the value at the given address.
func (r *ram) Read(address uint16) uint8 {
	return r.data[int(address)%len(r.data)]
}

// Write writes the value to the given address.
func (r *ram) Write(address uint16, value uint8) {
	r.data[int(address)%len(r.data)] = value
}

// Reset clears the RAM.
func (r *ram) Reset() {
	for i := range r.data {
		r.data[i] = 0
	}
}

func (r *ram) Size() int {
	return len(r.data)
}
