package mmu

import "github.com/thelolagemann/gbcore/internal/ram"

// WRAM is the 8kB of work RAM at 0xC000-0xDFFF. The echo region at
// 0xE000-0xFDFF answers with the same cells.
type WRAM struct {
	ram.RAM
}

func NewWRAM() *WRAM {
	return &WRAM{RAM: ram.NewRAM(0x2000)}
}

func (w *WRAM) Read(addr uint16) uint8 {
	return w.RAM.Read(addr & 0x1FFF)
}

func (w *WRAM) Write(addr uint16, v uint8) {
	w.RAM.Write(addr&0x1FFF, v)
}
