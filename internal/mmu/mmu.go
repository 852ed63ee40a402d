// Package mmu provides a memory management unit for the Game Boy. The
// MMU routes every access in the 64kB address space either to the
// inserted cartridge's memory bank controller, or to the internal memory
// it owns itself.
package mmu

import (
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/ram"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// MMU is the memory management unit for the Game Boy. It implements
// types.Bus.
type MMU struct {
	// internal address space, nil for the cartridge windows
	raw [65536]*types.Address

	// 0x0000 - 0x7FFF - ROM (32kB)
	// 0xA000 - 0xBFFF - External RAM (8kB)
	cart *cartridge.Cartridge
	mbc  cartridge.MemoryBankController

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	vRAM ram.RAM

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB)
	wRAM *WRAM

	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	oam ram.RAM

	// 0xFF00 - 0xFF7F - I/O Registers
	io ram.RAM

	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	zRAM ram.RAM

	// 0xFFFF - interrupt enable register
	ie uint8

	Log log.Logger
}

var _ types.Bus = (*MMU)(nil)

// NewMMU returns a new MMU with no cartridge inserted.
func NewMMU(l log.Logger) *MMU {
	if l == nil {
		l = log.NewNullLogger()
	}
	m := &MMU{
		vRAM: ram.NewRAM(0x2000),
		wRAM: NewWRAM(),
		oam:  ram.NewRAM(0xA0),
		io:   ram.NewRAM(0x80),
		zRAM: ram.NewRAM(0x80), // 128 bytes
		Log:  l,
	}
	m.init()
	return m
}

func (m *MMU) init() {
	addresses := []types.Address{
		{Read: readOffset(m.vRAM.Read, types.VRAM), Write: writeOffset(m.vRAM.Write, types.VRAM)},
		{Read: m.wRAM.Read, Write: m.wRAM.Write},
		{Read: readOffset(m.oam.Read, types.OAM), Write: writeOffset(m.oam.Write, types.OAM)},
		{Read: func(address uint16) uint8 {
			return 0xFF
		}, Write: func(address uint16, value uint8) {}},
		{Read: readOffset(m.io.Read, types.IO), Write: writeOffset(m.io.Write, types.IO)},
		{Read: readOffset(m.zRAM.Read, types.HRAM), Write: writeOffset(m.zRAM.Write, types.HRAM)},
		{Read: func(uint16) uint8 { return m.ie }, Write: func(_ uint16, v uint8) { m.ie = v }},
	}

	// 0x8000 - 0x9FFF - VRAM (8kB)
	for i := 0x8000; i < 0xA000; i++ {
		m.raw[i] = &addresses[0]
	}

	// 0xC000 - 0xFDFF - internal RAM (8kB) and its echo
	for i := 0xC000; i < 0xFE00; i++ {
		m.raw[i] = &addresses[1]
	}

	// 0xFE00 - 0xFE9F - sprite attribute table (OAM) (160B)
	for i := 0xFE00; i < 0xFEA0; i++ {
		m.raw[i] = &addresses[2]
	}

	// 0xFEA0 - 0xFEFF - unusable memory (96B)
	for i := 0xFEA0; i < 0xFF00; i++ {
		m.raw[i] = &addresses[3]
	}

	// 0xFF00 - 0xFF7F - I/O (128B)
	for i := 0xFF00; i < 0xFF80; i++ {
		m.raw[i] = &addresses[4]
	}

	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	for i := 0xFF80; i < 0xFFFF; i++ {
		m.raw[i] = &addresses[5]
	}

	// 0xFFFF - interrupt enable register
	m.raw[0xFFFF] = &addresses[6]
}

func readOffset(read func(uint16) uint8, offset uint16) func(uint16) uint8 {
	return func(addr uint16) uint8 {
		return read(addr - offset)
	}
}

func writeOffset(write func(uint16, uint8), offset uint16) func(uint16, uint8) {
	return func(addr uint16, v uint8) {
		write(addr-offset, v)
	}
}

// Insert maps the cartridge into the cartridge windows, replacing any
// cartridge already inserted. The memory bank controller is chosen from
// the cartridge header.
func (m *MMU) Insert(cart *cartridge.Cartridge, opts ...cartridge.Option) error {
	mbc, err := cartridge.NewMemoryBankController(cart, append([]cartridge.Option{cartridge.WithLogger(m.Log)}, opts...)...)
	if err != nil {
		return err
	}
	m.cart, m.mbc = cart, mbc
	return nil
}

// Eject removes the cartridge, after which the cartridge windows read
// 0xFF and ignore writes.
func (m *MMU) Eject() {
	m.cart, m.mbc = nil, nil
}

// Cartridge returns the inserted cartridge, or nil.
func (m *MMU) Cartridge() *cartridge.Cartridge {
	return m.cart
}

// MBC returns the memory bank controller of the inserted cartridge, or nil.
func (m *MMU) MBC() cartridge.MemoryBankController {
	return m.mbc
}

// ReadByte returns the value at the given address.
func (m *MMU) ReadByte(address uint16) (uint8, error) {
	if types.IsCartridgeAddress(address) {
		if m.mbc == nil {
			return 0xFF, nil
		}
		return m.mbc.Read(address)
	}
	return m.raw[address].Read(address), nil
}

// WriteByte writes the value to the given address. Writes into the
// cartridge ROM window reach the memory bank controller as control writes.
func (m *MMU) WriteByte(address uint16, value uint8) error {
	if types.IsCartridgeAddress(address) {
		if m.mbc == nil {
			return nil
		}
		return m.mbc.Write(address, value)
	}
	m.raw[address].Write(address, value)
	return nil
}

// ReadWord reads the byte at address as the low byte and the byte at
// address+1 as the high byte.
func (m *MMU) ReadWord(address uint16) (uint16, error) {
	low, err := m.ReadByte(address)
	if err != nil {
		return 0, err
	}
	high, err := m.ReadByte(address + 1)
	if err != nil {
		return 0, err
	}
	return utils.Concat(high, low), nil
}

// WriteWord writes the low byte of value to address and the high byte to
// address+1.
//
// Only cartridge writes can fail, so when the word straddles a cartridge
// window the cartridge byte is written first and a failure leaves memory
// untouched. A word written entirely into cartridge control registers is
// two register writes: if the second is rejected the first stays applied.
func (m *MMU) WriteWord(address uint16, value uint16) error {
	low, high := address, address+1
	if !types.IsCartridgeAddress(low) && types.IsCartridgeAddress(high) {
		if err := m.WriteByte(high, utils.Upper(value)); err != nil {
			return err
		}
		return m.WriteByte(low, utils.Lower(value))
	}
	if err := m.WriteByte(low, utils.Lower(value)); err != nil {
		return err
	}
	return m.WriteByte(high, utils.Upper(value))
}

// Reset clears the internal memory. The cartridge stays inserted.
func (m *MMU) Reset() {
	m.vRAM.Reset()
	m.wRAM.Reset()
	m.oam.Reset()
	m.io.Reset()
	m.zRAM.Reset()
	m.ie = 0
}
