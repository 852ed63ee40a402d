package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// loadRegister16 loads the 16-bit immediate value into the given register
// pair. The operand is fetched in bus word order, low byte first.
//
//	LD nn, d16
//	nn = BC, DE, HL, SP
//	d16 = 16-bit immediate value
func (c *CPU) loadRegister16(pair types.Pair) {
	c.r.Set16(pair, c.readOperand16())
}

// loadIndirect loads A into the memory address held by the given pair,
// then applies delta to HL for the (HL+) and (HL-) forms.
//
//	LD (nn), A
//	nn = BC, DE, HL+, HL-
func (c *CPU) loadIndirect(pair types.Pair, delta uint16) {
	address := c.r.Get16(pair)
	c.writeByte(address, c.a())
	if delta != 0 {
		c.r.HL = address + delta
	}
}

// loadAccumulatorIndirect loads the value at the memory address held by
// the given pair into A.
//
//	LD A, (nn)
//	nn = BC, DE, HL+, HL-
func (c *CPU) loadAccumulatorIndirect(pair types.Pair, delta uint16) {
	address := c.r.Get16(pair)
	c.setA(c.readByte(address))
	if delta != 0 {
		c.r.HL = address + delta
	}
}

// loadHLSPOffset loads SP plus a signed immediate into HL.
//
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) loadHLSPOffset() {
	c.r.HL = c.addSPSigned(c.readOperand())
}

func init() {
	indirectNames := [4]string{"BC", "DE", "HL+", "HL-"}
	indirectPairs := [4]types.Pair{types.BC, types.DE, types.HL, types.HL}
	indirectDeltas := [4]uint16{0, 0, 1, 0xFFFF}

	for i := uint8(0); i < 4; i++ {
		pair, delta := indirectPairs[i], indirectDeltas[i]

		// 0x01, 0x11, 0x21, 0x31 - LD nn, d16
		target := pairIndex[i]
		DefineInstruction(0x01+i<<4, fmt.Sprintf("LD %s, d16", target), Immediate16, 12, func(c *CPU) {
			c.loadRegister16(target)
		})
		// 0x02, 0x12, 0x22, 0x32 - LD (nn), A
		DefineInstruction(0x02+i<<4, fmt.Sprintf("LD (%s), A", indirectNames[i]), RegisterIndirect, 8, func(c *CPU) {
			c.loadIndirect(pair, delta)
		})
		// 0x0A, 0x1A, 0x2A, 0x3A - LD A, (nn)
		DefineInstruction(0x0A+i<<4, fmt.Sprintf("LD A, (%s)", indirectNames[i]), RegisterIndirect, 8, func(c *CPU) {
			c.loadAccumulatorIndirect(pair, delta)
		})
	}

	for dst := uint8(0); dst < 8; dst++ {
		dst := dst

		// 0x06, 0x0E, ... 0x3E - LD n, d8
		cycles, mode := uint8(8), Immediate8
		if dst == indexHL {
			cycles = 12
		}
		DefineInstruction(0x06+dst<<3, fmt.Sprintf("LD %s, d8", registerName(dst)), mode, cycles, func(c *CPU) {
			c.set(dst, c.readOperand())
		})

		// 0x40 - 0x7F - LD n, n
		for src := uint8(0); src < 8; src++ {
			src := src
			opcode := 0x40 + dst<<3 + src
			if opcode == 0x76 {
				continue // HALT
			}

			cycles, mode := uint8(4), Implied
			if src == indexHL || dst == indexHL {
				cycles, mode = 8, RegisterIndirect
			}
			DefineInstruction(opcode, fmt.Sprintf("LD %s, %s", registerName(dst), registerName(src)), mode, cycles, func(c *CPU) {
				c.set(dst, c.get(src))
			})
		}
	}

	DefineInstruction(0x08, "LD (a16), SP", Immediate16, 20, func(c *CPU) {
		c.writeWord(c.readOperand16(), c.r.SP)
	})
	DefineInstruction(0xE0, "LDH (a8), A", Immediate8, 12, func(c *CPU) {
		c.writeByte(0xFF00+uint16(c.readOperand()), c.a())
	})
	DefineInstruction(0xF0, "LDH A, (a8)", Immediate8, 12, func(c *CPU) {
		c.setA(c.readByte(0xFF00 + uint16(c.readOperand())))
	})
	DefineInstruction(0xE2, "LD (C), A", RegisterIndirect, 8, func(c *CPU) {
		c.writeByte(0xFF00+uint16(utils.Lower(c.r.BC)), c.a())
	})
	DefineInstruction(0xF2, "LD A, (C)", RegisterIndirect, 8, func(c *CPU) {
		c.setA(c.readByte(0xFF00 + uint16(utils.Lower(c.r.BC))))
	})
	DefineInstruction(0xEA, "LD (a16), A", Immediate16, 16, func(c *CPU) {
		c.writeByte(c.readOperand16(), c.a())
	})
	DefineInstruction(0xFA, "LD A, (a16)", Immediate16, 16, func(c *CPU) {
		c.setA(c.readByte(c.readOperand16()))
	})
	DefineInstruction(0xF8, "LD HL, SP+r8", Immediate8, 12, func(c *CPU) { c.loadHLSPOffset() })
	DefineInstruction(0xF9, "LD SP, HL", Implied, 8, func(c *CPU) { c.r.SP = c.r.HL })

	// 0xC1, 0xD1, 0xE1, 0xF1 - POP nn
	// 0xC5, 0xD5, 0xE5, 0xF5 - PUSH nn
	for i := uint8(0); i < 4; i++ {
		pair := stackPairIndex[i]
		DefineInstruction(0xC1+i<<4, fmt.Sprintf("POP %s", pair), Implied, 12, func(c *CPU) {
			c.r.Set16(pair, c.popStack()) // flags beyond the lower nibble are dropped for AF
		})
		DefineInstruction(0xC5+i<<4, fmt.Sprintf("PUSH %s", pair), Implied, 16, func(c *CPU) {
			c.pushStack(c.r.Get16(pair))
		})
	}
}
