package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// condition is one of the four branch conditions encoded in opcodes.
type condition uint8

const (
	conditionNZ condition = iota
	conditionZ
	conditionNC
	conditionC
)

var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

func (c *CPU) isCondition(cond condition) bool {
	switch cond {
	case conditionNZ:
		return !c.isFlagSet(types.FlagZero)
	case conditionZ:
		return c.isFlagSet(types.FlagZero)
	case conditionNC:
		return !c.isFlagSet(types.FlagCarry)
	default:
		return c.isFlagSet(types.FlagCarry)
	}
}

// jumpRelative jumps to the address relative to the PC of the next
// instruction.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.r.PC = uint16(int32(c.r.PC) + int32(int8(offset)))
}

// call pushes the address of the next instruction onto the stack and jumps to
// the given address.
//
//	CALL nn
//	nn = 16-bit immediate value
func (c *CPU) call(address uint16) {
	c.pushStack(c.r.PC)
	c.r.PC = address
}

// ret pops the return address off the stack into PC.
//
//	RET
func (c *CPU) ret() {
	c.r.PC = c.popStack()
}

func init() {
	DefineInstruction(0x18, "JR r8", Immediate8, 12, func(c *CPU) { c.jumpRelative(c.readOperand()) })
	DefineInstruction(0xC3, "JP a16", Immediate16, 16, func(c *CPU) { c.r.PC = c.readOperand16() })
	DefineInstruction(0xE9, "JP HL", Implied, 4, func(c *CPU) { c.r.PC = c.r.HL })
	DefineInstruction(0xCD, "CALL a16", Immediate16, 24, func(c *CPU) { c.call(c.readOperand16()) })
	DefineInstruction(0xC9, "RET", Implied, 16, func(c *CPU) { c.ret() })
	DefineInstruction(0xD9, "RETI", Implied, 16, func(c *CPU) {
		c.ret()
		c.ime = true
	})

	for i := uint8(0); i < 4; i++ {
		cond := condition(i)
		name := conditionNames[i]

		// 0x20, 0x28, 0x30, 0x38 - JR cc, r8
		DefineInstruction(0x20+i<<3, fmt.Sprintf("JR %s, r8", name), Immediate8, 8, func(c *CPU) {
			offset := c.readOperand()
			if c.isCondition(cond) {
				c.jumpRelative(offset)
				c.extra += 4
			}
		})
		// 0xC2, 0xCA, 0xD2, 0xDA - JP cc, a16
		DefineInstruction(0xC2+i<<3, fmt.Sprintf("JP %s, a16", name), Immediate16, 12, func(c *CPU) {
			address := c.readOperand16()
			if c.isCondition(cond) {
				c.r.PC = address
				c.extra += 4
			}
		})
		// 0xC4, 0xCC, 0xD4, 0xDC - CALL cc, a16
		DefineInstruction(0xC4+i<<3, fmt.Sprintf("CALL %s, a16", name), Immediate16, 12, func(c *CPU) {
			address := c.readOperand16()
			if c.isCondition(cond) {
				c.call(address)
				c.extra += 12
			}
		})
		// 0xC0, 0xC8, 0xD0, 0xD8 - RET cc
		DefineInstruction(0xC0+i<<3, fmt.Sprintf("RET %s", name), Implied, 8, func(c *CPU) {
			if c.isCondition(cond) {
				c.ret()
				c.extra += 12
			}
		})
	}

	// 0xC7, 0xCF, ... 0xFF - RST n
	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) << 3
		DefineInstruction(0xC7+i<<3, fmt.Sprintf("RST %02XH", vector), Implied, 16, func(c *CPU) {
			c.call(vector)
		})
	}
}
