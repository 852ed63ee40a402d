package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/pkg/utils"
)

var cbNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

// cbOps are the rotate and shift operations of 0xCB 0x00 - 0x3F in
// opcode order.
var cbOps = [8]func(*CPU, uint8) uint8{
	(*CPU).rotateLeft,
	(*CPU).rotateRight,
	(*CPU).rotateLeftThroughCarry,
	(*CPU).rotateRightThroughCarry,
	(*CPU).shiftLeftIntoCarry,
	(*CPU).shiftRightIntoCarry,
	(*CPU).swap,
	(*CPU).shiftRightLogical,
}

func init() {
	// loop through each register (B, C, D, E, H, L, (HL), A)
	for reg := uint8(0); reg < 8; reg++ {
		reg := reg

		// (HL) reads and writes memory
		cycles, bitCycles := uint8(8), uint8(8)
		if reg == indexHL {
			cycles, bitCycles = 16, 12
		}

		// 0x00 - 0x3F - rotate, shift and swap
		for op := uint8(0); op < 8; op++ {
			fn := cbOps[op]
			DefineInstructionCB(op<<3+reg, fmt.Sprintf("%s %s", cbNames[op], registerName(reg)), cycles, func(c *CPU) {
				c.set(reg, fn(c, c.get(reg)))
			})
		}

		for b := uint8(0); b < 8; b++ {
			b := b

			// 0x40 - 0x7F - BIT b, n
			DefineInstructionCB(0x40+b<<3+reg, fmt.Sprintf("BIT %d, %s", b, registerName(reg)), bitCycles, func(c *CPU) {
				c.testBit(c.get(reg), b)
			})
			// 0x80 - 0xBF - RES b, n
			DefineInstructionCB(0x80+b<<3+reg, fmt.Sprintf("RES %d, %s", b, registerName(reg)), cycles, func(c *CPU) {
				c.set(reg, utils.ClearBit(c.get(reg), b))
			})
			// 0xC0 - 0xFF - SET b, n
			DefineInstructionCB(0xC0+b<<3+reg, fmt.Sprintf("SET %d, %s", b, registerName(reg)), cycles, func(c *CPU) {
				c.set(reg, utils.SetBit(c.get(reg), b))
			})
		}
	}
}
