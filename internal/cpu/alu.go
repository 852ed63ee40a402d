package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// add adds n to the A Register, plus the carry flag if carry is true.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, carry bool) {
	a, in := c.a(), uint8(0)
	if carry && c.isFlagSet(types.FlagCarry) {
		in = 1
	}
	sum := uint16(a) + uint16(n) + uint16(in)
	c.setA(uint8(sum))
	c.setFlags(uint8(sum) == 0, false, a&0x0F+n&0x0F+in > 0x0F, sum > 0xFF)
}

// sub subtracts n from the A Register, and the carry flag if carry is
// true. The result is only stored if store is true, which makes CP a sub
// that keeps A.
//
//	SUB n
//	SBC A, n
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, carry, store bool) {
	a, in := c.a(), 0
	if carry && c.isFlagSet(types.FlagCarry) {
		in = 1
	}
	diff := int(a) - int(n) - in
	if store {
		c.setA(uint8(diff))
	}
	c.setFlags(uint8(diff) == 0, true, int(a&0x0F)-int(n&0x0F)-in < 0, diff < 0)
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.setA(c.a() & n)
	c.setFlags(c.a() == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.setA(c.a() | n)
	c.setFlags(c.a() == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.setA(c.a() ^ n)
	c.setFlags(c.a() == 0, false, false, false)
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from lower nibble.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 0x01
	c.setFlags(incremented == 0, false, n&0xF == 0xF, c.isFlagSet(types.FlagCarry))
	return incremented
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 0x01
	c.setFlags(decremented == 0, true, n&0xF == 0, c.isFlagSet(types.FlagCarry))
	return decremented
}

// upperPairs maps the register indexes of B, D and H to their pairs.
var upperPairs = map[uint8]types.Pair{0: types.BC, 2: types.DE, 4: types.HL}

// incrementUpper is INC for B, D and H, stepping the upper byte of the
// pair in place.
func (c *CPU) incrementUpper(p types.Pair) {
	n := c.r.IncUpper(p)
	c.setFlags(n == 0, false, n&0xF == 0, c.isFlagSet(types.FlagCarry))
}

// decrementUpper is DEC for B, D and H.
func (c *CPU) decrementUpper(p types.Pair) {
	n := c.r.DecUpper(p)
	c.setFlags(n == 0, true, n&0xF == 0xF, c.isFlagSet(types.FlagCarry))
}

// addHL adds the given register pair to HL.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(nn uint16) {
	hl := c.r.HL
	sum := uint32(hl) + uint32(nn)
	c.setFlags(c.isFlagSet(types.FlagZero), false, hl&0x0FFF+nn&0x0FFF > 0x0FFF, sum > 0xFFFF)
	c.r.HL = uint16(sum)
}

// addSPSigned returns SP plus the signed offset. The carry flags are
// computed on the unsigned low byte.
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(offset uint8) uint16 {
	sp := c.r.SP
	c.setFlags(false, false, sp&0x0F+uint16(offset&0x0F) > 0x0F, sp&0xFF+uint16(offset) > 0xFF)
	return uint16(int32(sp) + int32(int8(offset)))
}

// decimalAdjust adjusts A to a binary coded decimal after an addition or
// subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	a, carry := c.a(), c.isFlagSet(types.FlagCarry)
	subtract := c.isFlagSet(types.FlagSubtract)

	var adjust uint8
	if c.isFlagSet(types.FlagHalfCarry) || (!subtract && a&0x0F > 0x09) {
		adjust |= 0x06
	}
	if carry || (!subtract && a > 0x99) {
		adjust |= 0x60
		carry = true
	}
	if subtract {
		a -= adjust
	} else {
		a += adjust
	}

	c.setA(a)
	c.setFlags(a == 0, subtract, false, carry)
}

var aluNames = [8]string{"ADD A,", "ADC A,", "SUB", "SBC A,", "AND", "XOR", "OR", "CP"}

// alu dispatches one of the eight accumulator operations by its opcode index.
func (c *CPU) alu(op uint8, n uint8) {
	switch op {
	case 0:
		c.add(n, false)
	case 1:
		c.add(n, true)
	case 2:
		c.sub(n, false, true)
	case 3:
		c.sub(n, true, true)
	case 4:
		c.and(n)
	case 5:
		c.xor(n)
	case 6:
		c.or(n)
	case 7:
		c.sub(n, false, false)
	}
}

func init() {
	for op := uint8(0); op < 8; op++ {
		op := op

		// 0x80 - 0xBF - ALU A, n
		for src := uint8(0); src < 8; src++ {
			src := src
			cycles, mode := uint8(4), Implied
			if src == indexHL {
				cycles, mode = 8, RegisterIndirect
			}
			DefineInstruction(0x80+op<<3+src, fmt.Sprintf("%s %s", aluNames[op], registerName(src)), mode, cycles, func(c *CPU) {
				c.alu(op, c.get(src))
			})
		}

		// 0xC6, 0xCE, ... 0xFE - ALU A, d8
		DefineInstruction(0xC6+op<<3, fmt.Sprintf("%s d8", aluNames[op]), Immediate8, 8, func(c *CPU) {
			c.alu(op, c.readOperand())
		})
	}

	// 0x04, 0x0C, ... 0x3C - INC n
	// 0x05, 0x0D, ... 0x3D - DEC n
	for i := uint8(0); i < 8; i++ {
		i := i
		cycles, mode := uint8(4), Implied
		if i == indexHL {
			cycles, mode = 12, RegisterIndirect
		}
		if pair, ok := upperPairs[i]; ok {
			DefineInstruction(0x04+i<<3, fmt.Sprintf("INC %s", registerName(i)), mode, cycles, func(c *CPU) {
				c.incrementUpper(pair)
			})
			DefineInstruction(0x05+i<<3, fmt.Sprintf("DEC %s", registerName(i)), mode, cycles, func(c *CPU) {
				c.decrementUpper(pair)
			})
			continue
		}
		DefineInstruction(0x04+i<<3, fmt.Sprintf("INC %s", registerName(i)), mode, cycles, func(c *CPU) {
			c.set(i, c.increment(c.get(i)))
		})
		DefineInstruction(0x05+i<<3, fmt.Sprintf("DEC %s", registerName(i)), mode, cycles, func(c *CPU) {
			c.set(i, c.decrement(c.get(i)))
		})
	}

	for i := uint8(0); i < 4; i++ {
		pair := pairIndex[i]
		// 0x03, 0x13, 0x23, 0x33 - INC nn
		DefineInstruction(0x03+i<<4, fmt.Sprintf("INC %s", pair), Implied, 8, func(c *CPU) {
			c.r.Set16(pair, c.r.Get16(pair)+1)
		})
		// 0x0B, 0x1B, 0x2B, 0x3B - DEC nn
		DefineInstruction(0x0B+i<<4, fmt.Sprintf("DEC %s", pair), Implied, 8, func(c *CPU) {
			c.r.Set16(pair, c.r.Get16(pair)-1)
		})
		// 0x09, 0x19, 0x29, 0x39 - ADD HL, nn
		DefineInstruction(0x09+i<<4, fmt.Sprintf("ADD HL, %s", pair), Implied, 8, func(c *CPU) {
			c.addHL(c.r.Get16(pair))
		})
	}

	DefineInstruction(0xE8, "ADD SP, r8", Immediate8, 16, func(c *CPU) {
		c.r.SP = c.addSPSigned(c.readOperand())
	})
}
