package cpu

import "github.com/thelolagemann/gbcore/internal/types"

// rotateLeft rotates n left by 1 bit. Bit 7 is copied to both the carry
// flag and bit 0.
//
//	RLC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeft(n uint8) uint8 {
	carry := n & types.Bit7
	result := n<<1 | carry>>7
	c.setFlags(result == 0, false, false, carry == types.Bit7)
	return result
}

// rotateRight rotates n right by 1 bit. Bit 0 is copied to both the carry
// flag and bit 7.
//
//	RRC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRight(n uint8) uint8 {
	carry := n & types.Bit0
	result := n>>1 | carry<<7
	c.setFlags(result == 0, false, false, carry == types.Bit0)
	return result
}

// rotateLeftThroughCarry rotates n left by 1 bit through the carry flag.
//
//	RL n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	result := n << 1
	if c.isFlagSet(types.FlagCarry) {
		result |= types.Bit0
	}
	c.setFlags(result == 0, false, false, n&types.Bit7 == types.Bit7)
	return result
}

// rotateRightThroughCarry rotates n right by 1 bit through the carry flag.
//
//	RR n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	result := n >> 1
	if c.isFlagSet(types.FlagCarry) {
		result |= types.Bit7
	}
	c.setFlags(result == 0, false, false, n&types.Bit0 == types.Bit0)
	return result
}

// rotateAccumulator applies rotate to A. Unlike the prefixed rotates, the
// accumulator forms always reset the zero flag.
//
//	RLCA, RRCA, RLA, RRA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains the bit rotated out.
func (c *CPU) rotateAccumulator(rotate func(*CPU, uint8) uint8) {
	c.setA(rotate(c, c.a()))
	c.setFlags(false, false, false, c.isFlagSet(types.FlagCarry))
}

func init() {
	DefineInstruction(0x07, "RLCA", Implied, 4, func(c *CPU) { c.rotateAccumulator((*CPU).rotateLeft) })
	DefineInstruction(0x0F, "RRCA", Implied, 4, func(c *CPU) { c.rotateAccumulator((*CPU).rotateRight) })
	DefineInstruction(0x17, "RLA", Implied, 4, func(c *CPU) { c.rotateAccumulator((*CPU).rotateLeftThroughCarry) })
	DefineInstruction(0x1F, "RRA", Implied, 4, func(c *CPU) { c.rotateAccumulator((*CPU).rotateRightThroughCarry) })
}
