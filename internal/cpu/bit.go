package cpu

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// testBit tests the bit at the given position in n.
//
//	BIT b, n
//	b = 0-7
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit b of n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(n uint8, b uint8) {
	c.setFlags(!utils.TestBit(n, b), false, true, c.isFlagSet(types.FlagCarry))
}
