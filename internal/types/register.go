package types

import (
	"fmt"

	"github.com/thelolagemann/gbcore/pkg/utils"
)

// Flag is the bit index of a condition flag within the low byte of AF.
type Flag = uint8

const (
	FlagZero      Flag = 0
	FlagSubtract  Flag = 1
	FlagHalfCarry Flag = 2
	FlagCarry     Flag = 3

	// FlagMask covers the only bits of F that may ever be set.
	FlagMask uint8 = 0x0F
)

// Pair identifies one of the six 16-bit registers.
type Pair uint8

const (
	AF Pair = iota
	BC
	DE
	HL
	SP
	PC
)

var pairNames = [...]string{"AF", "BC", "DE", "HL", "SP", "PC"}

func (p Pair) String() string {
	if int(p) < len(pairNames) {
		return pairNames[p]
	}
	return fmt.Sprintf("Pair(%d)", uint8(p))
}

// Register identifies one of the 8-bit halves of AF, BC, DE and HL.
type Register uint8

const (
	RegA Register = iota
	RegF
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
)

var registerNames = [...]string{"A", "F", "B", "C", "D", "E", "H", "L"}

func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return fmt.Sprintf("Register(%d)", uint8(r))
}

// pair returns the Pair a Register is half of, and whether it is the
// upper half.
func (r Register) pair() (Pair, bool) {
	switch r {
	case RegA:
		return AF, true
	case RegF:
		return AF, false
	case RegB:
		return BC, true
	case RegC:
		return BC, false
	case RegD:
		return DE, true
	case RegE:
		return DE, false
	case RegH:
		return HL, true
	default:
		return HL, false
	}
}

// Registers is the register file: six independent 16-bit registers. The
// low byte of AF holds the flags, of which only the lower nibble is used.
type Registers struct {
	AF, BC, DE, HL, SP, PC uint16
}

// PostBoot returns the register file as the DMG boot ROM leaves it.
func PostBoot() Registers {
	return Registers{
		AF: 0x0100 | 1<<FlagZero | 1<<FlagHalfCarry | 1<<FlagCarry,
		BC: 0x0013,
		DE: 0x00D8,
		HL: 0x014D,
		SP: 0xFFFE,
		PC: 0x0100,
	}
}

func (r *Registers) pair(p Pair) *uint16 {
	switch p {
	case AF:
		return &r.AF
	case BC:
		return &r.BC
	case DE:
		return &r.DE
	case HL:
		return &r.HL
	case SP:
		return &r.SP
	case PC:
		return &r.PC
	}
	panic(fmt.Sprintf("invalid register pair: %d", p))
}

// Get16 returns the value of the given Pair.
func (r *Registers) Get16(p Pair) uint16 {
	return *r.pair(p)
}

// Set16 sets the value of the given Pair. Writing AF discards the
// unused upper nibble of the flag byte.
func (r *Registers) Set16(p Pair, value uint16) {
	if p == AF {
		value &= 0xFF00 | uint16(FlagMask)
	}
	*r.pair(p) = value
}

// Get8 returns the value of the given 8-bit Register.
func (r *Registers) Get8(reg Register) uint8 {
	p, upper := reg.pair()
	if upper {
		return utils.Upper(*r.pair(p))
	}
	return utils.Lower(*r.pair(p))
}

// Set8 sets the given 8-bit Register, leaving the other half of its pair
// untouched.
func (r *Registers) Set8(reg Register, value uint8) {
	p, upper := reg.pair()
	w := r.pair(p)
	if upper {
		*w = utils.Concat(value, utils.Lower(*w))
	} else {
		if reg == RegF {
			value &= FlagMask
		}
		*w = utils.Concat(utils.Upper(*w), value)
	}
}

// A returns the accumulator.
func (r *Registers) A() uint8 { return utils.Upper(r.AF) }

// SetA sets the accumulator, leaving the flags untouched.
func (r *Registers) SetA(value uint8) { r.Set8(RegA, value) }

// F returns the flag byte.
func (r *Registers) F() uint8 { return utils.Lower(r.AF) }

// IncUpper increments the upper byte of p modulo 256 and returns the
// new value. The lower byte is never affected.
func (r *Registers) IncUpper(p Pair) uint8 {
	w := r.pair(p)
	v := (utils.Upper(*w) + 1) & 0xFF
	*w = utils.Concat(v, utils.Lower(*w))
	return v
}

// DecUpper decrements the upper byte of p modulo 256 and returns the
// new value. The lower byte is never affected.
func (r *Registers) DecUpper(p Pair) uint8 {
	w := r.pair(p)
	v := (utils.Upper(*w) - 1) & 0xFF
	*w = utils.Concat(v, utils.Lower(*w))
	return v
}

// Flag reports whether the given flag is set.
func (r *Registers) Flag(f Flag) bool {
	return utils.TestBit(r.F(), f)
}

// SetFlag sets or clears exactly one flag.
func (r *Registers) SetFlag(f Flag, set bool) {
	r.AF = utils.Concat(r.A(), utils.PutBit(r.F(), f, set)&FlagMask)
}

// SetFlags assigns all four flags at once.
func (r *Registers) SetFlags(zero, subtract, halfCarry, carry bool) {
	var f uint8
	f = utils.PutBit(f, FlagZero, zero)
	f = utils.PutBit(f, FlagSubtract, subtract)
	f = utils.PutBit(f, FlagHalfCarry, halfCarry)
	f = utils.PutBit(f, FlagCarry, carry)
	r.AF = utils.Concat(r.A(), f)
}

func (r Registers) String() string {
	return fmt.Sprintf("AF: %04X BC: %04X DE: %04X HL: %04X SP: %04X PC: %04X",
		r.AF, r.BC, r.DE, r.HL, r.SP, r.PC)
}
