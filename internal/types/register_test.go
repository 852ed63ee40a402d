package types

import (
	"testing"
)

var flags = []Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry}

func TestRegisters_Flag(t *testing.T) {
	// every combination of prior flags, for every pair of values of A
	for prior := uint8(0); prior <= FlagMask; prior++ {
		for _, a := range []uint8{0x00, 0x5A, 0xFF} {
			for _, f := range flags {
				t.Run("", func(t *testing.T) {
					r := Registers{AF: uint16(a)<<8 | uint16(prior)}

					r.SetFlag(f, true)
					if !r.Flag(f) {
						t.Errorf("expected flag %d to be set, got unset", f)
					}
					if r.A() != a {
						t.Errorf("expected A to be 0x%02X, got 0x%02X", a, r.A())
					}
					if r.F()&^(1<<f) != prior&^(1<<f) {
						t.Errorf("expected other flags to be %04b, got %04b", prior&^(1<<f), r.F()&^(1<<f))
					}

					r.SetFlag(f, false)
					if r.Flag(f) {
						t.Errorf("expected flag %d to be unset, got set", f)
					}
					if r.F()&^(1<<f) != prior&^(1<<f) {
						t.Errorf("expected other flags to be untouched")
					}
				})
			}
		}
	}
}

func TestRegisters_SetFlags(t *testing.T) {
	r := Registers{AF: 0x12FF & 0xFF0F}
	r.SetFlags(true, false, true, false)
	if r.AF != 0x1205 {
		t.Errorf("expected AF to be 0x1205, got 0x%04X", r.AF)
	}
	r.SetFlags(false, false, false, false)
	if r.F() != 0 {
		t.Errorf("expected stale flags to be cleared, got %04b", r.F())
	}
}

func TestRegisters_UpperNibbleOfF(t *testing.T) {
	r := Registers{}
	r.Set16(AF, 0xABFF)
	if r.AF != 0xAB0F {
		t.Errorf("expected AF to be 0xAB0F, got 0x%04X", r.AF)
	}
	r.Set8(RegF, 0xF3)
	if r.F() != 0x03 {
		t.Errorf("expected F to be 0x03, got 0x%02X", r.F())
	}
}

func TestRegisters_Get8Set8(t *testing.T) {
	r := Registers{AF: 0xDE0D, BC: 0xDEAD, DE: 0xBEEF, HL: 0xCAFE}
	tests := []struct {
		reg  Register
		want uint8
	}{
		{RegA, 0xDE}, {RegF, 0x0D},
		{RegB, 0xDE}, {RegC, 0xAD},
		{RegD, 0xBE}, {RegE, 0xEF},
		{RegH, 0xCA}, {RegL, 0xFE},
	}
	for _, tt := range tests {
		t.Run(tt.reg.String(), func(t *testing.T) {
			if got := r.Get8(tt.reg); got != tt.want {
				t.Errorf("expected 0x%02X, got 0x%02X", tt.want, got)
			}
		})
	}

	r.Set8(RegC, 0x11)
	if r.BC != 0xDE11 {
		t.Errorf("expected BC to be 0xDE11, got 0x%04X", r.BC)
	}
	r.Set8(RegH, 0x22)
	if r.HL != 0x22FE {
		t.Errorf("expected HL to be 0x22FE, got 0x%04X", r.HL)
	}
}

func TestRegisters_IncDecUpper(t *testing.T) {
	r := Registers{BC: 0xFF34}
	if v := r.IncUpper(BC); v != 0x00 {
		t.Errorf("expected B to wrap to 0x00, got 0x%02X", v)
	}
	if r.BC != 0x0034 {
		t.Errorf("expected BC to be 0x0034, got 0x%04X", r.BC)
	}

	r.DE = 0x00FF
	if v := r.DecUpper(DE); v != 0xFF {
		t.Errorf("expected D to wrap to 0xFF, got 0x%02X", v)
	}
	if r.DE != 0xFFFF {
		t.Errorf("expected DE to be 0xFFFF, got 0x%04X", r.DE)
	}

	r.HL = 0x7F80
	r.IncUpper(HL)
	if r.HL != 0x8080 {
		t.Errorf("expected HL to be 0x8080, got 0x%04X", r.HL)
	}
}

func TestRegisters_Pairs(t *testing.T) {
	r := Registers{}
	for p := AF; p <= PC; p++ {
		r.Set16(p, 0x1200+uint16(p))
	}
	for p := AF; p <= PC; p++ {
		if got := r.Get16(p); got != 0x1200+uint16(p) {
			t.Errorf("expected %s to be 0x%04X, got 0x%04X", p, 0x1200+uint16(p), got)
		}
	}
}

func TestPostBoot(t *testing.T) {
	r := PostBoot()
	if r.PC != 0x0100 || r.SP != 0xFFFE {
		t.Errorf("expected PC 0x0100 SP 0xFFFE, got %s", r)
	}
	if !r.Flag(FlagZero) || r.Flag(FlagSubtract) || !r.Flag(FlagHalfCarry) || !r.Flag(FlagCarry) {
		t.Errorf("expected Z-HC flags, got %04b", r.F())
	}
}
