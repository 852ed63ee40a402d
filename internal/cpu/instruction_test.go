package cpu

import "testing"

func TestInstruction_Timing(t *testing.T) {
	// machine cycles, branches not taken
	timings := []uint8{
		1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1,
		1, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1,
		2, 3, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 1, 2, 1,
		2, 3, 2, 2, 3, 3, 3, 1, 2, 2, 2, 2, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		2, 2, 2, 2, 2, 2, 1, 2, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		2, 3, 3, 4, 3, 4, 2, 4, 2, 4, 3, 0, 3, 6, 2, 4,
		2, 3, 3, 0, 3, 4, 2, 4, 2, 4, 3, 0, 3, 0, 2, 4,
		3, 3, 2, 0, 0, 4, 2, 4, 4, 1, 4, 0, 0, 0, 2, 4,
		3, 3, 2, 1, 0, 4, 2, 4, 3, 2, 4, 1, 0, 0, 2, 4,
	}
	for i, timing := range timings {
		instruction := InstructionSet[uint8(i)]
		if timing == 0 {
			continue
		}
		if instruction.Cycles() != timing*4 {
			t.Errorf("%02X %s: expected %d cycles, got %d", i, instruction.Name(), timing*4, instruction.Cycles())
		}
	}

	cbTimings := []uint8{
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	}
	for i, timing := range cbTimings {
		instruction := InstructionSetCB[uint8(i)]
		if instruction.Cycles() != timing*4 {
			t.Errorf("CB %02X %s: expected %d cycles, got %d", i, instruction.Name(), timing*4, instruction.Cycles())
		}
	}
}

func TestInstruction_Defined(t *testing.T) {
	illegal := map[uint8]bool{}
	for _, opcode := range illegalOpcodes {
		illegal[opcode] = true
	}

	for i := 0; i < 256; i++ {
		instruction := InstructionSet[i]
		if instruction.Defined() == illegal[uint8(i)] {
			t.Errorf("%02X %s: expected defined to be %t", i, instruction.Name(), !illegal[uint8(i)])
		}
		if instruction.Name() == "" {
			t.Errorf("%02X: expected a name", i)
		}
		if !InstructionSetCB[i].Defined() {
			t.Errorf("CB %02X: expected to be defined", i)
		}
	}
}

func TestInstruction_OperandLength(t *testing.T) {
	// instructions that don't branch must leave PC just after their operands
	branches := map[uint8]bool{
		0x10: true, 0x18: true, 0x76: true, 0xC3: true, 0xC9: true, 0xCB: true,
		0xCD: true, 0xD9: true, 0xE9: true,
	}
	for opcode := 0; opcode < 256; opcode++ {
		instruction := InstructionSet[opcode]
		if !instruction.Defined() || branches[uint8(opcode)] || opcode >= 0xC0 && opcode&0x07 == 0x07 {
			continue
		}

		c, r, b := newTestCPU(uint8(opcode))
		r.SP = 0xD000
		// with no flags set, branches on NZ and NC are taken, Z and C are not
		switch opcode & 0xE7 {
		case 0x20, 0xC0, 0xC2, 0xC4:
			if opcode&0x08 == 0 {
				continue
			}
		}

		step(t, c, r, b)
		if want := programStart + 1 + instruction.Mode().Length(); r.PC != want {
			t.Errorf("%02X %s: expected PC 0x%04X, got 0x%04X", opcode, instruction.Name(), want, r.PC)
		}
	}
}

func TestMode_String(t *testing.T) {
	if InstructionSet[0x01].Mode().String() != "d16" {
		t.Errorf("expected d16, got %s", InstructionSet[0x01].Mode())
	}
	if InstructionSet[0x7E].Mode() != RegisterIndirect {
		t.Errorf("expected LD A, (HL) to be register indirect")
	}
}
