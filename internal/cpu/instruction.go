package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// Mode describes how an instruction fetches its operands.
type Mode uint8

const (
	// Implied operands are encoded in the opcode itself.
	Implied Mode = iota
	// Immediate8 operands are the byte following the opcode.
	Immediate8
	// Immediate16 operands are the word following the opcode.
	Immediate16
	// RegisterIndirect operands live at the address held by a register pair.
	RegisterIndirect
)

var modeNames = [...]string{"implied", "d8", "d16", "indirect"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Length returns the number of bytes the operands occupy after the opcode.
func (m Mode) Length() uint16 {
	switch m {
	case Immediate8:
		return 1
	case Immediate16:
		return 2
	}
	return 0
}

// Instruction describes a single opcode. An Instruction with no operation
// is undefined, and executing it is an error.
type Instruction struct {
	name   string
	mode   Mode
	cycles uint8
	fn     func(*CPU)
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string { return i.name }

// Mode returns the addressing mode of the instruction.
func (i Instruction) Mode() Mode { return i.mode }

// Cycles returns the number of T-cycles the instruction takes, not counting
// the penalty of a taken branch.
func (i Instruction) Cycles() uint8 { return i.cycles }

// Defined reports whether the instruction has an operation.
func (i Instruction) Defined() bool { return i.fn != nil }

// InstructionSet is the base opcode table.
var InstructionSet [256]Instruction

// InstructionSetCB is the table of opcodes following the 0xCB prefix.
// Cycles include the prefix.
var InstructionSetCB [256]Instruction

// DefineInstruction defines the instruction in the InstructionSet, with the
// provided opcode.
func DefineInstruction(opcode uint8, name string, mode Mode, cycles uint8, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{
		name:   name,
		mode:   mode,
		cycles: cycles,
		fn:     fn,
	}
}

// DefineInstructionCB defines the instruction in the InstructionSetCB.
func DefineInstructionCB(opcode uint8, name string, cycles uint8, fn func(*CPU)) {
	InstructionSetCB[opcode] = Instruction{
		name:   name,
		mode:   Implied,
		cycles: cycles,
		fn:     fn,
	}
}

// OpcodeError is returned by Step when the fetched opcode has no operation.
type OpcodeError struct {
	Opcode   uint8
	Prefixed bool
	PC       uint16
}

func (e *OpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("%s: CB %02X at %04X", types.KindUnimplementedOpcode, e.Opcode, e.PC)
	}
	return fmt.Sprintf("%s: %02X at %04X", types.KindUnimplementedOpcode, e.Opcode, e.PC)
}

// TagKind implements types.Kinded.
func (e *OpcodeError) TagKind() types.Kind { return types.KindUnimplementedOpcode }

// Is matches types.ErrUnimplementedOpcode.
func (e *OpcodeError) Is(target error) bool {
	t, ok := target.(*types.Error)
	return ok && t.Kind == types.KindUnimplementedOpcode
}

// illegalOpcodes have no operation on the hardware and lock it up.
var illegalOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	DefineInstruction(0x00, "NOP", Implied, 4, func(c *CPU) {})
	DefineInstruction(0x10, "STOP", Immediate8, 4, func(c *CPU) {
		c.readOperand() // STOP is followed by a padding byte
		c.mode = ModeStop
	})
	DefineInstruction(0x76, "HALT", Implied, 4, func(c *CPU) { c.mode = ModeHalt })
	DefineInstruction(0xF3, "DI", Implied, 4, func(c *CPU) { c.ime = false })
	DefineInstruction(0xFB, "EI", Implied, 4, func(c *CPU) { c.imePending = true })
	DefineInstruction(0xCB, "PREFIX CB", Implied, 0, func(c *CPU) {
		instruction := InstructionSetCB[c.readOperand()]
		instruction.fn(c)
		c.extra += instruction.cycles
	})

	DefineInstruction(0x27, "DAA", Implied, 4, func(c *CPU) { c.decimalAdjust() })
	DefineInstruction(0x2F, "CPL", Implied, 4, func(c *CPU) {
		c.setA(0xFF ^ c.a())
		c.setFlags(c.isFlagSet(types.FlagZero), true, true, c.isFlagSet(types.FlagCarry))
	})
	DefineInstruction(0x37, "SCF", Implied, 4, func(c *CPU) {
		c.setFlags(c.isFlagSet(types.FlagZero), false, false, true)
	})
	DefineInstruction(0x3F, "CCF", Implied, 4, func(c *CPU) {
		c.setFlags(c.isFlagSet(types.FlagZero), false, false, !c.isFlagSet(types.FlagCarry))
	})

	for _, opcode := range illegalOpcodes {
		InstructionSet[opcode] = Instruction{name: fmt.Sprintf("ILLEGAL_%02X", opcode)}
	}
}
