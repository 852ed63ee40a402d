// Package cpu implements the Game Boy's SM83 processor as a
// fetch-decode-execute engine over a types.Bus.
package cpu

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

const (
	// ClockSpeed is the clock speed of the CPU in T-cycles per second.
	ClockSpeed = 4194304

	// haltCycles is the cost of a step taken while halted.
	haltCycles = 4
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is entered by HALT.
	ModeHalt
	// ModeStop is entered by STOP.
	ModeStop
)

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
//
// The CPU holds no long-lived reference to the register file or the bus:
// both are handed to Step and are only borrowed until Step returns.
type CPU struct {
	r *types.Registers
	b types.Bus

	// ime is the interrupt master enable latch. EI only sets imePending,
	// which is moved into ime once the following instruction starts.
	ime        bool
	imePending bool
	mode       mode

	// extra holds cycles added by the instruction being executed, such
	// as the penalty of a taken branch.
	extra uint8
	// err is the first bus error raised by the instruction being executed.
	err error

	log log.Logger
}

// NewCPU returns a new CPU.
func NewCPU(l log.Logger) *CPU {
	if l == nil {
		l = log.NewNullLogger()
	}
	return &CPU{log: l}
}

// Step executes exactly one instruction against the given register file and
// bus, and returns the number of T-cycles it took. While halted no
// instruction is fetched and Step only consumes time.
//
// If the instruction fails, the register file is restored to its state
// before the step and the error is returned. Bus writes that already
// happened are not undone.
func (c *CPU) Step(r *types.Registers, b types.Bus) (uint8, error) {
	c.r, c.b = r, b
	c.extra, c.err = 0, nil
	defer func() {
		c.r, c.b = nil, nil
	}()

	if c.imePending {
		c.ime, c.imePending = true, false
	}
	if c.Halted() {
		return haltCycles, nil
	}

	saved := *r
	pc := r.PC
	opcode := c.readOperand()
	if c.err != nil {
		*r = saved
		return 0, c.err
	}

	instruction := InstructionSet[opcode]
	if instruction.fn == nil {
		*r = saved
		c.log.Debugf("%s at %04X has no operation", instruction.name, pc)
		return 0, &OpcodeError{Opcode: opcode, PC: pc}
	}

	instruction.fn(c)
	if c.err != nil {
		*r = saved
		return 0, c.err
	}

	return instruction.cycles + c.extra, nil
}

// Reset returns the CPU to its power on state.
func (c *CPU) Reset() {
	c.ime, c.imePending = false, false
	c.mode = ModeNormal
}

// Halted reports whether the CPU is in HALT or STOP mode.
func (c *CPU) Halted() bool {
	return c.mode == ModeHalt || c.mode == ModeStop
}

// IME returns the state of the interrupt master enable latch.
func (c *CPU) IME() bool {
	return c.ime
}

// readByte reads a byte from memory. A failed read records the error and
// yields 0xFF, so the instruction can run to the end before Step reports it.
func (c *CPU) readByte(address uint16) uint8 {
	if c.err != nil {
		return 0xFF
	}
	v, err := c.b.ReadByte(address)
	if err != nil {
		c.err = err
		return 0xFF
	}
	return v
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(address uint16, value uint8) {
	if c.err != nil {
		return
	}
	c.err = c.b.WriteByte(address, value)
}

func (c *CPU) readWord(address uint16) uint16 {
	if c.err != nil {
		return 0xFFFF
	}
	v, err := c.b.ReadWord(address)
	if err != nil {
		c.err = err
		return 0xFFFF
	}
	return v
}

func (c *CPU) writeWord(address uint16, value uint16) {
	if c.err != nil {
		return
	}
	c.err = c.b.WriteWord(address, value)
}

// readOperand reads the byte at PC and advances PC.
func (c *CPU) readOperand() uint8 {
	v := c.readByte(c.r.PC)
	c.r.PC++
	return v
}

// readOperand16 reads the word at PC in bus word order and advances PC
// past it.
func (c *CPU) readOperand16() uint16 {
	v := c.readWord(c.r.PC)
	c.r.PC += 2
	return v
}

// pushStack pushes a 16 bit value onto the stack.
func (c *CPU) pushStack(value uint16) {
	c.r.SP -= 2
	c.writeWord(c.r.SP, value)
}

// popStack pops a 16 bit value off the stack.
func (c *CPU) popStack() uint16 {
	v := c.readWord(c.r.SP)
	c.r.SP += 2
	return v
}

// registerIndex is the operand order encoded in opcodes: B, C, D, E, H, L,
// (HL), A.
var registerIndex = [8]types.Register{
	types.RegB, types.RegC, types.RegD, types.RegE, types.RegH, types.RegL, 0xFF, types.RegA,
}

const indexHL = 6

// registerName returns the operand name for an opcode register index.
func registerName(index uint8) string {
	if index == indexHL {
		return "(HL)"
	}
	return registerIndex[index].String()
}

// get returns the operand at the given register index.
func (c *CPU) get(index uint8) uint8 {
	if index == indexHL {
		return c.readByte(c.r.HL)
	}
	return c.r.Get8(registerIndex[index])
}

// set stores value in the operand at the given register index.
func (c *CPU) set(index uint8, value uint8) {
	if index == indexHL {
		c.writeByte(c.r.HL, value)
		return
	}
	c.r.Set8(registerIndex[index], value)
}

// pairIndex is the register pair order encoded in opcodes.
var pairIndex = [4]types.Pair{types.BC, types.DE, types.HL, types.SP}

// stackPairIndex is pairIndex with AF in place of SP, as used by PUSH and POP.
var stackPairIndex = [4]types.Pair{types.BC, types.DE, types.HL, types.AF}

// setFlags sets all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.r.SetFlags(zero, subtract, halfCarry, carry)
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag types.Flag) bool {
	return c.r.Flag(flag)
}

// a returns the accumulator.
func (c *CPU) a() uint8 {
	return utils.Upper(c.r.AF)
}

func (c *CPU) setA(value uint8) {
	c.r.SetA(value)
}
