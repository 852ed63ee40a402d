// Package gameboy provides the machine that ties the processor, the memory
// bus and the cartridge together.
package gameboy

import (
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed // 4.194304 MHz
)

// GameBoy represents a Game Boy. It owns the register file and the memory
// bus, and lends both to the CPU and the peripherals one step at a time.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU

	registers types.Registers
	initial   types.Registers

	peripherals []types.Peripheral
	strict      bool

	log.Logger

	cycles uint64
	// err is the error that halted the machine, if any.
	err error
}

// NewGameBoy returns a new GameBoy with no cartridge inserted.
func NewGameBoy(opts ...Opt) *GameBoy {
	g := &GameBoy{
		initial: types.PostBoot(),
		Logger:  log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.CPU = cpu.NewCPU(g.Logger)
	g.MMU = mmu.NewMMU(g.Logger)
	g.registers = g.initial

	return g
}

// Load inserts the cartridge and resets the machine, so that execution
// starts from the initial register file.
func (g *GameBoy) Load(cart *cartridge.Cartridge) error {
	var opts []cartridge.Option
	if g.strict {
		opts = append(opts, cartridge.Strict())
	}
	if err := g.MMU.Insert(cart, opts...); err != nil {
		return err
	}

	h := cart.Header()
	g.Infof("loaded %s (%s, %d ROM banks, %d RAM banks, fingerprint %016x)",
		cart.Title(), h.CartridgeType, h.ROMBanks(), h.RAMBanks(), cart.Fingerprint())
	if !h.ChecksumValid() {
		g.Warnf("header checksum 0x%02X does not match the header", h.HeaderChecksum)
	}

	g.Reset()
	return nil
}

// LoadROM creates a cartridge from the image and loads it.
func (g *GameBoy) LoadROM(rom []byte) error {
	cart, err := cartridge.New(rom)
	if err != nil {
		return err
	}
	return g.Load(cart)
}

// Eject removes the cartridge.
func (g *GameBoy) Eject() {
	g.MMU.Eject()
}

// Step executes a single instruction, then steps every peripheral with
// the cycles it took. It returns the number of cycles consumed.
//
// Once a step fails the machine is halted, and every further Step returns
// the same error until the machine is reset.
func (g *GameBoy) Step() (uint8, error) {
	if g.err != nil {
		return 0, g.err
	}

	cycles, err := g.CPU.Step(&g.registers, g.MMU)
	if err != nil {
		return 0, g.halt(err)
	}
	for _, p := range g.peripherals {
		if err := p.Step(cycles, g.MMU); err != nil {
			return 0, g.halt(err)
		}
	}

	g.cycles += uint64(cycles)
	return cycles, nil
}

func (g *GameBoy) halt(err error) error {
	g.err = err
	g.Errorf("halted at %04X: %v", g.registers.PC, err)
	return err
}

// Run steps the machine until n instructions have executed or a step
// fails, and returns the number of instructions executed.
func (g *GameBoy) Run(n int) (int, error) {
	for i := 0; i < n; i++ {
		if _, err := g.Step(); err != nil {
			return i, err
		}
	}
	return n, nil
}

// Reset restores the initial register file, clears internal memory and
// any halting error. The cartridge stays inserted.
func (g *GameBoy) Reset() {
	g.registers = g.initial
	g.CPU.Reset()
	g.MMU.Reset()
	for _, p := range g.peripherals {
		if r, ok := p.(types.Resettable); ok {
			r.Reset()
		}
	}
	g.cycles = 0
	g.err = nil
}

// Registers returns a copy of the register file.
func (g *GameBoy) Registers() types.Registers {
	return g.registers
}

// Bus returns the memory bus, for inspection between steps.
func (g *GameBoy) Bus() types.Bus {
	return g.MMU
}

// Cycles returns the number of T-cycles executed since the last reset.
func (g *GameBoy) Cycles() uint64 {
	return g.cycles
}

// Err returns the error that halted the machine, or nil.
func (g *GameBoy) Err() error {
	return g.err
}
