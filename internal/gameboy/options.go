package gameboy

import (
	"io"

	"github.com/thelolagemann/gbcore/internal/serial"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// StrictBanking makes a bank index beyond the banks declared by the
// cartridge header an error, rather than a warning.
func StrictBanking() Opt {
	return func(gb *GameBoy) {
		gb.strict = true
	}
}

// WithRegisters sets the register file the machine starts from, and
// returns to on reset. The default is the state the DMG boot ROM leaves.
func WithRegisters(r types.Registers) Opt {
	return func(gb *GameBoy) {
		gb.initial = r
	}
}

// WithPeripheral attaches a peripheral, stepped after every instruction in
// the order attached.
func WithPeripheral(p types.Peripheral) Opt {
	return func(gb *GameBoy) {
		gb.peripherals = append(gb.peripherals, p)
	}
}

// SerialDebugger attaches a serial port whose outgoing bytes are written
// to output.
func SerialDebugger(output io.Writer) Opt {
	return func(gb *GameBoy) {
		c := serial.NewController()
		c.Attach(serial.NewCapture(output))
		gb.peripherals = append(gb.peripherals, c)
	}
}
