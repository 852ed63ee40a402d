// Package serial provides the link cable port as a peripheral stepped by
// the machine loop.
package serial

import (
	"github.com/thelolagemann/gbcore/internal/types"
)

const (
	// ticksPerBit is the number of T-cycles per bit at the internal clock
	// rate of 8192Hz.
	ticksPerBit = 512
)

// Controller is the serial controller. It is responsible for sending and
// receiving data to and from devices.
// Before a transfer, data holds the next byte to be sent. AKA types.SB
// During a transfer, it has a mix of the incoming data and the outgoing data.
// each bit period, the leftmost bit of data is sent to the attached device, and
// shifted out of data, and the incoming bit is shifted into data.
//
// example:
//
//	Before : data = o7 o6 o5 o4 o3 o2 o1 o0
//	Cycle 1: data = o6 o5 o4 o3 o2 o1 o0 i0
//	Cycle 2: data = o5 o4 o3 o2 o1 o0 i0 i1
//	...
//	Cycle 8: data = i0 i1 i2 i3 i4 i5 i6 i7
//
// Where o0-o7 are the outgoing bits, and i0-i7 are the incoming bits.
//
// Only transfers driven by the internal clock make progress, as there is
// no remote clock to follow.
type Controller struct {
	count  uint8  // the number of bits that have been transferred.
	ticks  uint16 // T-cycles accumulated towards the next bit.
	active bool

	AttachedDevice Device // the device that is attached to this controller.
}

var (
	_ types.Peripheral = (*Controller)(nil)
	_ types.Resettable = (*Controller)(nil)
)

// NewController creates a new Controller.
//
// By default, the Controller is attached to a nullDevice, which acts as if
// there is no device attached. If you want to attach a device, use the
// Controller.Attach method.
func NewController() *Controller {
	return &Controller{
		AttachedDevice: nullDevice{},
	}
}

// Attach attaches a Device to the Controller.
func (c *Controller) Attach(d Device) {
	c.AttachedDevice = d
}

// Step advances a transfer requested through SC by the given number of
// cycles. When the eighth bit is shifted, the transfer request is cleared
// and the serial interrupt is flagged in IF.
func (c *Controller) Step(cycles uint8, bus types.Bus) error {
	sc, err := bus.ReadByte(types.SC)
	if err != nil {
		return err
	}
	if sc&types.Bit7 == 0 || sc&types.Bit0 == 0 {
		c.active, c.ticks, c.count = false, 0, 0
		return nil
	}
	if !c.active {
		// a new transfer starts counting from the write to SC
		c.active = true
		c.ticks, c.count = 0, 0
	}

	for c.ticks += uint16(cycles); c.ticks >= ticksPerBit; c.ticks -= ticksPerBit {
		sb, err := bus.ReadByte(types.SB)
		if err != nil {
			return err
		}

		bit := c.AttachedDevice.Send()
		c.AttachedDevice.Receive(sb&types.Bit7 == types.Bit7)
		sb <<= 1
		if bit {
			sb |= 1
		}
		if err := bus.WriteByte(types.SB, sb); err != nil {
			return err
		}

		if c.count++; c.count == 8 {
			return c.complete(sc, bus)
		}
	}
	return nil
}

// complete clears the transfer request and raises the serial interrupt.
func (c *Controller) complete(sc uint8, bus types.Bus) error {
	c.active, c.ticks, c.count = false, 0, 0
	if err := bus.WriteByte(types.SC, sc&^types.Bit7); err != nil {
		return err
	}
	flags, err := bus.ReadByte(types.IF)
	if err != nil {
		return err
	}
	return bus.WriteByte(types.IF, flags|types.Bit3)
}

// Reset aborts any transfer in progress.
func (c *Controller) Reset() {
	c.active, c.ticks, c.count = false, 0, 0
}
