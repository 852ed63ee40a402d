package serial

import "io"

// Device is a device that can be attached to the Controller.
type Device interface {
	Receive(bool)
	Send() bool
}

// nullDevice is an implementation of Device that
// simply returns true on Send and does nothing on
// Receive. This is the same as if no cable is plugged in.
type nullDevice struct{}

// Receive does nothing.
func (n nullDevice) Receive(bool) {}

// Send always returns true.
func (n nullDevice) Send() bool { return true }

// Capture is a Device that assembles the bits it receives into bytes and
// writes each complete byte to w. It answers with 1 bits, as if nothing
// were attached. Test ROMs use it to report their results over the link
// cable.
type Capture struct {
	w     io.Writer
	data  uint8
	count uint8
}

// NewCapture returns a Capture writing to w.
func NewCapture(w io.Writer) *Capture {
	return &Capture{w: w}
}

func (c *Capture) Receive(bit bool) {
	c.data <<= 1
	if bit {
		c.data |= 1
	}
	if c.count++; c.count == 8 {
		_, _ = c.w.Write([]byte{c.data})
		c.data, c.count = 0, 0
	}
}

func (c *Capture) Send() bool { return true }
