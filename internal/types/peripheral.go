package types

// Bus is the addressable space as seen by anything that steps. Words are
// little endian: the least significant byte lives at the lower address.
type Bus interface {
	ReadByte(address uint16) (uint8, error)
	WriteByte(address uint16, value uint8) error
	ReadWord(address uint16) (uint16, error)
	WriteWord(address uint16, value uint16) error
}

// Peripheral is a device that is driven from the machine's step loop,
// such as a future timer or display. After every instruction the machine
// calls Step with the number of cycles the instruction consumed. The bus
// handed to Step must not be retained once Step returns.
type Peripheral interface {
	Step(cycles uint8, bus Bus) error
}

// Resettable is an interface that allows an object to be reset.
type Resettable interface {
	Reset() // Reset the state of the object
}
