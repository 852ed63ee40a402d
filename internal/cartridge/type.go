package cartridge

import "fmt"

// Type classifies a cartridge by the memory bank controller and extra
// hardware named by header byte 0x0147. Bytes that name no known
// hardware decode to Unsupported.
type Type uint8

const (
	Unsupported Type = iota
	ROM
	MBC1
	MBC1RAM
	MBC1RAMBATT
	MBC2
	MBC2BATT
	ROMRAM
	ROMRAMBATT
	MMM01
	MMM01RAM
	MMM01RAMBATT
	MBC3TIMERBATT
	MBC3TIMERRAMBATT
	MBC3
	MBC3RAM
	MBC3RAMBATT
	MBC5
	MBC5RAM
	MBC5RAMBATT
	MBC5RUMBLE
	MBC5RUMBLERAM
	MBC5RUMBLERAMBATT
	MBC6
	MBC7SENSORRUMBLERAMBATT
	POCKETCAMERA
	BANDAITAMA5
	HUDSONHUC3
	HUDSONHUC1RAMBATT
)

var typeCodes = map[uint8]Type{
	0x00: ROM,
	0x01: MBC1,
	0x02: MBC1RAM,
	0x03: MBC1RAMBATT,
	0x05: MBC2,
	0x06: MBC2BATT,
	0x08: ROMRAM,
	0x09: ROMRAMBATT,
	0x0B: MMM01,
	0x0C: MMM01RAM,
	0x0D: MMM01RAMBATT,
	0x0F: MBC3TIMERBATT,
	0x10: MBC3TIMERRAMBATT,
	0x11: MBC3,
	0x12: MBC3RAM,
	0x13: MBC3RAMBATT,
	0x19: MBC5,
	0x1A: MBC5RAM,
	0x1B: MBC5RAMBATT,
	0x1C: MBC5RUMBLE,
	0x1D: MBC5RUMBLERAM,
	0x1E: MBC5RUMBLERAMBATT,
	0x20: MBC6,
	0x22: MBC7SENSORRUMBLERAMBATT,
	0xFC: POCKETCAMERA,
	0xFD: BANDAITAMA5,
	0xFE: HUDSONHUC3,
	0xFF: HUDSONHUC1RAMBATT,
}

var typeNames = map[Type]string{
	Unsupported:             "UNSUPPORTED",
	ROM:                     "ROM ONLY",
	MBC1:                    "MBC1",
	MBC1RAM:                 "MBC1+RAM",
	MBC1RAMBATT:             "MBC1+RAM+BATTERY",
	MBC2:                    "MBC2",
	MBC2BATT:                "MBC2+BATTERY",
	ROMRAM:                  "ROM+RAM",
	ROMRAMBATT:              "ROM+RAM+BATTERY",
	MMM01:                   "MMM01",
	MMM01RAM:                "MMM01+RAM",
	MMM01RAMBATT:            "MMM01+RAM+BATTERY",
	MBC3TIMERBATT:           "MBC3+TIMER+BATTERY",
	MBC3TIMERRAMBATT:        "MBC3+TIMER+RAM+BATTERY",
	MBC3:                    "MBC3",
	MBC3RAM:                 "MBC3+RAM",
	MBC3RAMBATT:             "MBC3+RAM+BATTERY",
	MBC5:                    "MBC5",
	MBC5RAM:                 "MBC5+RAM",
	MBC5RAMBATT:             "MBC5+RAM+BATTERY",
	MBC5RUMBLE:              "MBC5+RUMBLE",
	MBC5RUMBLERAM:           "MBC5+RUMBLE+RAM",
	MBC5RUMBLERAMBATT:       "MBC5+RUMBLE+RAM+BATTERY",
	MBC6:                    "MBC6",
	MBC7SENSORRUMBLERAMBATT: "MBC7+SENSOR+RUMBLE+RAM+BATTERY",
	POCKETCAMERA:            "POCKET CAMERA",
	BANDAITAMA5:             "BANDAI TAMA5",
	HUDSONHUC3:              "HuC3",
	HUDSONHUC1RAMBATT:       "HuC1+RAM+BATTERY",
}

// ParseType decodes the cartridge type byte.
func ParseType(code uint8) Type {
	if t, ok := typeCodes[code]; ok {
		return t
	}
	return Unsupported
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// HasRAM reports whether the cartridge carries external RAM.
func (t Type) HasRAM() bool {
	switch t {
	case MBC1RAM, MBC1RAMBATT,
		MBC2, MBC2BATT, // built in
		ROMRAM, ROMRAMBATT,
		MMM01RAM, MMM01RAMBATT,
		MBC3TIMERRAMBATT, MBC3RAM, MBC3RAMBATT,
		MBC5RAM, MBC5RAMBATT, MBC5RUMBLERAM, MBC5RUMBLERAMBATT,
		MBC7SENSORRUMBLERAMBATT, HUDSONHUC1RAMBATT:
		return true
	}
	return false
}

// HasBattery reports whether the external RAM is battery backed.
func (t Type) HasBattery() bool {
	switch t {
	case MBC1RAMBATT, MBC2BATT, ROMRAMBATT, MMM01RAMBATT,
		MBC3TIMERBATT, MBC3TIMERRAMBATT, MBC3RAMBATT,
		MBC5RAMBATT, MBC5RUMBLERAMBATT,
		MBC7SENSORRUMBLERAMBATT, HUDSONHUC1RAMBATT:
		return true
	}
	return false
}

// HasTimer reports whether the cartridge carries a real time clock.
func (t Type) HasTimer() bool {
	return t == MBC3TIMERBATT || t == MBC3TIMERRAMBATT
}

// HasRumble reports whether the cartridge carries a rumble motor.
func (t Type) HasRumble() bool {
	switch t {
	case MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT, MBC7SENSORRUMBLERAMBATT:
		return true
	}
	return false
}
