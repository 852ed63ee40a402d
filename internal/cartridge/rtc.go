package cartridge

import "time"

// Clock is a device reachable through the MBC3 RAM bank window. Selecting
// a RAM bank of 0x08-0x0C maps the matching clock register into
// 0xA000-0xBFFF.
type Clock interface {
	// Latch copies the live registers into the readable latch.
	Latch()
	Read(register uint8) uint8
	Write(register uint8, value uint8)
}

// RTC registers.
const (
	RTCSeconds uint8 = 0x08
	RTCMinutes uint8 = 0x09
	RTCHours   uint8 = 0x0A
	RTCDaysLow uint8 = 0x0B
	// RTCDaysHigh holds bit 8 of the day counter (bit 0), the halt flag
	// (bit 6) and the day counter carry (bit 7).
	RTCDaysHigh uint8 = 0x0C
)

const (
	rtcHalt     = 1 << 6
	rtcDayCarry = 1 << 7
)

// RTC is the real time clock of MBC3 timer cartridges.
type RTC struct {
	Seconds   uint8
	Minutes   uint8
	Hours     uint8
	DaysLower uint8
	DaysUpper uint8

	latched    [5]uint8
	lastUpdate time.Time
	now        func() time.Time
}

// NewRTC returns an RTC running on the wall clock.
func NewRTC() *RTC {
	return newRTC(time.Now)
}

func newRTC(now func() time.Time) *RTC {
	return &RTC{
		now:        now,
		lastUpdate: now(),
	}
}

// update advances the registers by the wall time elapsed since the last
// update, unless the clock is halted.
func (r *RTC) update() {
	now := r.now()
	delta := now.Sub(r.lastUpdate)
	if r.DaysUpper&rtcHalt != 0 || delta < time.Second {
		if r.DaysUpper&rtcHalt != 0 {
			r.lastUpdate = now
		}
		return
	}
	whole := delta.Truncate(time.Second)
	r.lastUpdate = r.lastUpdate.Add(whole)

	total := uint64(whole/time.Second) +
		uint64(r.Seconds) +
		uint64(r.Minutes)*60 +
		uint64(r.Hours)*3600 +
		(uint64(r.DaysLower)|uint64(r.DaysUpper&0x01)<<8)*86400

	r.Seconds = uint8(total % 60)
	total /= 60
	r.Minutes = uint8(total % 60)
	total /= 60
	r.Hours = uint8(total % 24)
	days := total / 24

	if days >= 512 {
		days %= 512
		r.DaysUpper |= rtcDayCarry
	}
	r.DaysLower = uint8(days)
	r.DaysUpper = r.DaysUpper&^0x01 | uint8(days>>8)&0x01
}

func (r *RTC) Latch() {
	r.update()
	r.latched = [5]uint8{r.Seconds, r.Minutes, r.Hours, r.DaysLower, r.DaysUpper}
}

func (r *RTC) Read(register uint8) uint8 {
	if register < RTCSeconds || register > RTCDaysHigh {
		return 0xFF
	}
	return r.latched[register-RTCSeconds]
}

func (r *RTC) Write(register uint8, value uint8) {
	r.update()
	switch register {
	case RTCSeconds:
		r.Seconds = value & 0x3F
	case RTCMinutes:
		r.Minutes = value & 0x3F
	case RTCHours:
		r.Hours = value & 0x1F
	case RTCDaysLow:
		r.DaysLower = value
	case RTCDaysHigh:
		r.DaysUpper = value & 0xC1
	}
}
