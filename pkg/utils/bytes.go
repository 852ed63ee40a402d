package utils

// Upper returns the most significant byte of value.
func Upper(value uint16) uint8 {
	return uint8(value >> 8)
}

// Lower returns the least significant byte of value.
func Lower(value uint16) uint8 {
	return uint8(value & 0xFF)
}

// Concat composes a 16-bit value from its upper and lower bytes,
// such that Concat(Upper(w), Lower(w)) == w.
func Concat(upper, lower uint8) uint16 {
	return uint16(upper)<<8 | uint16(lower)
}
