package utils

import "golang.org/x/exp/constraints"

// ZeroAdjust8 returns 1 if v is 0, otherwise v.
func ZeroAdjust8(v uint8) uint8 {
	if v == 0 {
		return 1
	}
	return v
}

// Wrap folds value into the range [0, count) using modulo arithmetic. A
// count of zero always yields zero.
func Wrap[T constraints.Integer](value, count T) T {
	if count <= 0 {
		return 0
	}
	return value % count
}
