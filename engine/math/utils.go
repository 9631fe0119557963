package math

import "golang.org/x/exp/constraints"

// NonNegative returns v, or zero when v is negative.
func NonNegative[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return 0
	}
	return v
}
