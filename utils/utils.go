package utils

import "math"

func Ptr[T any](v T) *T {
	return &v
}

// Round2 rounds to 2 decimals; every derived money/hours field is stored at
// this precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
