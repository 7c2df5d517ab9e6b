package finance

import "math"

// Round2 rounds a currency magnitude to 2 decimals. The engine keeps
// raw float64 internally; rounding happens once, at the serialization
// boundary.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
