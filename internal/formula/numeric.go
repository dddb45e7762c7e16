package formula

import "math"

// ToInt truncates a formula value toward zero, saturating at the int range
func ToInt(value float64) int {
	switch {
	case value >= math.MaxInt:
		return math.MaxInt
	case value <= math.MinInt:
		return math.MinInt
	}
	return int(math.Trunc(value))
}
