// Package engine derives mercenary values from growth tables and classifies
// roster members against filters. Every function here is pure: no I/O, no
// errors, and identical inputs always give identical outputs.
package engine

import (
	"math"
	"strconv"
)

// lookup returns values[index], or 0 when index is outside the populated range
func lookup(values []float64, index int) float64 {
	if index < 0 || index >= len(values) {
		return 0
	}
	v := values[index]
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// axisValue sums one stat's contributions at a progression pair.
// Level is 1-based, reboot 0-based.
func axisValue(levelValues, rebootValues []float64, reboot, level int) float64 {
	return lookup(levelValues, level-1) + lookup(rebootValues, reboot)
}

// Round rounds half up, so 2.5 becomes 3 and -2.5 becomes -2. The result
// stays a float64 so large magnitudes keep their sign, and -0 becomes 0.
func Round(v float64) float64 {
	f := math.Floor(v)
	if v-f >= 0.5 {
		f++
	}
	if f == 0 {
		return 0
	}
	return f
}

// FormatRounded renders v rounded half up as a base-10 integer
func FormatRounded(v float64) string {
	return strconv.FormatFloat(Round(v), 'f', -1, 64)
}
