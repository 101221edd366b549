package hohmann

import (
	"fmt"
	"math"
	"time"
)

const deg2rad = math.Pi / 180

// Deg2rad converts degrees to radians, preserving the sign.
func Deg2rad(a float64) float64 {
	return a * deg2rad
}

// Rad2deg converts radians to degrees, preserving the sign.
// Phase angles are signed, so there is no normalization to [0, 360).
func Rad2deg(a float64) float64 {
	return a / deg2rad
}

// durationFromSeconds converts fractional seconds to a time.Duration.
// The time package does not trivially handle fractions of a second, so let's
// go through a formatted string.
func durationFromSeconds(seconds float64) time.Duration {
	duration, _ := time.ParseDuration(fmt.Sprintf("%.6fs", seconds))
	return duration
}
