// Package plan implements the fueling and hydration derivation pipeline.
// Every function in this package is pure: outputs depend only on inputs,
// and every degenerate input (malformed duration, zero divisor, implausible
// measurement) resolves to an explicit fallback value rather than an error.
package plan

import (
	"math"
	"strconv"
	"strings"
)

// ParseClock converts an "HH:MM" duration string into total minutes.
// Anything that is not two colon-separated integers parses to 0: an unset
// or half-typed duration is a zero-length session, not a failure.
func ParseClock(s string) int {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0
	}
	total := h*60 + m
	if total < 0 {
		return 0
	}
	return total
}

// roundToFiveMin rounds a minute count to the nearest multiple of five,
// never below five. The floor keeps a tiny interval from degenerating into
// a take-something-every-zero-minutes schedule.
func roundToFiveMin(minutes float64) int {
	r := int(math.Round(minutes/5)) * 5
	if r < 5 {
		return 5
	}
	return r
}

// round2 rounds to two decimal places, used for distances in km.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
