package services

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// CoerceFloat converts user input to a float. Anything unparseable, NaN or
// infinite becomes zero, matching how the number widgets behave.
func CoerceFloat(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	s = strings.TrimPrefix(s, "₹")
	v := cast.ToFloat64(s)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// CoerceInt converts user input to an int, truncating any fraction.
// Parsing always goes through base 10 so "0500" is 500. Values outside the
// int32 range clamp to its limits so validation can report them.
func CoerceInt(s string) int {
	v := CoerceFloat(s)
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}
