package analyzer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ccollicutt/camcheck/pkg/geom"
)

// formatFloat renders a float the way the log's fractional fields are
// usually read back: shortest round-trip digits, always with a fractional
// part (5 -> "5.0"), and exponent form below 1e-4 or from 1e16.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatShift(s geom.Shift) string {
	return fmt.Sprintf("[%d, %d]", s.X, s.Y)
}

func formatVec(v geom.Vec3) string {
	return fmt.Sprintf("[%s, %s, %s]", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
}
