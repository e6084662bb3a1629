// Package parser reads camera event logs (JSON Lines) into records.
package parser

import (
	"errors"
	"fmt"

	"github.com/ccollicutt/camcheck/pkg/geom"
)

// Record is one camera state snapshot, taken right after an input event.
type Record struct {
	// Event is the input event name (KeyQ, ArrowUp, zoom_in, reset, ...).
	Event string

	// T is the emission time in seconds since start, zero when absent.
	T float64

	// AngleX is the polar tilt and AngleZ the azimuth, both in degrees.
	AngleX float64
	AngleZ float64

	Eye   geom.Vec3
	Focus geom.Vec3

	Radius float64

	// MinZ is the floor clamp on eye height; EyeZOrbit is the height the
	// orbit geometry alone would give.
	MinZ      float64
	EyeZOrbit float64

	Zoom  float64
	Shift geom.Shift

	// Entry is the 1-based position in the loaded sequence. Blank lines do
	// not count, so Entry may differ from LineNum.
	Entry int

	// LineNum is the 1-based line number in the source file.
	LineNum int
}

// ErrNoEntries is returned when a log holds no records.
var ErrNoEntries = errors.New("no entries in log file")

// ParseError reports a line that could not be turned into a Record.
type ParseError struct {
	// Source is the file path.
	Source string

	// Line is the 1-based line number in the source file.
	Line int

	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
