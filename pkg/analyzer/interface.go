package analyzer

import (
	"github.com/ccollicutt/camcheck/pkg/config"
	"github.com/ccollicutt/camcheck/pkg/parser"
)

// CheckFunc inspects the whole record sequence and returns every violation.
// Implementations must not modify records.
type CheckFunc func(records []parser.Record, cfg *config.Config) []Diagnostic

// Check is one invariant of the camera model.
type Check struct {
	ID   string
	Name string
	Run  CheckFunc
}

// Checks returns the check battery in report order.
func Checks() []Check {
	return []Check{
		{ID: "orbit-radius", Name: "Orbit radius consistency", Run: checkOrbitRadius},
		{ID: "eye-above-min-z", Name: "Eye Z above min_z", Run: checkEyeAboveMinZ},
		{ID: "angle-increments", Name: "Angle increments (Q/E/arrows)", Run: checkAngleIncrements},
		{ID: "wasd-shift", Name: "WASD shift direction", Run: checkShiftDirection},
		{ID: "focus-constant", Name: "Focus constant", Run: checkFocusConstant},
		{ID: "zoom-bounds", Name: "Zoom bounds", Run: checkZoomBounds},
		{ID: "reset-state", Name: "Reset state", Run: checkResetState},
		{ID: "eye-z-consistency", Name: "Eye Z = max(orbit, min_z)", Run: checkEyeZConsistency},
		{ID: "angle-x-clamp", Name: "Angle X clamping [-90, -30]", Run: checkAngleXClamp},
		{ID: "shift-cancellation", Name: "Shift cancellation (W+S, A+D)", Run: checkShiftCancellation},
		{ID: "full-rotation", Name: "Full rotation (72 Q/E)", Run: checkFullRotation},
		{ID: "zoom-clamp", Name: "Zoom clamping after zoom events", Run: checkZoomClamp},
	}
}
