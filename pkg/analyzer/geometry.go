package analyzer

import (
	"math"

	"github.com/ccollicutt/camcheck/pkg/config"
	"github.com/ccollicutt/camcheck/pkg/geom"
	"github.com/ccollicutt/camcheck/pkg/parser"
)

// checkOrbitRadius verifies the XY distance from eye to focus equals
// radius*cos(angle_x). Z is ignored: the focus sits on the ground plane and
// eye height is clamped separately.
func checkOrbitRadius(records []parser.Record, cfg *config.Config) []Diagnostic {
	var diags []Diagnostic
	for i, r := range records {
		actual := geom.DistXY(r.Eye, r.Focus)
		expected := r.Radius * math.Cos(geom.Radians(r.AngleX))
		if math.Abs(actual-expected) > cfg.Tolerances.OrbitRadius {
			diags = append(diags, at(records, i, "orbit radius XY=%.4f expected=%.4f (event=%s)",
				actual, expected, r.Event))
		}
	}
	return diags
}

func checkEyeAboveMinZ(records []parser.Record, cfg *config.Config) []Diagnostic {
	var diags []Diagnostic
	for i, r := range records {
		if r.Eye.Z < r.MinZ-cfg.Tolerances.Height {
			diags = append(diags, at(records, i, "eye_z=%.4f < min_z=%.4f (event=%s)",
				r.Eye.Z, r.MinZ, r.Event))
		}
	}
	return diags
}

// checkEyeZConsistency verifies eye.z is the orbit height floored at min_z.
func checkEyeZConsistency(records []parser.Record, cfg *config.Config) []Diagnostic {
	var diags []Diagnostic
	for i, r := range records {
		expected := math.Max(r.EyeZOrbit, r.MinZ)
		if math.Abs(r.Eye.Z-expected) > cfg.Tolerances.Height {
			diags = append(diags, at(records, i, "eye_z=%.4f expected max(orbit=%.4f, min_z=%.4f)=%.4f",
				r.Eye.Z, r.EyeZOrbit, r.MinZ, expected))
		}
	}
	return diags
}

// checkFocusConstant compares every focus to the first one. The focus never
// moves, so equality is exact.
func checkFocusConstant(records []parser.Record, _ *config.Config) []Diagnostic {
	if len(records) == 0 {
		return nil
	}

	var diags []Diagnostic
	ref := records[0].Focus
	for i, r := range records {
		if r.Focus != ref {
			diags = append(diags, at(records, i, "focus=%s expected=%s",
				formatVec(r.Focus), formatVec(ref)))
		}
	}
	return diags
}

// checkFullRotation verifies that a run of Q or E presses spanning whole
// revolutions brings eye XY back to where it started. Other run lengths are
// not evaluated.
func checkFullRotation(records []parser.Record, cfg *config.Config) []Diagnostic {
	steps := cfg.Camera.RevolutionSteps()
	tol := cfg.Tolerances.Rotation

	var diags []Diagnostic
	for _, run := range Runs(records) {
		if run.Event != EventKeyQ && run.Event != EventKeyE {
			continue
		}
		if run.Len() < steps || run.Len()%steps != 0 {
			continue
		}

		before := run.before(records).Eye
		after := records[run.End-1].Eye
		dx := math.Abs(before.X - after.X)
		dy := math.Abs(before.Y - after.Y)
		if dx > tol || dy > tol {
			diags = append(diags, span(records, run.Start, run.End-1,
				"%sx%d (full rotation): eye XY before=(%.4f,%.4f) after=(%.4f,%.4f) delta=(%.4f,%.4f)",
				run.Event, run.Len(), before.X, before.Y, after.X, after.Y, dx, dy))
		}
	}
	return diags
}
