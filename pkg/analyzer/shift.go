package analyzer

import (
	"github.com/ccollicutt/camcheck/pkg/config"
	"github.com/ccollicutt/camcheck/pkg/geom"
	"github.com/ccollicutt/camcheck/pkg/parser"
)

// checkShiftDirection verifies each WASD press moves the shift by the pan
// direction rotated by the previous record's angle_z, rounded half away from
// zero.
func checkShiftDirection(records []parser.Record, cfg *config.Config) []Diagnostic {
	period := cfg.Camera.ShiftPeriod

	var diags []Diagnostic
	for i := 1; i < len(records); i++ {
		prev, cur := records[i-1], records[i]

		dir, ok := panDirections[cur.Event]
		if !ok {
			continue
		}

		gx, gy := geom.ShiftStep(dir.dx, dir.dy, prev.AngleZ)
		delta := cur.Shift.Delta(prev.Shift, period)
		if delta.X != gx || delta.Y != gy {
			diags = append(diags, at(records, i, "%s at angle_z=%g: shift delta=(%d,%d) expected=(%d,%d)",
				cur.Event, prev.AngleZ, delta.X, delta.Y, gx, gy))
		}
	}
	return diags
}

// checkShiftCancellation looks for a run of N presses of one pan key followed
// directly by N presses of the opposite key, and verifies the shift is back to
// its value before the first run. Runs shorter than MinCancelRun are not
// evaluated. An inverse run is consumed as soon as it follows a pan run, even
// when the counts differ, so no record takes part in two comparisons.
func checkShiftCancellation(records []parser.Record, cfg *config.Config) []Diagnostic {
	minRun := cfg.Camera.MinCancelRun
	runs := Runs(records)

	var diags []Diagnostic
	for r := 0; r < len(runs); r++ {
		run := runs[r]

		inverse, ok := panInverse[run.Event]
		if !ok || r+1 >= len(runs) || runs[r+1].Event != inverse {
			continue
		}
		back := runs[r+1]
		r++

		if run.Len() < minRun || back.Len() != run.Len() {
			continue
		}

		before := run.before(records).Shift
		after := records[back.End-1].Shift
		if before != after {
			diags = append(diags, span(records, run.Start, back.End-1,
				"%sx%d + %sx%d at angle_z=%g: shift before=%s after=%s (should match)",
				run.Event, run.Len(), back.Event, back.Len(), records[run.Start].AngleZ,
				formatShift(before), formatShift(after)))
		}
	}
	return diags
}
