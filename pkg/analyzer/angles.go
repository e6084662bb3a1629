package analyzer

import (
	"math"

	"github.com/ccollicutt/camcheck/pkg/config"
	"github.com/ccollicutt/camcheck/pkg/parser"
)

// checkAngleIncrements verifies each Q/E press steps angle_z and each arrow
// press steps angle_x (clamped) by exactly one angle step from the previous
// record. Other events are not evaluated.
func checkAngleIncrements(records []parser.Record, cfg *config.Config) []Diagnostic {
	cam := cfg.Camera
	step := cam.AngleStep

	var diags []Diagnostic
	for i := 1; i < len(records); i++ {
		prev, cur := records[i-1], records[i]

		switch cur.Event {
		case EventKeyQ:
			if want := prev.AngleZ - step; cur.AngleZ != want {
				diags = append(diags, at(records, i, "Q: angle_z=%g expected=%g", cur.AngleZ, want))
			}
		case EventKeyE:
			if want := prev.AngleZ + step; cur.AngleZ != want {
				diags = append(diags, at(records, i, "E: angle_z=%g expected=%g", cur.AngleZ, want))
			}
		case EventArrowUp:
			if want := math.Min(prev.AngleX+step, cam.AngleXMax); cur.AngleX != want {
				diags = append(diags, at(records, i, "ArrowUp: angle_x=%g expected=%g", cur.AngleX, want))
			}
		case EventArrowDown:
			if want := math.Max(prev.AngleX-step, cam.AngleXMin); cur.AngleX != want {
				diags = append(diags, at(records, i, "ArrowDown: angle_x=%g expected=%g", cur.AngleX, want))
			}
		}
	}
	return diags
}

func checkAngleXClamp(records []parser.Record, cfg *config.Config) []Diagnostic {
	cam := cfg.Camera

	var diags []Diagnostic
	for i, r := range records {
		if r.AngleX < cam.AngleXMin || r.AngleX > cam.AngleXMax {
			diags = append(diags, at(records, i, "angle_x=%g out of bounds [%g, %g] (event=%s)",
				r.AngleX, cam.AngleXMin, cam.AngleXMax, r.Event))
		}
	}
	return diags
}

// checkResetState verifies a reset event lands exactly on the default angles.
func checkResetState(records []parser.Record, cfg *config.Config) []Diagnostic {
	cam := cfg.Camera

	var diags []Diagnostic
	for i, r := range records {
		if r.Event != EventReset {
			continue
		}
		if r.AngleX != cam.ResetAngleX {
			diags = append(diags, at(records, i, "reset: angle_x=%g expected=%g", r.AngleX, cam.ResetAngleX))
		}
		if r.AngleZ != cam.ResetAngleZ {
			diags = append(diags, at(records, i, "reset: angle_z=%g expected=%g", r.AngleZ, cam.ResetAngleZ))
		}
	}
	return diags
}
