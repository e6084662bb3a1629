package analyzer

import (
	"strings"

	"github.com/ccollicutt/camcheck/pkg/config"
	"github.com/ccollicutt/camcheck/pkg/parser"
)

func zoomInBounds(zoom float64, cfg *config.Config) bool {
	tol := cfg.Tolerances.Zoom
	return zoom >= cfg.Camera.ZoomMin-tol && zoom <= cfg.Camera.ZoomMax+tol
}

func checkZoomBounds(records []parser.Record, cfg *config.Config) []Diagnostic {
	var diags []Diagnostic
	for i, r := range records {
		if !zoomInBounds(r.Zoom, cfg) {
			diags = append(diags, at(records, i, "zoom=%s out of bounds [%s, %s]",
				formatFloat(r.Zoom), formatFloat(cfg.Camera.ZoomMin), formatFloat(cfg.Camera.ZoomMax)))
		}
	}
	return diags
}

// checkZoomClamp is checkZoomBounds scoped to zoom-triggering events.
func checkZoomClamp(records []parser.Record, cfg *config.Config) []Diagnostic {
	var diags []Diagnostic
	for i, r := range records {
		if !strings.HasPrefix(r.Event, ZoomEventPrefix) {
			continue
		}
		if !zoomInBounds(r.Zoom, cfg) {
			diags = append(diags, at(records, i, "zoom event resulted in zoom=%s, should be clamped to [%s, %s]",
				formatFloat(r.Zoom), formatFloat(cfg.Camera.ZoomMin), formatFloat(cfg.Camera.ZoomMax)))
		}
	}
	return diags
}
