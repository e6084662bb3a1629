package config

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Load builds a configuration from defaults, the YAML file at path (if path is
// not empty) and CAMCHECK_* environment overrides, then validates it.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// applyEnvironmentOverrides applies CAMCHECK_* variables on top of the config.
// Unset variables leave the current value alone.
func (c *Config) applyEnvironmentOverrides() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parsing environment overrides: %w", err)
	}
	return nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if err := validateCamera(&cfg.Camera); err != nil {
		return fmt.Errorf("camera: %w", err)
	}

	if err := validateTolerances(&cfg.Tolerances); err != nil {
		return fmt.Errorf("tolerances: %w", err)
	}

	if cfg.Report.MaxDiagnostics < 1 {
		return errors.New("report: max_diagnostics must be >= 1")
	}

	return nil
}

func validateCamera(c *CameraConfig) error {
	if c.AngleXMin >= c.AngleXMax {
		return fmt.Errorf("angle_x_min (%g) must be less than angle_x_max (%g)", c.AngleXMin, c.AngleXMax)
	}

	if c.AngleStep <= 0 {
		return errors.New("angle_step must be > 0")
	}

	if math.Mod(360, c.AngleStep) != 0 {
		return fmt.Errorf("angle_step %g must divide 360", c.AngleStep)
	}

	if c.ZoomMin <= 0 {
		return errors.New("zoom_min must be > 0")
	}

	if c.ZoomMin >= c.ZoomMax {
		return fmt.Errorf("zoom_min (%g) must be less than zoom_max (%g)", c.ZoomMin, c.ZoomMax)
	}

	if c.ShiftPeriod <= 0 || c.ShiftPeriod%2 != 0 {
		return fmt.Errorf("shift_period must be a positive even number, got %d", c.ShiftPeriod)
	}

	if c.MinCancelRun < 1 {
		return errors.New("min_cancel_run must be >= 1")
	}

	return nil
}

func validateTolerances(t *ToleranceConfig) error {
	named := []struct {
		name  string
		value float64
	}{
		{"orbit_radius", t.OrbitRadius},
		{"rotation", t.Rotation},
		{"height", t.Height},
		{"zoom", t.Zoom},
	}

	for _, n := range named {
		if n.value < 0 || math.IsNaN(n.value) {
			return fmt.Errorf("%s must be >= 0, got %g", n.name, n.value)
		}
	}

	return nil
}
