// Package config provides configuration loading and validation for camcheck.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Camera     CameraConfig    `yaml:"camera"`
	Tolerances ToleranceConfig `yaml:"tolerances"`
	Report     ReportConfig    `yaml:"report"`
}

// CameraConfig describes the orbit-camera model the log is checked against.
type CameraConfig struct {
	// AngleXMin and AngleXMax bound the polar angle, in degrees.
	AngleXMin float64 `yaml:"angle_x_min" env:"ANGLE_X_MIN"`
	AngleXMax float64 `yaml:"angle_x_max" env:"ANGLE_X_MAX"`

	// AngleStep is the change in degrees applied by one Q/E or arrow press.
	// Must divide 360.
	AngleStep float64 `yaml:"angle_step" env:"ANGLE_STEP"`

	// ResetAngleX and ResetAngleZ are the angles expected after a reset event.
	ResetAngleX float64 `yaml:"reset_angle_x" env:"RESET_ANGLE_X"`
	ResetAngleZ float64 `yaml:"reset_angle_z" env:"RESET_ANGLE_Z"`

	ZoomMin float64 `yaml:"zoom_min" env:"ZOOM_MIN"`
	ZoomMax float64 `yaml:"zoom_max" env:"ZOOM_MAX"`

	// ShiftPeriod is the period of the toroidal shift domain.
	ShiftPeriod int `yaml:"shift_period" env:"SHIFT_PERIOD"`

	// MinCancelRun is the shortest key run the shift cancellation check evaluates.
	MinCancelRun int `yaml:"min_cancel_run" env:"MIN_CANCEL_RUN"`
}

// RevolutionSteps returns the number of angle steps in a full turn.
func (c *CameraConfig) RevolutionSteps() int {
	return int(360 / c.AngleStep)
}

// ToleranceConfig holds the absolute tolerances used by numeric comparisons.
type ToleranceConfig struct {
	// OrbitRadius applies to the XY orbit distance.
	OrbitRadius float64 `yaml:"orbit_radius" env:"TOLERANCE_ORBIT_RADIUS"`

	// Rotation applies per axis to eye XY after a full revolution.
	Rotation float64 `yaml:"rotation" env:"TOLERANCE_ROTATION"`

	// Height applies to eye Z against min_z and eye_z_orbit.
	Height float64 `yaml:"height" env:"TOLERANCE_HEIGHT"`

	Zoom float64 `yaml:"zoom" env:"TOLERANCE_ZOOM"`
}

// ReportConfig controls report rendering.
type ReportConfig struct {
	// MaxDiagnostics caps the diagnostic lines printed per failing check.
	MaxDiagnostics int `yaml:"max_diagnostics" env:"MAX_DIAGNOSTICS"`
}
