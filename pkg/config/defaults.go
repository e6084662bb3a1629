package config

// Default values for configuration.
const (
	DefaultAngleXMin      = -90.0
	DefaultAngleXMax      = -30.0
	DefaultAngleStep      = 5.0
	DefaultResetAngleX    = -55.0
	DefaultResetAngleZ    = 0.0
	DefaultZoomMin        = 0.3
	DefaultZoomMax        = 5.0
	DefaultShiftPeriod    = 128
	DefaultMinCancelRun   = 3
	DefaultMaxDiagnostics = 10

	DefaultOrbitRadiusTolerance = 0.01
	DefaultRotationTolerance    = 0.02
	DefaultHeightTolerance      = 0.001
	DefaultZoomTolerance        = 0.001
)

// EnvPrefix prefixes every environment variable override, e.g.
// CAMCHECK_MAX_DIAGNOSTICS.
const EnvPrefix = "CAMCHECK_"

// DefaultConfig returns the configuration of the reference camera.
func DefaultConfig() *Config {
	return &Config{
		Camera: CameraConfig{
			AngleXMin:    DefaultAngleXMin,
			AngleXMax:    DefaultAngleXMax,
			AngleStep:    DefaultAngleStep,
			ResetAngleX:  DefaultResetAngleX,
			ResetAngleZ:  DefaultResetAngleZ,
			ZoomMin:      DefaultZoomMin,
			ZoomMax:      DefaultZoomMax,
			ShiftPeriod:  DefaultShiftPeriod,
			MinCancelRun: DefaultMinCancelRun,
		},
		Tolerances: ToleranceConfig{
			OrbitRadius: DefaultOrbitRadiusTolerance,
			Rotation:    DefaultRotationTolerance,
			Height:      DefaultHeightTolerance,
			Zoom:        DefaultZoomTolerance,
		},
		Report: ReportConfig{
			MaxDiagnostics: DefaultMaxDiagnostics,
		},
	}
}
