package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/camcheck/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a camcheck configuration file without checking a log.

Checks:
  - YAML syntax
  - Angle and zoom bounds are ordered
  - angle_step divides 360
  - shift_period is positive and even
  - Tolerances are non-negative

CAMCHECK_* environment overrides are applied before validation.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &UsageError{Err: fmt.Errorf("expected exactly one config file, got %d arguments", len(args))}
			}
			return nil
		},
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	w := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	cam := cfg.Camera
	tol := cfg.Tolerances
	_, _ = fmt.Fprintf(w, "\nConfiguration valid!\n")
	_, _ = fmt.Fprintf(w, "\nCamera:\n")
	_, _ = fmt.Fprintf(w, "  angle_x:     [%g, %g]\n", cam.AngleXMin, cam.AngleXMax)
	_, _ = fmt.Fprintf(w, "  angle_step:  %g (%d steps per revolution)\n", cam.AngleStep, cam.RevolutionSteps())
	_, _ = fmt.Fprintf(w, "  reset:       angle_x=%g angle_z=%g\n", cam.ResetAngleX, cam.ResetAngleZ)
	_, _ = fmt.Fprintf(w, "  zoom:        [%g, %g]\n", cam.ZoomMin, cam.ZoomMax)
	_, _ = fmt.Fprintf(w, "  shift:       period %d, cancel runs >= %d\n", cam.ShiftPeriod, cam.MinCancelRun)
	_, _ = fmt.Fprintf(w, "\nTolerances:\n")
	_, _ = fmt.Fprintf(w, "  orbit_radius: %g\n", tol.OrbitRadius)
	_, _ = fmt.Fprintf(w, "  rotation:     %g\n", tol.Rotation)
	_, _ = fmt.Fprintf(w, "  height:       %g\n", tol.Height)
	_, _ = fmt.Fprintf(w, "  zoom:         %g\n", tol.Zoom)
	_, _ = fmt.Fprintf(w, "\nReport:\n")
	_, _ = fmt.Fprintf(w, "  max_diagnostics: %d\n", cfg.Report.MaxDiagnostics)

	return nil
}
