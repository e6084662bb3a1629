package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ccollicutt/camcheck/pkg/geom"
)

// wireRecord mirrors one JSON line. Pointers distinguish a missing number
// from a zero one.
type wireRecord struct {
	T         *float64  `json:"t"`
	Event     *string   `json:"event" validate:"required"`
	AngleX    *float64  `json:"angle_x" validate:"required"`
	AngleZ    *float64  `json:"angle_z" validate:"required"`
	Eye       []float64 `json:"eye" validate:"required,len=3"`
	Focus     []float64 `json:"focus" validate:"required,len=3"`
	Radius    *float64  `json:"radius" validate:"required"`
	MinZ      *float64  `json:"min_z" validate:"required"`
	EyeZOrbit *float64  `json:"eye_z_orbit" validate:"required"`
	Zoom      *float64  `json:"zoom" validate:"required"`
	Shift     []int     `json:"shift" validate:"required,len=2"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeRecord parses one non-blank line.
func decodeRecord(line []byte) (*Record, error) {
	var w wireRecord
	if err := json.Unmarshal(line, &w); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("invalid record: field %q: %w", typeErr.Field, err)
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if err := validate.Struct(&w); err != nil {
		return nil, fmt.Errorf("invalid record: %w", describeValidation(err))
	}

	rec := &Record{
		Event:     *w.Event,
		AngleX:    *w.AngleX,
		AngleZ:    *w.AngleZ,
		Eye:       geom.Vec3{X: w.Eye[0], Y: w.Eye[1], Z: w.Eye[2]},
		Focus:     geom.Vec3{X: w.Focus[0], Y: w.Focus[1], Z: w.Focus[2]},
		Radius:    *w.Radius,
		MinZ:      *w.MinZ,
		EyeZOrbit: *w.EyeZOrbit,
		Zoom:      *w.Zoom,
		Shift:     geom.Shift{X: w.Shift[0], Y: w.Shift[1]},
	}
	if w.T != nil {
		rec.T = *w.T
	}

	return rec, nil
}

// describeValidation turns validator output into a short message naming the
// first offending field.
func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("missing field %q", fe.Field())
	case "len":
		return fmt.Errorf("field %q must have %s elements", fe.Field(), fe.Param())
	default:
		return fmt.Errorf("field %q failed %q", fe.Field(), fe.Tag())
	}
}
