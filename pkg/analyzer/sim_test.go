package analyzer

import (
	"math"

	"github.com/ccollicutt/camcheck/pkg/geom"
	"github.com/ccollicutt/camcheck/pkg/parser"
)

// camSim is a reference orbit camera that emits invariant-respecting records.
type camSim struct {
	angleX, angleZ float64
	radius         float64
	focus          geom.Vec3
	minZ           float64
	zoom           float64
	shift          geom.Shift

	records []parser.Record
}

func newCamSim() *camSim {
	s := &camSim{
		angleX: -55,
		radius: 10,
		focus:  geom.Vec3{X: 10, Y: 20, Z: 0},
		minZ:   2,
		zoom:   1,
	}
	s.emit("init")
	return s
}

// press applies each event in turn and records the resulting state.
func (s *camSim) press(events ...string) *camSim {
	for _, ev := range events {
		s.apply(ev)
		s.emit(ev)
	}
	return s
}

// repeat presses the same event n times.
func (s *camSim) repeat(ev string, n int) *camSim {
	for i := 0; i < n; i++ {
		s.press(ev)
	}
	return s
}

func (s *camSim) apply(ev string) {
	switch {
	case ev == EventKeyQ:
		s.angleZ -= 5
	case ev == EventKeyE:
		s.angleZ += 5
	case ev == EventArrowUp:
		s.angleX = math.Min(s.angleX+5, -30)
	case ev == EventArrowDown:
		s.angleX = math.Max(s.angleX-5, -90)
	case ev == EventReset:
		s.angleX, s.angleZ, s.zoom = -55, 0, 1
	case ev == "zoom_in":
		s.zoom = math.Min(s.zoom*1.25, 5)
	case ev == "zoom_out":
		s.zoom = math.Max(s.zoom/1.25, 0.3)
	default:
		if dir, ok := panDirections[ev]; ok {
			gx, gy := geom.ShiftStep(dir.dx, dir.dy, s.angleZ)
			s.shift = geom.Shift{X: wrap(s.shift.X+gx, 128), Y: wrap(s.shift.Y+gy, 128)}
		}
	}
}

func (s *camSim) emit(ev string) {
	ax := geom.Radians(s.angleX)
	az := geom.Radians(s.angleZ)
	d := s.radius * math.Cos(ax)
	orbitZ := s.focus.Z - s.radius*math.Sin(ax)

	n := len(s.records) + 1
	s.records = append(s.records, parser.Record{
		Event:     ev,
		T:         float64(n) / 60,
		AngleX:    s.angleX,
		AngleZ:    s.angleZ,
		Eye:       geom.Vec3{X: s.focus.X + d*math.Sin(az), Y: s.focus.Y + d*math.Cos(az), Z: math.Max(orbitZ, s.minZ)},
		Focus:     s.focus,
		Radius:    s.radius,
		MinZ:      s.minZ,
		EyeZOrbit: orbitZ,
		Zoom:      s.zoom,
		Shift:     s.shift,
		Entry:     n,
		LineNum:   n,
	})
}

// log returns a copy of the records emitted so far.
func (s *camSim) log() []parser.Record {
	out := make([]parser.Record, len(s.records))
	copy(out, s.records)
	return out
}

func wrap(v, period int) int {
	return ((v % period) + period) % period
}
