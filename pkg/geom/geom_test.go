package geom

import (
	"math"
	"testing"
)

func TestRoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.5, 1},
		{-0.5, -1},
		{1.5, 2},
		{-1.5, -2},
		{2.5, 3},
		{0.49, 0},
		{-0.49, 0},
		{0, 0},
		{-0.9999, -1},
		// sin(30°) in float64, one ulp below a half
		{0.49999999999999994, 1},
		{-0.49999999999999994, -1},
		// cos(120°) in float64, four ulps below a half
		{0.4999999999999998, 0},
		{-0.4999999999999998, 0},
	}

	for _, tt := range tests {
		if got := RoundHalfAwayFromZero(tt.in); got != tt.want {
			t.Errorf("RoundHalfAwayFromZero(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); math.Abs(got-math.Pi) > 1e-15 {
		t.Errorf("Radians(180) = %v, want %v", got, math.Pi)
	}
	// Same bits as 30 * 0.017453292519943295
	if got, want := Radians(30), 0.5235987755982988; got != want {
		t.Errorf("Radians(30) = %v, want %v", got, want)
	}
}

func TestUnwrapDelta(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{70, -58},
		{-70, 58},
		{64, 64},
		{-64, -64},
		{65, -63},
		{-65, 63},
		{127, -1},
		{-127, 1},
		{0, 0},
		{3, 3},
	}

	for _, tt := range tests {
		if got := UnwrapDelta(tt.in, 128); got != tt.want {
			t.Errorf("UnwrapDelta(%d, 128) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestShiftStep(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		angleZ float64
		wantX  int
		wantY  int
	}{
		{"W at 0", 0, 1, 0, 0, -1},
		{"S at 0", 0, -1, 0, 0, 1},
		{"A at 0", -1, 0, 0, 1, 0},
		{"D at 0", 1, 0, 0, -1, 0},
		{"W at 90", 0, 1, 90, -1, 0},
		{"D at 90", 1, 0, 90, 0, 1},
		{"W at -90", 0, 1, -90, 1, 0},
		{"W at 180", 0, 1, 180, 0, 1},
		{"W at 45", 0, 1, 45, -1, -1},
		{"W at 35", 0, 1, 35, -1, -1},
		{"W at 25", 0, 1, 25, 0, -1},
		// sin(±30°) and sin(±150°) land one ulp short of a half
		{"W at 30", 0, 1, 30, -1, -1},
		{"W at 150", 0, 1, 150, -1, 1},
		{"W at -30", 0, 1, -30, 1, -1},
		{"W at -150", 0, 1, -150, 1, 1},
		{"S at 30", 0, -1, 30, 1, 1},
		{"D at 150", 1, 0, 150, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gx, gy := ShiftStep(tt.dx, tt.dy, tt.angleZ)
			if gx != tt.wantX || gy != tt.wantY {
				t.Errorf("ShiftStep(%d, %d, %v) = (%d, %d), want (%d, %d)",
					tt.dx, tt.dy, tt.angleZ, gx, gy, tt.wantX, tt.wantY)
			}
		})
	}
}

// Expected pan deltas per yaw for W, S, A and D, in that order. The values
// were produced by the reference checker with float64 trig and
// floor(x+0.5)/ceil(x-0.5) rounding, not by ShiftStep.
var panDeltasByYaw = map[float64][4][2]int{
	-180: {{0, 1}, {0, -1}, {-1, 0}, {1, 0}},
	-150: {{1, 1}, {-1, -1}, {-1, 1}, {1, -1}},
	-120: {{1, 0}, {-1, 0}, {0, 1}, {0, -1}},
	-90:  {{1, 0}, {-1, 0}, {0, 1}, {0, -1}},
	-60:  {{1, -1}, {-1, 1}, {1, 1}, {-1, -1}},
	-30:  {{1, -1}, {-1, 1}, {1, 1}, {-1, -1}},
	0:    {{0, -1}, {0, 1}, {1, 0}, {-1, 0}},
	30:   {{-1, -1}, {1, 1}, {1, -1}, {-1, 1}},
	60:   {{-1, -1}, {1, 1}, {1, -1}, {-1, 1}},
	90:   {{-1, 0}, {1, 0}, {0, -1}, {0, 1}},
	120:  {{-1, 0}, {1, 0}, {0, -1}, {0, 1}},
	150:  {{-1, 1}, {1, -1}, {-1, -1}, {1, 1}},
	180:  {{0, 1}, {0, -1}, {-1, 0}, {1, 0}},
	210:  {{1, 1}, {-1, -1}, {-1, 1}, {1, -1}},
	240:  {{1, 1}, {-1, -1}, {-1, 1}, {1, -1}},
	270:  {{1, 0}, {-1, 0}, {0, 1}, {0, -1}},
	300:  {{1, -1}, {-1, 1}, {1, 1}, {-1, -1}},
	330:  {{1, -1}, {-1, 1}, {1, 1}, {-1, -1}},
	360:  {{0, -1}, {0, 1}, {1, 0}, {-1, 0}},
}

func TestShiftStep_MultiplesOf30(t *testing.T) {
	keys := []struct {
		name   string
		dx, dy int
	}{
		{"W", 0, 1},
		{"S", 0, -1},
		{"A", -1, 0},
		{"D", 1, 0},
	}

	for yaw, want := range panDeltasByYaw {
		for k, key := range keys {
			gx, gy := ShiftStep(key.dx, key.dy, yaw)
			if gx != want[k][0] || gy != want[k][1] {
				t.Errorf("%s at %v: ShiftStep = (%d, %d), want (%d, %d)",
					key.name, yaw, gx, gy, want[k][0], want[k][1])
			}
		}
	}
}

func TestShift_Delta(t *testing.T) {
	prev := Shift{X: 127, Y: 0}
	cur := Shift{X: 0, Y: 127}

	if got, want := cur.Delta(prev, 128), (Shift{X: 1, Y: -1}); got != want {
		t.Errorf("cur.Delta(prev) = %+v, want %+v", got, want)
	}
	if got, want := prev.Delta(cur, 128), (Shift{X: -1, Y: 1}); got != want {
		t.Errorf("prev.Delta(cur) = %+v, want %+v", got, want)
	}
}

func TestDistXY(t *testing.T) {
	a := Vec3{X: 3, Y: 4, Z: 100}
	b := Vec3{X: 0, Y: 0, Z: -7}

	if got := DistXY(a, b); math.Abs(got-5) > 1e-12 {
		t.Errorf("DistXY() = %v, want 5", got)
	}
}
