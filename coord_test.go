package cubesim

import "testing"

func TestFourQuarterTurnsIdentity(t *testing.T) {
	coords := []Vec3i{
		{-2, 2, 2}, {2, 2, 2}, {0, 2, -2}, {-1, -1, 1},
		{3, -3, 1}, {-4, 0, 4}, {1, 1, 1},
	}
	axes := []Axis{AxisX, AxisY, AxisZ}

	for _, axis := range axes {
		for _, start := range coords {
			v := start
			for i := 0; i < 4; i++ {
				v = rotateCoord(v, axis, 1)
			}
			if v != start {
				t.Errorf("four quarter turns around %s moved %v to %v", axis, start, v)
			}
		}
	}
}

func TestHalfTurnIsTwoQuarterTurns(t *testing.T) {
	coords := []Vec3i{{-2, 2, 2}, {1, -3, 3}, {0, 0, 4}}
	axes := []Axis{AxisX, AxisY, AxisZ}

	for _, axis := range axes {
		for _, start := range coords {
			half := rotateCoord(start, axis, 2)
			twice := rotateCoord(rotateCoord(start, axis, 1), axis, 1)
			if half != twice {
				t.Errorf("half turn around %s of %v: got %v, two quarters give %v", axis, start, half, twice)
			}

			// -2 is the same rotation as +2.
			if neg := rotateCoord(start, axis, -2); neg != half {
				t.Errorf("dir -2 around %s of %v: got %v, want %v", axis, start, neg, half)
			}
		}
	}
}

func TestQuarterTurnPreservesAxisComponent(t *testing.T) {
	v := Vec3i{-2, 2, 2}

	tests := []struct {
		axis Axis
		want int
	}{
		{AxisX, -2},
		{AxisY, 2},
		{AxisZ, 2},
	}

	for _, tt := range tests {
		got := rotateCoord(v, tt.axis, 1)
		if got.Component(tt.axis) != tt.want {
			t.Errorf("quarter turn around %s changed the %s component: %v", tt.axis, tt.axis, got)
		}
	}
}

func TestCCWUndoesCW(t *testing.T) {
	v := Vec3i{3, -1, 1}
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		if got := rotateCoord(rotateCoord(v, axis, 1), axis, -1); got != v {
			t.Errorf("CW then CCW around %s moved %v to %v", axis, v, got)
		}
	}
}

func TestSelectLayer(t *testing.T) {
	cubies := buildCubies(3)

	layer := selectLayer(cubies, AxisY, 2)
	if len(layer) != 9 {
		t.Errorf("top layer of a 3x3 should have 9 cubies, got %d", len(layer))
	}
	for _, cb := range layer {
		if cb.Coord.Y != 2 {
			t.Errorf("cubie %s selected into y=2 layer at %v", cb.ID, cb.Coord)
		}
	}

	// The center slice excludes the hidden center piece.
	middle := selectLayer(cubies, AxisY, 0)
	if len(middle) != 8 {
		t.Errorf("middle layer of a 3x3 should have 8 cubies, got %d", len(middle))
	}

	// No layer exists at an odd doubled coordinate on an odd cube.
	if empty := selectLayer(cubies, AxisX, 1); len(empty) != 0 {
		t.Errorf("expected empty selection at x=1, got %d cubies", len(empty))
	}
}

func TestHalved(t *testing.T) {
	v := Vec3i{-3, 0, 1}
	got := v.Halved()
	want := Vec3{-1.5, 0, 0.5}
	if got != want {
		t.Errorf("Halved of %v: got %v, want %v", v, got, want)
	}
}
