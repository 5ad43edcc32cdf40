package cubesim

import "testing"

func TestMoveNotation(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{AxisX, 0, CW}, "x0"},
		{Move{AxisX, 0, CCW}, "x0'"},
		{Move{AxisY, 2, Double}, "y22"},
		{Move{AxisY, 2, -Double}, "y22"},
		{Move{AxisZ, 1, CW}, "z1"},
		{Move{AxisZ, 4, CCW}, "z4'"},
	}

	for _, tt := range tests {
		if got := tt.move.Notation(); got != tt.want {
			t.Errorf("Notation of %+v: got %q, want %q", tt.move, got, tt.want)
		}
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"x0", Move{AxisX, 0, CW}},
		{"x0'", Move{AxisX, 0, CCW}},
		{"y22", Move{AxisY, 2, Double}},
		{"y22'", Move{AxisY, 2, -Double}},
		{"Z1", Move{AxisZ, 1, CW}},
		{" z3` ", Move{AxisZ, 3, CCW}},
	}

	for _, tt := range tests {
		got, err := ParseMove(tt.in)
		if err != nil {
			t.Errorf("ParseMove(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMove(%q): got %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, in := range []string{"", "x", "w0", "xa", "x03", "x0''"} {
		if _, err := ParseMove(in); err == nil {
			t.Errorf("ParseMove(%q) should fail", in)
		}
	}
}

func TestParseMovesRoundTrip(t *testing.T) {
	in := "x0 y2' z12 x1"
	moves, err := ParseMoves(in)
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	if got := FormatMoves(moves); got != in {
		t.Errorf("round trip: got %q, want %q", got, in)
	}
}

func TestMoveInverse(t *testing.T) {
	tests := []struct {
		move Move
		want int
	}{
		{Move{AxisX, 0, CW}, CCW},
		{Move{AxisX, 0, CCW}, CW},
		{Move{AxisY, 1, Double}, -Double},
	}

	for _, tt := range tests {
		inv := tt.move.Inverse()
		if inv.Dir != tt.want {
			t.Errorf("Inverse of %+v: got dir %d, want %d", tt.move, inv.Dir, tt.want)
		}
		if inv.Axis != tt.move.Axis || inv.Layer != tt.move.Layer {
			t.Errorf("Inverse of %+v changed axis or layer: %+v", tt.move, inv)
		}
	}
}

func TestIntegerLayerResolution(t *testing.T) {
	tests := []struct {
		layer int
		size  int
		want  int
	}{
		{0, 3, -2},
		{1, 3, 0},
		{2, 3, 2},
		{0, 4, -3},
		{3, 4, 3},
		{0, 2, -1},
		{1, 2, 1},
	}

	for _, tt := range tests {
		m := Move{Axis: AxisX, Layer: tt.layer}
		if got := m.integerLayer(tt.size); got != tt.want {
			t.Errorf("layer index %d on size %d: got %d, want %d", tt.layer, tt.size, got, tt.want)
		}
	}
}

func TestPredefinedMovesCancel(t *testing.T) {
	pairs := []struct {
		name string
		a, b Move
	}{
		{"R/R'", R, RPrime},
		{"L/L'", L, LPrime},
		{"U/U'", U, UPrime},
		{"D/D'", D, DPrime},
		{"F/F'", F, FPrime},
		{"B/B'", B, BPrime},
	}

	for _, p := range pairs {
		if p.a.Inverse() != p.b {
			t.Errorf("%s: %+v is not the inverse of %+v", p.name, p.b, p.a)
		}
	}
}
