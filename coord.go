package cubesim

// Axis identifies one of the three rotation axes of the puzzle.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// ParseAxis parses an axis letter ("x", "y" or "z", case-insensitive).
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	default:
		return AxisX, ErrInvalidNotation
	}
}

// Vec3 is a fractional logical coordinate. Components are half-integers
// on even-sized cubes, so Vec3 is display-only; Vec3i is canonical.
type Vec3 struct {
	X, Y, Z float64
}

// Vec3i is a doubled-integer coordinate: each component is twice the
// fractional logical coordinate, so all components are integers for both
// odd and even cube sizes. Rotations on Vec3i are exact - no drift.
type Vec3i struct {
	X, Y, Z int
}

// Halved returns the fractional coordinate this doubled coordinate encodes.
func (v Vec3i) Halved() Vec3 {
	return Vec3{X: float64(v.X) / 2, Y: float64(v.Y) / 2, Z: float64(v.Z) / 2}
}

// Component returns the coordinate component along the given axis.
func (v Vec3i) Component(axis Axis) int {
	switch axis {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	default:
		return 0
	}
}

// rotateCoord rotates a single doubled-integer coordinate by dir quarter
// turns around the given axis, using the right-handed convention: a +1 turn
// is counter-clockwise as seen from the positive end of the axis.
//
// dir is taken mod 4, so +2/-2 are half turns and any dir applied four
// times over is the identity. A half turn is exactly two quarter turns.
func rotateCoord(v Vec3i, axis Axis, dir int) Vec3i {
	quarters := ((dir % 4) + 4) % 4
	for i := 0; i < quarters; i++ {
		switch axis {
		case AxisX:
			v.Y, v.Z = -v.Z, v.Y
		case AxisY:
			v.X, v.Z = v.Z, -v.X
		case AxisZ:
			v.X, v.Y = -v.Y, v.X
		}
	}
	return v
}

// selectLayer returns every cubie whose doubled coordinate along axis
// equals layer. The result shares the cubie pointers with the store.
func selectLayer(cubies []*Cubie, axis Axis, layer int) []*Cubie {
	var selected []*Cubie
	for _, cb := range cubies {
		if cb.Coord.Component(axis) == layer {
			selected = append(selected, cb)
		}
	}
	return selected
}
