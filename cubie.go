package cubesim

import "github.com/google/uuid"

// Cubie is one physical piece of the puzzle. Its ID is assigned at build
// time and never changes, so a piece can be re-located across rotations.
type Cubie struct {
	ID string

	// InitialCoord is the doubled-integer coordinate at build time.
	// Immutable for the cubie's lifetime.
	InitialCoord Vec3i

	// Coord is the current doubled-integer coordinate. Canonical for
	// equality and layer filtering; updated by every rotation that
	// includes this cubie.
	Coord Vec3i
}

// Position returns the current fractional logical coordinate.
func (cb *Cubie) Position() Vec3 {
	return cb.Coord.Halved()
}

// InitialPosition returns the fractional coordinate the cubie was built at.
func (cb *Cubie) InitialPosition() Vec3 {
	return cb.InitialCoord.Halved()
}

// buildCubies constructs all cubies for a cube of the given side length.
// Doubled coordinates run from -(size-1) to size-1 in steps of 2 on every
// axis. Positions with no physical piece are skipped: the exact center on
// odd sizes, and the whole strictly-interior core on even sizes. The
// resulting count is size^3-1 for odd sizes and size^3-(size-2)^3 for even.
func buildCubies(size int) []*Cubie {
	max := size - 1
	cubies := make([]*Cubie, 0, size*size*size)

	for x := -max; x <= max; x += 2 {
		for y := -max; y <= max; y += 2 {
			for z := -max; z <= max; z += 2 {
				if skipInterior(size, x, y, z) {
					continue
				}
				coord := Vec3i{X: x, Y: y, Z: z}
				cubies = append(cubies, &Cubie{
					ID:           uuid.New().String(),
					InitialCoord: coord,
					Coord:        coord,
				})
			}
		}
	}

	return cubies
}

// skipInterior reports whether the doubled coordinate (x,y,z) is a void
// position with no physical piece.
func skipInterior(size, x, y, z int) bool {
	if size%2 == 1 {
		// Odd cubes have a single hidden center piece.
		return x == 0 && y == 0 && z == 0
	}
	// Even cubes have no physical pieces strictly inside the shell.
	max := size - 1
	return abs(x) < max && abs(y) < max && abs(z) < max
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
