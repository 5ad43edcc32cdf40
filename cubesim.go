// Package cubesim implements the logical state and rotation engine of an
// N x N x N Rubik's Cube: cubie identity and position tracking, exact
// integer rotation math, shuffle/solve-by-reversal sequencing, and a
// lifecycle state machine that guards against overlapping operations.
//
// The engine is renderer-agnostic. It decides target coordinates; how a
// scene graph animates the transition is up to the caller.
//
// # Quick Start
//
// Build a cube, shuffle it, and solve it back:
//
//	cube, err := cubesim.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cube.Shuffle()
//	fmt.Println("Solved:", cube.IsSolved())
//
//	cube.Solve()
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Coordinates
//
// Cubie positions use a doubled-integer scheme: every component is twice
// the fractional logical coordinate, so positions are exact integers on
// both odd and even cube sizes and repeated rotations never drift. The
// fractional coordinate is derived on demand for display.
//
// # Moves
//
// A move addresses a layer by a stable index in [0, size) rather than a
// raw coordinate, so recorded sequences are meaningful independent of
// cube size. Predefined 3x3 face moves are available:
//
//	cubesim.R      // Right face quarter turn
//	cubesim.RPrime // Right face counter quarter turn
//	cubesim.R2     // Right face half turn
//	// ... and similarly for L, U, D, F, B
//
// # Modes
//
// By default every move resolves immediately (synchronous mode). With
// WithAnimation, each rotation blocks for a configurable duration and
// shuffle/solve pause between moves, mirroring how a renderer would play
// the sequence back. Run long operations on their own goroutine; a
// concurrent second operation is rejected with ErrBusy and never corrupts
// the one in progress.
package cubesim
