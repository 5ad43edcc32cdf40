package cubesim

// Predefined face moves for the 3x3 cube, named in standard cube notation.
// Each constant ties a face letter to its axis/layer/direction on a size-3
// cube. Clockwise for a face on the positive end of an axis is a negative
// quarter turn about that axis, so R carries Dir CCW while L carries Dir CW.
// Use these instead of constructing Move structs manually on a 3x3.
//
// Example:
//
//	cube.Rotate(cubesim.R)
//	cube.Rotate(cubesim.UPrime)
var (
	// Right face (x = +1)
	R      = Move{Axis: AxisX, Layer: 2, Dir: CCW}
	RPrime = Move{Axis: AxisX, Layer: 2, Dir: CW}
	R2     = Move{Axis: AxisX, Layer: 2, Dir: Double}

	// Left face (x = -1)
	L      = Move{Axis: AxisX, Layer: 0, Dir: CW}
	LPrime = Move{Axis: AxisX, Layer: 0, Dir: CCW}
	L2     = Move{Axis: AxisX, Layer: 0, Dir: Double}

	// Up face (y = +1)
	U      = Move{Axis: AxisY, Layer: 2, Dir: CCW}
	UPrime = Move{Axis: AxisY, Layer: 2, Dir: CW}
	U2     = Move{Axis: AxisY, Layer: 2, Dir: Double}

	// Down face (y = -1)
	D      = Move{Axis: AxisY, Layer: 0, Dir: CW}
	DPrime = Move{Axis: AxisY, Layer: 0, Dir: CCW}
	D2     = Move{Axis: AxisY, Layer: 0, Dir: Double}

	// Front face (z = +1)
	F      = Move{Axis: AxisZ, Layer: 2, Dir: CCW}
	FPrime = Move{Axis: AxisZ, Layer: 2, Dir: CW}
	F2     = Move{Axis: AxisZ, Layer: 2, Dir: Double}

	// Back face (z = -1)
	B      = Move{Axis: AxisZ, Layer: 0, Dir: CW}
	BPrime = Move{Axis: AxisZ, Layer: 0, Dir: CCW}
	B2     = Move{Axis: AxisZ, Layer: 0, Dir: Double}
)

// Sexy move: R U R' U' - one of the most common algorithms.
var SexyMove = []Move{R, U, RPrime, UPrime}
