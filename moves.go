package nxncube

// Predefined outer-layer moves for convenience.
// They fit every cube size and can be applied to any Cube.
//
// Example:
//
//	cube.Apply(nxncube.R, nxncube.U, nxncube.RPrime, nxncube.UPrime)
var (
	// Right face moves
	R      = RotateRight(Single(0), Clockwise)        // Right clockwise
	RPrime = RotateRight(Single(0), CounterClockwise) // Right counter-clockwise
	R2     = RotateRight(Single(0), Twice)            // Right 180

	// Left face moves
	L      = RotateLeft(Single(0), Clockwise)        // Left clockwise
	LPrime = RotateLeft(Single(0), CounterClockwise) // Left counter-clockwise
	L2     = RotateLeft(Single(0), Twice)            // Left 180

	// Up face moves
	U      = RotateTop(Single(0), Clockwise)        // Up clockwise
	UPrime = RotateTop(Single(0), CounterClockwise) // Up counter-clockwise
	U2     = RotateTop(Single(0), Twice)            // Up 180

	// Down face moves
	D      = RotateBottom(Single(0), Clockwise)        // Down clockwise
	DPrime = RotateBottom(Single(0), CounterClockwise) // Down counter-clockwise
	D2     = RotateBottom(Single(0), Twice)            // Down 180

	// Front face moves
	F      = RotateFront(Single(0), Clockwise)        // Front clockwise
	FPrime = RotateFront(Single(0), CounterClockwise) // Front counter-clockwise
	F2     = RotateFront(Single(0), Twice)            // Front 180

	// Back face moves
	B      = RotateBack(Single(0), Clockwise)        // Back clockwise
	BPrime = RotateBack(Single(0), CounterClockwise) // Back counter-clockwise
	B2     = RotateBack(Single(0), Twice)            // Back 180

	// Whole-cube rotations
	X = ForCube(AxisY, Clockwise) // Whole cube with R
	Y = ForCube(AxisZ, Clockwise) // Whole cube with U
	Z = ForCube(AxisX, Clockwise) // Whole cube with F
)

// SexyMove is R U R' U', which has order 6 on every cube size.
var SexyMove = []Move{R, U, RPrime, UPrime}

// Invert returns the moves that undo seq, in order.
func Invert(seq []Move) []Move {
	out := make([]Move, len(seq))
	for i, m := range seq {
		out[len(seq)-1-i] = m.Inverse()
	}
	return out
}
