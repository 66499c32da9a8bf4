// Package nxncube models an NxNxN twisty cube puzzle of any size from 2
// upwards.
//
// A Cube holds the cubits on the puzzle's outer shell. Each cubit has an
// integer lattice position and the directions its stickers face, and moves
// rotate whole layers of cubits as rigid bodies.
//
// # Coordinates
//
// Even cubes use odd coordinates so no cubit sits on an axis:
//
//	sides=4: {-3, -1, 1, 3}
//
// Odd cubes use consecutive integers centered on zero:
//
//	sides=5: {-2, -1, 0, 1, 2}
//
// +X is the front face, +Y the right face and +Z the top face.
//
// # Quick Start
//
//	cube, err := nxncube.New(4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Turn the second layer from the top clockwise
//	err = cube.Rotate(nxncube.ForFace(nxncube.FaceU, nxncube.Single(1), nxncube.Clockwise))
//
//	// Turn the two outer layers of the right face half way round
//	err = cube.Rotate(nxncube.RotateRight(nxncube.Multiple(2), nxncube.Twice))
//
//	// Rotate the whole cube about the vertical axis
//	err = cube.Rotate(nxncube.ForCube(nxncube.AxisZ, nxncube.CounterClockwise))
//
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Moves
//
// Turns are given as seen from outside the named face, so turning the
// bottom face clockwise is the same motion as turning the same layers, seen
// from the top, counter-clockwise. Layer selectors are checked when a move is
// applied; a move that does not fit the cube returns an error wrapping
// ErrInvalidMoveLayer and leaves the cube unchanged.
//
// Outer-layer moves are predefined for convenience:
//
//	cube.Apply(nxncube.R, nxncube.U, nxncube.RPrime, nxncube.UPrime)
package nxncube
