package nxncube

// Quarter and half turns about the canonical axes in a right-handed frame.
// Clockwise is -90° about the positive axis, which is a clockwise turn when
// looking at the positive face from outside the cube.
var (
	rotXCW  = Matrix3{{1, 0, 0}, {0, 0, 1}, {0, -1, 0}}
	rotXCCW = Matrix3{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}}
	rotX2   = Matrix3{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}

	rotYCW  = Matrix3{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}}
	rotYCCW = Matrix3{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}}
	rotY2   = Matrix3{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}

	rotZCW  = Matrix3{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}}
	rotZCCW = Matrix3{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	rotZ2   = Matrix3{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}
)

// rotationTable is indexed by [Axis][turnIndex(Turn)].
var rotationTable = [3][3]Matrix3{
	AxisX: {rotXCW, rotXCCW, rotX2},
	AxisY: {rotYCW, rotYCCW, rotY2},
	AxisZ: {rotZCW, rotZCCW, rotZ2},
}

func turnIndex(t Turn) (int, bool) {
	switch t {
	case Clockwise:
		return 0, true
	case CounterClockwise:
		return 1, true
	case Twice:
		return 2, true
	}
	return 0, false
}

// RotationMatrix returns the rotation matrix for a turn about a canonical
// axis. The returned matrix is a copy; the table itself is never modified.
func RotationMatrix(axis Axis, turn Turn) (Matrix3, error) {
	i, ok := turnIndex(turn)
	if !ok || !axis.Valid() {
		return Matrix3{}, ErrUnknownRotation
	}
	return rotationTable[axis][i], nil
}
