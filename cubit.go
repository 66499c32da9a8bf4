package nxncube

// Cubit is a single piece of the puzzle: its lattice position and the
// directions its x, y and z stickers currently face.
//
// The piece is a rigid body, so Rotate always moves the position and all
// three orientation vectors together.
type Cubit struct {
	position    Vector
	orientation [3]Vector // [0] started facing +X, [1] +Y, [2] +Z
	home        Vector
}

// newCubit returns a piece at pos in the standard orientation.
func newCubit(pos Vector) Cubit {
	return Cubit{
		position:    pos,
		orientation: [3]Vector{UnitX, UnitY, UnitZ},
		home:        pos,
	}
}

// Position returns the cubit's current lattice coordinate.
func (c Cubit) Position() Vector {
	return c.position
}

// Orientation returns the current facing of the stickers that started on
// the +X, +Y and +Z sides, in that order.
func (c Cubit) Orientation() [3]Vector {
	return c.orientation
}

// Facing returns where the sticker that started facing +axis points now.
func (c Cubit) Facing(a Axis) Vector {
	if !a.Valid() {
		return Vector{}
	}
	return c.orientation[a]
}

// Sticker returns the original facing of the sticker that now points along
// dir, or the zero vector if no sticker does.
func (c Cubit) Sticker(dir Vector) Vector {
	return Vector{
		X: c.orientation[AxisX].Dot(dir),
		Y: c.orientation[AxisY].Dot(dir),
		Z: c.orientation[AxisZ].Dot(dir),
	}
}

// Home returns the position the cubit was built at.
func (c Cubit) Home() Vector {
	return c.home
}

// Rotate left-multiplies the position and orientation by m.
func (c *Cubit) Rotate(m Matrix3) {
	c.position = m.Apply(c.position)
	for i := range c.orientation {
		c.orientation[i] = m.Apply(c.orientation[i])
	}
}

// Equal reports whether two cubits sit at the same position with the same
// orientation.
func (c Cubit) Equal(o Cubit) bool {
	return c.position == o.position && c.orientation == o.orientation
}

// Rotation returns the orientation vectors as matrix columns: the combined
// rotation applied to the cubit since it was built.
func (c Cubit) Rotation() Matrix3 {
	var m Matrix3
	for col, v := range c.orientation {
		m[0][col] = v.X
		m[1][col] = v.Y
		m[2][col] = v.Z
	}
	return m
}
