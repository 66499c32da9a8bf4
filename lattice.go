package nxncube

import "fmt"

// Vector is an integer 3-vector on the cube lattice.
type Vector struct {
	X, Y, Z int
}

// Vec is shorthand for Vector{X: x, Y: y, Z: z}.
func Vec(x, y, z int) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// At returns the component for the given axis.
func (v Vector) At(a Axis) int {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// Scale returns v * k.
func (v Vector) Scale(k int) Vector {
	return Vector{v.X * k, v.Y * k, v.Z * k}
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) int {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// Unit vectors along the canonical axes.
var (
	UnitX = Vector{1, 0, 0}
	UnitY = Vector{0, 1, 0}
	UnitZ = Vector{0, 0, 1}
)

// unit returns the positive unit vector along a.
func unit(a Axis) Vector {
	return [3]Vector{UnitX, UnitY, UnitZ}[a]
}

// Matrix3 is a 3×3 integer matrix stored row-major: m[row][col].
type Matrix3 [3][3]int

// Identity3 is the 3×3 identity matrix.
var Identity3 = Matrix3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Apply returns m × v.
func (m Matrix3) Apply(v Vector) Vector {
	return Vector{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns m × o.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// Transpose returns mᵀ.
func (m Matrix3) Transpose() Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// Det returns the determinant of m.
func (m Matrix3) Det() int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// IsOrthogonal reports whether mᵀm is the identity.
func (m Matrix3) IsOrthogonal() bool {
	return m.Transpose().Mul(m) == Identity3
}

// span is an inclusive range of coordinate values along one axis.
type span struct {
	Min, Max int
}

func (s span) contains(c int) bool {
	return c >= s.Min && c <= s.Max
}

// lattice describes the per-axis coordinate domain for a side count.
//
// Even cubes use odd coordinates {-(n-1), ..., n-1} in steps of 2 so that
// no piece sits on an axis; odd cubes use {-n/2, ..., n/2} in steps of 1.
type lattice struct {
	sides  int
	offset int
	step   int
}

func newLattice(sides int) lattice {
	if sides%2 == 0 {
		return lattice{sides: sides, offset: sides - 1, step: 2}
	}
	return lattice{sides: sides, offset: sides / 2, step: 1}
}

// size returns the number of grid points, sides³.
func (l lattice) size() int {
	return l.sides * l.sides * l.sides
}

// shellSize returns the number of grid points on the outer shell.
func (l lattice) shellSize() int {
	inner := l.sides - 2
	return l.size() - inner*inner*inner
}

// coords maps a grid index in [0, sides³) to its lattice point.
func (l lattice) coords(idx int) Vector {
	n := l.sides
	return Vector{
		X: ((idx/n)%n)*l.step - l.offset,
		Y: (idx%n)*l.step - l.offset,
		Z: ((idx/(n*n))%n)*l.step - l.offset,
	}
}

// onShell reports whether v has at least one extremal coordinate.
func (l lattice) onShell(v Vector) bool {
	for _, c := range [3]int{v.X, v.Y, v.Z} {
		if c == l.offset || c == -l.offset {
			return true
		}
	}
	return false
}

// contains reports whether v is a point of this lattice.
func (l lattice) contains(v Vector) bool {
	if l.step == 0 {
		return false
	}
	for _, c := range [3]int{v.X, v.Y, v.Z} {
		if c < -l.offset || c > l.offset || (c+l.offset)%l.step != 0 {
			return false
		}
	}
	return true
}

func (l lattice) full() span {
	return span{Min: -l.offset, Max: l.offset}
}

// depth returns the coordinate of the layer `depth` slices in from the face
// on the sign side of the axis.
func (l lattice) depth(sign, depth int) int {
	return sign * (l.offset - depth*l.step)
}

// layerSpan resolves a layer selector measured inward from the face on the
// sign side of the axis. The layer must already be validated.
func (l lattice) layerSpan(sign int, layer Layer) span {
	switch layer.kind {
	case layerSingle:
		c := l.depth(sign, layer.n)
		return span{Min: c, Max: c}
	case layerMultiple:
		outer := l.depth(sign, 0)
		inner := l.depth(sign, layer.n-1)
		if sign > 0 {
			return span{Min: inner, Max: outer}
		}
		return span{Min: outer, Max: inner}
	default:
		return l.full()
	}
}
