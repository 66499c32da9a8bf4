package nxncube

import (
	"fmt"
	"strconv"
)

// Axis is one of the three canonical rotation axes.
type Axis int

const (
	AxisX Axis = iota // Front/back axis
	AxisY             // Right/left axis
	AxisZ             // Top/bottom axis
)

// Valid reports whether a is one of AxisX, AxisY or AxisZ.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// direction is a signed axis: the outward normal of one face.
type direction int

const (
	dirNone direction = iota
	dirPosX
	dirNegX
	dirPosY
	dirNegY
	dirPosZ
	dirNegZ
)

// canonical splits d into its canonical axis and sign (+1 or -1).
func (d direction) canonical() (Axis, int) {
	switch d {
	case dirNegX:
		return AxisX, -1
	case dirPosY:
		return AxisY, 1
	case dirNegY:
		return AxisY, -1
	case dirPosZ:
		return AxisZ, 1
	case dirNegZ:
		return AxisZ, -1
	default:
		return AxisX, 1
	}
}

// axis narrows a positive direction to its canonical axis.
func (d direction) axis() (Axis, error) {
	switch d {
	case dirPosX:
		return AxisX, nil
	case dirPosY:
		return AxisY, nil
	case dirPosZ:
		return AxisZ, nil
	default:
		return 0, ErrAxisConversion
	}
}

func positive(a Axis) direction {
	switch a {
	case AxisY:
		return dirPosY
	case AxisZ:
		return dirPosZ
	case AxisX:
		return dirPosX
	default:
		return dirNone
	}
}

// Face names one of the six outer faces.
type Face string

const (
	FaceU Face = "U" // Up (+Z)
	FaceD Face = "D" // Down (-Z)
	FaceR Face = "R" // Right (+Y)
	FaceL Face = "L" // Left (-Y)
	FaceF Face = "F" // Front (+X)
	FaceB Face = "B" // Back (-X)
)

// Faces returns the six faces in a fixed order.
func Faces() []Face {
	return []Face{FaceU, FaceD, FaceR, FaceL, FaceF, FaceB}
}

func (f Face) direction() direction {
	switch f {
	case FaceU:
		return dirPosZ
	case FaceD:
		return dirNegZ
	case FaceR:
		return dirPosY
	case FaceL:
		return dirNegY
	case FaceF:
		return dirPosX
	case FaceB:
		return dirNegX
	default:
		return dirNone
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f.direction() != dirNone
}

// Axis returns the canonical axis the face is perpendicular to.
func (f Face) Axis() Axis {
	a, _ := f.direction().canonical()
	return a
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceR:
		return FaceL
	case FaceL:
		return FaceR
	case FaceF:
		return FaceB
	case FaceB:
		return FaceF
	default:
		return f
	}
}

// Turn represents the direction and magnitude of a turn, as seen from
// outside the face being turned.
type Turn int

const (
	Clockwise        Turn = 1  // Clockwise (90 degrees)
	CounterClockwise Turn = -1 // Counter-clockwise (90 degrees)
	Twice            Turn = 2  // Half turn (180 degrees)
)

// Valid reports whether t is one of the three turns.
func (t Turn) Valid() bool {
	_, ok := turnIndex(t)
	return ok
}

// Inverse returns the turn that undoes t.
// Twice is its own inverse.
func (t Turn) Inverse() Turn {
	switch t {
	case Clockwise:
		return CounterClockwise
	case CounterClockwise:
		return Clockwise
	}
	return t
}

func (t Turn) String() string {
	switch t {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	case Twice:
		return "2"
	default:
		return "?"
	}
}

type layerKind int

const (
	layerSingle layerKind = iota
	layerMultiple
	layerWhole
)

// Layer selects which slices, counted inward from a face, a move turns.
type Layer struct {
	kind layerKind
	n    int
}

// Single selects one slice; Single(0) is the outermost layer of the face.
func Single(index int) Layer {
	return Layer{kind: layerSingle, n: index}
}

// Multiple selects the first count slices from the face inward.
func Multiple(count int) Layer {
	return Layer{kind: layerMultiple, n: count}
}

// WholeCube selects every slice.
func WholeCube() Layer {
	return Layer{kind: layerWhole}
}

// IsSingle reports whether l was built with Single and returns its index.
func (l Layer) IsSingle() (int, bool) {
	return l.n, l.kind == layerSingle
}

// IsMultiple reports whether l was built with Multiple and returns its count.
func (l Layer) IsMultiple() (int, bool) {
	return l.n, l.kind == layerMultiple
}

// IsWholeCube reports whether l selects every slice.
func (l Layer) IsWholeCube() bool {
	return l.kind == layerWhole
}

// fits reports whether l can be applied to a cube with the given sides.
func (l Layer) fits(sides int) bool {
	switch l.kind {
	case layerSingle:
		return l.n >= 0 && l.n < sides
	case layerMultiple:
		return l.n >= 0 && l.n <= sides
	default:
		return true
	}
}

func (l Layer) String() string {
	switch l.kind {
	case layerSingle:
		return fmt.Sprintf("single(%d)", l.n)
	case layerMultiple:
		return fmt.Sprintf("multiple(%d)", l.n)
	default:
		return "whole cube"
	}
}

// Move describes a rotation of one or more layers, or of the whole cube.
// Moves are plain values and carry no reference to a cube, so the same
// move can be applied to any cube it fits.
type Move struct {
	face  Face
	dir   direction
	layer Layer
	turn  Turn
}

// ForFace returns a move turning the given layer(s) of a face. The layer is
// checked against the cube when the move is applied.
func ForFace(face Face, layer Layer, turn Turn) Move {
	return Move{face: face, dir: face.direction(), layer: layer, turn: turn}
}

// ForCube returns a move rotating the whole cube about a canonical axis.
// The turn is as seen from the positive face of that axis.
func ForCube(axis Axis, turn Turn) Move {
	return Move{dir: positive(axis), layer: WholeCube(), turn: turn}
}

// RotateTop turns the top (U) face.
func RotateTop(layer Layer, turn Turn) Move { return ForFace(FaceU, layer, turn) }

// RotateBottom turns the bottom (D) face.
func RotateBottom(layer Layer, turn Turn) Move { return ForFace(FaceD, layer, turn) }

// RotateLeft turns the left (L) face.
func RotateLeft(layer Layer, turn Turn) Move { return ForFace(FaceL, layer, turn) }

// RotateRight turns the right (R) face.
func RotateRight(layer Layer, turn Turn) Move { return ForFace(FaceR, layer, turn) }

// RotateFront turns the front (F) face.
func RotateFront(layer Layer, turn Turn) Move { return ForFace(FaceF, layer, turn) }

// RotateBack turns the back (B) face.
func RotateBack(layer Layer, turn Turn) Move { return ForFace(FaceB, layer, turn) }

// Face returns the face the move is measured from, or "" for moves built
// with ForCube.
func (m Move) Face() Face { return m.face }

// Layer returns the layer selector.
func (m Move) Layer() Layer { return m.layer }

// Turn returns the turn as given, relative to Face.
func (m Move) Turn() Turn { return m.turn }

// Axis returns the canonical axis the move rotates about.
func (m Move) Axis() Axis {
	a, _ := m.dir.canonical()
	return a
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	inv := m
	inv.turn = m.turn.Inverse()
	return inv
}

// normalize folds the six directions onto the three canonical axes. A turn
// seen from a negative face is the opposite turn seen from the positive one.
func (m Move) normalize() (Axis, Turn, error) {
	if m.dir == dirNone || !m.turn.Valid() {
		return 0, 0, ErrUnknownRotation
	}
	if axis, sign := m.dir.canonical(); sign < 0 {
		return axis, m.turn.Inverse(), nil
	}
	axis, err := m.dir.axis()
	if err != nil {
		return 0, 0, err
	}
	return axis, m.turn, nil
}

// RotationMatrix returns the matrix that carries out the move.
func (m Move) RotationMatrix() (Matrix3, error) {
	axis, turn, err := m.normalize()
	if err != nil {
		return Matrix3{}, err
	}
	return RotationMatrix(axis, turn)
}

// String returns a short human-readable form of the move: the face letter
// with an optional depth prefix or wide suffix, or x/y/z for whole-cube
// turns, followed by ' or 2 for counter-clockwise and half turns.
func (m Move) String() string {
	var base string
	switch {
	case m.layer.kind == layerWhole:
		axis, turn, err := m.normalize()
		if err != nil {
			return "?"
		}
		return cubeRotationLetter(axis) + turnSuffix(turn)
	case m.layer.kind == layerSingle && m.layer.n == 0:
		base = string(m.face)
	case m.layer.kind == layerSingle:
		base = strconv.Itoa(m.layer.n+1) + string(m.face)
	case m.layer.n == 1:
		base = string(m.face)
	default:
		base = strconv.Itoa(m.layer.n) + string(m.face) + "w"
	}
	return base + turnSuffix(m.turn)
}

// cubeRotationLetter follows the usual convention: x turns with R, y with
// U and z with F.
func cubeRotationLetter(a Axis) string {
	switch a {
	case AxisX:
		return "z"
	case AxisY:
		return "x"
	default:
		return "y"
	}
}

func turnSuffix(t Turn) string {
	switch t {
	case CounterClockwise:
		return "'"
	case Twice:
		return "2"
	}
	return ""
}
