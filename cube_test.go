package nxncube

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_InvalidSides(t *testing.T) {
	for _, sides := range []int{1, 0, -3} {
		c, err := New(sides)
		require.Nil(t, c)
		require.ErrorIs(t, err, ErrInvalidSides)

		var sidesErr *InvalidSidesError
		require.True(t, errors.As(err, &sidesErr))
		require.Equal(t, sides, sidesErr.Sides)
	}
}

func TestNew2x2x2_Positions(t *testing.T) {
	c := New2x2x2()

	var want []Vector
	for z := -1; z <= 1; z += 2 {
		for x := -1; x <= 1; x += 2 {
			for y := -1; y <= 1; y += 2 {
				want = append(want, Vec(x, y, z))
			}
		}
	}

	require.Equal(t, 2, c.Sides())
	require.Equal(t, want, positions(c))
	for _, cb := range c.Cubits() {
		require.Equal(t, [3]Vector{UnitX, UnitY, UnitZ}, cb.Orientation())
	}
}

func TestNew3x3x3_Positions(t *testing.T) {
	c := New3x3x3()

	var want []Vector
	for z := -1; z <= 1; z++ {
		for x := -1; x <= 1; x++ {
			for y := -1; y <= 1; y++ {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				want = append(want, Vec(x, y, z))
			}
		}
	}

	require.Equal(t, 26, c.Len())
	require.Equal(t, want, positions(c))
}

func TestNew4x4x4_Positions(t *testing.T) {
	c, err := New(4)
	require.NoError(t, err)

	var want []Vector
	for z := -3; z <= 3; z += 2 {
		for x := -3; x <= 3; x += 2 {
			for y := -3; y <= 3; y += 2 {
				if x > -3 && x < 3 && y > -3 && y < 3 && z > -3 && z < 3 {
					continue
				}
				want = append(want, Vec(x, y, z))
			}
		}
	}
	require.Equal(t, want, positions(c))
}

func TestNew_ShellCount(t *testing.T) {
	for sides := 2; sides <= 9; sides++ {
		c, err := New(sides)
		require.NoError(t, err)

		inner := sides - 2
		require.Equal(t, sides*sides*sides-inner*inner*inner, c.Len(), "sides=%d", sides)

		lat := newLattice(sides)
		seen := make(map[Vector]bool)
		for _, cb := range c.Cubits() {
			p := cb.Position()
			require.True(t, lat.contains(p), "sides=%d: %v not on lattice", sides, p)
			require.True(t, lat.onShell(p), "sides=%d: %v not on shell", sides, p)
			require.False(t, seen[p], "sides=%d: duplicate %v", sides, p)
			seen[p] = true
		}
	}
}

func TestNew_Deterministic(t *testing.T) {
	a, err := New(5)
	require.NoError(t, err)
	require.NoError(t, a.Rotate(RotateTop(Single(0), Clockwise)))

	b, err := New(5)
	require.NoError(t, err)
	c, err := New(5)
	require.NoError(t, err)

	require.True(t, b.Equal(c))
	require.Equal(t, b.Cubits(), c.Cubits())
	require.False(t, a.Equal(b), "rotating one cube must not affect later constructions")
}

func TestRotate_TopClockwise2x2x2(t *testing.T) {
	c := New2x2x2()
	require.NoError(t, c.Rotate(ForFace(FaceU, Single(0), Clockwise)))

	cb := byHome(t, c, Vec(1, 1, 1))
	require.Equal(t, Vec(1, -1, 1), cb.Position())

	for _, home := range []Vector{Vec(1, 1, -1), Vec(-1, 1, -1), Vec(1, -1, -1), Vec(-1, -1, -1)} {
		cb := byHome(t, c, home)
		require.Equal(t, home, cb.Position())
		require.Equal(t, [3]Vector{UnitX, UnitY, UnitZ}, cb.Orientation())
	}
}

func TestRotate_LayerValidation(t *testing.T) {
	c := New3x3x3()
	fresh := New3x3x3()

	err := c.Rotate(RotateTop(Single(3), Clockwise))
	require.ErrorIs(t, err, ErrInvalidMoveLayer)
	var layerErr *MoveLayerError
	require.True(t, errors.As(err, &layerErr))
	require.Equal(t, 3, layerErr.Sides)
	require.True(t, c.Equal(fresh), "failed move must not change the cube")
	require.Empty(t, c.Moves())

	require.NoError(t, c.Rotate(RotateTop(Single(2), Clockwise)))

	require.ErrorIs(t, c.Rotate(RotateTop(Single(-1), Clockwise)), ErrInvalidMoveLayer)
	require.ErrorIs(t, c.Rotate(RotateTop(Multiple(4), Clockwise)), ErrInvalidMoveLayer)
	require.NoError(t, c.Rotate(RotateTop(Multiple(3), Clockwise)))
	require.NoError(t, c.Rotate(RotateTop(WholeCube(), Clockwise)))
}

func TestRotate_UnknownFace(t *testing.T) {
	c := New3x3x3()
	err := c.Rotate(ForFace(Face("Q"), Single(0), Clockwise))
	require.ErrorIs(t, err, ErrUnknownRotation)

	err = c.Rotate(ForFace(FaceU, Single(0), Turn(3)))
	require.ErrorIs(t, err, ErrUnknownRotation)
	require.True(t, c.IsSolved())
}

func TestAffected_Counts(t *testing.T) {
	tests := []struct {
		sides int
		move  Move
		want  int
	}{
		{2, RotateTop(Single(0), Clockwise), 4},
		{3, RotateTop(Single(0), Clockwise), 9},
		{3, RotateTop(Single(1), Clockwise), 8},
		{3, RotateBottom(Single(0), Clockwise), 9},
		{3, RotateRight(Multiple(2), Twice), 17},
		{3, ForCube(AxisX, Clockwise), 26},
		{4, RotateTop(Single(1), Clockwise), 12},
		{4, RotateTop(Multiple(2), Clockwise), 28},
		{4, RotateBack(Multiple(0), Clockwise), 0},
		{5, RotateLeft(Single(2), CounterClockwise), 16},
		{5, RotateLeft(Multiple(5), CounterClockwise), 98},
	}

	for _, tt := range tests {
		c, err := New(tt.sides)
		require.NoError(t, err)
		got, err := c.Affected(tt.move)
		require.NoError(t, err)
		require.Len(t, got, tt.want, "sides=%d move=%s", tt.sides, tt.move)
	}
}

func TestAffected_MeasuredFromNamedFace(t *testing.T) {
	c, err := New(4)
	require.NoError(t, err)

	got, err := c.Affected(RotateBack(Single(1), Clockwise))
	require.NoError(t, err)
	for _, cb := range got {
		require.Equal(t, -1, cb.Position().X)
	}

	got, err = c.Affected(RotateFront(Single(1), Clockwise))
	require.NoError(t, err)
	for _, cb := range got {
		require.Equal(t, 1, cb.Position().X)
	}
}

func TestRR_ReturnsToSolved_AllFaces(t *testing.T) {
	for sides := 2; sides <= 5; sides++ {
		for _, face := range Faces() {
			for depth := 0; depth < sides; depth++ {
				c, err := New(sides)
				require.NoError(t, err)
				m := ForFace(face, Single(depth), Clockwise)
				for i := 0; i < 4; i++ {
					require.NoError(t, c.Rotate(m))
					if i < 3 && sides > 2 {
						require.False(t, c.IsSolved(), "sides=%d %s x %d", sides, m, i+1)
					}
				}
				require.True(t, c.IsSolved(), "sides=%d: %s x 4 should return to solved", sides, m)
				require.True(t, c.Equal(mustNew(sides)))
			}
		}
	}
}

func TestR2R2_ReturnsToSolved(t *testing.T) {
	for _, face := range Faces() {
		c, err := New(4)
		require.NoError(t, err)
		m := ForFace(face, Multiple(2), Twice)
		require.NoError(t, c.Rotate(m))
		require.False(t, c.IsSolved())
		require.NoError(t, c.Rotate(m))
		require.True(t, c.Equal(mustNew(4)), "%s x 2 should return to solved", m)
	}
}

func TestMoveThenInverse_RestoresCube(t *testing.T) {
	layers := []Layer{Single(0), Single(1), Multiple(2), WholeCube()}
	turns := []Turn{Clockwise, CounterClockwise, Twice}

	for _, sides := range []int{2, 3, 4, 5} {
		for _, face := range Faces() {
			for _, layer := range layers {
				for _, turn := range turns {
					c, err := New(sides)
					require.NoError(t, err)
					require.NoError(t, c.Rotate(RotateRight(Single(0), Clockwise)))
					before := c.Clone()

					m := ForFace(face, layer, turn)
					require.NoError(t, c.Rotate(m))
					require.NoError(t, c.Rotate(m.Inverse()))
					require.True(t, c.Equal(before), "sides=%d %s then %s", sides, m, m.Inverse())
				}
			}
		}
	}
}

func TestOppositeFace_Equivalence(t *testing.T) {
	pairs := [][2]Face{{FaceD, FaceU}, {FaceL, FaceR}, {FaceB, FaceF}}

	for sides := 2; sides <= 6; sides++ {
		for _, p := range pairs {
			for depth := 0; depth < sides; depth++ {
				a, err := New(sides)
				require.NoError(t, err)
				b, err := New(sides)
				require.NoError(t, err)

				require.NoError(t, a.Rotate(ForFace(p[0], Single(depth), Clockwise)))
				require.NoError(t, b.Rotate(ForFace(p[1], Single(sides-1-depth), CounterClockwise)))
				require.True(t, a.Equal(b), "sides=%d %s%d cw vs %s%d ccw", sides, p[0], depth, p[1], sides-1-depth)
			}
		}
	}
}

func TestWholeCube_StaysSolved(t *testing.T) {
	c, err := New(4)
	require.NoError(t, err)

	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		require.NoError(t, c.Rotate(ForCube(axis, Clockwise)))
		require.True(t, c.IsSolved())
	}

	all := mustNew(4)
	require.NoError(t, all.Rotate(RotateTop(Multiple(4), Clockwise)))
	whole := mustNew(4)
	require.NoError(t, whole.Rotate(ForCube(AxisZ, Clockwise)))
	require.True(t, all.Equal(whole))
}

func TestRandomMoves_PreserveInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	turns := []Turn{Clockwise, CounterClockwise, Twice}

	for _, sides := range []int{2, 3, 4, 5} {
		c, err := New(sides)
		require.NoError(t, err)
		lat := newLattice(sides)
		start := make(map[Vector]bool)
		for _, p := range positions(c) {
			start[p] = true
		}

		var applied []Move
		for i := 0; i < 200; i++ {
			face := Faces()[rng.Intn(6)]
			var layer Layer
			if rng.Intn(2) == 0 {
				layer = Single(rng.Intn(sides))
			} else {
				layer = Multiple(rng.Intn(sides + 1))
			}
			m := ForFace(face, layer, turns[rng.Intn(3)])
			require.NoError(t, c.Rotate(m))
			applied = append(applied, m)
		}

		got := make(map[Vector]bool)
		for _, cb := range c.Cubits() {
			p := cb.Position()
			require.True(t, lat.contains(p) && lat.onShell(p), "sides=%d: %v left the shell", sides, p)
			got[p] = true

			r := cb.Rotation()
			require.True(t, r.IsOrthogonal())
			require.Equal(t, 1, r.Det())
			require.Equal(t, r.Apply(cb.Home()), p)
		}
		require.Equal(t, start, got, "sides=%d: positions must stay a permutation", sides)

		for i := len(applied) - 1; i >= 0; i-- {
			require.NoError(t, c.Rotate(applied[i].Inverse()))
		}
		require.True(t, c.Equal(mustNew(sides)), "sides=%d: reversing the scramble should solve", sides)
	}
}

func TestApply_IsAllOrNothing(t *testing.T) {
	c := New3x3x3()
	err := c.Apply(RotateTop(Single(0), Clockwise), RotateRight(Single(9), Clockwise))
	require.ErrorIs(t, err, ErrInvalidMoveLayer)
	require.True(t, c.IsSolved())
	require.Empty(t, c.Moves())

	// (R U R' U') x 6 = identity
	for i := 0; i < 6; i++ {
		require.NoError(t, c.Apply(SexyMove...))
		if i < 5 {
			require.False(t, c.IsSolved())
		}
	}
	require.True(t, c.IsSolved())
}

func TestSexyMove_6Times_AllSizes(t *testing.T) {
	for sides := 2; sides <= 5; sides++ {
		c, err := New(sides)
		require.NoError(t, err)
		for i := 0; i < 6; i++ {
			require.NoError(t, c.Apply(SexyMove...))
		}
		require.True(t, c.IsSolved(), "sides=%d", sides)
	}
}

func TestInvert_UndoesScramble(t *testing.T) {
	scramble := []Move{R, U, RPrime, UPrime, F, D, L2, B, X, RotateTop(Single(1), Twice), Z}
	c, err := New(4)
	require.NoError(t, err)

	require.NoError(t, c.Apply(scramble...))
	require.False(t, c.IsSolved())
	require.NoError(t, c.Apply(Invert(scramble)...))
	require.True(t, c.IsSolved())
	require.True(t, c.Equal(mustNew(4)))
}

func TestUndo(t *testing.T) {
	c := New3x3x3()
	_, err := c.Undo()
	require.ErrorIs(t, err, ErrNoHistory)

	u := RotateTop(Single(0), Clockwise)
	r2 := RotateRight(Multiple(2), Twice)
	require.NoError(t, c.Apply(u, r2))
	require.Equal(t, []Move{u, r2}, c.Moves())

	m, err := c.Undo()
	require.NoError(t, err)
	require.Equal(t, r2, m)
	m, err = c.Undo()
	require.NoError(t, err)
	require.Equal(t, u, m)

	require.True(t, c.Equal(New3x3x3()))
	_, err = c.Undo()
	require.ErrorIs(t, err, ErrNoHistory)
}

func TestHistoryOptions(t *testing.T) {
	c := New3x3x3(WithMoveHistory(false))
	require.NoError(t, c.Rotate(RotateTop(Single(0), Clockwise)))
	require.Empty(t, c.Moves())
	_, err := c.Undo()
	require.ErrorIs(t, err, ErrNoHistory)

	c = New3x3x3(WithHistoryLimit(2))
	moves := []Move{
		RotateTop(Single(0), Clockwise),
		RotateFront(Single(0), Clockwise),
		RotateLeft(Single(0), Twice),
	}
	require.NoError(t, c.Apply(moves...))
	require.Equal(t, moves[1:], c.Moves())
}

func TestClone_IsIndependent(t *testing.T) {
	c := New3x3x3()
	require.NoError(t, c.Rotate(RotateFront(Single(0), Clockwise)))

	clone := c.Clone()
	require.True(t, clone.Equal(c))
	require.Equal(t, c.Moves(), clone.Moves())

	require.NoError(t, clone.Rotate(RotateTop(Single(0), Clockwise)))
	require.False(t, clone.Equal(c))
	require.Len(t, c.Moves(), 1)
}

func TestReset(t *testing.T) {
	c, err := New(4)
	require.NoError(t, err)
	require.NoError(t, c.Apply(RotateTop(Single(1), Clockwise), ForCube(AxisY, Twice)))

	c.Reset()
	require.True(t, c.Equal(mustNew(4)))
	require.Empty(t, c.Moves())
}

func TestCubitAt(t *testing.T) {
	c := New3x3x3()
	_, ok := c.CubitAt(Vec(0, 0, 0))
	require.False(t, ok)

	require.NoError(t, c.Rotate(RotateTop(Single(0), Clockwise)))
	cb, ok := c.CubitAt(Vec(1, -1, 1))
	require.True(t, ok)
	require.Equal(t, Vec(1, 1, 1), cb.Home())
}

func positions(c *Cube) []Vector {
	var out []Vector
	for _, cb := range c.Cubits() {
		out = append(out, cb.Position())
	}
	return out
}

func byHome(t *testing.T, c *Cube, home Vector) Cubit {
	t.Helper()
	for _, cb := range c.Cubits() {
		if cb.Home() == home {
			return cb
		}
	}
	t.Fatalf("no cubit built at %v", home)
	return Cubit{}
}

func TestIsSolved_TurnedCentre(t *testing.T) {
	c := New3x3x3()
	twist := []Move{U, R, L, U2, RPrime, LPrime}
	require.NoError(t, c.Apply(twist...))
	require.NoError(t, c.Apply(twist...))

	for _, cb := range c.Cubits() {
		require.Equal(t, cb.Home(), cb.Position())
	}
	centre, ok := c.CubitAt(Vec(0, 0, 1))
	require.True(t, ok)
	require.Equal(t, [3]Vector{UnitX.Scale(-1), UnitY.Scale(-1), UnitZ}, centre.Orientation())

	require.False(t, c.Equal(New3x3x3()))
	require.True(t, c.IsSolved(), "a turned centre shows the same colour")
}

func TestIsSolved_SwappedInnerCentres(t *testing.T) {
	c, err := New(4)
	require.NoError(t, err)

	var idx []int
	for i, cb := range c.cubits {
		if p := cb.position; p == Vec(1, 1, 3) || p == Vec(-1, 1, 3) {
			idx = append(idx, i)
		}
	}
	require.Len(t, idx, 2)
	a, b := idx[0], idx[1]
	c.cubits[a].position, c.cubits[b].position = c.cubits[b].position, c.cubits[a].position

	require.False(t, c.Equal(mustNew(4)))
	require.True(t, c.IsSolved())
}

func TestIsSolved_TwistedCorner(t *testing.T) {
	c := New3x3x3()
	for i, cb := range c.cubits {
		if cb.position == Vec(1, 1, 1) {
			c.cubits[i].orientation = [3]Vector{UnitY, UnitZ, UnitX}
		}
	}
	require.False(t, c.IsSolved())
}

func TestIsSolved_AfterSliceTurn(t *testing.T) {
	c, err := New(5)
	require.NoError(t, err)
	require.NoError(t, c.Rotate(RotateFront(Single(2), Clockwise)))
	require.False(t, c.IsSolved())
	require.NoError(t, c.Rotate(ForCube(AxisY, Twice)))
	require.False(t, c.IsSolved())
}

func TestRotate_EmptyLayerNotRecorded(t *testing.T) {
	c := New3x3x3()
	require.NoError(t, c.Rotate(RotateTop(Multiple(0), Clockwise)))
	require.Empty(t, c.Moves())
	require.True(t, c.Equal(New3x3x3()))

	require.NoError(t, c.Apply(U, RotateBack(Multiple(0), Twice), R))
	require.Equal(t, []Move{U, R}, c.Moves())
}

func TestZeroCube(t *testing.T) {
	var z Cube
	require.NoError(t, z.Rotate(ForCube(AxisX, Clockwise)))
	require.Equal(t, 0, z.Len())
	require.Len(t, z.Moves(), 1)
	require.True(t, z.IsSolved())

	_, ok := z.CubitAt(Vec(0, 0, 0))
	require.False(t, ok)

	clone := z.Clone()
	require.True(t, clone.Equal(&z))
	_, err := z.Undo()
	require.NoError(t, err)
}
