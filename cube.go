package nxncube

import "fmt"

// Cube is an NxNxN puzzle made of the cubits on its outer shell.
//
// Build cubes with New. The zero value is an empty cube with no cubits and
// default options. A Cube is not safe for concurrent use; distinct cubes
// share no state.
type Cube struct {
	lat     lattice
	cubits  []Cubit
	cfg     *config
	history []Move
}

// New builds a cube with the given number of pieces along each edge, with
// every cubit in the standard orientation. It fails with an
// *InvalidSidesError if sides < 2.
func New(sides int, opts ...Option) (*Cube, error) {
	if sides < 2 {
		return nil, &InvalidSidesError{Sides: sides}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	lat := newLattice(sides)
	c := &Cube{
		lat:    lat,
		cubits: make([]Cubit, 0, lat.shellSize()),
		cfg:    cfg,
	}
	for i := 0; i < lat.size(); i++ {
		v := lat.coords(i)
		if lat.onShell(v) {
			c.cubits = append(c.cubits, newCubit(v))
		}
	}
	return c, nil
}

// New2x2x2 builds a 2x2x2 cube.
func New2x2x2(opts ...Option) *Cube {
	return mustNew(2, opts...)
}

// New3x3x3 builds a 3x3x3 cube.
func New3x3x3(opts ...Option) *Cube {
	return mustNew(3, opts...)
}

func mustNew(sides int, opts ...Option) *Cube {
	c, err := New(sides, opts...)
	if err != nil {
		panic(fmt.Sprintf("nxncube: %d is a valid number of sides: %v", sides, err))
	}
	return c
}

// Sides returns the number of pieces along each edge.
func (c *Cube) Sides() int {
	return c.lat.sides
}

// Len returns the number of cubits, sides³ - (sides-2)³.
func (c *Cube) Len() int {
	return len(c.cubits)
}

// Cubits returns a copy of the cubits in construction order.
func (c *Cube) Cubits() []Cubit {
	out := make([]Cubit, len(c.cubits))
	copy(out, c.cubits)
	return out
}

// CubitAt returns the cubit currently at pos, if any.
func (c *Cube) CubitAt(pos Vector) (Cubit, bool) {
	if !c.lat.contains(pos) {
		return Cubit{}, false
	}
	for _, cb := range c.cubits {
		if cb.position == pos {
			return cb, true
		}
	}
	return Cubit{}, false
}

// Rotate applies a move to the cube in place. The layer selector is checked
// against the cube first; on error nothing is changed.
func (c *Cube) Rotate(m Move) error {
	sel, rot, err := c.resolve(m)
	if err != nil {
		return err
	}
	// Multiple(0) selects no layers and is not recorded.
	if n, ok := m.layer.IsMultiple(); ok && n == 0 {
		return nil
	}
	c.turn(sel, rot)
	c.record(m)
	return nil
}

// turn rotates every cubit inside sel by rot.
func (c *Cube) turn(sel box, rot Matrix3) {
	for i := range c.cubits {
		if sel.contains(c.cubits[i].position) {
			c.cubits[i].Rotate(rot)
		}
	}
}

// Apply validates every move, then applies them in order. If any move is
// invalid the cube is left unchanged.
func (c *Cube) Apply(moves ...Move) error {
	for i, m := range moves {
		if _, _, err := c.resolve(m); err != nil {
			return fmt.Errorf("move %d (%s): %w", i, m, err)
		}
	}
	for _, m := range moves {
		if err := c.Rotate(m); err != nil {
			return err
		}
	}
	return nil
}

// Affected returns the cubits a move would turn, as they are now.
func (c *Cube) Affected(m Move) ([]Cubit, error) {
	sel, _, err := c.resolve(m)
	if err != nil {
		return nil, err
	}
	var out []Cubit
	for _, cb := range c.cubits {
		if sel.contains(cb.position) {
			out = append(out, cb)
		}
	}
	return out, nil
}

// box is an axis-aligned region of lattice points.
type box [3]span

func (b box) contains(v Vector) bool {
	for a := AxisX; a <= AxisZ; a++ {
		if !b[a].contains(v.At(a)) {
			return false
		}
	}
	return true
}

// resolve validates m and returns the region it turns and its matrix.
func (c *Cube) resolve(m Move) (box, Matrix3, error) {
	if !m.layer.fits(c.lat.sides) {
		return box{}, Matrix3{}, &MoveLayerError{Layer: m.layer, Sides: c.lat.sides}
	}
	rot, err := m.RotationMatrix()
	if err != nil {
		return box{}, Matrix3{}, err
	}

	// Depth is measured from the face the move names, not the canonical one.
	axis, sign := m.dir.canonical()
	sel := box{c.lat.full(), c.lat.full(), c.lat.full()}
	sel[axis] = c.lat.layerSpan(sign, m.layer)
	return sel, rot, nil
}

// settings returns the cube's options, or the defaults for a zero Cube.
func (c *Cube) settings() *config {
	if c.cfg == nil {
		return defaultConfig()
	}
	return c.cfg
}

func (c *Cube) record(m Move) {
	cfg := c.settings()
	if !cfg.moveHistory {
		return
	}
	c.history = append(c.history, m)
	if limit := cfg.historyLimit; limit > 0 && len(c.history) > limit {
		c.history = append(c.history[:0:0], c.history[len(c.history)-limit:]...)
	}
}

// Moves returns a copy of the applied moves, oldest first.
func (c *Cube) Moves() []Move {
	out := make([]Move, len(c.history))
	copy(out, c.history)
	return out
}

// Undo reverts the most recent move and returns it. It returns
// ErrNoHistory if there is nothing to undo or history is disabled.
func (c *Cube) Undo() (Move, error) {
	if len(c.history) == 0 {
		return Move{}, ErrNoHistory
	}
	last := c.history[len(c.history)-1]
	sel, rot, err := c.resolve(last.Inverse())
	if err != nil {
		return Move{}, err
	}
	c.turn(sel, rot)
	c.history = c.history[:len(c.history)-1]
	return last, nil
}

// Reset returns every cubit to its home position and standard orientation
// and clears the history.
func (c *Cube) Reset() {
	for i := range c.cubits {
		c.cubits[i] = newCubit(c.cubits[i].home)
	}
	c.history = nil
}

// Clone creates a deep copy of the cube, history included.
func (c *Cube) Clone() *Cube {
	cfg := *c.settings()
	return &Cube{
		lat:     c.lat,
		cubits:  c.Cubits(),
		cfg:     &cfg,
		history: c.Moves(),
	}
}

// Equal reports whether both cubes have the same size and the same cubits,
// position and orientation, in the same order.
func (c *Cube) Equal(o *Cube) bool {
	if c.lat != o.lat || len(c.cubits) != len(o.cubits) {
		return false
	}
	for i := range c.cubits {
		if !c.cubits[i].Equal(o.cubits[i]) {
			return false
		}
	}
	return true
}

// IsSolved returns true if every outer face shows a single colour: all
// cubits on a face present the sticker that started on the same side. Turned
// centres and swapped identical centre pieces still count as solved, and a
// whole-cube rotation keeps a solved cube solved.
func (c *Cube) IsSolved() bool {
	for a := AxisX; a <= AxisZ; a++ {
		for _, sign := range [2]int{1, -1} {
			if !c.faceSolved(a, sign) {
				return false
			}
		}
	}
	return true
}

// faceSolved checks the face on the sign side of axis a.
func (c *Cube) faceSolved(a Axis, sign int) bool {
	normal := unit(a).Scale(sign)
	edge := sign * c.lat.offset

	var want Vector
	seen := false
	for _, cb := range c.cubits {
		if cb.position.At(a) != edge {
			continue
		}
		got := cb.Sticker(normal)
		if !seen {
			want, seen = got, true
			continue
		}
		if got != want {
			return false
		}
	}
	return true
}
