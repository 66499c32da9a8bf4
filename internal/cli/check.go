package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxncube"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the move model on a cube size",
	Long: `Run every face, layer and turn through the move model on a cube with
--sides pieces per edge and verify that:

  - four clockwise quarter turns restore the cube
  - two half turns restore the cube
  - a move followed by its inverse restores the cube
  - turning a face clockwise equals turning the same layer counter-clockwise
    from the opposite face
  - cubits stay on the shell with a proper rotation as orientation`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkResult records the outcome of one property over every move tried.
type checkResult struct {
	name     string
	runs     int
	failures []string
}

func (r *checkResult) fail(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func runCheck(cmd *cobra.Command, args []string) error {
	if _, err := newCube(cmd); err != nil {
		return err
	}

	results, err := runChecks(sides)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Checking %dx%dx%d cube", sides, sides, sides)))
	fmt.Fprintln(out)

	failed := 0
	for _, r := range results {
		if len(r.failures) == 0 {
			fmt.Fprintf(out, "  %s %s (%d moves)\n", solvedStyle.Render("PASS"), r.name, r.runs)
			continue
		}
		failed++
		fmt.Fprintf(out, "  %s %s (%d of %d moves)\n", errorStyle.Render("FAIL"), r.name, len(r.failures), r.runs)
		for _, f := range r.failures {
			verbosef(cmd, "    %s", f)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}
	return nil
}

// runChecks exercises the move model on a cube with n sides.
func runChecks(n int) ([]checkResult, error) {
	fresh, err := nxncube.New(n)
	if err != nil {
		return nil, err
	}

	fourCycle := checkResult{name: "quarter turn x 4 is identity"}
	twoCycle := checkResult{name: "half turn x 2 is identity"}
	inverse := checkResult{name: "move then inverse is identity"}
	opposite := checkResult{name: "opposite face turns agree"}
	shell := checkResult{name: "cubits stay on the shell"}

	turns := []nxncube.Turn{nxncube.Clockwise, nxncube.CounterClockwise, nxncube.Twice}
	for _, face := range nxncube.Faces() {
		for depth := 0; depth < n; depth++ {
			cw := nxncube.ForFace(face, nxncube.Single(depth), nxncube.Clockwise)
			c := fresh.Clone()
			for i := 0; i < 4; i++ {
				if err := c.Rotate(cw); err != nil {
					return nil, err
				}
			}
			fourCycle.runs++
			if !c.Equal(fresh) {
				fourCycle.fail("%s x 4", cw)
			}

			half := nxncube.ForFace(face, nxncube.Single(depth), nxncube.Twice)
			c = fresh.Clone()
			if err := c.Apply(half, half); err != nil {
				return nil, err
			}
			twoCycle.runs++
			if !c.Equal(fresh) {
				twoCycle.fail("%s x 2", half)
			}

			a := fresh.Clone()
			b := fresh.Clone()
			mirror := nxncube.ForFace(face.Opposite(), nxncube.Single(n-1-depth), nxncube.CounterClockwise)
			if err := a.Rotate(cw); err != nil {
				return nil, err
			}
			if err := b.Rotate(mirror); err != nil {
				return nil, err
			}
			opposite.runs++
			if !a.Equal(b) {
				opposite.fail("%s vs %s", cw, mirror)
			}

			for _, layer := range []nxncube.Layer{nxncube.Single(depth), nxncube.Multiple(depth + 1)} {
				for _, turn := range turns {
					m := nxncube.ForFace(face, layer, turn)
					turned := fresh.Clone()
					if err := turned.Rotate(m); err != nil {
						return nil, err
					}

					shell.runs++
					if bad, ok := offShell(turned); !ok {
						shell.fail("%s moved a cubit to %v", m, bad)
					}

					if err := turned.Rotate(m.Inverse()); err != nil {
						return nil, err
					}
					inverse.runs++
					if !turned.Equal(fresh) {
						inverse.fail("%s then %s", m, m.Inverse())
					}
				}
			}
		}
	}

	return []checkResult{fourCycle, twoCycle, inverse, opposite, shell}, nil
}

// offShell returns the first cubit position that is off the shell or whose
// orientation is not a proper rotation.
func offShell(c *nxncube.Cube) (nxncube.Vector, bool) {
	fresh, err := nxncube.New(c.Sides())
	if err != nil {
		return nxncube.Vector{}, false
	}
	onShell := make(map[nxncube.Vector]bool, fresh.Len())
	for _, cb := range fresh.Cubits() {
		onShell[cb.Position()] = true
	}

	for _, cb := range c.Cubits() {
		r := cb.Rotation()
		if !onShell[cb.Position()] || !r.IsOrthogonal() || r.Det() != 1 {
			return cb.Position(), false
		}
	}
	return nxncube.Vector{}, true
}
