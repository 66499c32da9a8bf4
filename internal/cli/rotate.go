package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxncube"
)

var (
	rotateFace   string
	rotateAxis   string
	rotateTurn   string
	rotateDepth  int
	rotateLayers int
	rotateTimes  int
	rotateLimit  int
	rotateOnly   bool
)

var rotateCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Turn a layer or the whole cube",
	Long: `Build a fresh cube, apply one move --times times and list the result.

Usage:
  nxncube rotate --face U                    # Top face clockwise
  nxncube rotate --face B --turn ccw         # Back face counter-clockwise
  nxncube rotate -n 5 --face R --depth 2     # Middle slice of a 5x5x5
  nxncube rotate -n 4 --face F --layers 2    # Two outer front layers
  nxncube rotate --axis z --turn 2           # Whole cube half turn about Z
  nxncube rotate --face U --times 4          # Four turns bring it back`,
	RunE: runRotate,
}

func init() {
	rootCmd.AddCommand(rotateCmd)
	rotateCmd.Flags().StringVarP(&rotateFace, "face", "f", "", "Face to turn: U, D, R, L, F or B")
	rotateCmd.Flags().StringVarP(&rotateAxis, "axis", "a", "", "Rotate the whole cube about x, y or z instead of turning a face")
	rotateCmd.Flags().StringVarP(&rotateTurn, "turn", "t", "cw", "Turn: cw, ccw or 2")
	rotateCmd.Flags().IntVarP(&rotateDepth, "depth", "d", 0, "Single layer to turn, 0 = outermost")
	rotateCmd.Flags().IntVarP(&rotateLayers, "layers", "l", 0, "Turn this many layers from the face inward")
	rotateCmd.Flags().IntVar(&rotateTimes, "times", 1, "Apply the move this many times")
	rotateCmd.Flags().IntVar(&rotateLimit, "limit", 0, "Show at most this many cubits (0 = all)")
	rotateCmd.Flags().BoolVar(&rotateOnly, "affected", false, "Only list the cubits the move turned")
	rotateCmd.MarkFlagsMutuallyExclusive("face", "axis")
	rotateCmd.MarkFlagsMutuallyExclusive("depth", "layers")
	rotateCmd.MarkFlagsMutuallyExclusive("axis", "depth")
	rotateCmd.MarkFlagsMutuallyExclusive("axis", "layers")
}

// moveFromFlags builds the move described by the rotate flags.
func moveFromFlags(cmd *cobra.Command) (nxncube.Move, error) {
	turn, err := parseTurn(rotateTurn)
	if err != nil {
		return nxncube.Move{}, err
	}

	if rotateAxis != "" {
		axis, err := parseAxis(rotateAxis)
		if err != nil {
			return nxncube.Move{}, err
		}
		return nxncube.ForCube(axis, turn), nil
	}

	if rotateFace == "" {
		return nxncube.Move{}, fmt.Errorf("one of --face or --axis is required")
	}
	face, err := parseFace(rotateFace)
	if err != nil {
		return nxncube.Move{}, err
	}

	layer := nxncube.Single(rotateDepth)
	if cmd.Flags().Changed("layers") {
		layer = nxncube.Multiple(rotateLayers)
	}
	return nxncube.ForFace(face, layer, turn), nil
}

func runRotate(cmd *cobra.Command, args []string) error {
	m, err := moveFromFlags(cmd)
	if err != nil {
		return err
	}
	if rotateTimes < 1 {
		return fmt.Errorf("--times must be at least 1, got %d", rotateTimes)
	}

	c, err := newCube(cmd)
	if err != nil {
		return err
	}

	affected, err := c.Affected(m)
	if err != nil {
		return fmt.Errorf("cannot apply %s: %w", m, err)
	}
	verbosef(cmd, "Move %s turns %d of %d cubits (matrix axis %s)", m, len(affected), c.Len(), m.Axis())

	for i := 0; i < rotateTimes; i++ {
		if err := c.Rotate(m); err != nil {
			return fmt.Errorf("rotate failed: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%dx%dx%d cube", sides, sides, sides)))
	fmt.Fprintf(out, "Moves: %s\n", moveStyle.Render(formatMoves(c.Moves(), 20)))
	fmt.Fprintf(out, "Turned: %d cubits\n", len(affected))
	fmt.Fprintf(out, "State: %s\n\n", solvedLabel(c))

	cubits := c.Cubits()
	if rotateOnly {
		turned := make(map[nxncube.Vector]bool, len(affected))
		for _, cb := range affected {
			turned[cb.Home()] = true
		}
		var only []nxncube.Cubit
		for _, cb := range cubits {
			if turned[cb.Home()] {
				only = append(only, cb)
			}
		}
		cubits = only
	}
	fmt.Fprintln(out, cubitTable(cubits, rotateLimit))
	return nil
}
