// Package cli implements the command-line interface for nxncube.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxncube"
)

const version = "0.1.0"

var (
	// Global flags
	sides   int
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "nxncube",
	Short: "NxNxN cube model",
	Long: `nxncube - Build an NxNxN twisty cube of any size and turn its layers.

Every piece on the outer shell is tracked by its lattice position and the
direction its stickers face. Faces are U (top, +Z), D (bottom, -Z),
R (right, +Y), L (left, -Y), F (front, +X) and B (back, -X).`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&sides, "sides", "n", 3, "Number of pieces along each edge")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// newCube builds a cube from the --sides flag.
func newCube(cmd *cobra.Command) (*nxncube.Cube, error) {
	c, err := nxncube.New(sides)
	if err != nil {
		return nil, fmt.Errorf("failed to build cube: %w", err)
	}
	verbosef(cmd, "Built %dx%dx%d cube with %d cubits", sides, sides, sides, c.Len())
	return c, nil
}

// verbosef prints a diagnostic line to stderr when --verbose is set.
func verbosef(cmd *cobra.Command, format string, args ...any) {
	if !verbose {
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), statusStyle.Render(fmt.Sprintf(format, args...)))
}
