package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showLimit int

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Build a cube and list its cubits",
	Long: `Build a cube with --sides pieces along each edge and list every cubit on
its outer shell with its position and sticker orientation.`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVar(&showLimit, "limit", 0, "Show at most this many cubits (0 = all)")
}

func runShow(cmd *cobra.Command, args []string) error {
	c, err := newCube(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%dx%dx%d cube", sides, sides, sides)))
	fmt.Fprintf(out, "Cubits: %d\n\n", c.Len())
	fmt.Fprintln(out, cubitTable(c.Cubits(), showLimit))
	return nil
}
