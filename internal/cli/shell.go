package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxncube"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Turn a cube interactively",
	Long: `Start an interactive session on a cube with --sides pieces per edge.

Keys:
  u d r l f b   - Turn that face clockwise at the selected depth
  U D R L F B   - Turn that face counter-clockwise
  x y z         - Rotate the whole cube with R, U or F (X Y Z reverse)
  0-9           - Select the layer depth for face turns
  w             - Toggle wide turns (all layers up to the depth)
  backspace     - Undo the last move
  ctrl+r        - Reset the cube
  t             - Toggle the cubit table
  q/Esc         - Quit`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	c, err := newCube(cmd)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newShellModel(c), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("shell error: %w", err)
	}
	return nil
}

// Shell model
type shellModel struct {
	cube      *nxncube.Cube
	depth     int
	wide      bool
	showTable bool
	status    string
	err       error
	quitting  bool
}

func newShellModel(c *nxncube.Cube) *shellModel {
	return &shellModel{cube: c}
}

// faceKeys maps lower-case keys to faces; upper case turns the other way.
var faceKeys = map[rune]nxncube.Face{
	'u': nxncube.FaceU,
	'd': nxncube.FaceD,
	'r': nxncube.FaceR,
	'l': nxncube.FaceL,
	'f': nxncube.FaceF,
	'b': nxncube.FaceB,
}

// cubeKeys follow the usual x/y/z convention: x with R, y with U, z with F.
var cubeKeys = map[rune]nxncube.Axis{
	'x': nxncube.AxisY,
	'y': nxncube.AxisZ,
	'z': nxncube.AxisX,
}

func (m *shellModel) Init() tea.Cmd {
	return nil
}

func (m *shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "backspace":
		undone, err := m.cube.Undo()
		m.setResult(fmt.Sprintf("Undid %s", undone), err)
		return m, nil

	case "ctrl+r":
		m.cube.Reset()
		m.setResult("Reset", nil)
		return m, nil

	case "t":
		m.showTable = !m.showTable
		return m, nil

	case "w":
		m.wide = !m.wide
		return m, nil
	}

	if key.Type != tea.KeyRunes || len(key.Runes) != 1 {
		return m, nil
	}
	r := key.Runes[0]

	if r >= '0' && r <= '9' {
		d := int(r - '0')
		if d >= m.cube.Sides() {
			m.setResult("", fmt.Errorf("depth %d out of range for %d sides", d, m.cube.Sides()))
			return m, nil
		}
		m.depth = d
		m.setResult(fmt.Sprintf("Depth %d", d), nil)
		return m, nil
	}

	turn := nxncube.Clockwise
	lower := r
	if r >= 'A' && r <= 'Z' {
		turn = nxncube.CounterClockwise
		lower = r - 'A' + 'a'
	}

	var move nxncube.Move
	if face, ok := faceKeys[lower]; ok {
		layer := nxncube.Single(m.depth)
		if m.wide {
			layer = nxncube.Multiple(m.depth + 1)
		}
		move = nxncube.ForFace(face, layer, turn)
	} else if axis, ok := cubeKeys[lower]; ok {
		move = nxncube.ForCube(axis, turn)
	} else {
		return m, nil
	}

	m.setResult(fmt.Sprintf("Turned %s", move), m.cube.Rotate(move))
	return m, nil
}

func (m *shellModel) setResult(status string, err error) {
	m.err = err
	if err != nil {
		m.status = ""
		return
	}
	m.status = status
}

func (m *shellModel) View() string {
	if m.quitting {
		return "Session ended.\n"
	}

	var b strings.Builder
	n := m.cube.Sides()

	b.WriteString(titleStyle.Render(fmt.Sprintf("nxncube %dx%dx%d", n, n, n)))
	b.WriteString("\n\n")

	mode := "single"
	if m.wide {
		mode = "wide"
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("Depth %d (%s)  Cubits %d", m.depth, mode, m.cube.Len())))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("State: %s\n", solvedLabel(m.cube)))

	moves := m.cube.Moves()
	b.WriteString(fmt.Sprintf("Moves: %d\n", len(moves)))
	if len(moves) > 0 {
		b.WriteString(moveStyle.Render(formatMoves(moves, 20)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	if m.showTable {
		b.WriteString("\n")
		b.WriteString(cubitTable(m.cube.Cubits(), 0))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("udrlfb=turn  UDRLFB=reverse  xyz=cube  0-9=depth  w=wide  bksp=undo  t=table  q=quit"))
	b.WriteString("\n")

	return b.String()
}
