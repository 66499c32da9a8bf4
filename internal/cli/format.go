package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/SeamusWaldron/nxncube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	movedCellStyle = cellStyle.
			Foreground(lipgloss.Color("82"))
)

// cubitTable renders cubits as a table: home, current position and the
// current facing of the stickers that started on +X, +Y and +Z. Cubits that
// have left their home are highlighted. limit <= 0 shows every row.
func cubitTable(cubits []nxncube.Cubit, limit int) string {
	shown := cubits
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	moved := make(map[int]bool, len(shown))
	rows := make([][]string, 0, len(shown))
	for i, cb := range shown {
		o := cb.Orientation()
		moved[i] = cb.Position() != cb.Home() || o != [3]nxncube.Vector{nxncube.UnitX, nxncube.UnitY, nxncube.UnitZ}
		rows = append(rows, []string{
			strconv.Itoa(i),
			cb.Home().String(),
			cb.Position().String(),
			facing(o[0]),
			facing(o[1]),
			facing(o[2]),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(statusStyle).
		Headers("#", "HOME", "POSITION", "+X", "+Y", "+Z").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case moved[row]:
				return movedCellStyle
			default:
				return cellStyle
			}
		})

	out := t.Render()
	if len(shown) < len(cubits) {
		out += "\n" + statusStyle.Render(fmt.Sprintf("... %d more cubits", len(cubits)-len(shown)))
	}
	return out
}

// facing names a signed unit vector, e.g. "+X" or "-Z".
func facing(v nxncube.Vector) string {
	switch v {
	case nxncube.UnitX:
		return "+X"
	case nxncube.UnitX.Scale(-1):
		return "-X"
	case nxncube.UnitY:
		return "+Y"
	case nxncube.UnitY.Scale(-1):
		return "-Y"
	case nxncube.UnitZ:
		return "+Z"
	case nxncube.UnitZ.Scale(-1):
		return "-Z"
	default:
		return v.String()
	}
}

// formatMoves formats a slice of moves as a space-separated string, keeping
// only the last keep moves.
func formatMoves(moves []nxncube.Move, keep int) string {
	if len(moves) == 0 {
		return ""
	}

	start := 0
	prefix := ""
	if keep > 0 && len(moves) > keep {
		start = len(moves) - keep
		prefix = "... "
	}

	parts := make([]string, 0, len(moves)-start)
	for _, m := range moves[start:] {
		parts = append(parts, m.String())
	}
	return prefix + strings.Join(parts, " ")
}

func solvedLabel(c *nxncube.Cube) string {
	if c.IsSolved() {
		return solvedStyle.Render("SOLVED")
	}
	return statusStyle.Render("scrambled")
}

// parseFace accepts a face letter or its name.
func parseFace(s string) (nxncube.Face, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up", "top":
		return nxncube.FaceU, nil
	case "d", "down", "bottom":
		return nxncube.FaceD, nil
	case "r", "right":
		return nxncube.FaceR, nil
	case "l", "left":
		return nxncube.FaceL, nil
	case "f", "front":
		return nxncube.FaceF, nil
	case "b", "back":
		return nxncube.FaceB, nil
	}
	return "", fmt.Errorf("unknown face %q (want U, D, R, L, F or B)", s)
}

// parseTurn accepts cw, ccw or 2 and a few common spellings.
func parseTurn(s string) (nxncube.Turn, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cw", "clockwise", "1", "":
		return nxncube.Clockwise, nil
	case "ccw", "counterclockwise", "counter-clockwise", "'", "-1", "prime":
		return nxncube.CounterClockwise, nil
	case "2", "twice", "180", "double":
		return nxncube.Twice, nil
	}
	return 0, fmt.Errorf("unknown turn %q (want cw, ccw or 2)", s)
}

// parseAxis accepts the canonical axis names.
func parseAxis(s string) (nxncube.Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return nxncube.AxisX, nil
	case "y":
		return nxncube.AxisY, nil
	case "z":
		return nxncube.AxisZ, nil
	}
	return 0, fmt.Errorf("unknown axis %q (want x, y or z)", s)
}
