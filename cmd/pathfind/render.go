package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathfinder/gridgraph"
)

// Cell glyphs.
const (
	glyphWall  = "#"
	glyphFloor = "."
	glyphPath  = "*"
	glyphStart = "S"
	glyphGoal  = "G"
)

type gridStyles struct {
	wall, floor, path, end, frame lipgloss.Style
}

// newGridStyles binds the palette to r, which decides whether colors are emitted.
func newGridStyles(r *lipgloss.Renderer) gridStyles {
	return gridStyles{
		wall:  r.NewStyle().Foreground(lipgloss.Color("#6c7a89")),
		floor: r.NewStyle().Foreground(lipgloss.Color("#d6dae0")),
		path:  r.NewStyle().Foreground(lipgloss.Color("#8BC34A")).Bold(true),
		end:   r.NewStyle().Foreground(lipgloss.Color("#2196F3")).Bold(true),
		frame: r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// renderGrid draws gg with path marked on it, one character per cell.
func renderGrid(r *lipgloss.Renderer, gg *gridgraph.GridGraph, path []string) string {
	st := newGridStyles(r)
	marks := make(map[string]string, len(path))
	for _, label := range path {
		marks[label] = st.path.Render(glyphPath)
	}
	if len(path) > 0 {
		marks[path[0]] = st.end.Render(glyphStart)
		marks[path[len(path)-1]] = st.end.Render(glyphGoal)
	}

	rows := make([]string, gg.Height)
	for y := 0; y < gg.Height; y++ {
		var b strings.Builder
		for x := 0; x < gg.Width; x++ {
			mark, marked := marks[gridgraph.Label(x, y)]
			switch {
			case gg.Obstacle(x, y):
				b.WriteString(st.wall.Render(glyphWall))
			case marked:
				b.WriteString(mark)
			default:
				b.WriteString(st.floor.Render(glyphFloor))
			}
		}
		rows[y] = b.String()
	}

	return st.frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
