package maze

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	mapset "github.com/deckarep/golang-set/v2"
)

const (
	cellOpen  = "   "
	cellPath  = " * "
	wallHoriz = "---"
	wallVert  = "|"
	corner    = "+"
)

var (
	styleWall = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	stylePath = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
)

// TextOptions controls RenderText.
type TextOptions struct {
	// Path rooms are marked with an asterisk.
	Path []Room
	// Styled colours walls and path markers with ANSI escapes.
	Styled bool
}

// RenderText draws m as ASCII art, three characters per room:
//
//	+---+---+
//	| *   * |
//	+---+   +
//	|     * |
//	+---+---+
func RenderText(w io.Writer, m *Maze, opts TextOptions) error {
	onPath := mapset.NewThreadUnsafeSet(opts.Path...)

	wall := func(s string) string { return s }
	mark := wall
	if opts.Styled {
		wall = func(s string) string { return styleWall.Render(s) }
		mark = func(s string) string { return stylePath.Render(s) }
	}

	bw := bufio.NewWriter(w)
	var line strings.Builder
	for y := 0; y < m.height; y++ {
		line.Reset()
		for x := 0; x < m.width; x++ {
			line.WriteString(wall(corner))
			if y > 0 && m.Open(Room{X: x, Y: y - 1}, Room{X: x, Y: y}) {
				line.WriteString(cellOpen)
			} else {
				line.WriteString(wall(wallHoriz))
			}
		}
		line.WriteString(wall(corner))
		line.WriteByte('\n')

		for x := 0; x < m.width; x++ {
			here := Room{X: x, Y: y}
			if x > 0 && m.Open(Room{X: x - 1, Y: y}, here) {
				line.WriteByte(' ')
			} else {
				line.WriteString(wall(wallVert))
			}
			if onPath.Contains(here) {
				line.WriteString(mark(cellPath))
			} else {
				line.WriteString(cellOpen)
			}
		}
		line.WriteString(wall(wallVert))
		line.WriteByte('\n')

		if _, err := bw.WriteString(line.String()); err != nil {
			return err
		}
	}

	line.Reset()
	for x := 0; x < m.width; x++ {
		line.WriteString(wall(corner))
		line.WriteString(wall(wallHoriz))
	}
	line.WriteString(wall(corner))
	line.WriteByte('\n')
	if _, err := bw.WriteString(line.String()); err != nil {
		return err
	}

	return bw.Flush()
}
