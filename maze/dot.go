package maze

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts the open passages of m to an undirected Graphviz graph.
// Each room becomes a node labelled "x,y"; passages along path are drawn
// bold in a highlight colour. Rooms are emitted row-major so the output is
// stable for a given maze.
func ToDOT(m *Maze, path []Room) string {
	onPath := make(map[Wall]bool, len(path))
	for i := 1; i < len(path); i++ {
		onPath[NewWall(path[i-1], path[i])] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph maze {\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=10];\n")
	buf.WriteString("\n")
	for _, r := range m.Rooms() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", nodeID(r), fmt.Sprintf("%d,%d", r.X, r.Y))
	}

	buf.WriteString("\n")
	for _, w := range m.walls {
		if !m.removed.Contains(w) {
			continue
		}
		if onPath[w] {
			fmt.Fprintf(&buf, "  %q -- %q [color=\"#2aa198\", penwidth=3];\n", nodeID(w.Room1), nodeID(w.Room2))
		} else {
			fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(w.Room1), nodeID(w.Room2))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(r Room) string { return fmt.Sprintf("r%d_%d", r.X, r.Y) }

// RenderSVG lays out a DOT graph and returns it as SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
