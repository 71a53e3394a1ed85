package maze

import (
	"fmt"

	"github.com/katalvlaran/spanmaze/core"
	"github.com/katalvlaran/spanmaze/dijkstra"
)

// PassageGraph returns the undirected graph of open passages: one vertex
// per room (row-major) and one unit-weight edge per removed wall.
func PassageGraph(m *Maze) *core.AdjacencyGraph[Room, Passage] {
	g := core.NewAdjacencyGraph[Room, Passage]()
	for _, r := range m.Rooms() {
		g.AddVertex(r)
	}
	for _, w := range m.walls {
		if m.removed.Contains(w) {
			// walls never join a room to itself, so AddEdge cannot fail here
			_ = g.AddEdge(core.NewEdgeWithData(w.Room1, w.Room2, 1, w))
		}
	}

	return g
}

// Solve returns the rooms on a shortest route from → to, both included.
// Rooms outside the grid yield ErrRoomOutOfBounds; walled-off targets
// yield ErrNoPath.
func Solve(m *Maze, from, to Room) ([]Room, error) {
	for _, r := range []Room{from, to} {
		if !m.Contains(r) {
			return nil, fmt.Errorf("%w: %v in %dx%d", ErrRoomOutOfBounds, r, m.width, m.height)
		}
	}

	sp, err := dijkstra.Dijkstra[Room, Passage]().FindShortestPath(PassageGraph(m), from, to)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	if !sp.Exists() {
		return nil, fmt.Errorf("%w: %v to %v", ErrNoPath, from, to)
	}

	return sp.Vertices(), nil
}
