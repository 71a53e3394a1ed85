package maze

import (
	"context"
	"fmt"

	"github.com/katalvlaran/spanmaze/bfs"
)

// Connected reports whether every room can be reached from every other
// through open passages.
func Connected(m *Maze) bool {
	res, err := bfs.BFS[Room, Passage](PassageGraph(m), Room{})
	if err != nil {
		return false
	}

	return len(res.Order) == m.width*m.height
}

// LongestRoute returns a route between two rooms that are as far apart as
// possible. It runs two breadth-first sweeps: one from the top-left room to
// find a farthest room a, one from a to find a farthest room b. On a perfect
// maze the a→b route is a longest one; on mazes with loops it is a lower
// bound. Both sweeps stop with ctx's error once ctx is done.
func LongestRoute(ctx context.Context, m *Maze) ([]Room, error) {
	g := PassageGraph(m)
	withCtx := bfs.WithContext[Room](ctx)

	first, err := bfs.BFS[Room, Passage](g, Room{}, withCtx)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	a, _ := first.Farthest()

	second, err := bfs.BFS[Room, Passage](g, a, withCtx)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	b, _ := second.Farthest()

	return second.PathTo(b)
}
