// Package maze carves perfect mazes on a rectangular grid.
//
// A Maze starts with a wall between every pair of orthogonal neighbours.
// A Carver picks walls to knock down; KruskalCarver picks the walls of a
// minimum spanning tree of the room graph under random weights, so every
// room ends up reachable from every other along exactly one route.
//
// Typical use:
//
//	m, _ := maze.NewGridMaze(8, 5)
//	_ = maze.Carve(m, maze.NewKruskalCarver(maze.NewRand(42)))
//	path, _ := maze.Solve(m, maze.Room{}, maze.Room{X: 7, Y: 4})
//	_ = maze.RenderText(os.Stdout, m, maze.TextOptions{Path: path})
//
// Randomness is injected: pass a *rand.Rand built with NewRand(seed) to get
// reproducible output. The spanning-tree algorithm is pluggable with
// WithFinder, e.g. prim_kruskal.Prim for a different texture.
//
// ToDOT and RenderSVG export the passage graph for Graphviz; RenderSVG needs
// no system Graphviz install.
package maze
