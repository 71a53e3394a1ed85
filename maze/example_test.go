package maze_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/spanmaze/maze"
)

// ExampleSolve walks a hand-carved 2x2 maze and prints the route.
func ExampleSolve() {
	m, _ := maze.NewGridMaze(2, 2)
	_ = m.RemoveWall(maze.NewWall(maze.Room{X: 0, Y: 0}, maze.Room{X: 1, Y: 0}))
	_ = m.RemoveWall(maze.NewWall(maze.Room{X: 1, Y: 0}, maze.Room{X: 1, Y: 1}))
	_ = m.RemoveWall(maze.NewWall(maze.Room{X: 1, Y: 1}, maze.Room{X: 0, Y: 1}))

	path, _ := maze.Solve(m, maze.Room{X: 0, Y: 0}, maze.Room{X: 0, Y: 1})
	fmt.Println(path)
	_ = maze.RenderText(os.Stdout, m, maze.TextOptions{Path: path[:3]})
	// Output:
	// [(0,0) (1,0) (1,1) (0,1)]
	// +---+---+
	// | *   * |
	// +---+   +
	// |     * |
	// +---+---+
}

// ExampleKruskalCarver carves a random maze; any seed gives a perfect maze.
func ExampleKruskalCarver() {
	m, _ := maze.NewGridMaze(10, 6)
	if err := maze.Carve(m, maze.NewKruskalCarver(maze.NewRand(2024))); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.Removed().Cardinality())
	// Output: 59
}
