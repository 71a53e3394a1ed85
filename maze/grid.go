package maze

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Maze is a Width×Height grid of rooms. Every pair of orthogonal
// neighbours starts separated by a wall; carving removes some of them.
type Maze struct {
	width, height int
	walls         []Wall           // every candidate wall, row-major
	removed       mapset.Set[Wall] // walls knocked down so far
}

// NewGridMaze builds a fully walled maze.
// Walls are listed row by row: for each room, its east wall then its south wall.
// Complexity: O(W×H).
func NewGridMaze(width, height int) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}

	walls := make([]Wall, 0, 2*width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			here := Room{X: x, Y: y}
			if x+1 < width {
				walls = append(walls, NewWall(here, Room{X: x + 1, Y: y}))
			}
			if y+1 < height {
				walls = append(walls, NewWall(here, Room{X: x, Y: y + 1}))
			}
		}
	}

	return &Maze{
		width:   width,
		height:  height,
		walls:   walls,
		removed: mapset.NewThreadUnsafeSet[Wall](),
	}, nil
}

func (m *Maze) Width() int { return m.width }
func (m *Maze) Height() int { return m.height }

// Contains reports whether r lies inside the grid.
func (m *Maze) Contains(r Room) bool {
	return r.X >= 0 && r.X < m.width && r.Y >= 0 && r.Y < m.height
}

// Rooms lists every room in row-major order.
func (m *Maze) Rooms() []Room {
	rooms := make([]Room, 0, m.width*m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			rooms = append(rooms, Room{X: x, Y: y})
		}
	}

	return rooms
}

// Walls returns every candidate wall, removed or not.
func (m *Maze) Walls() []Wall {
	out := make([]Wall, len(m.walls))
	copy(out, m.walls)

	return out
}

// Removed returns a copy of the set of knocked-down walls.
func (m *Maze) Removed() mapset.Set[Wall] { return m.removed.Clone() }

// IsWall reports whether w separates two neighbouring rooms of this maze.
func (m *Maze) IsWall(w Wall) bool {
	w = NewWall(w.Room1, w.Room2)
	if !m.Contains(w.Room1) || !m.Contains(w.Room2) {
		return false
	}
	dx, dy := w.Room2.X-w.Room1.X, w.Room2.Y-w.Room1.Y

	return (dx == 1 && dy == 0) || (dx == 0 && dy == 1)
}

// RemoveWall knocks w down. Removing an already removed wall is a no-op.
func (m *Maze) RemoveWall(w Wall) error {
	if !m.IsWall(w) {
		return fmt.Errorf("%w: %v", ErrUnknownWall, w)
	}
	m.removed.Add(NewWall(w.Room1, w.Room2))

	return nil
}

// Open reports whether a and b are neighbours with no wall between them.
func (m *Maze) Open(a, b Room) bool {
	return m.removed.Contains(NewWall(a, b))
}

// Carve asks c which walls to remove and removes them from m.
// The chosen set is checked first: if any wall does not belong to m,
// Carve returns ErrUnknownWall and m is left untouched.
func Carve(m *Maze, c Carver) error {
	chosen, err := c.ChooseWallsToRemove(m.Walls())
	if err != nil {
		return err
	}
	walls := chosen.ToSlice()
	for _, w := range walls {
		if !m.IsWall(w) {
			return fmt.Errorf("%w: %v", ErrUnknownWall, w)
		}
	}
	for _, w := range walls {
		m.removed.Add(NewWall(w.Room1, w.Room2))
	}

	return nil
}
