package maze

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/spanmaze/core"
)

// Sentinel errors for maze operations.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("maze: width and height must be positive")

	// ErrRoomOutOfBounds indicates a room outside the grid.
	ErrRoomOutOfBounds = errors.New("maze: room out of bounds")

	// ErrUnknownWall indicates a wall that does not separate two neighbouring rooms of the maze.
	ErrUnknownWall = errors.New("maze: wall is not part of the maze")

	// ErrDisconnected indicates the rooms could not all be joined. Grid mazes
	// are connected by construction, so this signals a carver bug.
	ErrDisconnected = errors.New("maze: rooms are not connected")

	// ErrNoPath indicates that no open route joins the requested rooms.
	ErrNoPath = errors.New("maze: no path between rooms")
)

// Room is one grid cell. X grows to the right, Y grows downwards.
type Room struct {
	X, Y int
}

func (r Room) String() string { return fmt.Sprintf("(%d,%d)", r.X, r.Y) }

// Wall separates two orthogonally adjacent rooms. NewWall normalizes the
// pair so Room1 precedes Room2 in row-major order, which makes Wall values
// usable as set and map keys regardless of argument order.
type Wall struct {
	Room1, Room2 Room
}

// NewWall returns the wall between a and b in canonical order.
func NewWall(a, b Room) Wall {
	if b.Y < a.Y || (b.Y == a.Y && b.X < a.X) {
		a, b = b, a
	}

	return Wall{Room1: a, Room2: b}
}

func (w Wall) String() string { return w.Room1.String() + "|" + w.Room2.String() }

// Passage is the graph edge standing for a wall: it joins the two rooms the
// wall separates and carries the wall as payload.
type Passage = core.EdgeWithData[Room, Wall]

// Carver decides which walls to knock down.
//
// The returned set must leave every room reachable from every other room.
type Carver interface {
	ChooseWallsToRemove(walls []Wall) (mapset.Set[Wall], error)
}
