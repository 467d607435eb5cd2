package core

import (
	"fmt"
	"math"
)

// Coordinate represents a position on the game board.
// Rank is the row, File is the column.
type Coordinate struct {
	Rank uint8 `json:"rank" yaml:"rank"`
	File uint8 `json:"file" yaml:"file"`
}

// NewCoordinate creates a new coordinate with the given rank and file
func NewCoordinate(rank, file uint8) Coordinate {
	return Coordinate{Rank: rank, File: file}
}

// FromIndex creates a coordinate from a board array index using row-major ordering
func FromIndex(idx, files int) Coordinate {
	return Coordinate{
		Rank: uint8(idx / files),
		File: uint8(idx % files),
	}
}

// ToIndex converts the coordinate to a board array index using row-major ordering
func (c Coordinate) ToIndex(files int) int {
	return int(c.Rank)*files + int(c.File)
}

// IsValid checks if the coordinate is within the given bounds
func (c Coordinate) IsValid(ranks, files uint8) bool {
	return c.Rank < ranks && c.File < files
}

// DistanceTo calculates the Manhattan distance to another coordinate
func (c Coordinate) DistanceTo(other Coordinate) int {
	return absDiff(c.Rank, other.Rank) + absDiff(c.File, other.File)
}

// Offset returns the coordinate shifted by the given deltas.
// ok is false when the result would leave the 0..255 range on either axis.
func (c Coordinate) Offset(dRank, dFile int) (Coordinate, bool) {
	rank := int(c.Rank) + dRank
	file := int(c.File) + dFile
	if rank < 0 || rank > math.MaxUint8 || file < 0 || file > math.MaxUint8 {
		return Coordinate{}, false
	}
	return Coordinate{Rank: uint8(rank), File: uint8(file)}, true
}

// Move returns the coordinate one step away in the given direction
func (c Coordinate) Move(direction Direction) (Coordinate, bool) {
	offset, ok := directionOffsets[direction]
	if !ok {
		return c, false
	}
	return c.Offset(offset[0], offset[1])
}

// Adjacent returns the orthogonal neighbours of this coordinate that are
// representable. Board bounds are not considered.
func (c Coordinate) Adjacent() []Coordinate {
	adjacent := make([]Coordinate, 0, 4)
	for _, d := range Directions {
		if n, ok := c.Move(d); ok {
			adjacent = append(adjacent, n)
		}
	}
	return adjacent
}

// IsAdjacentTo checks if this coordinate is orthogonally adjacent to another
func (c Coordinate) IsAdjacentTo(other Coordinate) bool {
	return c.DistanceTo(other) == 1
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Rank, c.File)
}

// Direction represents a cardinal direction
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the cardinal directions in neighbour order
var Directions = []Direction{North, East, South, West}

// rank/file deltas for each direction
var directionOffsets = map[Direction][2]int{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
