package core

import (
	"fmt"
	"iter"
)

// Board is a rectangular grid of optional tiles, stored row-major.
// An address inside the grid may still hold no tile, which is how
// non-rectangular maps are expressed.
type Board struct {
	ranks, files uint8
	tiles        []*Tile
	revision     uint64
}

// NewBoard creates a board of the given size with no tiles placed.
// NewBoard(0, 0) is the empty default board.
func NewBoard(ranks, files uint8) *Board {
	return &Board{
		ranks: ranks,
		files: files,
		tiles: make([]*Tile, int(ranks)*int(files)),
	}
}

// NewFilledBoard creates a board whose every address holds an empty tile
func NewFilledBoard(ranks, files uint8) *Board {
	b := NewBoard(ranks, files)
	for i := range b.tiles {
		t := NewTile(TileEmpty)
		b.tiles[i] = &t
	}
	return b
}

func (b *Board) Ranks() uint8 { return b.ranks }
func (b *Board) Files() uint8 { return b.files }

// Revision changes every time the board may have been mutated
func (b *Board) Revision() uint64 { return b.revision }

func (b *Board) idx(c Coordinate) int { return c.ToIndex(int(b.files)) }

// InBounds checks if the coordinate lies inside the grid. It says nothing
// about whether a tile exists there.
func (b *Board) InBounds(c Coordinate) bool {
	return c.IsValid(b.ranks, b.files)
}

// NewCoord returns the coordinate if it lies inside the grid
func (b *Board) NewCoord(rank, file uint8) (Coordinate, bool) {
	c := NewCoordinate(rank, file)
	return c, b.InBounds(c)
}

// HasTile reports whether a tile exists at c
func (b *Board) HasTile(c Coordinate) bool {
	return b.InBounds(c) && b.tiles[b.idx(c)] != nil
}

// Get returns a copy of the tile at c. ok is false when c is outside the grid
// or no tile is placed there.
func (b *Board) Get(c Coordinate) (Tile, bool) {
	if !b.HasTile(c) {
		return Tile{}, false
	}
	return b.tiles[b.idx(c)].Clone(), true
}

// GetMut returns the tile at c for modification, or nil when there is none
func (b *Board) GetMut(c Coordinate) *Tile {
	if !b.HasTile(c) {
		return nil
	}
	b.revision++
	return b.tiles[b.idx(c)]
}

// At returns a copy of the tile at c.
// It panics if no tile exists there; callers must check first.
func (b *Board) At(c Coordinate) Tile {
	return b.mustTile(c).Clone()
}

// MustTile returns the tile at c for modification.
// It panics if no tile exists there; callers must check first.
func (b *Board) MustTile(c Coordinate) *Tile {
	t := b.mustTile(c)
	b.revision++
	return t
}

func (b *Board) mustTile(c Coordinate) *Tile {
	if !b.HasTile(c) {
		panic(fmt.Sprintf("board: indexed missing tile at %s on %dx%d board", c, b.ranks, b.files))
	}
	return b.tiles[b.idx(c)]
}

// SetTile places a tile at c, replacing whatever was there
func (b *Board) SetTile(c Coordinate, t Tile) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	t = t.Clone()
	b.tiles[b.idx(c)] = &t
	b.revision++
	return nil
}

// RemoveTile clears the address at c so it holds no tile
func (b *Board) RemoveTile(c Coordinate) {
	if !b.InBounds(c) {
		return
	}
	b.tiles[b.idx(c)] = nil
	b.revision++
}

// PlacePiece puts p on the unoccupied tile at c
func (b *Board) PlacePiece(c Coordinate, p Piece) error {
	t, err := b.tileFor(c)
	if err != nil {
		return err
	}
	if t.IsOccupied() {
		return fmt.Errorf("%w: %s", ErrTileOccupied, c)
	}
	t.Piece = &p
	b.revision++
	return nil
}

// RemovePiece takes the piece off the tile at c and returns it
func (b *Board) RemovePiece(c Coordinate) (Piece, error) {
	t, err := b.tileFor(c)
	if err != nil {
		return Piece{}, err
	}
	if !t.IsOccupied() {
		return Piece{}, fmt.Errorf("%w: %s", ErrTileEmpty, c)
	}
	p := *t.Piece
	t.Piece = nil
	b.revision++
	return p, nil
}

// RelocatePiece moves the piece at from onto the unoccupied tile at to
func (b *Board) RelocatePiece(from, to Coordinate) error {
	src, err := b.tileFor(from)
	if err != nil {
		return err
	}
	dst, err := b.tileFor(to)
	if err != nil {
		return err
	}
	if !src.IsOccupied() {
		return fmt.Errorf("%w: %s", ErrTileEmpty, from)
	}
	if from == to {
		return nil
	}
	if dst.IsOccupied() {
		return fmt.Errorf("%w: %s", ErrTileOccupied, to)
	}
	dst.Piece, src.Piece = src.Piece, nil
	b.revision++
	return nil
}

// SetExhausted sets the exhaustion flag of the piece at c
func (b *Board) SetExhausted(c Coordinate, exhausted bool) error {
	t, err := b.tileFor(c)
	if err != nil {
		return err
	}
	if !t.IsOccupied() {
		return fmt.Errorf("%w: %s", ErrTileEmpty, c)
	}
	t.Piece.Exhausted = exhausted
	b.revision++
	return nil
}

func (b *Board) tileFor(c Coordinate) (*Tile, error) {
	if !b.HasTile(c) {
		return nil, fmt.Errorf("%w: %s", ErrNoTileAt, c)
	}
	return b.tiles[b.idx(c)], nil
}

// PieceAt returns a copy of the piece at c, if any
func (b *Board) PieceAt(c Coordinate) (Piece, bool) {
	if !b.HasTile(c) {
		return Piece{}, false
	}
	t := b.tiles[b.idx(c)]
	if t.Piece == nil {
		return Piece{}, false
	}
	return *t.Piece, true
}

// Neighbours returns the orthogonal neighbours of c that hold a tile.
// ok is false when c itself lies outside the grid.
func (b *Board) Neighbours(c Coordinate) ([]Coordinate, bool) {
	if !b.InBounds(c) {
		return nil, false
	}
	neighbours := make([]Coordinate, 0, 4)
	for _, n := range c.Adjacent() {
		if b.HasTile(n) {
			neighbours = append(neighbours, n)
		}
	}
	return neighbours, true
}

// PieceCoords yields every coordinate holding a piece in row-major order.
// The sequence reads the board lazily and can be ranged over repeatedly.
func (b *Board) PieceCoords() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for i, t := range b.tiles {
			if t == nil || t.Piece == nil {
				continue
			}
			if !yield(FromIndex(i, int(b.files))) {
				return
			}
		}
	}
}

// Tiles yields a copy of every placed tile with its coordinate in row-major order
func (b *Board) Tiles() iter.Seq2[Coordinate, Tile] {
	return func(yield func(Coordinate, Tile) bool) {
		for i, t := range b.tiles {
			if t == nil {
				continue
			}
			if !yield(FromIndex(i, int(b.files)), t.Clone()) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	clone := &Board{
		ranks:    b.ranks,
		files:    b.files,
		tiles:    make([]*Tile, len(b.tiles)),
		revision: b.revision,
	}
	for i, t := range b.tiles {
		if t == nil {
			continue
		}
		c := t.Clone()
		clone.tiles[i] = &c
	}
	return clone
}
