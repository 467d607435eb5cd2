package core

import "fmt"

// TileRef is a coordinate proven to hold a tile on a specific board revision.
// Any mutation of the board invalidates it; call Valid before relying on it.
type TileRef struct {
	coord    Coordinate
	board    *Board
	revision uint64
}

// NewTileRef validates that c holds a tile on b
func NewTileRef(b *Board, c Coordinate) (TileRef, error) {
	if !b.HasTile(c) {
		return TileRef{}, fmt.Errorf("%w: %s", ErrNoTileAt, c)
	}
	return TileRef{coord: c, board: b, revision: b.Revision()}, nil
}

func (r TileRef) Coord() Coordinate { return r.coord }

// Valid reports whether b is the board the handle was taken from and has not
// changed since
func (r TileRef) Valid(b *Board) bool {
	return r.board != nil && r.board == b && r.revision == b.Revision()
}

// Tile returns a copy of the referenced tile
func (r TileRef) Tile(b *Board) (Tile, error) {
	if !r.Valid(b) {
		return Tile{}, ErrStaleHandle
	}
	return b.At(r.coord), nil
}

// PieceRef is a coordinate proven to hold a piece on a specific board revision
type PieceRef struct {
	TileRef
}

// NewPieceRef validates that c holds a piece on b
func NewPieceRef(b *Board, c Coordinate) (PieceRef, error) {
	ref, err := NewTileRef(b, c)
	if err != nil {
		return PieceRef{}, err
	}
	if _, ok := b.PieceAt(c); !ok {
		return PieceRef{}, fmt.Errorf("%w: %s", ErrTileEmpty, c)
	}
	return PieceRef{TileRef: ref}, nil
}

// Piece returns a copy of the referenced piece
func (r PieceRef) Piece(b *Board) (Piece, error) {
	if !r.Valid(b) {
		return Piece{}, ErrStaleHandle
	}
	p, _ := b.PieceAt(r.coord)
	return p, nil
}

// AsTileRef drops the piece guarantee
func (r PieceRef) AsTileRef() TileRef { return r.TileRef }
