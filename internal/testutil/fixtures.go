package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
)

// CreateTestBoard creates a board of the given size with an empty tile at
// every address
func CreateTestBoard(ranks, files uint8) *core.Board {
	return core.NewFilledBoard(ranks, files)
}

// CreateTestBoardWithTiles creates a board with no tiles and then sets up
// the given ones
func CreateTestBoardWithTiles(t testing.TB, ranks, files uint8, tiles map[core.Coordinate]core.Tile) *core.Board {
	t.Helper()
	board := core.NewBoard(ranks, files)
	for coord, tile := range tiles {
		require.NoError(t, board.SetTile(coord, tile))
	}
	return board
}

// ReadyPiece returns an unexhausted piece
func ReadyPiece(pt core.PieceType, owner core.Player) core.Piece {
	return core.Piece{Type: pt, Owner: owner}
}

// PlacePieces puts every piece on board, failing the test on error
func PlacePieces(t testing.TB, board *core.Board, pieces map[core.Coordinate]core.Piece) {
	t.Helper()
	for coord, piece := range pieces {
		require.NoError(t, board.PlacePiece(coord, piece))
	}
}

// SetBorders turns the given coordinates into border tiles controlled by
// owner
func SetBorders(t testing.TB, board *core.Board, owner core.Player, coords ...core.Coordinate) {
	t.Helper()
	for _, c := range coords {
		require.NoError(t, board.SetTile(c, core.NewBorderTile(owner)))
	}
}

// C is a short coordinate constructor for table tests
func C(rank, file uint8) core.Coordinate {
	return core.NewCoordinate(rank, file)
}
