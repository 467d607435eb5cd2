package game

import (
	"fmt"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
	"github.com/mitchelldurbincs/frontline/internal/game/events"
)

// CanDoMove reports why the side to move may not move the piece at from to
// to, or nil if it may. It never changes the game.
func (g *Game) CanDoMove(from, to core.Coordinate) error {
	_, err := g.validateMove(g.current, from, to)
	return err
}

// validateMove checks the full move predicate for side and returns the piece
// that would move. Path blocking is not considered: only the Manhattan
// distance counts against speed.
func (g *Game) validateMove(side core.Player, from, to core.Coordinate) (core.Piece, error) {
	dst, ok := g.board.Get(to)
	if !ok {
		return core.Piece{}, fmt.Errorf("%w: %s", core.ErrNoTileAt, to)
	}
	if dst.IsOccupied() {
		return core.Piece{}, fmt.Errorf("%w: %s", core.ErrTileOccupied, to)
	}

	piece, err := g.actingPiece(side, from)
	if err != nil {
		return core.Piece{}, err
	}

	if dist := from.DistanceTo(to); dist > piece.Speed() {
		return core.Piece{}, fmt.Errorf("%w: %s moves %d, distance %d", core.ErrOutOfSpeedRange, piece.Type, piece.Speed(), dist)
	}
	return piece, nil
}

// actingPiece returns the piece at c if side may act with it this turn
func (g *Game) actingPiece(side core.Player, c core.Coordinate) (core.Piece, error) {
	t, ok := g.board.Get(c)
	if !ok {
		return core.Piece{}, fmt.Errorf("%w: %s", core.ErrNoTileAt, c)
	}
	if !t.IsOccupied() {
		return core.Piece{}, fmt.Errorf("%w: %s", core.ErrTileEmpty, c)
	}
	piece := *t.Piece
	if piece.Exhausted {
		return core.Piece{}, fmt.Errorf("%w: %s at %s", core.ErrPieceExhausted, piece.Type, c)
	}
	if piece.Owner != side {
		return core.Piece{}, fmt.Errorf("%w: %s at %s belongs to %s", core.ErrNotOwner, piece.Type, c, piece.Owner)
	}
	return piece, nil
}

func (g *Game) move(cmd core.MoveCommand) error {
	piece, err := g.validateMove(g.current, cmd.From, cmd.To)
	if err != nil {
		return err
	}

	g.relocate(cmd.From, cmd.To)
	g.eventBus.Publish(events.NewPieceMovedEvent(g.id, g.metadata(), piece.Type, cmd.From, cmd.To))
	g.logger.Debug().
		Stringer("player", g.current).
		Stringer("piece_type", piece.Type).
		Stringer("from", cmd.From).
		Stringer("to", cmd.To).
		Msg("Piece moved")
	return nil
}

// relocate moves an already validated piece and exhausts it
func (g *Game) relocate(from, to core.Coordinate) {
	src := g.board.MustTile(from)
	dst := g.board.MustTile(to)
	dst.Piece, src.Piece = src.Piece, nil
	dst.Piece.Exhausted = true
}
