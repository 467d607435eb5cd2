package game

import (
	"fmt"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
	"github.com/mitchelldurbincs/frontline/internal/game/events"
)

// CanDoRecruit reports why the side to move may not recruit a piece of type
// pt at c, or nil if it may
func (g *Game) CanDoRecruit(pt core.PieceType, c core.Coordinate) error {
	return g.validateRecruit(g.current, pt, c)
}

// validateRecruit checks funds before occupancy, so repeating a recruit
// the treasury cannot pay for reports the missing money.
func (g *Game) validateRecruit(side core.Player, pt core.PieceType, c core.Coordinate) error {
	if !pt.Valid() {
		return fmt.Errorf("%w: piece type %d", core.ErrUnknownCommand, uint8(pt))
	}
	t, ok := g.board.Get(c)
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrNoTileAt, c)
	}
	if !t.CanRecruit(side) {
		return fmt.Errorf("%w: %s tile at %s", core.ErrCannotRecruitHere, t.Kind, c)
	}
	if have := g.treasury[sideIndex(side)]; have < pt.Cost() {
		return fmt.Errorf("%w: %s costs %d, treasury holds %d", core.ErrInsufficientFunds, pt, pt.Cost(), have)
	}
	if t.IsOccupied() {
		return fmt.Errorf("%w: %s", core.ErrTileOccupied, c)
	}
	return nil
}

func (g *Game) recruit(cmd core.RecruitCommand) (core.Piece, error) {
	if err := g.validateRecruit(g.current, cmd.PieceType, cmd.Coord); err != nil {
		return core.Piece{}, err
	}

	idx := sideIndex(g.current)
	g.treasury[idx] -= cmd.PieceType.Cost()

	piece := core.NewPiece(cmd.PieceType, g.current)
	placed := piece
	g.board.MustTile(cmd.Coord).Piece = &placed

	g.eventBus.Publish(events.NewPieceRecruitedEvent(g.id, g.metadata(), cmd.PieceType, cmd.Coord, g.treasury[idx]))
	g.logger.Debug().
		Stringer("player", g.current).
		Stringer("piece_type", cmd.PieceType).
		Stringer("coord", cmd.Coord).
		Uint8("treasury_after", g.treasury[idx]).
		Msg("Piece recruited")
	return piece, nil
}
