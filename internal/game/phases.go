package game

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
	"github.com/mitchelldurbincs/frontline/internal/game/events"
)

// TurnEffects is what the turn-start phase asks the game to apply for the
// side about to play
type TurnEffects struct {
	// Resupply lists coordinates whose pieces become ready again. Entries
	// that do not hold a piece of the new side are ignored.
	Resupply []core.Coordinate
	// Income is credited to the new side's treasury, saturating at 255
	Income uint8
}

// TurnPhasePolicy decides the resupply and income of a side at the start of
// its turn. board is a snapshot; changes to it are discarded.
type TurnPhasePolicy interface {
	ApplyTurnStart(side core.Player, board *core.Board) TurnEffects
}

// TurnPhasePolicyFunc adapts a function to TurnPhasePolicy
type TurnPhasePolicyFunc func(side core.Player, board *core.Board) TurnEffects

func (f TurnPhasePolicyFunc) ApplyTurnStart(side core.Player, board *core.Board) TurnEffects {
	return f(side, board)
}

// NopTurnPolicy resupplies nothing and pays no income
type NopTurnPolicy struct{}

func (NopTurnPolicy) ApplyTurnStart(core.Player, *core.Board) TurnEffects { return TurnEffects{} }

// ResupplyPolicy readies every piece of the side and pays the income bonus
// of each town and city one of its pieces stands on
type ResupplyPolicy struct {
	logger zerolog.Logger
}

// NewResupplyPolicy creates a resupply policy
func NewResupplyPolicy(logger zerolog.Logger) *ResupplyPolicy {
	return &ResupplyPolicy{
		logger: logger.With().Str("component", "ResupplyPolicy").Logger(),
	}
}

func (rp *ResupplyPolicy) ApplyTurnStart(side core.Player, board *core.Board) TurnEffects {
	var effects TurnEffects
	townIncome, cityIncome := 0, 0

	for c := range board.PieceCoords() {
		t := board.At(c)
		if t.Piece.Owner != side {
			continue
		}
		if t.Piece.Exhausted {
			effects.Resupply = append(effects.Resupply, c)
		}
		switch t.Kind {
		case core.TileTown:
			townIncome += int(t.IncomeBonus())
		case core.TileCity:
			cityIncome += int(t.IncomeBonus())
		}
	}

	effects.Income = saturatingAdd(0, townIncome+cityIncome)

	rp.logger.Debug().
		Stringer("side", side).
		Int("resupplied", len(effects.Resupply)).
		Int("town_income", townIncome).
		Int("city_income", cityIncome).
		Msg("Turn start phase computed")
	return effects
}

// TurnReport describes the end of a turn and the start of the next one
type TurnReport struct {
	Ended      core.Player
	Next       core.Player
	Turn       int
	Resupplied int
	Income     uint8
}

func (g *Game) endTurn() TurnReport {
	ended := g.current
	endedMeta := g.metadata()

	g.current = ended.Opponent()
	g.turn++

	effects := g.policy.ApplyTurnStart(g.current, g.board.Clone())
	resupplied, income := g.applyTurnEffects(effects)

	report := TurnReport{
		Ended:      ended,
		Next:       g.current,
		Turn:       g.turn,
		Resupplied: resupplied,
		Income:     income,
	}

	g.eventBus.Publish(events.NewTurnEndedEvent(g.id, endedMeta, g.current, resupplied, income))
	g.logger.Debug().
		Stringer("ended", ended).
		Stringer("next", g.current).
		Int("turn", g.turn).
		Int("resupplied", resupplied).
		Uint8("income", income).
		Msg("Turn ended")
	return report
}

// applyTurnEffects applies effects for the side to move and returns how many
// pieces were readied and how much money was actually credited
func (g *Game) applyTurnEffects(effects TurnEffects) (int, uint8) {
	resupplied := 0
	for _, c := range effects.Resupply {
		piece, ok := g.board.PieceAt(c)
		if !ok || piece.Owner != g.current || !piece.Exhausted {
			continue
		}
		g.board.MustTile(c).Piece.Exhausted = false
		resupplied++
	}

	idx := sideIndex(g.current)
	before := g.treasury[idx]
	g.treasury[idx] = saturatingAdd(before, int(effects.Income))
	return resupplied, g.treasury[idx] - before
}

func saturatingAdd(base uint8, amount int) uint8 {
	total := int(base) + amount
	if total > 255 {
		return 255
	}
	if total < 0 {
		return 0
	}
	return uint8(total)
}
