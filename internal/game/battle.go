package game

import (
	"fmt"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
	"github.com/mitchelldurbincs/frontline/internal/game/events"
)

// BattleResult reports how a battle was resolved
type BattleResult struct {
	Target        core.Coordinate
	TargetType    core.PieceType
	AttackPower   int
	DefencePower  int
	Actors        int
	TargetRemoved bool
}

// battlePlan is a fully validated battle, ready to apply
type battlePlan struct {
	target      core.Coordinate
	targetPiece core.Piece
	attackers   []core.BattleActor
	defenders   []core.BattleActor
	attack      int
	defence     int
}

// CanDoBattle reports why the side to move may not fight the battle described
// by cmd, or nil if it may
func (g *Game) CanDoBattle(cmd core.BattleCommand) error {
	_, err := g.planBattle(cmd)
	return err
}

// planBattle validates every part of cmd against the current board. Actors
// are checked against the position before the battle, so no two actors may
// share a piece or a destination.
func (g *Game) planBattle(cmd core.BattleCommand) (battlePlan, error) {
	attacker := g.current
	defender := attacker.Opponent()

	t, ok := g.board.Get(cmd.Target)
	if !ok {
		return battlePlan{}, fmt.Errorf("%w: target %s", core.ErrNoTileAt, cmd.Target)
	}
	if !t.IsOccupied() {
		return battlePlan{}, fmt.Errorf("%w: target %s", core.ErrTileEmpty, cmd.Target)
	}
	target := *t.Piece
	if target.Owner != defender {
		return battlePlan{}, fmt.Errorf("%w: %s at %s belongs to %s", core.ErrTargetNotEnemy, target.Type, cmd.Target, target.Owner)
	}
	if cmd.TargetIsDefending && !target.CanDefend() {
		return battlePlan{}, fmt.Errorf("%w: %s", core.ErrTargetCannotDefend, target.Type)
	}

	plan := battlePlan{
		target:      cmd.Target,
		targetPiece: target,
		attackers:   cmd.Attackers(),
		defenders:   cmd.DefenceSupporters,
	}
	claims := newActorClaims(cmd.Target)

	for i, actor := range plan.attackers {
		piece, err := g.validateActor(actor, cmd.Target, attacker, true)
		if err != nil {
			return battlePlan{}, err
		}
		if i == 0 && !piece.CanInitiate() {
			return battlePlan{}, fmt.Errorf("%w: %s", core.ErrCannotInitiate, piece.Type)
		}
		if err := claims.claim(actor); err != nil {
			return battlePlan{}, err
		}
		plan.attack += piece.Power()
	}

	for _, actor := range plan.defenders {
		piece, err := g.validateActor(actor, cmd.Target, defender, false)
		if err != nil {
			return battlePlan{}, err
		}
		if err := claims.claim(actor); err != nil {
			return battlePlan{}, err
		}
		plan.defence += piece.Power()
	}
	if cmd.TargetIsDefending {
		plan.defence += target.Power()
	}

	return plan, nil
}

// validateActor checks that actor may contribute to a battle on target for
// side and returns its piece
func (g *Game) validateActor(actor core.BattleActor, target core.Coordinate, side core.Player, attacking bool) (core.Piece, error) {
	var (
		piece core.Piece
		err   error
	)
	if actor.IsMoving() {
		piece, err = g.validateMove(side, actor.From, actor.To)
	} else {
		piece, err = g.actingPiece(side, actor.From)
	}
	if err != nil {
		return core.Piece{}, fmt.Errorf("%s actor %s: %w", sideLabel(attacking), actor, err)
	}

	if !piece.CanSupport(attacking, actor.IsMoving()) {
		return core.Piece{}, fmt.Errorf("%w: %s %s as %s actor", core.ErrActorCannotSupport, actor.Kind, piece.Type, sideLabel(attacking))
	}
	if dist := actor.Position().DistanceTo(target); !piece.Range().Contains(dist) {
		return core.Piece{}, fmt.Errorf("%w: %s at distance %d, range %d..%d",
			core.ErrActorOutOfRange, piece.Type, dist, piece.Range().Min, piece.Range().Max)
	}
	return piece, nil
}

func sideLabel(attacking bool) string {
	if attacking {
		return "attack"
	}
	return "defence"
}

// actorClaims tracks the pieces and destinations already used by a battle
type actorClaims struct {
	pieces       map[core.Coordinate]bool
	destinations map[core.Coordinate]bool
}

func newActorClaims(target core.Coordinate) *actorClaims {
	return &actorClaims{
		pieces:       map[core.Coordinate]bool{target: true},
		destinations: make(map[core.Coordinate]bool),
	}
}

func (c *actorClaims) claim(actor core.BattleActor) error {
	if c.pieces[actor.Origin()] {
		return fmt.Errorf("%w: piece at %s", core.ErrDuplicateActor, actor.Origin())
	}
	c.pieces[actor.Origin()] = true
	if actor.IsMoving() {
		if c.destinations[actor.To] {
			return fmt.Errorf("%w: destination %s", core.ErrDuplicateActor, actor.To)
		}
		c.destinations[actor.To] = true
	}
	return nil
}

func (g *Game) battle(cmd core.BattleCommand) (BattleResult, error) {
	plan, err := g.planBattle(cmd)
	if err != nil {
		return BattleResult{}, err
	}

	meta := g.metadata()
	for _, actor := range append(append([]core.BattleActor(nil), plan.attackers...), plan.defenders...) {
		if actor.IsMoving() {
			moved := g.board.At(actor.From).Piece.Type
			g.relocate(actor.From, actor.To)
			g.eventBus.Publish(events.NewPieceMovedEvent(g.id, meta, moved, actor.From, actor.To))
			continue
		}
		g.board.MustTile(actor.From).Piece.Exhausted = true
	}

	result := BattleResult{
		Target:        plan.target,
		TargetType:    plan.targetPiece.Type,
		AttackPower:   plan.attack,
		DefencePower:  plan.defence,
		Actors:        len(plan.attackers) + len(plan.defenders),
		TargetRemoved: plan.attack > plan.defence,
	}
	if result.TargetRemoved {
		g.board.MustTile(plan.target).Piece = nil
	}

	g.eventBus.Publish(events.NewBattleResolvedEvent(g.id, meta, result.Target, result.TargetType,
		result.AttackPower, result.DefencePower, result.Actors, result.TargetRemoved))
	g.logger.Debug().
		Stringer("player", g.current).
		Stringer("target", result.Target).
		Stringer("target_type", result.TargetType).
		Int("attack_power", result.AttackPower).
		Int("defence_power", result.DefencePower).
		Int("actors", result.Actors).
		Bool("target_removed", result.TargetRemoved).
		Msg("Battle resolved")

	return result, nil
}

// CanSupportBattle reports why actor may not contribute to a battle on
// target, or nil if it may. attacking selects the side to move; otherwise the
// actor is checked as a defence supporter for the opponent. The target
// itself is not validated.
func (g *Game) CanSupportBattle(actor core.BattleActor, target core.Coordinate, attacking bool) error {
	side := g.current
	if !attacking {
		side = side.Opponent()
	}
	_, err := g.validateActor(actor, target, side, attacking)
	return err
}
