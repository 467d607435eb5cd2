package game

import (
	"fmt"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
	"github.com/mitchelldurbincs/frontline/internal/game/events"
)

// Outcome describes what an applied command changed. Only the field matching
// the command kind is set.
type Outcome struct {
	Command core.Command
	Player  core.Player

	Recruited *core.Piece
	Battle    *BattleResult
	Turn      *TurnReport
}

// DoCommand validates cmd for the side to move and applies it. A rejected
// command leaves the game untouched and returns a *core.CommandError
// wrapping one of the core sentinel errors.
func (g *Game) DoCommand(cmd core.Command) (Outcome, error) {
	player := g.current
	outcome := Outcome{Command: cmd, Player: player}

	var err error
	switch c := cmd.(type) {
	case core.MoveCommand:
		err = g.move(c)
	case core.RecruitCommand:
		var piece core.Piece
		if piece, err = g.recruit(c); err == nil {
			outcome.Recruited = &piece
		}
	case core.BattleCommand:
		var result BattleResult
		if result, err = g.battle(c); err == nil {
			outcome.Battle = &result
		}
	case core.EndTurnCommand:
		report := g.endTurn()
		outcome.Turn = &report
	default:
		err = fmt.Errorf("%w: %T", core.ErrUnknownCommand, cmd)
	}

	if err != nil {
		g.reject(cmd, err)
		return Outcome{Command: cmd, Player: player}, core.WrapCommandError(player, cmd, err)
	}
	return outcome, nil
}

// Move relocates the piece at from to to. See DoCommand.
func (g *Game) Move(from, to core.Coordinate) error {
	_, err := g.DoCommand(core.MoveCommand{From: from, To: to})
	return err
}

// Recruit places a new piece of type pt at c. See DoCommand.
func (g *Game) Recruit(pt core.PieceType, c core.Coordinate) error {
	_, err := g.DoCommand(core.RecruitCommand{PieceType: pt, Coord: c})
	return err
}

// Battle fights the battle described by cmd. See DoCommand.
func (g *Game) Battle(cmd core.BattleCommand) (BattleResult, error) {
	outcome, err := g.DoCommand(cmd)
	if err != nil {
		return BattleResult{}, err
	}
	return *outcome.Battle, nil
}

// EndTurn passes play to the opponent and runs the turn-start phase
func (g *Game) EndTurn() TurnReport {
	outcome, _ := g.DoCommand(core.EndTurnCommand{})
	return *outcome.Turn
}

func (g *Game) reject(cmd core.Command, err error) {
	kind := "unknown"
	if cmd != nil {
		kind = cmd.Kind().String()
	}
	g.logger.Debug().
		Err(err).
		Stringer("player", g.current).
		Int("turn", g.turn).
		Str("command", kind).
		Msg("Command rejected")
	g.eventBus.Publish(events.NewCommandRejectedEvent(g.id, g.metadata(), cmd, err))
}
