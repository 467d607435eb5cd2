package game

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/frontline/internal/config"
	"github.com/mitchelldurbincs/frontline/internal/game/core"
)

// Turn policy names accepted by game.turn_policy
const (
	TurnPolicyNone     = "none"
	TurnPolicyResupply = "resupply"
)

// OptionsFromConfig turns the game section of c into game options
func OptionsFromConfig(c *config.Config, logger zerolog.Logger) ([]Option, error) {
	starting, err := core.ParsePlayer(c.Game.StartingPlayer)
	if err != nil {
		return nil, fmt.Errorf("game.starting_player: %w", err)
	}

	opts := []Option{
		WithTreasury(uint8(c.Game.StartingTreasury.P1), uint8(c.Game.StartingTreasury.P2)),
		WithStartingPlayer(starting),
		WithLogger(logger),
	}

	switch c.Game.TurnPolicy {
	case TurnPolicyNone, "":
	case TurnPolicyResupply:
		opts = append(opts, WithTurnPhasePolicy(NewResupplyPolicy(logger)))
	default:
		return nil, fmt.Errorf("game.turn_policy: unknown policy %q", c.Game.TurnPolicy)
	}
	return opts, nil
}
