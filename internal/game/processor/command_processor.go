package processor

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/frontline/internal/game"
	"github.com/mitchelldurbincs/frontline/internal/game/core"
)

// Game is the part of a game the processor drives
type Game interface {
	DoCommand(cmd core.Command) (game.Outcome, error)
	Turn() int
}

// Result is the fate of one command in a batch
type Result struct {
	Index   int
	Command core.Command
	Outcome game.Outcome
	Err     error
}

// Applied reports whether the command changed the game
func (r Result) Applied() bool { return r.Err == nil }

// CommandProcessor feeds a sequence of commands to a game in order
type CommandProcessor struct {
	logger      zerolog.Logger
	stopOnError bool
}

// NewCommandProcessor creates a new command processor. With stopOnError set,
// the first rejected command ends the batch; otherwise rejected commands are
// recorded and skipped.
func NewCommandProcessor(logger zerolog.Logger, stopOnError bool) *CommandProcessor {
	return &CommandProcessor{
		logger:      logger.With().Str("component", "CommandProcessor").Logger(),
		stopOnError: stopOnError,
	}
}

// Process applies cmds to g in order and returns a result for every command
// attempted. The returned error is the first rejection, or the context error
// if ctx ends before the batch does.
func (cp *CommandProcessor) Process(ctx context.Context, g Game, cmds []core.Command) ([]Result, error) {
	results := make([]Result, 0, len(cmds))
	var firstErr error

	for i, cmd := range cmds {
		select {
		case <-ctx.Done():
			cp.logger.Warn().Err(ctx.Err()).Int("processed", i).Msg("Command processing interrupted by context cancellation")
			return results, core.WrapGameStateError(g.Turn(), "command processing", ctx.Err())
		default:
		}

		cp.logger.Debug().Int("index", i).Stringer("command", cmd).Msg("Applying command")
		outcome, err := g.DoCommand(cmd)
		results = append(results, Result{Index: i, Command: cmd, Outcome: outcome, Err: err})
		if err == nil {
			continue
		}

		cp.logger.Warn().Err(err).Int("index", i).Msg("Command rejected")
		if firstErr == nil {
			firstErr = fmt.Errorf("command %d: %w", i, err)
		}
		if cp.stopOnError {
			break
		}
	}

	cp.logger.Info().
		Int("submitted", len(cmds)).
		Int("attempted", len(results)).
		Bool("failed", firstErr != nil).
		Msg("Command batch processed")
	return results, firstErr
}
