package core

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds        = errors.New("coordinate out of bounds")
	ErrNoTileAt           = errors.New("no tile at coordinate")
	ErrTileOccupied       = errors.New("tile is occupied")
	ErrTileEmpty          = errors.New("tile has no piece")
	ErrNotOwner           = errors.New("piece not owned by player")
	ErrPieceExhausted     = errors.New("piece is exhausted")
	ErrOutOfSpeedRange    = errors.New("destination beyond piece speed")
	ErrCannotRecruitHere  = errors.New("tile is not a border controlled by player")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrTargetNotEnemy     = errors.New("battle target is not an enemy piece")
	ErrTargetCannotDefend = errors.New("battle target cannot defend")
	ErrActorOutOfRange    = errors.New("actor out of engagement range")
	ErrActorCannotSupport = errors.New("actor cannot support this battle")
	ErrCannotInitiate     = errors.New("piece cannot initiate a battle")
	ErrDuplicateActor     = errors.New("piece or destination used by more than one actor")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrInvalidPlayer      = errors.New("invalid player")
	ErrStaleHandle        = errors.New("handle no longer valid for board")
)

// CommandError is a rejected command together with the side that issued it
type CommandError struct {
	Player  Player
	Command Command
	Err     error
}

func (e *CommandError) Error() string {
	if e.Command == nil {
		return fmt.Sprintf("%s: command: %v", e.Player, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Player, e.Command, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// WrapCommandError adds command context to err. A nil err stays nil.
func WrapCommandError(player Player, cmd Command, err error) error {
	if err == nil {
		return nil
	}
	return &CommandError{Player: player, Command: cmd, Err: err}
}

// GameStateError reports a failure tied to a turn and phase rather than to a
// single command
type GameStateError struct {
	Turn  int
	Phase string
	Err   error
}

func (e *GameStateError) Error() string {
	return fmt.Sprintf("turn %d: %s: %v", e.Turn, e.Phase, e.Err)
}

func (e *GameStateError) Unwrap() error { return e.Err }

// WrapGameStateError adds turn and phase context to err. A nil err stays nil.
func WrapGameStateError(turn int, phase string, err error) error {
	if err == nil {
		return nil
	}
	return &GameStateError{Turn: turn, Phase: phase, Err: err}
}
