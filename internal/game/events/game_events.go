package events

import (
	"github.com/mitchelldurbincs/frontline/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeCommandRejected = "command.rejected"
	TypePieceMoved      = "piece.moved"
	TypePieceRecruited  = "piece.recruited"
	TypeBattleResolved  = "battle.resolved"
	TypeTurnEnded       = "turn.ended"
)

// GameStartedEvent is published when a game is created from a board
type GameStartedEvent struct {
	BaseEvent
	Ranks          uint8       `json:"ranks"`
	Files          uint8       `json:"files"`
	StartingPlayer core.Player `json:"starting_player"`
	Treasury       [2]uint8    `json:"treasury"`
}

// NewGameStartedEvent creates a new GameStartedEvent. treasury is ordered P1, P2.
func NewGameStartedEvent(gameID string, ranks, files uint8, starting core.Player, treasury [2]uint8) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:      newBase(TypeGameStarted, gameID),
		Ranks:          ranks,
		Files:          files,
		StartingPlayer: starting,
		Treasury:       treasury,
	}
}

// CommandRejectedEvent is published when a command fails validation
type CommandRejectedEvent struct {
	BaseEvent
	Metadata EventMetadata    `json:"metadata"`
	Command  core.CommandKind `json:"-"`
	Kind     string           `json:"command"`
	Reason   string           `json:"reason"`
	Err      error            `json:"-"`
}

// NewCommandRejectedEvent creates a new CommandRejectedEvent
func NewCommandRejectedEvent(gameID string, meta EventMetadata, cmd core.Command, err error) *CommandRejectedEvent {
	e := &CommandRejectedEvent{
		BaseEvent: newBase(TypeCommandRejected, gameID),
		Metadata:  meta,
		Err:       err,
	}
	if cmd != nil {
		e.Command = cmd.Kind()
		e.Kind = cmd.Kind().String()
	}
	if err != nil {
		e.Reason = err.Error()
	}
	return e
}

// PieceMovedEvent is published after a move command, and for every moving
// battle actor
type PieceMovedEvent struct {
	BaseEvent
	Metadata  EventMetadata   `json:"metadata"`
	PieceType core.PieceType  `json:"piece_type"`
	From      core.Coordinate `json:"from"`
	To        core.Coordinate `json:"to"`
}

// NewPieceMovedEvent creates a new PieceMovedEvent
func NewPieceMovedEvent(gameID string, meta EventMetadata, pt core.PieceType, from, to core.Coordinate) *PieceMovedEvent {
	return &PieceMovedEvent{
		BaseEvent: newBase(TypePieceMoved, gameID),
		Metadata:  meta,
		PieceType: pt,
		From:      from,
		To:        to,
	}
}

// PieceRecruitedEvent is published after a successful recruit
type PieceRecruitedEvent struct {
	BaseEvent
	Metadata      EventMetadata   `json:"metadata"`
	PieceType     core.PieceType  `json:"piece_type"`
	Coord         core.Coordinate `json:"coord"`
	Cost          uint8           `json:"cost"`
	TreasuryAfter uint8           `json:"treasury_after"`
}

// NewPieceRecruitedEvent creates a new PieceRecruitedEvent
func NewPieceRecruitedEvent(gameID string, meta EventMetadata, pt core.PieceType, at core.Coordinate, treasuryAfter uint8) *PieceRecruitedEvent {
	return &PieceRecruitedEvent{
		BaseEvent:     newBase(TypePieceRecruited, gameID),
		Metadata:      meta,
		PieceType:     pt,
		Coord:         at,
		Cost:          pt.Cost(),
		TreasuryAfter: treasuryAfter,
	}
}

// BattleResolvedEvent is published once a battle has been fought
type BattleResolvedEvent struct {
	BaseEvent
	Metadata      EventMetadata   `json:"metadata"`
	Target        core.Coordinate `json:"target"`
	TargetType    core.PieceType  `json:"target_type"`
	AttackPower   int             `json:"attack_power"`
	DefencePower  int             `json:"defence_power"`
	Actors        int             `json:"actors"`
	TargetRemoved bool            `json:"target_removed"`
}

// NewBattleResolvedEvent creates a new BattleResolvedEvent
func NewBattleResolvedEvent(gameID string, meta EventMetadata, target core.Coordinate, targetType core.PieceType, attack, defence, actors int, removed bool) *BattleResolvedEvent {
	return &BattleResolvedEvent{
		BaseEvent:     newBase(TypeBattleResolved, gameID),
		Metadata:      meta,
		Target:        target,
		TargetType:    targetType,
		AttackPower:   attack,
		DefencePower:  defence,
		Actors:        actors,
		TargetRemoved: removed,
	}
}

// TurnEndedEvent is published when a side ends its turn and the turn-start
// phase for the next side has run
type TurnEndedEvent struct {
	BaseEvent
	Metadata   EventMetadata `json:"metadata"`
	NextPlayer core.Player   `json:"next_player"`
	Resupplied int           `json:"resupplied"`
	Income     uint8         `json:"income"`
}

// NewTurnEndedEvent creates a new TurnEndedEvent
func NewTurnEndedEvent(gameID string, meta EventMetadata, next core.Player, resupplied int, income uint8) *TurnEndedEvent {
	return &TurnEndedEvent{
		BaseEvent:  newBase(TypeTurnEnded, gameID),
		Metadata:   meta,
		NextPlayer: next,
		Resupplied: resupplied,
		Income:     income,
	}
}
