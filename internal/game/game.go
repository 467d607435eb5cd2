package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
	"github.com/mitchelldurbincs/frontline/internal/game/events"
)

// Game owns a board, the side to move and both treasuries. It is the only
// component that mutates them. A Game is not safe for concurrent use.
type Game struct {
	id       string
	board    *core.Board
	current  core.Player
	treasury [2]uint8
	turn     int

	policy   TurnPhasePolicy
	eventBus events.Publisher
	logger   zerolog.Logger
}

// Option configures a Game at construction
type Option func(*Game)

// WithTreasury sets the starting treasury of both sides
func WithTreasury(p1, p2 uint8) Option {
	return func(g *Game) {
		g.treasury = [2]uint8{p1, p2}
	}
}

// WithStartingPlayer sets the side that moves first
func WithStartingPlayer(p core.Player) Option {
	return func(g *Game) {
		if p.Valid() {
			g.current = p
		}
	}
}

// WithTurnPhasePolicy replaces the no-op turn-start phase
func WithTurnPhasePolicy(policy TurnPhasePolicy) Option {
	return func(g *Game) {
		if policy != nil {
			g.policy = policy
		}
	}
}

// WithEventBus publishes game events on bus
func WithEventBus(bus events.Publisher) Option {
	return func(g *Game) {
		if bus != nil {
			g.eventBus = bus
		}
	}
}

// WithLogger sets the logger the game derives its component logger from
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithGameID overrides the generated game ID
func WithGameID(id string) Option {
	return func(g *Game) {
		if id != "" {
			g.id = id
		}
	}
}

// NewGame starts a game on board. The board is owned by the game from here
// on; callers must not mutate it. A nil board is replaced by the empty
// 0x0 board.
func NewGame(board *core.Board, opts ...Option) *Game {
	if board == nil {
		board = core.NewBoard(0, 0)
	}

	g := &Game{
		id:       uuid.NewString(),
		board:    board,
		current:  core.P1,
		turn:     1,
		policy:   NopTurnPolicy{},
		eventBus: nopPublisher{},
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With().Str("component", "Game").Str("game_id", g.id).Logger()

	g.eventBus.Publish(events.NewGameStartedEvent(g.id, board.Ranks(), board.Files(), g.current, g.treasury))
	g.logger.Info().
		Uint8("ranks", board.Ranks()).
		Uint8("files", board.Files()).
		Stringer("starting_player", g.current).
		Uint8("treasury_p1", g.treasury[0]).
		Uint8("treasury_p2", g.treasury[1]).
		Msg("Game created")

	return g
}

// sideIndex is the single conversion from a side to its slot in per-side
// arrays
func sideIndex(p core.Player) int {
	switch p {
	case core.P1:
		return 0
	case core.P2:
		return 1
	default:
		panic(fmt.Sprintf("game: no per-side slot for player %d", p))
	}
}

func (g *Game) ID() string                 { return g.id }
func (g *Game) CurrentPlayer() core.Player { return g.current }

// Turn counts turns from 1; every EndTurn advances it
func (g *Game) Turn() int { return g.turn }

// Board returns a snapshot of the board. Changes to it do not affect the game.
func (g *Game) Board() *core.Board { return g.board.Clone() }

// Treasury returns the money held by p, or 0 for an invalid player
func (g *Game) Treasury(p core.Player) uint8 {
	if !p.Valid() {
		return 0
	}
	return g.treasury[sideIndex(p)]
}

// PieceAt returns a copy of the piece at c, if any
func (g *Game) PieceAt(c core.Coordinate) (core.Piece, bool) {
	return g.board.PieceAt(c)
}

// Tile returns a copy of the tile at c, if any
func (g *Game) Tile(c core.Coordinate) (core.Tile, bool) {
	return g.board.Get(c)
}

func (g *Game) metadata() events.EventMetadata {
	return events.EventMetadata{Player: g.current, Turn: g.turn}
}

type nopPublisher struct{}

func (nopPublisher) Publish(events.Event) {}
