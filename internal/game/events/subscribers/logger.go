package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/frontline/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // nil means log every event type
	devMode         bool            // log the full event as JSON
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

func (ls *LoggerSubscriber) ID() string { return ls.id }

// SetEventFilter sets which event types to log (empty means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool, len(eventTypes))
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.WithLevel(ls.logLevel).
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp())

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Uint8("ranks", e.Ranks).
			Uint8("files", e.Files).
			Stringer("starting_player", e.StartingPlayer).
			Uint8("treasury_p1", e.Treasury[0]).
			Uint8("treasury_p2", e.Treasury[1])

	case *events.CommandRejectedEvent:
		logEvent.
			Stringer("player", e.Metadata.Player).
			Int("turn", e.Metadata.Turn).
			Str("command", e.Kind).
			Str("reason", e.Reason)

	case *events.PieceMovedEvent:
		logEvent.
			Stringer("player", e.Metadata.Player).
			Int("turn", e.Metadata.Turn).
			Stringer("piece_type", e.PieceType).
			Stringer("from", e.From).
			Stringer("to", e.To)

	case *events.PieceRecruitedEvent:
		logEvent.
			Stringer("player", e.Metadata.Player).
			Int("turn", e.Metadata.Turn).
			Stringer("piece_type", e.PieceType).
			Stringer("coord", e.Coord).
			Uint8("cost", e.Cost).
			Uint8("treasury_after", e.TreasuryAfter)

	case *events.BattleResolvedEvent:
		logEvent.
			Stringer("player", e.Metadata.Player).
			Int("turn", e.Metadata.Turn).
			Stringer("target", e.Target).
			Stringer("target_type", e.TargetType).
			Int("attack_power", e.AttackPower).
			Int("defence_power", e.DefencePower).
			Int("actors", e.Actors).
			Bool("target_removed", e.TargetRemoved)

	case *events.TurnEndedEvent:
		logEvent.
			Stringer("player", e.Metadata.Player).
			Int("turn", e.Metadata.Turn).
			Stringer("next_player", e.NextPlayer).
			Int("resupplied", e.Resupplied).
			Uint8("income", e.Income)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
