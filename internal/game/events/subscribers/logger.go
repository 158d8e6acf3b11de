package subscribers

import (
	"github.com/rs/zerolog"

	"github.com/lanebound/lanebound/internal/game/events"
)

// LoggerSubscriber logs match events to structured logs. It is a pure
// side channel: attaching it changes nothing about a match.
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	eventTypeFilter map[string]bool // if non-nil, only log these types
}

// NewLoggerSubscriber creates a new logger subscriber.
func NewLoggerSubscriber(id string, logger zerolog.Logger) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:     id,
		logger: logger.With().Str("subscriber", "event_logger").Logger(),
	}
}

// ID returns the subscriber's unique identifier.
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (empty means log all).
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}
	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// InterestedIn returns true if the subscriber wants this event type.
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it.
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	entry := ls.logger.Debug().
		Str("event_type", event.Type()).
		Str("match_id", event.MatchID())

	switch e := event.(type) {
	case *events.MatchStartedEvent:
		entry = entry.Int64("seed", e.Seed).Str("agent_a", e.AgentA).Str("agent_b", e.AgentB)
	case *events.MatchEndedEvent:
		entry = entry.Str("winner", e.Winner).Int("turns", e.Turns)
	case *events.CardDrawnEvent:
		entry = entry.Str("player", string(e.Player)).Int("turn", e.Turn).Str("card", e.Card.Name)
	case *events.CardPlayedEvent:
		entry = entry.Str("player", string(e.Player)).Int("turn", e.Turn).
			Str("card", e.Card.Name).Str("action", e.Action).Int("lane", e.Lane)
	case *events.BoardSnapshotEvent:
		entry = entry.Int("turn", e.Turn).Int("lane", e.Lane).
			Int("units_a", len(e.UnitsA)).Int("units_b", len(e.UnitsB))
	}

	entry.Msg("Match event")
}
