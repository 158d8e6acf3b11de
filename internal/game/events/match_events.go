package events

import (
	"time"

	"github.com/lanebound/lanebound/internal/game/core"
)

// Event type constants
const (
	TypeMatchStarted  = "match.started"
	TypeMatchEnded    = "match.ended"
	TypeCardDrawn     = "card.drawn"
	TypeCardPlayed    = "card.played"
	TypeBoardSnapshot = "board.snapshot"
	TypeHandSnapshot  = "hand.snapshot"
)

// UnitSnapshot is a point-in-time copy of a unit in play, detached from
// the live unit so subscribers can serialize it safely.
type UnitSnapshot struct {
	Card   *core.Card `json:"card"`
	Damage int        `json:"damage"`
	Ready  bool       `json:"ready"`
}

// SnapshotUnits copies a unit list for publication.
func SnapshotUnits(units []*core.Unit) []UnitSnapshot {
	snaps := make([]UnitSnapshot, len(units))
	for i, u := range units {
		snaps[i] = UnitSnapshot{Card: u.Card, Damage: u.Damage, Ready: u.Ready}
	}
	return snaps
}

// MatchStartedEvent is published once per match, before the first turn.
type MatchStartedEvent struct {
	BaseEvent
	Seed         int64
	AgentA       string
	AgentB       string
	DeckA        []*core.Card
	DeckB        []*core.Card
	VictoryScore int
	MaxTurns     int
}

// NewMatchStartedEvent creates a new MatchStartedEvent.
func NewMatchStartedEvent(matchID string, seed int64, agentA, agentB string, deckA, deckB []*core.Card, victoryScore, maxTurns int) *MatchStartedEvent {
	return &MatchStartedEvent{
		BaseEvent:    BaseEvent{EventType: TypeMatchStarted, Time: time.Now(), Match: matchID},
		Seed:         seed,
		AgentA:       agentA,
		AgentB:       agentB,
		DeckA:        deckA,
		DeckB:        deckB,
		VictoryScore: victoryScore,
		MaxTurns:     maxTurns,
	}
}

// MatchEndedEvent is published once per match, after the terminal
// condition is reached.
type MatchEndedEvent struct {
	BaseEvent
	Winner      string
	Turns       int
	UnitsPlayed int
	SpellsCast  int
	PointsA     int
	PointsB     int
}

// NewMatchEndedEvent creates a new MatchEndedEvent.
func NewMatchEndedEvent(matchID, winner string, turns, unitsPlayed, spellsCast, pointsA, pointsB int) *MatchEndedEvent {
	return &MatchEndedEvent{
		BaseEvent:   BaseEvent{EventType: TypeMatchEnded, Time: time.Now(), Match: matchID},
		Winner:      winner,
		Turns:       turns,
		UnitsPlayed: unitsPlayed,
		SpellsCast:  spellsCast,
		PointsA:     pointsA,
		PointsB:     pointsB,
	}
}

// CardDrawnEvent is published for each draw, including opening hands.
type CardDrawnEvent struct {
	BaseEvent
	Player core.Side
	Turn   int
	Card   *core.Card
}

// NewCardDrawnEvent creates a new CardDrawnEvent.
func NewCardDrawnEvent(matchID string, player core.Side, turn int, card *core.Card) *CardDrawnEvent {
	return &CardDrawnEvent{
		BaseEvent: BaseEvent{EventType: TypeCardDrawn, Time: time.Now(), Match: matchID},
		Player:    player,
		Turn:      turn,
		Card:      card,
	}
}

// CardPlayedEvent is published for each card that actually resolved.
type CardPlayedEvent struct {
	BaseEvent
	Player core.Side
	Turn   int
	Card   *core.Card
	Action string
	Lane   int
	Result string
}

// NewCardPlayedEvent creates a new CardPlayedEvent.
func NewCardPlayedEvent(matchID string, player core.Side, turn int, card *core.Card, action string, lane int, result string) *CardPlayedEvent {
	return &CardPlayedEvent{
		BaseEvent: BaseEvent{EventType: TypeCardPlayed, Time: time.Now(), Match: matchID},
		Player:    player,
		Turn:      turn,
		Card:      card,
		Action:    action,
		Lane:      lane,
		Result:    result,
	}
}

// BoardSnapshotEvent captures one lane's full state at the end of a
// turn.
type BoardSnapshotEvent struct {
	BaseEvent
	Turn       int
	Lane       int
	UnitsA     []UnitSnapshot
	UnitsB     []UnitSnapshot
	Controller core.Side
	Contested  bool
	PointsA    int
	PointsB    int
}

// NewBoardSnapshotEvent creates a new BoardSnapshotEvent.
func NewBoardSnapshotEvent(matchID string, turn, lane int, unitsA, unitsB []UnitSnapshot, controller core.Side, contested bool, pointsA, pointsB int) *BoardSnapshotEvent {
	return &BoardSnapshotEvent{
		BaseEvent:  BaseEvent{EventType: TypeBoardSnapshot, Time: time.Now(), Match: matchID},
		Turn:       turn,
		Lane:       lane,
		UnitsA:     unitsA,
		UnitsB:     unitsB,
		Controller: controller,
		Contested:  contested,
		PointsA:    pointsA,
		PointsB:    pointsB,
	}
}

// HandSnapshotEvent captures a player's hand at the end of their turn.
type HandSnapshotEvent struct {
	BaseEvent
	Player core.Side
	Turn   int
	Cards  []*core.Card
}

// NewHandSnapshotEvent creates a new HandSnapshotEvent.
func NewHandSnapshotEvent(matchID string, player core.Side, turn int, cards []*core.Card) *HandSnapshotEvent {
	return &HandSnapshotEvent{
		BaseEvent: BaseEvent{EventType: TypeHandSnapshot, Time: time.Now(), Match: matchID},
		Player:    player,
		Turn:      turn,
		Cards:     cards,
	}
}
