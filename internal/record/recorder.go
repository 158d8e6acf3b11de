package record

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/lanebound/lanebound/internal/game/core"
	"github.com/lanebound/lanebound/internal/game/events"
)

// Recorder subscribes to match events and writes them to a Store. A
// single Recorder may be shared across concurrent matches; state is
// keyed by match ID. Storage failures are logged and the match plays
// on; recording is best effort.
type Recorder struct {
	store  *Store
	logger zerolog.Logger

	mu        sync.Mutex
	matchRefs map[string]int64
	drawSeq   map[string]map[core.Side]int
}

// NewRecorder creates a Recorder writing to store.
func NewRecorder(store *Store, logger zerolog.Logger) *Recorder {
	return &Recorder{
		store:     store,
		logger:    logger.With().Str("component", "recorder").Logger(),
		matchRefs: make(map[string]int64),
		drawSeq:   make(map[string]map[core.Side]int),
	}
}

// ID implements events.Subscriber.
func (r *Recorder) ID() string {
	return "sqlite-recorder"
}

// InterestedIn implements events.Subscriber.
func (r *Recorder) InterestedIn(eventType string) bool {
	switch eventType {
	case events.TypeMatchStarted, events.TypeMatchEnded,
		events.TypeCardDrawn, events.TypeCardPlayed,
		events.TypeBoardSnapshot, events.TypeHandSnapshot:
		return true
	}
	return false
}

// HandleEvent implements events.Subscriber.
func (r *Recorder) HandleEvent(event events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	switch e := event.(type) {
	case *events.MatchStartedEvent:
		err = r.matchStarted(e)
	case *events.MatchEndedEvent:
		err = r.matchEnded(e)
	case *events.CardDrawnEvent:
		err = r.cardDrawn(e)
	case *events.CardPlayedEvent:
		err = r.cardPlayed(e)
	case *events.BoardSnapshotEvent:
		err = r.boardSnapshot(e)
	case *events.HandSnapshotEvent:
		err = r.handSnapshot(e)
	}
	if err != nil {
		r.logger.Error().Err(err).
			Str("event_type", event.Type()).
			Str("match_id", event.MatchID()).
			Msg("Failed to record event")
	}
}

func (r *Recorder) matchStarted(e *events.MatchStartedEvent) error {
	ref, err := r.store.InsertMatch(e.MatchID(), e.Seed, e.AgentA, e.AgentB, e.VictoryScore, e.MaxTurns, e.Timestamp())
	if err != nil {
		return err
	}
	r.matchRefs[e.MatchID()] = ref
	r.drawSeq[e.MatchID()] = map[core.Side]int{}

	if err := r.store.InsertDeck(ref, core.SideA, e.DeckA); err != nil {
		return err
	}
	return r.store.InsertDeck(ref, core.SideB, e.DeckB)
}

func (r *Recorder) matchEnded(e *events.MatchEndedEvent) error {
	ref, ok := r.matchRefs[e.MatchID()]
	if !ok {
		return nil
	}
	err := r.store.FinishMatch(ref, e.Winner, e.Turns, e.UnitsPlayed, e.SpellsCast, e.PointsA, e.PointsB, e.Timestamp())
	delete(r.matchRefs, e.MatchID())
	delete(r.drawSeq, e.MatchID())
	return err
}

func (r *Recorder) cardDrawn(e *events.CardDrawnEvent) error {
	ref, ok := r.matchRefs[e.MatchID()]
	if !ok {
		return nil
	}
	seq := r.drawSeq[e.MatchID()]
	idx := seq[e.Player]
	seq[e.Player] = idx + 1
	return r.store.InsertDraw(ref, e.Player, e.Turn, idx, e.Card.Name)
}

func (r *Recorder) cardPlayed(e *events.CardPlayedEvent) error {
	ref, ok := r.matchRefs[e.MatchID()]
	if !ok {
		return nil
	}
	return r.store.InsertPlay(ref, e.Player, e.Turn, e.Card.Name, e.Action, e.Lane, e.Result)
}

func (r *Recorder) boardSnapshot(e *events.BoardSnapshotEvent) error {
	ref, ok := r.matchRefs[e.MatchID()]
	if !ok {
		return nil
	}
	return r.store.InsertBoard(ref, e.Turn, e.Lane, e.Controller, e.Contested, e.UnitsA, e.UnitsB, e.PointsA, e.PointsB)
}

func (r *Recorder) handSnapshot(e *events.HandSnapshotEvent) error {
	ref, ok := r.matchRefs[e.MatchID()]
	if !ok {
		return nil
	}
	return r.store.InsertHand(ref, e.Player, e.Turn, e.Cards)
}
