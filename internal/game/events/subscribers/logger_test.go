package subscribers

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/lanebound/lanebound/internal/game/events"
)

func TestLoggerSubscriberID(t *testing.T) {
	ls := NewLoggerSubscriber("logger-1", zerolog.Nop())
	assert.Equal(t, "logger-1", ls.ID())
}

func TestLoggerSubscriberFilter(t *testing.T) {
	ls := NewLoggerSubscriber("logger-1", zerolog.Nop())

	assert.True(t, ls.InterestedIn(events.TypeMatchStarted), "no filter means everything")

	ls.SetEventFilter([]string{events.TypeMatchEnded})
	assert.False(t, ls.InterestedIn(events.TypeMatchStarted))
	assert.True(t, ls.InterestedIn(events.TypeMatchEnded))

	ls.SetEventFilter(nil)
	assert.True(t, ls.InterestedIn(events.TypeCardDrawn))
}

func TestLoggerSubscriberHandlesAllEventShapes(t *testing.T) {
	ls := NewLoggerSubscriber("logger-1", zerolog.Nop())

	assert.NotPanics(t, func() {
		ls.HandleEvent(events.NewMatchStartedEvent("m1", 1, "a", "b", nil, nil, 8, 40))
		ls.HandleEvent(events.NewMatchEndedEvent("m1", "A", 10, 2, 1, 8, 3))
		ls.HandleEvent(events.NewBoardSnapshotEvent("m1", 1, 0, nil, nil, "", false, 0, 0))
	})
}
