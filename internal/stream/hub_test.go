package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/arena-klein/courtbooker/internal/domain"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestHub_BroadcastReachesSubscribers(t *testing.T) {
	h := NewHub(nil, "events", newTestLogger(t))

	ch1, unsub1 := h.Subscribe()
	ch2, unsub2 := h.Subscribe()
	defer unsub1()
	defer unsub2()

	ev := domain.Event{Entity: domain.EntityBooking, Action: domain.ActionCreated, ID: "b1"}
	h.broadcast(ev)

	require.Len(t, ch1, 1)
	require.Len(t, ch2, 1)
	assert.Equal(t, ev, <-ch1)
	assert.Equal(t, ev, <-ch2)
}

func TestHub_UnsubscribeStopsDelivery(t *testing.T) {
	h := NewHub(nil, "events", newTestLogger(t))

	ch, unsub := h.Subscribe()
	unsub()

	h.broadcast(domain.Event{Entity: domain.EntityBooking, Action: domain.ActionCancelled, ID: "b1"})

	assert.Empty(t, ch)
}

func TestHub_SlowSubscriberIsSkipped(t *testing.T) {
	h := NewHub(nil, "events", newTestLogger(t))

	ch, unsub := h.Subscribe()
	defer unsub()

	// Overflow the buffer, broadcast must not block.
	for i := 0; i < 20; i++ {
		h.broadcast(domain.Event{Entity: domain.EntitySignUp, Action: domain.ActionCreated, ID: "s1"})
	}

	assert.Len(t, ch, cap(ch))
}
