package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uponom/FlashcardCX/pkg/card"
)

type testConfig struct {
	path  string
	quota int64
}

func (t testConfig) BasePath() string {
	return t.path
}

func (t testConfig) QuotaBytes() int64 {
	return t.quota
}

func TestPersistenceWatchEmitsRecordChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	require.NoError(t, err)

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, p.SaveFlashcards([]card.Card{card.New(card.Draft{Word: "hello"})}))

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			assert.Equal(t, KeyFlashcards, evt.Key)
			return
		case <-deadline:
			t.Fatal("timed out waiting for record change event")
		}
	}
}

func TestPersistenceWatchClosesOnCancel(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-ch:
		for ok {
			_, ok = <-ch
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch channel not closed")
	}
}

func TestKeyForPath(t *testing.T) {
	p := &persistence{basePath: "/data/cards"}
	assert.Equal(t, KeyFlashcards, p.keyForPath("/data/cards/flashcards.json"))
	assert.Equal(t, KeySettings, p.keyForPath("/data/cards/settings.json"))
	assert.Empty(t, p.keyForPath("/data/cards/flashcards.json.swp"))
	assert.Empty(t, p.keyForPath("/data/cards/notes.json"))
	assert.Empty(t, p.keyForPath("/data/other/flashcards.json"))
}

func TestEventThrottleCoalesces(t *testing.T) {
	throttle := newEventThrottle(20 * time.Millisecond)
	defer throttle.Stop()

	var mu sync.Mutex
	var got []Event
	send := func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, ev)
	}

	for i := 0; i < 10; i++ {
		throttle.Enqueue(Event{Type: EventRecordChanged, Key: KeyFlashcards}, send)
	}
	throttle.Enqueue(Event{Type: EventRecordChanged, Key: KeySettings}, send)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestEventThrottleStopDropsPending(t *testing.T) {
	throttle := newEventThrottle(20 * time.Millisecond)
	sent := make(chan Event, 1)
	throttle.Enqueue(Event{Type: EventInvalidated}, func(ev Event) { sent <- ev })
	throttle.Stop()

	select {
	case <-sent:
		t.Fatal("event delivered after Stop")
	case <-time.After(60 * time.Millisecond):
	}
}
