package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventRecordChanged indicates the record named by Event.Key was written
	// or removed.
	EventRecordChanged EventType = iota

	// EventInvalidated signals that the watcher could not classify a change
	// and callers should reload everything.
	EventInvalidated
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Key  string
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid dropping events. The channel is closed once ctx is
// done or the watcher stops.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(p.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				p.log.Debug("store: watcher close", zap.Error(err))
			}
		}()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Consumer is behind; it reloads on the next event anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				p.log.Debug("store: watcher error", zap.Error(err))
				throttle.Enqueue(Event{Type: EventInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if key := p.keyForPath(evt.Name); key != "" {
					throttle.Enqueue(Event{Type: EventRecordChanged, Key: key}, send)
				}
			}
		}
	}()

	return events, nil
}

// keyForPath maps a file in the base directory back to its record key. Files
// that are not records (temp files, editors' swap files) map to "".
func (p *persistence) keyForPath(path string) string {
	if filepath.Dir(filepath.Clean(path)) != filepath.Clean(p.basePath) {
		return ""
	}
	name := filepath.Base(path)
	if !strings.HasSuffix(name, fileExt) {
		return ""
	}
	switch key := strings.TrimSuffix(name, fileExt); key {
	case KeyFlashcards, KeySettings:
		return key
	default:
		return ""
	}
}

// eventThrottle coalesces rapid change notifications so a burst of writes
// produces one event per key.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[Event]struct{}
	delay   time.Duration
	stopped bool

	// sending is held while a flush delivers events so Stop can wait for it.
	sending sync.Mutex
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[Event]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.pending[ev] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

func (t *eventThrottle) flush(send func(Event)) {
	t.sending.Lock()
	defer t.sending.Unlock()

	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	pending := t.pending
	t.pending = make(map[Event]struct{})
	t.timer = nil
	t.mu.Unlock()

	for ev := range pending {
		send(ev)
	}
}

// Stop cancels pending events and waits for an in-flight flush, after which
// send is never called again.
func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()

	t.sending.Lock()
	t.sending.Unlock()
}
