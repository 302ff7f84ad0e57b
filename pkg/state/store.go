package state

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/settings"
)

var (
	errUnknownKind = errors.New("unknown action kind")
	errBadPayload  = errors.New("unexpected payload")
)

// Listener receives the state after every applied action.
type Listener func(State)

// Store owns the current State. Actions are applied under a lock and
// listeners run after the lock is released, in subscription order, with the
// snapshot their action produced.
type Store struct {
	log *zap.Logger

	mu        sync.Mutex
	state     State
	listeners []subscription
	nextSub   int
}

type subscription struct {
	id int
	fn Listener
}

// NewStore creates a store holding initial.
func NewStore(initial State, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{log: log, state: initial.clone()}
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn and returns a func that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	id := s.nextSub
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.listeners = slices.DeleteFunc(s.listeners, func(sub subscription) bool {
				return sub.id == id
			})
		})
	}
}

// Dispatch applies a. Unknown kinds and malformed payloads are logged and
// leave the state unchanged; Dispatch then returns false.
func (s *Store) Dispatch(a Action) bool {
	s.mu.Lock()
	next, err := reduce(s.state, a)
	if err != nil {
		s.mu.Unlock()
		s.log.Warn("state: action rejected",
			zap.String("kind", string(a.Kind)),
			zap.String("payload", fmt.Sprintf("%T", a.Payload)),
			zap.Error(err))
		return false
	}
	next.Revision = s.state.Revision + 1
	s.state = next
	snapshot := next.clone()
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, sub := range listeners {
		sub.fn(snapshot.clone())
	}
	return true
}

// reduce returns the state after a. The previous state is never modified.
func reduce(prev State, a Action) (State, error) {
	next := prev
	switch a.Kind {
	case KindSetFlashcards:
		cards, ok := a.Payload.([]card.Card)
		if !ok {
			return prev, errBadPayload
		}
		next.Flashcards = card.CloneAll(cards)
		if next.Flashcards == nil {
			next.Flashcards = []card.Card{}
		}
	case KindAddFlashcard:
		c, ok := a.Payload.(card.Card)
		if !ok {
			return prev, errBadPayload
		}
		next.Flashcards = append(card.CloneAll(prev.Flashcards), c.Clone())
	case KindUpdateFlashcard:
		c, ok := a.Payload.(card.Card)
		if !ok {
			return prev, errBadPayload
		}
		cards := make([]card.Card, len(prev.Flashcards))
		for i, existing := range prev.Flashcards {
			if existing.ID == c.ID {
				cards[i] = c.Clone()
			} else {
				cards[i] = existing
			}
		}
		next.Flashcards = cards
	case KindSetSettings:
		switch p := a.Payload.(type) {
		case map[string]any:
			next.Settings, _ = prev.Settings.Merge(p)
		case settings.Settings:
			next.Settings = p.Clone()
		default:
			return prev, errBadPayload
		}
	case KindSetTags:
		tags, ok := a.Payload.([]string)
		if !ok {
			return prev, errBadPayload
		}
		next.SelectedTags = slices.Clone(tags)
		if next.SelectedTags == nil {
			next.SelectedTags = []string{}
		}
	case KindSetCurrent:
		id, ok := a.Payload.(string)
		if !ok {
			return prev, errBadPayload
		}
		next.CurrentCardID = id
	case KindSetWarning:
		msg, ok := a.Payload.(string)
		if !ok {
			return prev, errBadPayload
		}
		next.PersistWarning = msg
	case KindSetUI:
		ui, ok := a.Payload.(UI)
		if !ok || !ui.Mode.valid() {
			return prev, errBadPayload
		}
		next.UI = ui
	default:
		return prev, errUnknownKind
	}
	return next, nil
}
