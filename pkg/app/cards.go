package app

import (
	"context"
	"strings"

	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/state"
	"github.com/uponom/FlashcardCX/pkg/study"
)

// Create adds a new card and saves the collection.
func (s *Service) Create(_ context.Context, d card.Draft) (card.Card, error) {
	if err := s.ready(); err != nil {
		return card.Card{}, err
	}
	if strings.TrimSpace(d.Word) == "" {
		return card.Card{}, ErrWordRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := d.Build(s.newID(), s.now())
	s.Store.Dispatch(state.AddFlashcard(c))
	s.persistCards()
	s.ensureCurrentLocked()
	return c, nil
}

// Update replaces the content of the card with id, keeping its stats.
func (s *Service) Update(_ context.Context, id string, d card.Draft) (card.Card, error) {
	if err := s.ready(); err != nil {
		return card.Card{}, err
	}
	if strings.TrimSpace(d.Word) == "" {
		return card.Card{}, ErrWordRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.Store.State()
	existing, ok := study.Find(st.Flashcards, id)
	if !ok {
		return card.Card{}, ErrNotFound
	}
	updated := existing.Apply(d, s.now())
	s.Store.Dispatch(state.UpdateFlashcard(updated))
	if st.UI.Mode == state.ModeEditingCard && st.UI.CardID == id {
		s.Store.Dispatch(state.SetUI(state.UI{Mode: state.ModeIdle}))
	}
	s.persistCards()
	s.ensureCurrentLocked()
	return updated, nil
}

// Delete removes the card with id. When it was the current card another one
// is picked from the visible cards.
func (s *Service) Delete(_ context.Context, id string) (card.Card, error) {
	if err := s.ready(); err != nil {
		return card.Card{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.Store.State()
	removed, ok := study.Find(st.Flashcards, id)
	if !ok {
		return card.Card{}, ErrNotFound
	}
	remaining := make([]card.Card, 0, len(st.Flashcards)-1)
	for _, c := range st.Flashcards {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	s.Store.Dispatch(state.SetFlashcards(remaining))
	if st.UI.CardID == id || st.UI.NextID == id || st.UI.Mode == state.ModeConfirmingDelete {
		s.scheduler.Cancel()
		s.Store.Dispatch(state.SetUI(state.UI{Mode: state.ModeIdle}))
	}
	if st.CurrentCardID == id {
		s.pickLocked()
	}
	s.persistCards()
	return removed, nil
}

// RequestDelete asks for confirmation before deleting id.
func (s *Service) RequestDelete(id string) error {
	return s.enterMode(state.ModeConfirmingDelete, id)
}

// BeginEdit marks id as being edited.
func (s *Service) BeginEdit(id string) error {
	return s.enterMode(state.ModeEditingCard, id)
}

// CancelInteraction returns to the idle study view.
func (s *Service) CancelInteraction() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Store.State().UI.Mode == state.ModeAwaitingRestoreChoice {
		s.pendingRestore = nil
	}
	s.Store.Dispatch(state.SetUI(state.UI{Mode: state.ModeIdle}))
}

func (s *Service) enterMode(mode state.Mode, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := study.Find(s.Store.State().Flashcards, id); !ok {
		return ErrNotFound
	}
	s.scheduler.Cancel()
	s.Store.Dispatch(state.SetUI(state.UI{Mode: mode, CardID: id}))
	return nil
}
