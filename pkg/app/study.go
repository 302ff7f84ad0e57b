package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/state"
	"github.com/uponom/FlashcardCX/pkg/study"
)

// SetSelectedTags replaces the tag filter. If the current card is no longer
// visible a new one is picked.
func (s *Service) SetSelectedTags(tags any) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := card.NormalizeTags(tags)
	s.Store.Dispatch(state.SetTags(normalized))
	s.ensureCurrentLocked()
	return normalized
}

// Next returns the card being studied, picking one when there is none or
// the current card is gone or filtered out.
func (s *Service) Next() (card.Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureCurrentLocked()
}

// Pick draws a new current card from the visible cards.
func (s *Service) Pick() (card.Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pickLocked()
}

// Answer records whether the user knew card id. The card's stats and
// updatedAt change, the next card is chosen, and the answered card stays
// revealed until Advance or until AdvanceDelay passes.
func (s *Service) Answer(_ context.Context, id string, known bool) (card.Card, error) {
	if err := s.ready(); err != nil {
		return card.Card{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := study.Find(s.Store.State().Flashcards, id)
	if !ok {
		return card.Card{}, ErrNotFound
	}
	answered := existing.Answer(known, s.now())
	s.Store.Dispatch(state.UpdateFlashcard(answered))
	s.persistCards()

	st := s.Store.State()
	next, _ := study.PickNext(st.FilteredCards(), st.Settings, s.Rand)
	s.Store.Dispatch(state.SetCurrent(id))
	s.Store.Dispatch(state.SetUI(state.UI{Mode: state.ModeRevealed, CardID: id, NextID: next.ID}))

	if s.AdvanceDelay <= 0 {
		s.advanceLocked()
		return answered, nil
	}
	s.scheduler.Schedule(s.AdvanceDelay, func(token study.Token) {
		s.mu.Lock()
		defer s.mu.Unlock()
		// A newer answer or a manual advance may have run while this
		// callback waited for the lock.
		if !s.scheduler.Claim(token) {
			return
		}
		s.Log.Debug("app: auto-advance", zap.String("from", id))
		s.advanceLocked()
	})
	return answered, nil
}

// Advance moves from a revealed answer to the next card without waiting for
// the timer.
func (s *Service) Advance() (card.Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduler.Cancel()
	return s.advanceLocked()
}

// AdvancePending reports whether an automatic advance is scheduled.
func (s *Service) AdvancePending() bool {
	return s.scheduler.Pending()
}

// Close stops the auto-advance timer.
func (s *Service) Close() {
	s.scheduler.Cancel()
}

func (s *Service) advanceLocked() (card.Card, bool) {
	st := s.Store.State()
	if st.UI.Mode != state.ModeRevealed {
		return s.ensureCurrentLocked()
	}
	s.Store.Dispatch(state.SetUI(state.UI{Mode: state.ModeIdle}))
	if next, ok := study.Find(st.FilteredCards(), st.UI.NextID); ok {
		s.Store.Dispatch(state.SetCurrent(next.ID))
		return next, true
	}
	return s.pickLocked()
}

// ensureCurrentLocked keeps CurrentCardID pointing at a visible card.
func (s *Service) ensureCurrentLocked() (card.Card, bool) {
	st := s.Store.State()
	if c, ok := study.Find(st.FilteredCards(), st.CurrentCardID); ok {
		return c, true
	}
	return s.pickLocked()
}

func (s *Service) pickLocked() (card.Card, bool) {
	st := s.Store.State()
	next, ok := study.PickNext(st.FilteredCards(), st.Settings, s.Rand)
	s.Store.Dispatch(state.SetCurrent(next.ID))
	return next, ok
}
