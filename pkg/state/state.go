// Package state holds the in-memory application state and the fixed set of
// actions that change it.
package state

import (
	"slices"

	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/settings"
	"github.com/uponom/FlashcardCX/pkg/study"
)

// Mode is the interaction the user is in the middle of.
type Mode string

const (
	ModeIdle                  Mode = "idle"
	ModeRevealed              Mode = "revealed"
	ModeEditingCard           Mode = "editingCard"
	ModeConfirmingDelete      Mode = "confirmingDelete"
	ModeAwaitingRestoreChoice Mode = "awaitingRestoreChoice"
)

func (m Mode) valid() bool {
	switch m {
	case ModeIdle, ModeRevealed, ModeEditingCard, ModeConfirmingDelete, ModeAwaitingRestoreChoice:
		return true
	}
	return false
}

// UI is the interaction state that renderers draw from.
type UI struct {
	Mode Mode
	// CardID is the card being edited or pending deletion.
	CardID string
	// NextID is the card a revealed answer advances to.
	NextID string
}

// State is one immutable snapshot of the application.
type State struct {
	Flashcards   []card.Card
	Settings     settings.Settings
	SelectedTags []string
	// CurrentCardID may name a card that no longer exists until the next
	// pick; CurrentCard reports that as not found.
	CurrentCardID  string
	PersistWarning string
	UI             UI
	// Revision increases with every applied action.
	Revision uint64
}

// Initial returns an empty state with default settings.
func Initial() State {
	return State{
		Flashcards:   []card.Card{},
		Settings:     settings.Defaults(),
		SelectedTags: []string{},
		UI:           UI{Mode: ModeIdle},
	}
}

// FilteredCards returns the cards visible under the selected tags.
func (s State) FilteredCards() []card.Card {
	return study.FilterByTags(s.Flashcards, s.SelectedTags)
}

// AvailableTags returns every tag in use.
func (s State) AvailableTags() []string {
	return study.AvailableTags(s.Flashcards)
}

// CurrentCard resolves CurrentCardID.
func (s State) CurrentCard() (card.Card, bool) {
	return study.Find(s.Flashcards, s.CurrentCardID)
}

func (s State) clone() State {
	s.Flashcards = card.CloneAll(s.Flashcards)
	s.Settings = s.Settings.Clone()
	s.SelectedTags = slices.Clone(s.SelectedTags)
	return s
}
