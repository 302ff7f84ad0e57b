package state

import (
	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/settings"
)

// Kind names an action.
type Kind string

const (
	KindSetFlashcards   Kind = "flashcards/set"
	KindAddFlashcard    Kind = "flashcards/add"
	KindUpdateFlashcard Kind = "flashcards/update"
	KindSetSettings     Kind = "settings/set"
	KindSetTags         Kind = "filters/setTags"
	KindSetCurrent      Kind = "study/setCurrent"
	KindSetWarning      Kind = "persist/setWarning"
	KindSetUI           Kind = "ui/setMode"
)

// Action is a request to change the state. Payload types depend on Kind; use
// the constructors below.
type Action struct {
	Kind    Kind
	Payload any
}

// SetFlashcards replaces every card.
func SetFlashcards(cards []card.Card) Action {
	return Action{Kind: KindSetFlashcards, Payload: cards}
}

// AddFlashcard appends one card.
func AddFlashcard(c card.Card) Action {
	return Action{Kind: KindAddFlashcard, Payload: c}
}

// UpdateFlashcard replaces the card with the same ID.
func UpdateFlashcard(c card.Card) Action {
	return Action{Kind: KindUpdateFlashcard, Payload: c}
}

// MergeSettings shallow-merges a partial settings record.
func MergeSettings(patch map[string]any) Action {
	return Action{Kind: KindSetSettings, Payload: patch}
}

// ReplaceSettings sets every setting.
func ReplaceSettings(s settings.Settings) Action {
	return Action{Kind: KindSetSettings, Payload: s}
}

// SetTags replaces the selected tag filter.
func SetTags(tags []string) Action {
	return Action{Kind: KindSetTags, Payload: tags}
}

// SetCurrent points the study view at a card. An empty id clears it.
func SetCurrent(id string) Action {
	return Action{Kind: KindSetCurrent, Payload: id}
}

// SetWarning sets the persistence warning. An empty message clears it.
func SetWarning(msg string) Action {
	return Action{Kind: KindSetWarning, Payload: msg}
}

// SetUI moves the interaction state machine.
func SetUI(ui UI) Action {
	return Action{Kind: KindSetUI, Payload: ui}
}
