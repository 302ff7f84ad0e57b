package backup

import (
	"github.com/uponom/FlashcardCX/pkg/card"
)

// Prepared is a validated, migrated backup ready to apply.
type Prepared struct {
	OK       bool
	Cards    []card.Card
	Settings map[string]any
	// Skipped reports records that could not be read as cards.
	Skipped error
}

// PrepareIncoming validates payload, migrates its cards and gives any card
// without an ID a fresh one from idFactory. OK is false when validation fails;
// nothing else is set then.
func PrepareIncoming(payload any, schemaVersion int, idFactory func() string) Prepared {
	if !Validate(payload, schemaVersion) {
		return Prepared{Cards: []card.Card{}}
	}
	if idFactory == nil {
		idFactory = card.NewID
	}
	m := payload.(map[string]any)

	migrated := card.Migrate(m["flashcards"])
	cards, skipped := card.Decode(migrated.Records)
	for i := range cards {
		if cards[i].ID == "" {
			cards[i].ID = idFactory()
		}
	}
	return Prepared{
		OK:       true,
		Cards:    cards,
		Settings: m["settings"].(map[string]any),
		Skipped:  skipped,
	}
}
