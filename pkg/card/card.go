// Package card holds the flashcard model and the helpers that keep stored
// cards in canonical shape.
package card

import (
	"encoding/json"
	"strings"
	"time"
)

// Language codes a card carries translations for.
const (
	LangEN = "en"
	LangUA = "ua"
	LangRU = "ru"
)

// DefaultLanguage is assumed for cards that do not name their language.
const DefaultLanguage = LangEN

// Translations of a card's word into each supported interface language.
type Translations struct {
	EN string `json:"en"`
	UA string `json:"ua"`
	RU string `json:"ru"`
}

// For returns the translation for lang, or "" for an unsupported language.
func (t Translations) For(lang string) string {
	switch strings.ToLower(lang) {
	case LangEN:
		return t.EN
	case LangUA:
		return t.UA
	case LangRU:
		return t.RU
	default:
		return ""
	}
}

// Card is a single flashcard. Cards are values: every change produces a new
// Card and callers replace it by ID.
type Card struct {
	ID           string       `json:"id"`
	Word         string       `json:"word"`
	Translations Translations `json:"translations"`
	Tags         []string     `json:"tags"`
	Language     string       `json:"language"`
	Stats        Stats        `json:"stats"`
	CreatedAt    Timestamp    `json:"createdAt"`
	UpdatedAt    Timestamp    `json:"updatedAt"`
}

// MarshalJSON writes nil Tags as an empty list.
func (c Card) MarshalJSON() ([]byte, error) {
	type plain Card
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return json.Marshal(plain(c))
}

// Draft carries user input for a new or edited card. Translations and Tags
// accept anything NormalizeTranslations and NormalizeTags accept.
type Draft struct {
	Word         string
	Translations any
	Tags         any
	Language     string
}

// New creates a card with a fresh ID, zeroed stats and matching timestamps.
func New(d Draft) Card {
	return d.Build(NewID(), time.Now())
}

// Build creates a card from the draft using the provided id and creation time.
func (d Draft) Build(id string, now time.Time) Card {
	lang := strings.TrimSpace(d.Language)
	if lang == "" {
		lang = DefaultLanguage
	}
	return Card{
		ID:           id,
		Word:         strings.TrimSpace(d.Word),
		Translations: NormalizeTranslations(d.Translations),
		Tags:         NormalizeTags(d.Tags),
		Language:     lang,
		Stats:        Stats{},
		CreatedAt:    Timestamp{Time: now},
		UpdatedAt:    Timestamp{Time: now},
	}
}

// Apply returns a copy of c with the draft's content and a bumped UpdatedAt.
// Identity, stats and creation time are kept.
func (c Card) Apply(d Draft, now time.Time) Card {
	next := d.Build(c.ID, now)
	next.Stats = c.Stats
	next.CreatedAt = c.CreatedAt
	return next
}

// Answer returns a copy of c with the answer recorded in its stats.
func (c Card) Answer(known bool, now time.Time) Card {
	c.Stats = c.Stats.Record(known)
	c.Tags = cloneTags(c.Tags)
	c.UpdatedAt = Timestamp{Time: now}
	return c
}

// HasTag reports whether the card carries tag, ignoring case.
func (c Card) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of c.
func (c Card) Clone() Card {
	c.Tags = cloneTags(c.Tags)
	return c
}

// CloneAll deep copies a list of cards.
func CloneAll(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = c.Clone()
	}
	return out
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	return append(make([]string, 0, len(tags)), tags...)
}
