// Package backup exports and restores the full collection as a JSON file.
package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/settings"
)

// SchemaVersion is the only backup version Restore accepts.
const SchemaVersion = 1

// Payload is the backup file layout.
type Payload struct {
	SchemaVersion int            `json:"schemaVersion"`
	ExportedAt    string         `json:"exportedAt"`
	Flashcards    []card.Card    `json:"flashcards"`
	Settings      map[string]any `json:"settings"`
}

// Export renders cards and settings as an indented backup document.
func Export(cards []card.Card, s settings.Settings, now time.Time) ([]byte, error) {
	if cards == nil {
		cards = []card.Card{}
	}
	payload := Payload{
		SchemaVersion: SchemaVersion,
		ExportedAt:    card.Timestamp{Time: now}.String(),
		Flashcards:    cards,
		Settings:      s.Map(),
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("backup: encode: %w", err)
	}
	return data, nil
}

// Parse decodes a backup document into untyped JSON for Validate and
// PrepareIncoming.
func Parse(data []byte) (any, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("backup: parse: %w", err)
	}
	return v, nil
}

// Validate reports whether payload is a backup of exactly schemaVersion with
// a flashcards list and a settings object.
func Validate(payload any, schemaVersion int) bool {
	m, ok := payload.(map[string]any)
	if !ok || m == nil {
		return false
	}
	if !versionEquals(m["schemaVersion"], schemaVersion) {
		return false
	}
	if _, ok := m["flashcards"].([]any); !ok {
		return false
	}
	s, ok := m["settings"].(map[string]any)
	return ok && s != nil
}

func versionEquals(v any, want int) bool {
	switch n := v.(type) {
	case float64:
		return n == float64(want)
	case int:
		return n == want
	case int64:
		return n == int64(want)
	case json.Number:
		i, err := n.Int64()
		return err == nil && i == int64(want)
	default:
		return false
	}
}

// Key fingerprints a card by its content so the same card exported from
// another install matches despite a different ID.
func Key(c card.Card) string {
	t := card.NormalizeTranslations(c.Translations)
	lang := c.Language
	if lang == "" {
		lang = card.DefaultLanguage
	}
	return strings.Join([]string{
		normalizeKeyPart(c.Word),
		normalizeKeyPart(t.EN),
		normalizeKeyPart(t.UA),
		normalizeKeyPart(t.RU),
		normalizeKeyPart(lang),
	}, "|")
}

func normalizeKeyPart(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Merge folds incoming into existing by fingerprint. A match keeps the
// existing card, including its ID and stats, and adds the incoming tags; new
// cards are appended. Within existing, a later duplicate replaces an earlier
// one in the earlier one's position.
func Merge(existing, incoming []card.Card) []card.Card {
	order := make([]string, 0, len(existing)+len(incoming))
	byKey := make(map[string]card.Card, len(existing)+len(incoming))

	for _, c := range existing {
		key := Key(c)
		if _, ok := byKey[key]; !ok {
			order = append(order, key)
		}
		byKey[key] = c.Clone()
	}
	for _, c := range incoming {
		key := Key(c)
		current, ok := byKey[key]
		if !ok {
			order = append(order, key)
			byKey[key] = c.Clone()
			continue
		}
		current.Tags = unionTags(current.Tags, c.Tags)
		byKey[key] = current
	}

	out := make([]card.Card, 0, len(order))
	for _, key := range order {
		out = append(out, byKey[key])
	}
	return out
}

func unionTags(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, tag := range list {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}
