package backup

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/settings"
)

func TestValidate(t *testing.T) {
	valid := map[string]any{"schemaVersion": 1, "flashcards": []any{}, "settings": map[string]any{}}
	assert.True(t, Validate(valid, 1))

	wrongVersion := map[string]any{"schemaVersion": 2, "flashcards": []any{}, "settings": map[string]any{}}
	assert.False(t, Validate(wrongVersion, 1))

	tests := map[string]any{
		"nil":              nil,
		"list":             []any{},
		"string version":   map[string]any{"schemaVersion": "1", "flashcards": []any{}, "settings": map[string]any{}},
		"missing cards":    map[string]any{"schemaVersion": 1, "settings": map[string]any{}},
		"cards not a list": map[string]any{"schemaVersion": 1, "flashcards": map[string]any{}, "settings": map[string]any{}},
		"null settings":    map[string]any{"schemaVersion": 1, "flashcards": []any{}, "settings": nil},
		"fractional":       map[string]any{"schemaVersion": 1.5, "flashcards": []any{}, "settings": map[string]any{}},
	}
	for name, payload := range tests {
		assert.False(t, Validate(payload, 1), name)
	}
}

func TestValidateParsedJSON(t *testing.T) {
	payload, err := Parse([]byte("\xef\xbb\xbf" + `{"schemaVersion":1,"exportedAt":"x","flashcards":[],"settings":{}}`))
	require.NoError(t, err)
	assert.True(t, Validate(payload, SchemaVersion))

	_, err = Parse([]byte(`{"schemaVersion":`))
	assert.Error(t, err)
}

func TestKey(t *testing.T) {
	a := card.Card{Word: "  Hello   World ", Translations: card.Translations{EN: "Hi", UA: "Привіт", RU: "Привет"}}
	b := card.Card{Word: "hello world", Translations: card.Translations{EN: "hi ", UA: "привіт", RU: "привет"}, Language: "EN"}
	assert.Equal(t, "hello world|hi|привіт|привет|en", Key(a))
	assert.Equal(t, Key(a), Key(b))

	b.Language = "es"
	assert.NotEqual(t, Key(a), Key(b))
}

func TestMergeWithItself(t *testing.T) {
	cards := []card.Card{
		{ID: "1", Word: "cat", Tags: []string{"pets"}},
		{ID: "2", Word: "dog", Tags: []string{"pets"}},
		{ID: "3", Word: "sun"},
	}
	merged := Merge(cards, cards)
	require.Len(t, merged, len(cards))
	for i := range cards {
		assert.Equal(t, Key(cards[i]), Key(merged[i]))
		assert.Equal(t, cards[i].Tags, merged[i].Tags)
	}
}

func TestMergeUnionsTagsAndKeepsStats(t *testing.T) {
	existing := []card.Card{{ID: "old", Word: "cat", Tags: []string{"pets"}, Stats: card.Stats{Know: 4, RecentKnows: 4}}}
	incoming := []card.Card{
		{ID: "new", Word: "Cat", Tags: []string{"animals", "pets"}},
		{ID: "x", Word: "owl", Tags: []string{"birds"}},
	}

	merged := Merge(existing, incoming)
	require.Len(t, merged, 2)
	assert.Equal(t, "old", merged[0].ID)
	assert.Equal(t, []string{"pets", "animals"}, merged[0].Tags)
	assert.Equal(t, 4, merged[0].Stats.Know)
	assert.Equal(t, "x", merged[1].ID)

	assert.Equal(t, []string{"pets"}, existing[0].Tags, "inputs must not change")
}

func TestMergeDuplicatesWithinExisting(t *testing.T) {
	existing := []card.Card{
		{ID: "first", Word: "cat"},
		{ID: "other", Word: "dog"},
		{ID: "second", Word: "cat"},
	}
	merged := Merge(existing, nil)
	require.Len(t, merged, 2)
	assert.Equal(t, "second", merged[0].ID)
	assert.Equal(t, "other", merged[1].ID)
}

func TestPrepareIncoming(t *testing.T) {
	payload, err := Parse([]byte(`{
		"schemaVersion": 1,
		"flashcards": [
			{"id": "keep", "word": "cat", "translation": "кіт"},
			{"word": "dog", "translations": {"en": "dog"}},
			"junk"
		],
		"settings": {"theme": "dark"}
	}`))
	require.NoError(t, err)

	n := 0
	ids := func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
	prepared := PrepareIncoming(payload, SchemaVersion, ids)
	require.True(t, prepared.OK)
	require.Len(t, prepared.Cards, 2)
	assert.Error(t, prepared.Skipped)
	assert.Equal(t, "keep", prepared.Cards[0].ID)
	assert.Equal(t, "кіт", prepared.Cards[0].Translations.UA)
	assert.Equal(t, "gen-1", prepared.Cards[1].ID)
	assert.Equal(t, map[string]any{"theme": "dark"}, prepared.Settings)

	bad := PrepareIncoming(map[string]any{"schemaVersion": 2.0, "flashcards": []any{}, "settings": map[string]any{}}, SchemaVersion, ids)
	assert.False(t, bad.OK)
	assert.Empty(t, bad.Cards)
}

func TestExportRoundTrip(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	cards := []card.Card{
		card.Draft{Word: "cat", Translations: "кіт", Tags: "pets"}.Build("id-1", now),
		{ID: "id-2", Word: "bird", Language: "en"},
	}
	s := settings.Defaults()
	s.Theme = settings.ThemeDark

	data, err := Export(cards, s, now)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"schemaVersion\": 1,")
	assert.Contains(t, string(data), `"exportedAt": "2025-01-02T03:04:05.000Z"`)
	assert.Contains(t, string(data), `"tags": []`)
	assert.NotContains(t, string(data), `"tags": null`)

	payload, err := Parse(data)
	require.NoError(t, err)
	prepared := PrepareIncoming(payload, SchemaVersion, nil)
	require.True(t, prepared.OK)
	require.NoError(t, prepared.Skipped)
	require.Len(t, prepared.Cards, 2)
	assert.Equal(t, cards[0].ID, prepared.Cards[0].ID)
	assert.Empty(t, prepared.Cards[1].Tags)
	assert.Equal(t, Key(cards[0]), Key(prepared.Cards[0]))
	assert.Equal(t, settings.ThemeDark, settings.Decode(prepared.Settings).Theme)
}
