package card

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlashcard(t *testing.T) {
	c := New(Draft{
		Word:         "hola",
		Translations: map[string]any{"en": "hello", "ua": "привіт", "ru": "привет"},
		Tags:         []any{"greet"},
		Language:     "es",
	})

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, Stats{}, c.Stats)
	assert.Equal(t, "es", c.Language)
	assert.Equal(t, []string{"greet"}, c.Tags)
	assert.Equal(t, Translations{EN: "hello", UA: "привіт", RU: "привет"}, c.Translations)
	assert.False(t, c.CreatedAt.IsZero())
	assert.True(t, c.CreatedAt.Equal(c.UpdatedAt.Time))
}

func TestNewDefaultsLanguage(t *testing.T) {
	c := New(Draft{Word: "  cat  ", Translations: "кіт"})
	assert.Equal(t, "cat", c.Word)
	assert.Equal(t, DefaultLanguage, c.Language)
	assert.Equal(t, Translations{EN: "кіт", UA: "кіт", RU: "кіт"}, c.Translations)
	assert.NotNil(t, c.Tags)
	assert.Empty(t, c.Tags)
}

func TestNewIDsAreUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestFallbackIDsAreUnique(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	a, b := fallbackID(now), fallbackID(now)
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "fc_1700000000000_"))
}

func TestApplyKeepsIdentity(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	c := Draft{Word: "dog", Translations: "пес"}.Build("id-1", created)
	c.Stats = Stats{Know: 3, RecentKnows: 3}

	later := created.Add(time.Hour)
	next := c.Apply(Draft{Word: "hound", Translations: "гончак", Tags: "Animals"}, later)

	assert.Equal(t, "id-1", next.ID)
	assert.Equal(t, "hound", next.Word)
	assert.Equal(t, []string{"animals"}, next.Tags)
	assert.Equal(t, c.Stats, next.Stats)
	assert.True(t, next.CreatedAt.Equal(created))
	assert.True(t, next.UpdatedAt.Equal(later))
	assert.Equal(t, "dog", c.Word, "original card must not change")
}

func TestAnswerDoesNotShareTags(t *testing.T) {
	c := New(Draft{Word: "sun", Tags: "sky"})
	next := c.Answer(true, time.Now())
	next.Tags[0] = "changed"
	assert.Equal(t, "sky", c.Tags[0])
	assert.Equal(t, 1, next.Stats.Know)
	assert.Equal(t, 0, c.Stats.Know)
}

func TestEmptyTagsStayAList(t *testing.T) {
	c := New(Draft{Word: "bird"})
	require.NotNil(t, c.Tags)
	assert.NotNil(t, c.Clone().Tags)
	assert.NotNil(t, CloneAll([]Card{c})[0].Tags)

	for _, tc := range []Card{c, {ID: "x", Word: "owl"}} {
		data, err := json.Marshal(tc)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"tags":[]`)
	}
}

func TestHasTag(t *testing.T) {
	c := Card{Tags: []string{"food", "travel"}}
	assert.True(t, c.HasTag("TRAVEL"))
	assert.False(t, c.HasTag("work"))
}

func TestTimestampJSON(t *testing.T) {
	ts := Timestamp{Time: time.Date(2024, 5, 6, 7, 8, 9, 10*int(time.Millisecond), time.UTC)}
	b, err := ts.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-06T07:08:09.010Z"`, string(b))

	var back Timestamp
	require.NoError(t, back.UnmarshalJSON(b))
	assert.True(t, back.Equal(ts.Time))

	var bad Timestamp
	require.NoError(t, bad.UnmarshalJSON([]byte(`"yesterday"`)))
	assert.True(t, bad.IsZero())

	zero, err := Timestamp{}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `""`, string(zero))
}
