package study

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uponom/FlashcardCX/pkg/card"
)

func TestFilterByTags(t *testing.T) {
	cards := []card.Card{
		{ID: "1", Tags: []string{"food", "travel"}},
		{ID: "2", Tags: []string{"work"}},
		{ID: "3"},
	}

	got := FilterByTags(cards, []string{"TRAVEL"})
	if assert.Len(t, got, 1) {
		assert.Equal(t, "1", got[0].ID)
	}

	assert.Len(t, FilterByTags(cards, nil), 3)
	assert.Len(t, FilterByTags(cards, []string{"work", "food"}), 2)
	assert.Empty(t, FilterByTags(cards, []string{"music"}))
}

func TestAvailableTags(t *testing.T) {
	cards := []card.Card{
		{ID: "1", Tags: []string{"Food", "travel"}},
		{ID: "2", Tags: []string{"work", "travel"}},
	}
	assert.Equal(t, []string{"food", "travel", "work"}, AvailableTags(cards))
	assert.Empty(t, AvailableTags(nil))
}

func TestFind(t *testing.T) {
	cards := []card.Card{{ID: "1"}, {ID: "2"}}
	c, ok := Find(cards, "2")
	assert.True(t, ok)
	assert.Equal(t, "2", c.ID)

	_, ok = Find(cards, "9")
	assert.False(t, ok)
	_, ok = Find(cards, "")
	assert.False(t, ok)
}
