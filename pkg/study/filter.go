package study

import (
	"sort"
	"strings"

	"github.com/uponom/FlashcardCX/pkg/card"
)

// FilterByTags returns the cards carrying at least one of the selected tags,
// compared without case. No selection means every card.
func FilterByTags(cards []card.Card, selected []string) []card.Card {
	if len(selected) == 0 {
		return cards
	}
	out := make([]card.Card, 0, len(cards))
	for _, c := range cards {
		for _, tag := range selected {
			if c.HasTag(tag) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// AvailableTags lists every tag in use, lowercased, unique and sorted.
func AvailableTags(cards []card.Card) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, c := range cards {
		for _, tag := range c.Tags {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

// Find returns the card with id.
func Find(cards []card.Card, id string) (card.Card, bool) {
	if id == "" {
		return card.Card{}, false
	}
	for _, c := range cards {
		if c.ID == id {
			return c, true
		}
	}
	return card.Card{}, false
}
