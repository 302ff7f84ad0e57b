// Package study chooses which flashcard to show next.
//
// Cards answered wrong recently are drawn more often than cards answered
// right. Weights only look at the recent answer window, never at lifetime
// totals.
package study

import (
	"math/rand"

	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/settings"
)

// MinWeight keeps every card reachable.
const MinWeight = 0.01

// Rand returns a uniform float in [0,1).
type Rand func() float64

// DefaultRand is the non-seeded uniform source used when no Rand is given.
func DefaultRand() float64 {
	return rand.Float64()
}

// ComputeWeights returns one sampling weight per card, in the same order.
// A card's weight is (d+1)/(k+1) over its recent don't-know and know counts,
// doubled for never answered cards when prioritizeUnseen is set, and never
// below MinWeight.
func ComputeWeights(cards []card.Card, prioritizeUnseen bool) []float64 {
	weights := make([]float64, len(cards))
	for i, c := range cards {
		k := float64(clamp(c.Stats.RecentKnows))
		d := float64(clamp(c.Stats.RecentDontKnows))
		w := (d + 1) / (k + 1)
		if prioritizeUnseen && k+d == 0 {
			w *= 2
		}
		if w < MinWeight {
			w = MinWeight
		}
		weights[i] = w
	}
	return weights
}

// SelectWeighted draws one card with probability proportional to its weight.
// It reports false only when cards is empty.
func SelectWeighted(cards []card.Card, weights []float64, rng Rand) (card.Card, bool) {
	if len(cards) == 0 {
		return card.Card{}, false
	}
	if rng == nil {
		rng = DefaultRand
	}

	var total float64
	for i := range cards {
		total += weightAt(weights, i)
	}
	if total <= 0 {
		return cards[0], true
	}

	remaining := rng() * total
	for i, c := range cards {
		remaining -= weightAt(weights, i)
		if remaining <= 0 {
			return c, true
		}
	}
	// Rounding can leave a sliver after the last subtraction.
	return cards[len(cards)-1], true
}

// PickNext chooses the next study card from cards using the user's settings.
func PickNext(cards []card.Card, s settings.Settings, rng Rand) (card.Card, bool) {
	if len(cards) == 0 {
		return card.Card{}, false
	}
	return SelectWeighted(cards, ComputeWeights(cards, s.PrioritizeUnseen), rng)
}

func weightAt(weights []float64, i int) float64 {
	if i >= len(weights) || weights[i] < 0 {
		return 0
	}
	return weights[i]
}

func clamp(n int) int {
	switch {
	case n < 0:
		return 0
	case n > card.RecentWindow:
		return card.RecentWindow
	default:
		return n
	}
}
