package app

import (
	"sort"
	"time"

	"github.com/uponom/FlashcardCX/pkg/card"
)

// UntaggedSection names the report section for cards without tags.
const UntaggedSection = "(untagged)"

// ReportSection groups the cards of one tag touched within the report window.
type ReportSection struct {
	Tag      string
	Cards    []card.Card
	Know     int
	DontKnow int
}

// ReportResult summarizes study activity between two instants.
type ReportResult struct {
	Since    time.Time
	Until    time.Time
	Sections []ReportSection
	// Total counts distinct cards; a card with several tags appears in
	// several sections.
	Total int
}

// Report returns cards answered or edited between the provided bounds,
// grouped by tag. Know and DontKnow sum the recent window of the section's
// cards.
func (s *Service) Report(since, until time.Time) ReportResult {
	if since.After(until) {
		since, until = until, since
	}

	grouped := make(map[string][]card.Card)
	total := 0
	for _, c := range s.Store.State().Flashcards {
		touched := c.UpdatedAt.Time
		if touched.IsZero() || touched.Before(since) || touched.After(until) {
			continue
		}
		total++
		if len(c.Tags) == 0 {
			grouped[UntaggedSection] = append(grouped[UntaggedSection], c)
			continue
		}
		for _, tag := range c.Tags {
			grouped[tag] = append(grouped[tag], c)
		}
	}

	tags := make([]string, 0, len(grouped))
	for tag := range grouped {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	sections := make([]ReportSection, 0, len(tags))
	for _, tag := range tags {
		section := ReportSection{Tag: tag, Cards: grouped[tag]}
		for _, c := range section.Cards {
			section.Know += c.Stats.RecentKnows
			section.DontKnow += c.Stats.RecentDontKnows
		}
		sections = append(sections, section)
	}

	return ReportResult{
		Since:    since,
		Until:    until,
		Sections: sections,
		Total:    total,
	}
}
