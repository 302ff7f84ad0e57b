// Package study runs the one-shot study commands.
package study

import (
	"context"
	"errors"
	"fmt"

	"github.com/uponom/FlashcardCX/pkg/app"
	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/i18n"
	"github.com/uponom/FlashcardCX/pkg/printers"
)

// ErrNothingToStudy is returned when no card matches the filter.
var ErrNothingToStudy = errors.New("study: no cards to study")

// Next shows the question side of a weighted random card.
type Next struct {
	Service *app.Service
	Tags    []string
	JSON    bool
	Printer *printers.PrettyPrint
}

func (n *Next) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("study: no service")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	n.Service.SetSelectedTags(n.Tags)
	c, ok := n.Service.Next()
	if !ok {
		t := i18n.Translator(n.Service.State().Settings.UILanguage)
		if !n.JSON {
			pp.Note(t("noCardsToStudy", nil))
		}
		return ErrNothingToStudy
	}
	if n.JSON {
		return pp.JSON(question{ID: c.ID, Word: c.Word, Tags: c.Tags, Language: c.Language})
	}
	pp.ShowID = true
	pp.Card(c)
	return nil
}

type question struct {
	ID       string   `json:"id"`
	Word     string   `json:"word"`
	Tags     []string `json:"tags"`
	Language string   `json:"language"`
}

// Answer records whether the user knew a card and reveals it.
type Answer struct {
	Service *app.Service
	ID      string
	Known   bool
	JSON    bool
	Printer *printers.PrettyPrint
}

func (n *Answer) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("study: no service")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	c, err := n.Service.Answer(ctx, n.ID, n.Known)
	if err != nil {
		if errors.Is(err, app.ErrNotFound) {
			return fmt.Errorf("%w: %s", err, n.ID)
		}
		return err
	}
	pp.Warning(n.Service.State().PersistWarning)
	if n.JSON {
		return pp.JSON(c)
	}
	pp.Answer(c, n.Known)

	t := i18n.Translator(n.Service.State().Settings.UILanguage)
	pp.Note(t("statsLine", statsVars(c.Stats)))
	return nil
}

func statsVars(s card.Stats) map[string]any {
	return map[string]any{
		"totalKnow":  s.Know,
		"totalDont":  s.DontKnow,
		"recentKnow": s.RecentKnows,
		"recentDont": s.RecentDontKnows,
	}
}
