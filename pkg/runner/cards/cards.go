// Package cards runs the card management commands.
package cards

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/uponom/FlashcardCX/pkg/app"
	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/i18n"
	"github.com/uponom/FlashcardCX/pkg/printers"
	"github.com/uponom/FlashcardCX/pkg/study"
)

var errNoService = errors.New("cards: no service")

func printer(pp *printers.PrettyPrint) *printers.PrettyPrint {
	if pp == nil {
		return &printers.PrettyPrint{}
	}
	return pp
}

type Add struct {
	Service *app.Service
	Draft   card.Draft
	JSON    bool
	Printer *printers.PrettyPrint
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	pp := printer(n.Printer)

	c, err := n.Service.Create(ctx, n.Draft)
	if err != nil {
		return err
	}
	pp.Warning(n.Service.State().PersistWarning)
	if n.JSON {
		return pp.JSON(c)
	}
	pp.ShowID = true
	pp.Cards(c)
	return nil
}

// Edit changes the fields that are set and keeps the rest of the card.
type Edit struct {
	Service *app.Service
	ID      string

	Word         *string
	Translations map[string]string
	Tags         *string
	Language     *string

	JSON    bool
	Printer *printers.PrettyPrint
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	pp := printer(n.Printer)

	existing, ok := study.Find(n.Service.State().Flashcards, n.ID)
	if !ok {
		return fmt.Errorf("%w: %s", app.ErrNotFound, n.ID)
	}
	c, err := n.Service.Update(ctx, n.ID, n.draft(existing))
	if err != nil {
		return err
	}
	pp.Warning(n.Service.State().PersistWarning)
	if n.JSON {
		return pp.JSON(c)
	}
	pp.ShowID = true
	pp.Cards(c)
	return nil
}

func (n *Edit) draft(existing card.Card) card.Draft {
	d := card.Draft{
		Word:         existing.Word,
		Translations: existing.Translations,
		Tags:         existing.Tags,
		Language:     existing.Language,
	}
	if n.Word != nil {
		d.Word = *n.Word
	}
	if len(n.Translations) > 0 {
		t := existing.Translations
		for lang, v := range n.Translations {
			switch lang {
			case card.LangEN:
				t.EN = v
			case card.LangUA:
				t.UA = v
			case card.LangRU:
				t.RU = v
			}
		}
		d.Translations = t
	}
	if n.Tags != nil {
		d.Tags = *n.Tags
	}
	if n.Language != nil {
		d.Language = *n.Language
	}
	return d
}

type Delete struct {
	Service *app.Service
	ID      string
	JSON    bool
	Printer *printers.PrettyPrint
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	pp := printer(n.Printer)

	removed, err := n.Service.Delete(ctx, n.ID)
	if err != nil {
		return err
	}
	pp.Warning(n.Service.State().PersistWarning)
	if n.JSON {
		return pp.JSON(removed)
	}
	pp.Title("Deleted")
	pp.ShowID = true
	pp.Cards(removed)
	return nil
}

// List prints the cards matching Tags, or all cards.
type List struct {
	Service *app.Service
	Tags    []string
	ShowID  bool
	JSON    bool
	Printer *printers.PrettyPrint
}

func (n *List) Do(_ context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	pp := printer(n.Printer)

	st := n.Service.State()
	tags := card.NormalizeTags(n.Tags)
	cards := slices.Clone(study.FilterByTags(st.Flashcards, tags))
	slices.SortStableFunc(cards, func(a, b card.Card) int {
		return strings.Compare(strings.ToLower(a.Word), strings.ToLower(b.Word))
	})
	if n.JSON {
		return pp.JSON(cards)
	}

	t := i18n.Translator(st.Settings.UILanguage)
	title := t("allCards", nil)
	if len(tags) > 0 {
		title = strings.Join(tags, ", ")
	}
	pp.ShowID = n.ShowID
	pp.TitleWithCount(title, len(cards))
	if len(st.Flashcards) == 0 {
		pp.Note(t("emptyDesc", nil))
		return nil
	}
	pp.Cards(cards...)
	return nil
}

// Tags prints every tag in use and how many cards carry it.
type Tags struct {
	Service *app.Service
	JSON    bool
	Printer *printers.PrettyPrint
}

func (n *Tags) Do(_ context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	pp := printer(n.Printer)

	st := n.Service.State()
	tags := study.AvailableTags(st.Flashcards)
	if n.JSON {
		return pp.JSON(tags)
	}
	pp.Tags(tags, st.Flashcards)
	return nil
}
