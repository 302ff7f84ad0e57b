// Package printers renders flashcards for the terminal.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/settings"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
	// Err defaults to color.Error.
	Err io.Writer
}

const idWidth = len("0f8fad5b-d9cb-469f-a165-70867728950e")

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) errOut() io.Writer {
	if pp.Err != nil {
		return pp.Err
	}
	return color.Error
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)
	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " card")
	default:
		_, _ = c.Fprintln(pp.out(), " cards")
	}
}

// Cards prints one row per card: word, translations, tags and answer counts.
func (pp *PrettyPrint) Cards(cards ...card.Card) {
	if len(cards) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	for _, c := range cards {
		row := []interface{}{}
		if pp.ShowID {
			row = append(row, y.Sprint(c.ID))
		}
		row = append(row,
			bold.Sprint(c.Word),
			translationLine(c.Translations),
			faint.Sprint(strings.Join(c.Tags, ", ")),
			score(c.Stats),
		)
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Card prints the question side of a card.
func (pp *PrettyPrint) Card(c card.Card) {
	bold := color.New(color.Bold, color.FgHiWhite)
	faint := color.New(color.Faint)

	if pp.ShowID {
		_, _ = color.New(color.FgHiYellow, color.Faint).Fprintln(pp.out(), c.ID)
	}
	_, _ = bold.Fprintln(pp.out(), c.Word)
	if len(c.Tags) > 0 {
		_, _ = faint.Fprintf(pp.out(), "#%s\n", strings.Join(c.Tags, " #"))
	}
}

// Answer prints a card with its translations revealed and the recent window.
func (pp *PrettyPrint) Answer(c card.Card, known bool) {
	mark := color.New(color.FgGreen, color.Bold).Sprint("✓")
	if !known {
		mark = color.New(color.FgRed, color.Bold).Sprint("✗")
	}
	_, _ = fmt.Fprintf(pp.out(), "%s %s\n", mark, color.New(color.Bold).Sprint(c.Word))

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, lang := range []string{card.LangEN, card.LangUA, card.LangRU} {
		if v := c.Translations.For(lang); v != "" {
			tbl.AddRow(color.New(color.Faint).Sprint(lang), v)
		}
	}
	tbl.AddRow(color.New(color.Faint).Sprint("score"), score(c.Stats))
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Tags prints each tag with the number of cards carrying it.
func (pp *PrettyPrint) Tags(tags []string, cards []card.Card) {
	if len(tags) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(pp.out(), " no tags yet\n\n")
		return
	}
	counts := make(map[string]int, len(tags))
	for _, c := range cards {
		for _, tag := range c.Tags {
			counts[tag]++
		}
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, tag := range tags {
		tbl.AddRow(color.New(color.FgCyan).Sprint(tag), counts[tag])
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Settings prints every setting as a key/value table.
func (pp *PrettyPrint) Settings(s settings.Settings) {
	bold := color.New(color.Bold)
	voices := make([]string, 0, len(s.TTSVoiceMap))
	for lang, voice := range s.TTSVoiceMap {
		voices = append(voices, lang+"="+voice)
	}
	sort.Strings(voices)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("uiLanguage"), s.UILanguage)
	tbl.AddRow(bold.Sprint("ttsEnabled"), s.TTSEnabled)
	tbl.AddRow(bold.Sprint("prioritizeUnseen"), s.PrioritizeUnseen)
	tbl.AddRow(bold.Sprint("theme"), s.Theme)
	tbl.AddRow(bold.Sprint("ttsVoiceMap"), strings.Join(voices, ", "))
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Plain prints s as is.
func (pp *PrettyPrint) Plain(s string) {
	_, _ = fmt.Fprintln(pp.out(), s)
}

// Note prints a faint informational line.
func (pp *PrettyPrint) Note(msg string) {
	_, _ = color.New(color.Faint, color.Italic).Fprintln(pp.out(), msg)
}

// Prompt prints msg without a trailing newline.
func (pp *PrettyPrint) Prompt(msg string) {
	_, _ = color.New(color.Bold).Fprint(pp.out(), msg)
}

// Warning prints msg to the error stream.
func (pp *PrettyPrint) Warning(msg string) {
	if msg == "" {
		return
	}
	_, _ = color.New(color.FgYellow).Fprintf(pp.errOut(), "warning: %s\n", msg)
}

// JSON writes v as indented JSON.
func (pp *PrettyPrint) JSON(v any) error {
	enc := json.NewEncoder(pp.out())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func translationLine(t card.Translations) string {
	parts := make([]string, 0, 3)
	for _, v := range []string{t.EN, t.UA, t.RU} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " / ")
}

func score(s card.Stats) string {
	return fmt.Sprintf("%s %s",
		color.New(color.FgGreen).Sprintf("+%d", s.Know),
		color.New(color.FgRed).Sprintf("-%d", s.DontKnow),
	)
}
