// Package speak says card words aloud and lists the available voices.
package speak

import (
	"context"
	"errors"
	"fmt"

	"github.com/gosuri/uitable"

	"github.com/uponom/FlashcardCX/pkg/app"
	"github.com/uponom/FlashcardCX/pkg/printers"
	"github.com/uponom/FlashcardCX/pkg/speech"
	"github.com/uponom/FlashcardCX/pkg/study"
)

// Speak says the word of card ID in the card's language. It speaks even when
// text-to-speech is disabled in the settings, since the user asked for it.
type Speak struct {
	Service *app.Service
	Speaker *speech.Speaker
	ID      string
}

func (n *Speak) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("speak: no service")
	}
	c, ok := study.Find(n.Service.State().Flashcards, n.ID)
	if !ok {
		return fmt.Errorf("%w: %s", app.ErrNotFound, n.ID)
	}
	return n.Speaker.Speak(ctx, c.Word, c.Language, true)
}

// Voices lists the engine's voices, refreshing the cache first when asked.
type Voices struct {
	Cache   *speech.VoiceCache
	Refresh bool
	JSON    bool
	Printer *printers.PrettyPrint
}

func (n *Voices) Do(ctx context.Context) error {
	if n.Cache == nil {
		return speech.ErrUnavailable
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	voices := n.Cache.Voices(ctx)
	if n.Refresh {
		voices = n.Cache.Refresh(ctx)
	}
	if n.JSON {
		return pp.JSON(voices)
	}
	if len(voices) == 0 {
		pp.Note("no voices available")
		return nil
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("LANG", "NAME", "ID")
	for _, v := range voices {
		tbl.AddRow(v.Lang, v.Name, v.ID)
	}
	pp.Plain(tbl.String())
	return nil
}
