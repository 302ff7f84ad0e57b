// Package info reports where flashcards are stored and how they are
// configured.
package info

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gosuri/uitable"

	"github.com/uponom/FlashcardCX/pkg/app"
	"github.com/uponom/FlashcardCX/pkg/printers"
	"github.com/uponom/FlashcardCX/pkg/store"
	"github.com/uponom/FlashcardCX/pkg/study"
)

type Info struct {
	Config  *store.FileConfig
	Service *app.Service
	Printer *printers.PrettyPrint
}

func (n *Info) Do(_ context.Context) error {
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	if override := os.Getenv("FLASHCARDS_CONFIG_PATH"); override != "" {
		pp.Note(fmt.Sprintf("FLASHCARDS_CONFIG_PATH found on env, using %s", override))
	} else {
		pp.Note("FLASHCARDS_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Service == nil {
		return errors.New("info: failed to create the service")
	}

	configFile := n.Config.ConfigFile
	if configFile == "" {
		configFile = "(defaults)"
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Config file:", configFile)
	tbl.AddRow("Config.path:", n.Config.BasePath())
	tbl.AddRow("Config.quota:", n.Config.QuotaBytes())
	tbl.AddRow("Config.env:", n.Config.Env)
	tbl.AddRow("Config.advance_delay:", n.Config.AdvanceDelay)
	tbl.AddRow("Config.tts.command:", n.Config.TTS.Command)
	for _, key := range []string{store.KeyFlashcards, store.KeySettings} {
		path := store.RecordPath(n.Config.BasePath(), key)
		size := "missing"
		if fi, err := os.Stat(path); err == nil {
			size = fmt.Sprintf("%d bytes", fi.Size())
		}
		tbl.AddRow(key+":", fmt.Sprintf("%s (%s)", path, size))
	}
	st := n.Service.State()
	tbl.AddRow("Cards:", len(st.Flashcards))
	tbl.AddRow("Tags:", len(study.AvailableTags(st.Flashcards)))
	tbl.RightAlign(0)

	pp.Title("Flashcards")
	pp.Plain(tbl.String())
	return nil
}
