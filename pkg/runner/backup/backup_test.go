package backup

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/uponom/FlashcardCX/pkg/app"
	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/printers"
	"github.com/uponom/FlashcardCX/pkg/settings"
	"github.com/uponom/FlashcardCX/pkg/state"
	"github.com/uponom/FlashcardCX/pkg/store"
)

func newService(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(&store.FileConfig{Path: t.TempDir(), Quota: store.DefaultQuota}, zaptest.NewLogger(t))
	require.NoError(t, err)
	svc := app.New(p, zaptest.NewLogger(t))
	svc.AdvanceDelay = 0
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func newPrinter(t *testing.T) (*printers.PrettyPrint, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
	var out bytes.Buffer
	return &printers.PrettyPrint{Out: &out, Err: &out}, &out
}

func boolPtr(b bool) *bool { return &b }

func TestExportThenRestoreFile(t *testing.T) {
	ctx := context.Background()
	src := newService(t)
	src.Now = func() time.Time { return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC) }
	_, _ = src.Create(ctx, card.Draft{Word: "cat", Translations: "кіт", Tags: "pets"})
	_, _ = src.UpdateSettings(ctx, map[string]any{"theme": settings.ThemeDark})

	path := filepath.Join(t.TempDir(), "backup.json")
	pp, out := newPrinter(t)
	require.NoError(t, (&Export{Service: src, Path: path, Printer: pp}).Do(ctx))
	assert.Contains(t, out.String(), "Exported 1 cards")

	dst := newService(t)
	out.Reset()
	require.NoError(t, (&Restore{Service: dst, Path: path, Mode: app.RestoreAsk, Printer: pp}).Do(ctx))
	assert.Contains(t, out.String(), "Restored 1 cards.")
	assert.Equal(t, src.State().Flashcards, dst.State().Flashcards)
	assert.Equal(t, settings.ThemeDark, dst.State().Settings.Theme)
}

func TestExportToWriter(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	_, _ = svc.Create(ctx, card.Draft{Word: "cat"})

	var buf bytes.Buffer
	require.NoError(t, (&Export{Service: svc, Path: Stdio, Out: &buf}).Do(ctx))
	assert.Contains(t, buf.String(), `"schemaVersion": 1`)
}

func TestRestorePromptsOnTerminal(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	_, _ = svc.Create(ctx, card.Draft{Word: "cat"})

	other := newService(t)
	_, _ = other.Create(ctx, card.Draft{Word: "owl"})
	data, err := other.Export()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	pp, out := newPrinter(t)
	r := &Restore{Service: svc, Path: path, Mode: app.RestoreAsk, Interactive: boolPtr(true), In: strings.NewReader("m\n"), Printer: pp}
	require.NoError(t, r.Do(ctx))
	assert.Contains(t, out.String(), "Restore cards and settings")
	assert.Len(t, svc.State().Flashcards, 2)

	r = &Restore{Service: svc, Path: path, Mode: app.RestoreAsk, Interactive: boolPtr(true), In: strings.NewReader("c\n"), Printer: pp}
	assert.ErrorIs(t, r.Do(ctx), app.ErrRestoreChoiceRequired)
	assert.Len(t, svc.State().Flashcards, 2)

	r = &Restore{Service: svc, Path: path, Mode: app.RestoreAsk, Interactive: boolPtr(false), Printer: pp}
	assert.ErrorIs(t, r.Do(ctx), app.ErrRestoreChoiceRequired)
}

func TestRestorePromptReadFailure(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	_, _ = svc.Create(ctx, card.Draft{Word: "cat"})
	data, err := svc.Export()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	readErr := errors.New("terminal went away")
	pp, _ := newPrinter(t)
	r := &Restore{Service: svc, Path: path, Mode: app.RestoreAsk, Interactive: boolPtr(true), In: iotest.ErrReader(readErr), Printer: pp}
	err = r.Do(ctx)
	assert.ErrorIs(t, err, readErr)
	assert.NotErrorIs(t, err, app.ErrRestoreChoiceRequired)
	assert.Equal(t, state.ModeIdle, svc.State().UI.Mode)
	assert.Len(t, svc.State().Flashcards, 1)
}

func TestRestoreInvalid(t *testing.T) {
	svc := newService(t)
	pp, out := newPrinter(t)
	r := &Restore{Service: svc, Path: Stdio, In: strings.NewReader(`{"schemaVersion":9}`), Mode: app.RestoreMerge, Printer: pp}
	assert.ErrorIs(t, r.Do(context.Background()), app.ErrInvalidBackup)
	assert.Contains(t, out.String(), "Invalid backup format.")
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	pp, out := newPrinter(t)

	csv := "cat,cat,кіт,кот\n\"unclosed,a,b,c\ndog,dog,пес,пёс\n"
	im := &Import{Service: svc, Path: Stdio, In: strings.NewReader(csv), Tags: "animals", Language: "en", Printer: pp}
	require.NoError(t, im.Do(ctx))
	assert.Contains(t, out.String(), "Imported 2 cards.")
	assert.Contains(t, out.String(), "Skipped 1 lines.")
	assert.Contains(t, out.String(), "line 2: unclosed_quote")

	cards := svc.State().Flashcards
	require.Len(t, cards, 2)
	assert.Equal(t, []string{"animals"}, cards[0].Tags)
}
