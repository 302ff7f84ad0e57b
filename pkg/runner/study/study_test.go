package study

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/uponom/FlashcardCX/pkg/app"
	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/printers"
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

func TestNext(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	_, _ = svc.Create(ctx, card.Draft{Word: "cat", Tags: "pets"})
	desk, _ := svc.Create(ctx, card.Draft{Word: "desk", Tags: "work"})

	pp, out := newPrinter(t)
	require.NoError(t, (&Next{Service: svc, Tags: []string{"work"}, Printer: pp}).Do(ctx))
	assert.Contains(t, out.String(), desk.ID)
	assert.Contains(t, out.String(), "desk")
	assert.Contains(t, out.String(), "#work")

	out.Reset()
	err := (&Next{Service: svc, Tags: []string{"music"}, Printer: pp}).Do(ctx)
	assert.ErrorIs(t, err, ErrNothingToStudy)
	assert.Contains(t, out.String(), "No cards to study.")
}

func TestNextJSONHidesTranslations(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	c, _ := svc.Create(ctx, card.Draft{Word: "cat", Translations: "кіт"})

	pp, out := newPrinter(t)
	require.NoError(t, (&Next{Service: svc, JSON: true, Printer: pp}).Do(ctx))
	assert.JSONEq(t, `{"id":"`+c.ID+`","word":"cat","tags":[],"language":"en"}`, out.String())
}

func TestAnswer(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	c, _ := svc.Create(ctx, card.Draft{Word: "cat", Translations: "кіт"})

	pp, out := newPrinter(t)
	require.NoError(t, (&Answer{Service: svc, ID: c.ID, Known: true, Printer: pp}).Do(ctx))
	assert.Contains(t, out.String(), "✓ cat")
	assert.Contains(t, out.String(), "Total: ✅ 1 / ❌ 0 · Recent20: ✅ 1 / ❌ 0")

	stored := svc.State().Flashcards[0]
	assert.Equal(t, 1, stored.Stats.Know)

	err := (&Answer{Service: svc, ID: "nope", Printer: pp}).Do(ctx)
	assert.ErrorIs(t, err, app.ErrNotFound)
}
