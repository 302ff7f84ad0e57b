package settings

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/uponom/FlashcardCX/pkg/app"
	"github.com/uponom/FlashcardCX/pkg/printers"
	prefs "github.com/uponom/FlashcardCX/pkg/settings"
	"github.com/uponom/FlashcardCX/pkg/store"
)

func TestParsePairs(t *testing.T) {
	patch, err := ParsePairs([]string{
		"ttsEnabled=true",
		"theme=dark",
		`ttsVoiceMap={"en":"Alex"}`,
		"uiLanguage=",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"ttsEnabled":  true,
		"theme":       "dark",
		"ttsVoiceMap": map[string]any{"en": "Alex"},
		"uiLanguage":  "",
	}, patch)

	_, err = ParsePairs([]string{"theme"})
	assert.Error(t, err)
	_, err = ParsePairs(nil)
	assert.Error(t, err)
}

func TestSetAndShow(t *testing.T) {
	ctx := context.Background()
	p, err := store.Load(&store.FileConfig{Path: t.TempDir()}, zaptest.NewLogger(t))
	require.NoError(t, err)
	svc := app.New(p, zaptest.NewLogger(t))
	require.NoError(t, svc.Load(ctx))

	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
	var out bytes.Buffer
	pp := &printers.PrettyPrint{Out: &out, Err: &out}

	set := &Set{Service: svc, Pairs: []string{"theme=dark", "prioritizeUnseen=true"}, Printer: pp}
	require.NoError(t, set.Do(ctx))
	assert.Equal(t, prefs.ThemeDark, p.LoadSettings().Theme)
	assert.True(t, p.LoadSettings().PrioritizeUnseen)

	bad := &Set{Service: svc, Pairs: []string{"theme=sepia"}, Printer: pp}
	assert.ErrorIs(t, bad.Do(ctx), app.ErrUnknownSetting)

	out.Reset()
	require.NoError(t, (&Show{Service: svc, JSON: true, Printer: pp}).Do(ctx))
	assert.JSONEq(t, `{"uiLanguage":"en","ttsEnabled":false,"prioritizeUnseen":true,"theme":"dark","ttsVoiceMap":{}}`, out.String())
}
