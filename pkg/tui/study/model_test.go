package studyui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/uponom/FlashcardCX/pkg/app"
	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/settings"
	"github.com/uponom/FlashcardCX/pkg/state"
	"github.com/uponom/FlashcardCX/pkg/store"
)

var fixedNow = time.Date(2025, time.May, 4, 9, 30, 0, 0, time.UTC)

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func newService(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(&store.FileConfig{Path: t.TempDir(), Quota: store.DefaultQuota}, zaptest.NewLogger(t))
	require.NoError(t, err)
	svc := app.New(p, zaptest.NewLogger(t))
	svc.AdvanceDelay = time.Minute
	svc.Now = func() time.Time { return fixedNow }
	require.NoError(t, svc.Load(context.Background()))
	t.Cleanup(svc.Close)
	return svc
}

func newModel(t *testing.T, svc *app.Service) *Model {
	t.Helper()
	m := New(svc, Options{Now: func() time.Time { return fixedNow }})
	t.Cleanup(m.cancel)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return m
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(key(k))
	}
}

func addCard(t *testing.T, svc *app.Service, word, en string, tags ...string) card.Card {
	t.Helper()
	c, err := svc.Create(context.Background(), card.Draft{
		Word:         word,
		Translations: map[string]string{"en": en},
		Tags:         tags,
		Language:     "es",
	})
	require.NoError(t, err)
	return c
}

func TestViewEmptyCollection(t *testing.T) {
	m := newModel(t, newService(t))

	view := stripANSI(m.View())
	assert.Contains(t, view, "Flashcard Learning App")
	assert.Contains(t, view, "No cards yet")
	assert.Contains(t, view, "No tags yet.")
}

func TestAnswerRevealsTranslation(t *testing.T) {
	svc := newService(t)
	addCard(t, svc, "hola", "hello", "greetings")
	m := newModel(t, svc)

	view := stripANSI(m.View())
	assert.Contains(t, view, "hola")
	assert.NotContains(t, view, "hello")
	assert.Contains(t, view, "greetings")

	press(m, "right")
	require.Equal(t, state.ModeRevealed, m.st.UI.Mode)
	view = stripANSI(m.View())
	assert.Contains(t, view, "hello")
	assert.Contains(t, view, "Next card in 60s")
	assert.Contains(t, view, "Total: ✅ 1 / ❌ 0")
	assert.Contains(t, view, "100% / 0%")

	press(m, "space")
	assert.Equal(t, state.ModeIdle, m.st.UI.Mode)
	assert.NotContains(t, stripANSI(m.View()), "hello")
}

func TestRevealShowsDashWithoutTranslation(t *testing.T) {
	svc := newService(t)
	addCard(t, svc, "hola", "hello")
	m := newModel(t, svc)

	press(m, "L")
	require.Equal(t, "ua", m.st.Settings.UILanguage)
	press(m, "left")

	view := stripANSI(m.View())
	assert.Contains(t, view, noTranslate)
	assert.Contains(t, view, "Додаток для флешкарт")
}

func TestDeleteAsksForConfirmation(t *testing.T) {
	svc := newService(t)
	addCard(t, svc, "hola", "hello")
	m := newModel(t, svc)

	press(m, "d")
	require.Equal(t, state.ModeConfirmingDelete, m.st.UI.Mode)
	assert.Contains(t, stripANSI(m.View()), "Delete card?")

	press(m, "n")
	assert.Equal(t, state.ModeIdle, m.st.UI.Mode)
	assert.Len(t, svc.State().Flashcards, 1)

	press(m, "d", "y")
	assert.Empty(t, svc.State().Flashcards)
	assert.Contains(t, stripANSI(m.View()), "No cards yet")
}

func TestAddUsesSelectedTags(t *testing.T) {
	svc := newService(t)
	addCard(t, svc, "hola", "hello", "greetings")
	m := newModel(t, svc)

	press(m, "/")
	require.Equal(t, inputFilter, m.inputKind)
	m.input.SetValue("greetings")
	press(m, "enter")
	assert.Equal(t, []string{"greetings"}, svc.State().SelectedTags)

	press(m, "a")
	require.Equal(t, inputAdd, m.inputKind)
	m.input.SetValue(`adiós,"bye, bye",бувай,пока`)
	press(m, "enter")

	assert.Equal(t, inputNone, m.inputKind)
	require.Len(t, svc.State().Flashcards, 2)
	added := svc.State().Flashcards[1]
	assert.Equal(t, "adiós", added.Word)
	assert.Equal(t, "bye, bye", added.Translations.EN)
	assert.Equal(t, []string{"greetings"}, added.Tags)
	assert.Contains(t, m.status, "adiós")
}

func TestEditPrefillsAndSaves(t *testing.T) {
	svc := newService(t)
	c := addCard(t, svc, "hola", "hello")
	m := newModel(t, svc)

	press(m, "e")
	require.Equal(t, state.ModeEditingCard, m.st.UI.Mode)
	assert.Equal(t, "hola,hello,,", m.input.Value())

	m.input.SetValue("hola,hi,привіт,")
	press(m, "enter")

	assert.Equal(t, state.ModeIdle, svc.State().UI.Mode)
	got := svc.State().Flashcards[0]
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, card.Translations{EN: "hi", UA: "привіт"}, got.Translations)
	assert.Equal(t, "es", got.Language)
}

func TestEditCancel(t *testing.T) {
	svc := newService(t)
	addCard(t, svc, "hola", "hello")
	m := newModel(t, svc)

	press(m, "e", "esc")
	assert.Equal(t, inputNone, m.inputKind)
	assert.Equal(t, state.ModeIdle, svc.State().UI.Mode)
	assert.Equal(t, "hello", svc.State().Flashcards[0].Translations.EN)
}

func TestToggleSettings(t *testing.T) {
	svc := newService(t)
	m := newModel(t, svc)

	press(m, "T", "p")
	got := svc.State().Settings
	assert.Equal(t, settings.ThemeDark, got.Theme)
	assert.True(t, got.PrioritizeUnseen)
	assert.Equal(t, settings.ThemeDark, m.theme.Name)

	press(m, "T")
	assert.Equal(t, settings.ThemeLight, svc.State().Settings.Theme)
}

func TestStaleStateIsIgnored(t *testing.T) {
	svc := newService(t)
	addCard(t, svc, "hola", "hello")
	m := newModel(t, svc)

	stale := svc.State()
	addCard(t, svc, "adiós", "bye")
	m.Update(StateMsg{State: svc.State()})
	m.Update(StateMsg{State: stale})

	assert.Len(t, m.st.Flashcards, 2)
}

func TestSpeakWithoutEngineReportsError(t *testing.T) {
	svc := newService(t)
	addCard(t, svc, "hola", "hello")
	m := newModel(t, svc)

	_, cmd := m.Update(key("s"))
	require.NotNil(t, cmd)
	m.Update(errMsg{err: assert.AnError})
	assert.Contains(t, stripANSI(m.View()), assert.AnError.Error())
}

func TestQuit(t *testing.T) {
	m := newModel(t, newService(t))

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Error(t, m.ctx.Err())
}
