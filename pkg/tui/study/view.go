package studyui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/state"
)

const (
	defaultWidth = 80
	barWidth     = 30
	noTranslate  = "—"
)

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{m.renderHeader()}

	switch {
	case len(m.st.Flashcards) == 0:
		sections = append(sections, m.renderEmpty(m.t("emptyTitle", nil), m.t("emptyDesc", nil)))
	default:
		c, ok := m.st.CurrentCard()
		if !ok {
			sections = append(sections, m.renderEmpty(m.t("noCardsToStudy", nil), ""))
			break
		}
		sections = append(sections, m.renderCard(c), m.renderProgress(c.Stats))
	}

	switch m.st.UI.Mode {
	case state.ModeConfirmingDelete:
		sections = append(sections, m.renderModal(m.t("deleteCardTitle", nil), m.t("deleteCardDesc", nil),
			"y", m.t("delete", nil), "n", m.t("cancel", nil)))
	case state.ModeAwaitingRestoreChoice:
		sections = append(sections, m.renderModal(m.t("restoreTitle", nil), m.t("restoreDesc", nil),
			"m", m.t("merge", nil), "o", m.t("overwrite", nil), "c", m.t("cancel", nil)))
	}

	if m.inputKind != inputNone {
		sections = append(sections, m.inputLabel()+": "+m.input.View())
	}
	if line := m.renderStatus(); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, m.renderHelp())

	return strings.Join(sections, "\n\n")
}

func (m *Model) cardWidth() int {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}
	return min(w-4, 60)
}

func (m *Model) renderHeader() string {
	title := m.theme.Header.Title.Render(m.t("appTitle", nil))
	if m.st.Settings.TTSEnabled {
		title += " " + m.theme.Header.Tags.Render("♪")
	}

	tags := m.st.AvailableTags()
	if len(tags) == 0 {
		return title + "\n" + m.theme.Header.Tags.Render(m.t("noTagsYet", nil))
	}
	selected := make(map[string]bool, len(m.st.SelectedTags))
	for _, t := range m.st.SelectedTags {
		selected[t] = true
	}
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		if selected[t] {
			parts = append(parts, m.theme.Footer.Key.Render("["+t+"]"))
			continue
		}
		parts = append(parts, m.theme.Header.Tags.Render(t))
	}
	return title + "\n" + m.theme.Header.Tags.Render(m.t("filterByTags", nil)) + " " + strings.Join(parts, " ")
}

func (m *Model) renderEmpty(title, desc string) string {
	body := m.theme.Card.Word.Render(title)
	if desc != "" {
		body += "\n" + m.theme.Card.Empty.Render(wordwrap.String(desc, m.cardWidth()-8))
	}
	return m.theme.Card.Frame.Width(m.cardWidth()).Render(body)
}

func (m *Model) renderCard(c card.Card) string {
	inner := m.cardWidth() - 10
	lines := []string{m.theme.Card.Word.Render(wordwrap.String(c.Word, inner))}
	frame := m.theme.Card.Frame

	if m.st.UI.Mode == state.ModeRevealed {
		frame = m.theme.Card.Revealed
		translation := c.Translations.For(m.st.Settings.UILanguage)
		if translation == "" {
			translation = noTranslate
		}
		lines = append(lines, "", m.theme.Card.Translation.Render(wordwrap.String(translation, inner)))
	}
	if len(c.Tags) > 0 {
		lines = append(lines, "", m.theme.Card.Empty.Render("#"+strings.Join(c.Tags, " #")))
	}
	return frame.Width(m.cardWidth()).Render(strings.Join(lines, "\n"))
}

// renderProgress draws the recent know/don't-know split and the stats line.
func (m *Model) renderProgress(s card.Stats) string {
	knowPct, dontPct := recentPercent(s)
	know := int(math.Round(float64(barWidth) * float64(knowPct) / 100))
	dont := int(math.Round(float64(barWidth) * float64(dontPct) / 100))
	rest := max(barWidth-know-dont, 0)

	bar := m.theme.Card.Know.Render(strings.Repeat("█", know)) +
		m.theme.Card.DontKnow.Render(strings.Repeat("█", dont)) +
		m.theme.Card.Stats.Render(strings.Repeat("░", rest))
	label := fmt.Sprintf(" %d%% / %d%%", knowPct, dontPct)
	return bar + m.theme.Card.Stats.Render(label) + "\n" + m.theme.Card.Stats.Render(m.t("statsLine", statsVars(s)))
}

func recentPercent(s card.Stats) (know, dont int) {
	total := s.RecentTotal()
	if total == 0 {
		return 0, 0
	}
	know = int(math.Round(float64(s.RecentKnows) * 100 / float64(total)))
	return know, 100 - know
}

func statsVars(s card.Stats) map[string]any {
	return map[string]any{
		"totalKnow":  s.Know,
		"totalDont":  s.DontKnow,
		"recentKnow": s.RecentKnows,
		"recentDont": s.RecentDontKnows,
	}
}

// renderModal draws a dialog; choices alternate key and label.
func (m *Model) renderModal(title, body string, choices ...string) string {
	opts := make([]string, 0, len(choices)/2)
	for i := 0; i+1 < len(choices); i += 2 {
		opts = append(opts, m.theme.Footer.Key.Render(choices[i])+" "+choices[i+1])
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Modal.Title.Render(title),
		m.theme.Modal.Body.Render(body),
		"",
		strings.Join(opts, "   "),
	)
	return m.theme.Modal.Frame.Render(content)
}

func (m *Model) inputLabel() string {
	switch m.inputKind {
	case inputAdd:
		return "Add"
	case inputEdit:
		return m.t("edit", nil)
	case inputFilter:
		return "Tags"
	case inputRestore:
		return "Restore from"
	case inputImport:
		return "Import from"
	case inputExport:
		return "Export to"
	}
	return ""
}

func (m *Model) renderStatus() string {
	var parts []string
	if m.st.PersistWarning != "" {
		parts = append(parts, m.theme.Footer.Warning.Render(m.st.PersistWarning))
	}
	if m.status != "" {
		parts = append(parts, m.theme.Footer.Status.Render(m.status))
	}
	if m.st.UI.Mode == state.ModeRevealed && m.svc.AdvanceDelay > 0 {
		secs := int(math.Ceil(m.remaining().Seconds()))
		parts = append(parts, m.theme.Footer.Status.Render(m.t("autoAdvance", map[string]any{"seconds": secs})))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) renderHelp() string {
	key := func(k, label string) string {
		return m.theme.Footer.Key.Render(k) + " " + m.theme.Footer.Help.Render(label)
	}
	var items []string
	switch {
	case m.inputKind != inputNone:
		items = []string{key("enter", "ok"), key("esc", m.t("cancel", nil))}
	case m.st.UI.Mode == state.ModeRevealed:
		items = []string{key("space", m.t("next", nil)), key("s", m.t("speak", nil)), key("q", m.t("quit", nil))}
	case m.st.UI.Mode != state.ModeIdle:
		return ""
	default:
		items = []string{
			key("→", m.t("know", nil)),
			key("←", m.t("dontKnow", nil)),
			key("s", m.t("speak", nil)),
			key("a", "add"),
			key("e", m.t("edit", nil)),
			key("d", m.t("delete", nil)),
			key("/", "tags"),
			key("t", "tts"),
			key("p", "unseen"),
			key("T", "theme"),
			key("L", "lang"),
			key("i", "import"),
			key("x", "export"),
			key("r", "restore"),
			key("q", m.t("quit", nil)),
		}
	}
	return wordwrap.String(strings.Join(items, "  "), max(m.cardWidth(), 40))
}
