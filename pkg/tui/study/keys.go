package studyui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/mitchellh/go-homedir"

	"github.com/uponom/FlashcardCX/pkg/app"
	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/csvimport"
	"github.com/uponom/FlashcardCX/pkg/i18n"
	"github.com/uponom/FlashcardCX/pkg/settings"
	"github.com/uponom/FlashcardCX/pkg/state"
	"github.com/uponom/FlashcardCX/pkg/study"
)

// handleKey reports whether the key was consumed.
func (m *Model) handleKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	key := msg.String()
	if key == "ctrl+c" {
		*cmds = append(*cmds, m.quit())
		return true
	}
	if m.inputKind != inputNone {
		return m.handleInputKey(key, cmds)
	}

	switch m.st.UI.Mode {
	case state.ModeConfirmingDelete:
		m.handleConfirmKey(key, cmds)
	case state.ModeAwaitingRestoreChoice:
		m.handleRestoreKey(key, cmds)
	case state.ModeRevealed:
		m.handleRevealedKey(key, cmds)
	case state.ModeEditingCard:
		if key == "esc" {
			m.svc.CancelInteraction()
			m.refresh(cmds)
		}
	default:
		m.handleIdleKey(key, cmds)
	}
	return true
}

func (m *Model) handleIdleKey(key string, cmds *[]tea.Cmd) {
	switch key {
	case "right", "l", "y":
		m.answer(true, cmds)
	case "left", "h", "n":
		m.answer(false, cmds)
	case "s":
		if c, ok := m.st.CurrentCard(); ok {
			*cmds = append(*cmds, m.speakCmd(c, true))
		}
	case "t":
		m.updateSettings(map[string]any{"ttsEnabled": !m.st.Settings.TTSEnabled}, cmds)
	case "p":
		m.updateSettings(map[string]any{"prioritizeUnseen": !m.st.Settings.PrioritizeUnseen}, cmds)
	case "T":
		next := settings.ThemeDark
		if m.st.Settings.Theme == settings.ThemeDark {
			next = settings.ThemeLight
		}
		m.updateSettings(map[string]any{"theme": next}, cmds)
	case "L":
		m.updateSettings(map[string]any{"uiLanguage": nextLanguage(m.st.Settings.UILanguage)}, cmds)
	case "/":
		m.openInput(inputFilter, "", strings.Join(m.st.SelectedTags, ", "), cmds)
	case "a":
		m.openInput(inputAdd, "", "", cmds)
	case "e":
		c, ok := m.st.CurrentCard()
		if !ok {
			return
		}
		if err := m.svc.BeginEdit(c.ID); err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
		m.refresh(cmds)
		m.openInput(inputEdit, c.ID, csvimport.CardLine(c), cmds)
	case "d":
		if c, ok := m.st.CurrentCard(); ok {
			if err := m.svc.RequestDelete(c.ID); err != nil {
				m.status = "ERR: " + err.Error()
				return
			}
			m.refresh(cmds)
		}
	case "r":
		m.openInput(inputRestore, "", "", cmds)
	case "i":
		m.openInput(inputImport, "", "", cmds)
	case "x":
		m.openInput(inputExport, "", "flashcards-backup.json", cmds)
	case "q", "esc":
		*cmds = append(*cmds, m.quit())
	}
}

func (m *Model) handleRevealedKey(key string, cmds *[]tea.Cmd) {
	switch key {
	case "space", " ", "enter", "right", "l", "left", "h":
		m.svc.Advance()
		m.refresh(cmds)
	case "s":
		if c, ok := m.st.CurrentCard(); ok {
			*cmds = append(*cmds, m.speakCmd(c, true))
		}
	case "q":
		*cmds = append(*cmds, m.quit())
	}
}

func (m *Model) handleConfirmKey(key string, cmds *[]tea.Cmd) {
	switch key {
	case "y", "enter":
		removed, err := m.svc.Delete(m.ctx, m.st.UI.CardID)
		if err != nil {
			m.status = "ERR: " + err.Error()
			m.svc.CancelInteraction()
		} else {
			m.status = fmt.Sprintf("%s: %s", m.t("delete", nil), removed.Word)
		}
		m.refresh(cmds)
	case "n", "esc", "q":
		m.svc.CancelInteraction()
		m.refresh(cmds)
	}
}

func (m *Model) handleRestoreKey(key string, cmds *[]tea.Cmd) {
	var mode app.RestoreMode
	switch key {
	case "m":
		mode = app.RestoreMerge
	case "o":
		mode = app.RestoreOverwrite
	case "c", "esc", "q":
		m.svc.CancelRestore()
		m.refresh(cmds)
		return
	default:
		return
	}
	res, err := m.svc.ResolveRestore(m.ctx, mode)
	if err != nil {
		m.status = "ERR: " + err.Error()
	} else {
		m.status = m.t("restored", map[string]any{"count": res.Cards})
	}
	m.refresh(cmds)
}

func (m *Model) handleInputKey(key string, cmds *[]tea.Cmd) bool {
	switch key {
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		kind, target := m.inputKind, m.inputTarget
		m.closeInput()
		m.submit(kind, target, value, cmds)
		return true
	case "esc":
		kind := m.inputKind
		m.closeInput()
		if kind == inputEdit {
			m.svc.CancelInteraction()
			m.refresh(cmds)
		}
		return true
	}
	return false
}

func (m *Model) openInput(kind inputKind, target, value string, cmds *[]tea.Cmd) {
	m.inputKind = kind
	m.inputTarget = target
	m.input.Placeholder = m.placeholder(kind)
	m.input.SetValue(value)
	m.input.CursorEnd()
	*cmds = append(*cmds, m.input.Focus())
}

func (m *Model) closeInput() {
	m.inputKind = inputNone
	m.inputTarget = ""
	m.input.SetValue("")
	m.input.Blur()
}

func (m *Model) placeholder(kind inputKind) string {
	switch kind {
	case inputAdd, inputEdit:
		return "word,en,ua,ru"
	case inputFilter:
		return "tag, tag"
	case inputExport:
		return "backup.json"
	default:
		return "path/to/file"
	}
}

func (m *Model) submit(kind inputKind, target, value string, cmds *[]tea.Cmd) {
	switch kind {
	case inputFilter:
		m.svc.SetSelectedTags(value)
	case inputAdd:
		row, err := parseRow(value)
		if err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
		// New cards join the current filter so they show up right away.
		c, err := m.svc.Create(m.ctx, row.Draft(m.st.SelectedTags, card.DefaultLanguage))
		if err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
		m.status = "+ " + c.Word
	case inputEdit:
		existing, ok := study.Find(m.st.Flashcards, target)
		row, err := parseRow(value)
		if !ok || err != nil {
			if err == nil {
				err = app.ErrNotFound
			}
			m.status = "ERR: " + err.Error()
			m.svc.CancelInteraction()
			break
		}
		if _, err := m.svc.Update(m.ctx, target, row.Draft(existing.Tags, existing.Language)); err != nil {
			m.status = "ERR: " + err.Error()
		}
	case inputRestore:
		data, err := readFile(value)
		if err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
		res, err := m.svc.Restore(m.ctx, data, app.RestoreAsk)
		switch {
		case errors.Is(err, app.ErrRestoreChoiceRequired):
		case errors.Is(err, app.ErrInvalidBackup):
			m.status = m.t("invalidBackup", nil)
		case err != nil:
			m.status = "ERR: " + err.Error()
		default:
			m.status = m.t("restored", map[string]any{"count": res.Cards})
		}
	case inputImport:
		data, err := readFile(value)
		if err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
		res, err := m.svc.ImportCSV(m.ctx, string(data), m.st.SelectedTags, card.DefaultLanguage)
		if err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
		m.status = m.t("imported", map[string]any{"count": len(res.Created)})
		if len(res.Errors) > 0 {
			m.status += " " + m.t("importErrors", map[string]any{"count": len(res.Errors)})
		}
	case inputExport:
		if err := m.export(value); err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
		m.status = "→ " + value
	}
	m.refresh(cmds)
}

func (m *Model) answer(known bool, cmds *[]tea.Cmd) {
	c, ok := m.st.CurrentCard()
	if !ok {
		m.status = m.t("noCardsToStudy", nil)
		return
	}
	if _, err := m.svc.Answer(m.ctx, c.ID, known); err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.status = ""
	m.refresh(cmds)
}

func (m *Model) updateSettings(patch map[string]any, cmds *[]tea.Cmd) {
	if _, err := m.svc.UpdateSettings(m.ctx, patch); err != nil {
		m.status = "ERR: " + err.Error()
	}
	m.refresh(cmds)
}

func (m *Model) export(path string) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	data, err := m.svc.Export()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func readFile(path string) ([]byte, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func parseRow(line string) (csvimport.Row, error) {
	res := csvimport.Parse(line)
	if len(res.Errors) > 0 {
		return csvimport.Row{}, res.Errors[0]
	}
	if len(res.Rows) == 0 {
		return csvimport.Row{}, app.ErrWordRequired
	}
	return res.Rows[0], nil
}

func nextLanguage(current string) string {
	langs := i18n.Languages()
	for i, l := range langs {
		if l == current {
			return langs[(i+1)%len(langs)]
		}
	}
	return langs[0]
}
