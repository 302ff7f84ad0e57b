// Package studyui is the Bubble Tea study loop. It renders the Service's
// state and turns key presses into Service calls.
package studyui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/uponom/FlashcardCX/pkg/app"
	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/i18n"
	"github.com/uponom/FlashcardCX/pkg/speech"
	"github.com/uponom/FlashcardCX/pkg/state"
	"github.com/uponom/FlashcardCX/pkg/store"
	"github.com/uponom/FlashcardCX/pkg/tui/theme"
)

type inputKind int

const (
	inputNone inputKind = iota
	inputAdd
	inputEdit
	inputFilter
	inputRestore
	inputImport
	inputExport
)

// Options tune a Model.
type Options struct {
	// Speaker says card words; nil disables speech.
	Speaker *speech.Speaker
	// Now defaults to time.Now.
	Now func() time.Time
}

// StateMsg delivers a state snapshot published by the Service's store.
type StateMsg struct {
	State state.State
}

type tickMsg time.Time

type statusMsg string

type errMsg struct {
	err error
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

// Model is the study screen.
type Model struct {
	svc     *app.Service
	speaker *speech.Speaker
	now     func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	st    state.State
	theme theme.Theme
	t     i18n.Translate

	width  int
	height int

	input       textinput.Model
	inputKind   inputKind
	inputTarget string

	status     string
	revealedAt time.Time
	ticking    bool
	lastSpoken string

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New creates the study model backed by svc.
func New(svc *app.Service, opts Options) *Model {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Prompt = ""
	ti.VirtualCursor = true

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		svc:     svc,
		speaker: opts.Speaker,
		now:     now,
		ctx:     ctx,
		cancel:  cancel,
		input:   ti,
	}
	m.apply(svc.State())
	return m
}

// Init starts watching the store on disk and speaks the first card when
// text-to-speech is on.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(startWatchCmd(m.ctx, m.svc), m.autoSpeak())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(max(m.cardWidth()-2, 10))
	case StateMsg:
		if cmd := m.applyState(msg.State); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case tickMsg:
		m.ticking = false
		if m.st.UI.Mode == state.ModeRevealed {
			cmds = append(cmds, m.tick())
		}
	case statusMsg:
		m.status = string(msg)
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case watchStartedMsg:
		if msg.err != nil {
			m.status = "ERR: watch " + msg.err.Error()
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		cmds = append(cmds, m.reloadCmd(msg.event))
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
	case tea.KeyPressMsg:
		if m.handleKey(msg, &cmds) {
			return m, tea.Batch(cmds...)
		}
	}

	if m.inputKind != inputNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// refresh applies the Service's latest state after a call made from Update.
func (m *Model) refresh(cmds *[]tea.Cmd) {
	if cmd := m.applyState(m.svc.State()); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

// applyState adopts st unless a newer snapshot was already applied.
func (m *Model) applyState(st state.State) tea.Cmd {
	if st.Revision < m.st.Revision {
		return nil
	}
	wasRevealed := m.st.UI.Mode == state.ModeRevealed
	m.apply(st)

	var cmds []tea.Cmd
	if m.st.UI.Mode == state.ModeRevealed {
		if !wasRevealed {
			m.revealedAt = m.now()
		}
		cmds = append(cmds, m.tick())
	}
	if st.UI.Mode == state.ModeIdle && m.inputKind == inputEdit {
		m.closeInput()
	}
	cmds = append(cmds, m.autoSpeak())
	return tea.Batch(cmds...)
}

func (m *Model) apply(st state.State) {
	m.st = st
	m.theme = theme.For(st.Settings.Theme)
	m.t = i18n.Translator(st.Settings.UILanguage)
}

func (m *Model) tick() tea.Cmd {
	if m.ticking || m.svc.AdvanceDelay <= 0 {
		return nil
	}
	m.ticking = true
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// remaining is the time left before the revealed card auto-advances.
func (m *Model) remaining() time.Duration {
	left := m.svc.AdvanceDelay - m.now().Sub(m.revealedAt)
	if left < 0 {
		return 0
	}
	return left
}

// autoSpeak says a newly shown card when text-to-speech is on.
func (m *Model) autoSpeak() tea.Cmd {
	if !m.st.Settings.TTSEnabled || m.st.UI.Mode == state.ModeRevealed {
		return nil
	}
	c, ok := m.st.CurrentCard()
	if !ok || c.ID == m.lastSpoken {
		return nil
	}
	m.lastSpoken = c.ID
	return m.speakCmd(c, false)
}

func (m *Model) speakCmd(c card.Card, force bool) tea.Cmd {
	if m.speaker == nil {
		if force {
			return func() tea.Msg { return errMsg{err: speech.ErrUnavailable} }
		}
		return nil
	}
	ctx := m.ctx
	speaker := m.speaker
	return func() tea.Msg {
		if err := speaker.Speak(ctx, c.Word, c.Language, force); err != nil && ctx.Err() == nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func (m *Model) reloadCmd(ev store.Event) tea.Cmd {
	ctx := m.ctx
	svc := m.svc
	return func() tea.Msg {
		if err := svc.Reload(ctx); err != nil {
			return errMsg{err: err}
		}
		if ev.Type == store.EventInvalidated {
			return statusMsg("Reloaded")
		}
		return statusMsg("Reloaded " + ev.Key)
	}
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil || svc.Persistence == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) quit() tea.Cmd {
	m.stopWatch()
	m.cancel()
	return tea.Quit
}

// Run opens the study UI and blocks until the user quits.
func Run(svc *app.Service, opts Options) error {
	m := New(svc, opts)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Listeners run inside Service calls; hand the snapshot to the program
	// without blocking them.
	unsubscribe := svc.Store.Subscribe(func(st state.State) {
		go p.Send(StateMsg{State: st})
	})
	defer unsubscribe()
	defer svc.Close()

	_, err := p.Run()
	return err
}
