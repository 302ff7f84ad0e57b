package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/uponom/FlashcardCX/pkg/backup"
	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/csvimport"
	"github.com/uponom/FlashcardCX/pkg/state"
)

// RestoreMode selects how a backup is applied to existing cards.
type RestoreMode string

const (
	// RestoreAsk defers the choice: the backup is held and the UI waits for
	// ResolveRestore.
	RestoreAsk RestoreMode = "ask"
	// RestoreMerge unions the backup into the existing cards by fingerprint
	// and keeps the current settings.
	RestoreMerge RestoreMode = "merge"
	// RestoreOverwrite replaces every card and adopts the backup's settings.
	RestoreOverwrite RestoreMode = "overwrite"
)

// ParseRestoreMode validates a mode name.
func ParseRestoreMode(s string) (RestoreMode, error) {
	switch m := RestoreMode(s); m {
	case RestoreAsk, RestoreMerge, RestoreOverwrite:
		return m, nil
	default:
		return "", fmt.Errorf("app: unknown restore mode %q", s)
	}
}

// RestoreResult describes an applied backup.
type RestoreResult struct {
	Mode  RestoreMode
	Cards int
	// Skipped reports backup records that were not cards.
	Skipped error
}

// Export renders the current cards and settings as a backup document.
func (s *Service) Export() ([]byte, error) {
	st := s.Store.State()
	return backup.Export(st.Flashcards, st.Settings, s.now())
}

// Restore applies a backup document. Malformed or mismatched backups fail
// with ErrInvalidBackup and change nothing. With no existing cards the backup
// always replaces the collection. Otherwise mode decides; RestoreAsk holds the
// backup and returns ErrRestoreChoiceRequired.
func (s *Service) Restore(_ context.Context, data []byte, mode RestoreMode) (RestoreResult, error) {
	if err := s.ready(); err != nil {
		return RestoreResult{}, err
	}
	payload, err := backup.Parse(data)
	if err != nil {
		return RestoreResult{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if !backup.Validate(payload, backup.SchemaVersion) {
		return RestoreResult{}, ErrInvalidBackup
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.Store.State().Flashcards) == 0 {
		return s.applyRestoreLocked(payload, RestoreOverwrite)
	}
	switch mode {
	case RestoreMerge, RestoreOverwrite:
		return s.applyRestoreLocked(payload, mode)
	default:
		s.scheduler.Cancel()
		s.pendingRestore = payload
		s.Store.Dispatch(state.SetUI(state.UI{Mode: state.ModeAwaitingRestoreChoice}))
		return RestoreResult{Mode: RestoreAsk}, ErrRestoreChoiceRequired
	}
}

// ResolveRestore applies the held backup with mode.
func (s *Service) ResolveRestore(_ context.Context, mode RestoreMode) (RestoreResult, error) {
	if mode != RestoreMerge && mode != RestoreOverwrite {
		return RestoreResult{}, fmt.Errorf("app: restore needs merge or overwrite, got %q", mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendingRestore == nil {
		return RestoreResult{}, ErrNoPendingRestore
	}
	return s.applyRestoreLocked(s.pendingRestore, mode)
}

// CancelRestore drops the held backup.
func (s *Service) CancelRestore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingRestore = nil
	if s.Store.State().UI.Mode == state.ModeAwaitingRestoreChoice {
		s.Store.Dispatch(state.SetUI(state.UI{Mode: state.ModeIdle}))
	}
}

func (s *Service) applyRestoreLocked(payload any, mode RestoreMode) (RestoreResult, error) {
	prepared := backup.PrepareIncoming(payload, backup.SchemaVersion, s.newID)
	if !prepared.OK {
		return RestoreResult{}, ErrInvalidBackup
	}
	if prepared.Skipped != nil {
		s.Log.Warn("app: backup records skipped", zap.Error(prepared.Skipped))
	}

	cards := prepared.Cards
	if mode == RestoreMerge {
		cards = backup.Merge(s.Store.State().Flashcards, prepared.Cards)
	} else {
		s.unreadable = nil
		if prepared.Settings != nil {
			s.Store.Dispatch(state.MergeSettings(prepared.Settings))
			s.persistSettings()
		}
	}

	s.scheduler.Cancel()
	s.pendingRestore = nil
	s.Store.Dispatch(state.SetFlashcards(cards))
	s.Store.Dispatch(state.SetUI(state.UI{Mode: state.ModeIdle}))
	s.pickLocked()
	s.persistCards()
	return RestoreResult{Mode: mode, Cards: len(cards), Skipped: prepared.Skipped}, nil
}

// ImportResult describes a CSV import.
type ImportResult struct {
	Created []card.Card
	Errors  []csvimport.LineError
}

// ImportCSV creates a card for every valid line of text, tagging each with
// tags and language, and saves once.
func (s *Service) ImportCSV(_ context.Context, text string, tags any, language string) (ImportResult, error) {
	if err := s.ready(); err != nil {
		return ImportResult{}, err
	}
	parsed := csvimport.Parse(text)
	res := ImportResult{Created: make([]card.Card, 0, len(parsed.Rows)), Errors: parsed.Errors}
	if len(parsed.Rows) == 0 {
		return res, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cards := s.Store.State().Flashcards
	for _, row := range parsed.Rows {
		c := row.Draft(tags, language).Build(s.newID(), now)
		res.Created = append(res.Created, c)
		cards = append(cards, c)
	}
	s.Store.Dispatch(state.SetFlashcards(cards))
	s.persistCards()
	s.ensureCurrentLocked()
	return res, nil
}
