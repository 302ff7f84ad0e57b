package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/state"
	"github.com/uponom/FlashcardCX/pkg/store"
	"github.com/uponom/FlashcardCX/pkg/study"
)

// Persistence warnings shown while saves fail.
const (
	WarnSaveCards    = "Unable to save changes. Please export a backup."
	WarnSaveSettings = "Unable to save settings. Please export a backup."
)

var (
	ErrNoPersistence         = errors.New("app: no persistence configured")
	ErrWordRequired          = errors.New("app: word is required")
	ErrNotFound              = errors.New("app: card not found")
	ErrInvalidBackup         = errors.New("app: invalid backup format")
	ErrRestoreChoiceRequired = errors.New("app: choose merge or overwrite to restore into existing cards")
	ErrNoPendingRestore      = errors.New("app: no restore pending")
	ErrUnknownSetting        = errors.New("app: unknown setting or invalid value")
)

// Service provides the flashcard operations shared by the CLI and the study
// UI. It owns the state Store and saves every change through Persistence.
// Store listeners run while a Service operation is in progress and must not
// call back into the Service.
type Service struct {
	Persistence store.Persistence
	Store       *state.Store
	Log         *zap.Logger

	// Rand drives card selection; nil uses study.DefaultRand.
	Rand study.Rand
	// NewID and Now default to card.NewID and time.Now.
	NewID func() string
	Now   func() time.Time
	// AdvanceDelay is how long an answered card stays revealed. Zero
	// advances immediately.
	AdvanceDelay time.Duration

	mu             sync.Mutex
	scheduler      study.Scheduler
	pendingRestore any
	// unreadable holds stored records Decode skipped; they are saved back
	// after the cards.
	unreadable []any
}

// New creates a Service with an empty store.
func New(p store.Persistence, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		Persistence:  p,
		Store:        state.NewStore(state.Initial(), log),
		Log:          log,
		AdvanceDelay: study.DefaultAdvanceDelay,
	}
}

// State returns the current state snapshot.
func (s *Service) State() state.State {
	return s.Store.State()
}

// Load reads cards and settings from persistence, migrating stored cards to
// the current shape. Migrated cards are saved back right away.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

// Reload is Load for changes made by another process. The tag filter and the
// current card are kept when they still apply.
func (s *Service) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

func (s *Service) loadLocked(_ context.Context) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	migration := card.Migrate(s.Persistence.LoadFlashcards())
	cards, unreadable, skipped := card.DecodeRecords(migration.Records)
	s.unreadable = unreadable
	if skipped != nil {
		s.Log.Warn("app: skipped unreadable stored cards", zap.Error(skipped))
	}
	didMigrate := migration.DidMigrate
	for i := range cards {
		if cards[i].ID == "" {
			cards[i].ID = s.newID()
			didMigrate = true
		}
	}
	if didMigrate {
		// Leave unreadable records on disk for manual recovery rather than
		// dropping them with the rewrite.
		if skipped != nil {
			s.Log.Warn("app: not saving migrated cards while stored records are unreadable")
		} else if err := s.Persistence.SaveFlashcards(cards); err != nil {
			s.Log.Warn("app: failed to persist migrated flashcards", zap.Error(err))
		}
	}

	s.Store.Dispatch(state.SetFlashcards(cards))
	s.Store.Dispatch(state.ReplaceSettings(s.Persistence.LoadSettings()))
	s.ensureCurrentLocked()
	return nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// persistCards saves the current cards. A failure is logged and surfaces as
// the persistence warning; the in-memory state is kept either way.
func (s *Service) persistCards() bool {
	if err := s.Persistence.SaveFlashcards(s.Store.State().Flashcards, s.unreadable...); err != nil {
		s.Log.Warn("app: failed to persist flashcards", zap.Error(err))
		s.Store.Dispatch(state.SetWarning(WarnSaveCards))
		return false
	}
	s.clearWarning()
	return true
}

func (s *Service) persistSettings() bool {
	if err := s.Persistence.SaveSettings(s.Store.State().Settings); err != nil {
		s.Log.Warn("app: failed to persist settings", zap.Error(err))
		s.Store.Dispatch(state.SetWarning(WarnSaveSettings))
		return false
	}
	s.clearWarning()
	return true
}

func (s *Service) clearWarning() {
	if s.Store.State().PersistWarning != "" {
		s.Store.Dispatch(state.SetWarning(""))
	}
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return card.NewID()
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) ready() error {
	if s.Persistence == nil || s.Store == nil {
		return ErrNoPersistence
	}
	return nil
}
