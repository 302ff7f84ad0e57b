package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/uponom/FlashcardCX/pkg/app"
	"github.com/uponom/FlashcardCX/pkg/logging"
	"github.com/uponom/FlashcardCX/pkg/printers"
	"github.com/uponom/FlashcardCX/pkg/settings"
	"github.com/uponom/FlashcardCX/pkg/speech"
	"github.com/uponom/FlashcardCX/pkg/store"
)

// defaultCLILevel keeps command output readable unless a level is asked for.
const defaultCLILevel = "warn"

// session is the configured service a command runs against.
type session struct {
	cfg *store.FileConfig
	log *zap.Logger
	svc *app.Service
}

// openSession loads the config, builds the logger and loads the cards. The
// service advances immediately after an answer; the study UI sets its own
// delay.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	level := lo.Level
	if level == "" {
		level = cfg.LogLevel
	}
	if level == "" {
		level = defaultCLILevel
	}
	log, err := logging.New(logging.Options{Env: cfg.Env, Quiet: lo.Quiet, Level: level})
	if err != nil {
		return nil, err
	}

	p, err := store.Load(cfg, log)
	if err != nil {
		return nil, err
	}
	svc := app.New(p, log)
	svc.AdvanceDelay = 0
	if err := svc.Load(ctx); err != nil {
		return nil, err
	}
	log.Debug("session: loaded",
		zap.String("path", cfg.Path),
		zap.Int("cards", len(svc.State().Flashcards)))
	return &session{cfg: cfg, log: log, svc: svc}, nil
}

func (s *session) Close() {
	s.svc.Close()
	_ = s.log.Sync()
}

func (s *session) printer() *printers.PrettyPrint {
	return &printers.PrettyPrint{}
}

func (s *session) engine() speech.Engine {
	return &speech.ExecEngine{Command: s.cfg.TTS.Command}
}

func (s *session) speaker() *speech.Speaker {
	engine := s.engine()
	return &speech.Speaker{
		Engine: engine,
		Cache:  speech.NewVoiceCache(engine, s.log),
		Settings: func() settings.Settings {
			return s.svc.State().Settings
		},
	}
}
