// Package speech reads card words aloud through an external text-to-speech
// engine.
package speech

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/uponom/FlashcardCX/pkg/settings"
)

// ErrUnavailable is returned when no speech engine is configured.
var ErrUnavailable = errors.New("speech: engine unavailable")

// Voice is one voice the engine offers.
type Voice struct {
	Name string `json:"name"`
	Lang string `json:"lang"`
	// ID is what the engine selects the voice by, when it differs from Name.
	ID string `json:"id,omitempty"`
}

// Engine lists voices and speaks text.
type Engine interface {
	Voices(ctx context.Context) ([]Voice, error)
	Say(ctx context.Context, text, lang string, voice *Voice) error
}

var (
	parenthesized = regexp.MustCompile(`\([^)]*\)`)
	spaces        = regexp.MustCompile(`\s{2,}`)
)

// Sanitize drops parenthesized notes, such as "(informal)", and collapses
// whitespace so only the word itself is spoken.
func Sanitize(text string) string {
	text = parenthesized.ReplaceAllString(text, "")
	text = spaces.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// VoiceCache remembers the engine's voice list. It loads on first use and
// keeps retrying while the engine reports no voices; Refresh forces a reload.
type VoiceCache struct {
	engine Engine
	log    *zap.Logger

	mu     sync.Mutex
	voices []Voice
	ready  bool
}

func NewVoiceCache(engine Engine, log *zap.Logger) *VoiceCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &VoiceCache{engine: engine, log: log}
}

// Voices returns the cached voices, loading them if needed.
func (c *VoiceCache) Voices(ctx context.Context) []Voice {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		c.loadLocked(ctx)
	}
	return append([]Voice(nil), c.voices...)
}

// Refresh drops the cached list and loads it again.
func (c *VoiceCache) Refresh(ctx context.Context) []Voice {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ready = false
	c.voices = nil
	c.loadLocked(ctx)
	return append([]Voice(nil), c.voices...)
}

func (c *VoiceCache) loadLocked(ctx context.Context) {
	if c.engine == nil {
		return
	}
	voices, err := c.engine.Voices(ctx)
	if err != nil {
		c.log.Warn("speech: voice loading failed", zap.Error(err))
		return
	}
	if len(voices) > 0 {
		c.voices = voices
		c.ready = true
	}
}

// Card language codes that differ from the BCP 47 codes engines use.
var engineLangs = map[string]string{"ua": "uk"}

func engineLang(lang string) string {
	if mapped, ok := engineLangs[strings.ToLower(lang)]; ok {
		return mapped
	}
	return lang
}

// Pick chooses the voice for lang: the one named in voiceMap if the engine has
// it, otherwise the first voice whose language starts with lang.
func Pick(voices []Voice, lang string, voiceMap map[string]string) (Voice, bool) {
	if preferred := voiceMap[lang]; preferred != "" {
		for _, v := range voices {
			if v.Name == preferred {
				return v, true
			}
		}
	}
	lang = strings.ToLower(engineLang(lang))
	for _, v := range voices {
		if strings.HasPrefix(strings.ToLower(v.Lang), lang) {
			return v, true
		}
	}
	return Voice{}, false
}

// Speaker speaks card words according to the user's settings.
type Speaker struct {
	Engine   Engine
	Cache    *VoiceCache
	Settings func() settings.Settings
}

// Speak says text in lang. Unless force is set it does nothing while
// text-to-speech is disabled. Text that is empty after Sanitize is ignored.
func (s *Speaker) Speak(ctx context.Context, text, lang string, force bool) error {
	if s == nil || s.Engine == nil {
		return ErrUnavailable
	}
	clean := Sanitize(text)
	if clean == "" {
		return nil
	}
	prefs := settings.Defaults()
	if s.Settings != nil {
		prefs = s.Settings()
	}
	if !prefs.TTSEnabled && !force {
		return nil
	}
	if lang == "" {
		lang = "en"
	}

	var voice *Voice
	if s.Cache != nil {
		if v, ok := Pick(s.Cache.Voices(ctx), lang, prefs.TTSVoiceMap); ok {
			voice = &v
		}
	}
	return s.Engine.Say(ctx, clean, engineLang(lang), voice)
}
