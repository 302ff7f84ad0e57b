// Package settings holds the user's application preferences.
package settings

import (
	"errors"
	"maps"
	"sort"

	"github.com/mitchellh/mapstructure"
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Settings is a flat record of preferences. Stored records are merged over
// Defaults, so missing or unknown keys are harmless.
type Settings struct {
	UILanguage       string            `json:"uiLanguage"`
	TTSEnabled       bool              `json:"ttsEnabled"`
	PrioritizeUnseen bool              `json:"prioritizeUnseen"`
	Theme            string            `json:"theme"`
	TTSVoiceMap      map[string]string `json:"ttsVoiceMap"`
}

// Defaults returns the settings a fresh install starts with.
func Defaults() Settings {
	return Settings{
		UILanguage:       "en",
		TTSEnabled:       false,
		PrioritizeUnseen: false,
		Theme:            ThemeLight,
		TTSVoiceMap:      map[string]string{},
	}
}

// Keys lists the recognized setting names in stable order.
func Keys() []string {
	return []string{"uiLanguage", "ttsEnabled", "prioritizeUnseen", "theme", "ttsVoiceMap"}
}

var errNullValue = errors.New("settings: null value")

var uiLanguages = map[string]struct{}{"en": {}, "ua": {}, "ru": {}}

// Clone returns a copy that shares no maps with s.
func (s Settings) Clone() Settings {
	s.TTSVoiceMap = maps.Clone(s.TTSVoiceMap)
	if s.TTSVoiceMap == nil {
		s.TTSVoiceMap = map[string]string{}
	}
	return s
}

// Merge shallow-merges patch over s and returns the result. Each key is
// applied on its own: unknown keys and values that cannot be converted to the
// field's type are skipped, and nested values such as ttsVoiceMap replace the
// previous value entirely. It reports the keys that were skipped.
func (s Settings) Merge(patch map[string]any) (Settings, []string) {
	next := s.Clone()
	var skipped []string

	keys := make([]string, 0, len(patch))
	for k := range patch {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		candidate := next.Clone()
		if !known(key) || decodeField(&candidate, key, patch[key]) != nil || !candidate.valid() {
			skipped = append(skipped, key)
			continue
		}
		next = candidate
	}
	return next, skipped
}

// Decode merges a stored settings record over Defaults. Anything that is not
// an object yields Defaults.
func Decode(v any) Settings {
	patch, ok := v.(map[string]any)
	if !ok {
		return Defaults()
	}
	s, _ := Defaults().Merge(patch)
	return s
}

// Map renders s as a plain record, the shape it is stored and exported in.
func (s Settings) Map() map[string]any {
	voices := make(map[string]any, len(s.TTSVoiceMap))
	for k, v := range s.TTSVoiceMap {
		voices[k] = v
	}
	return map[string]any{
		"uiLanguage":       s.UILanguage,
		"ttsEnabled":       s.TTSEnabled,
		"prioritizeUnseen": s.PrioritizeUnseen,
		"theme":            s.Theme,
		"ttsVoiceMap":      voices,
	}
}

func known(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

func decodeField(s *Settings, key string, value any) error {
	if value == nil {
		return errNullValue
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ZeroFields:       true,
		TagName:          "json",
		Result:           s,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(map[string]any{key: value})
}

func (s Settings) valid() bool {
	if _, ok := uiLanguages[s.UILanguage]; !ok {
		return false
	}
	return s.Theme == ThemeLight || s.Theme == ThemeDark
}
