package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/uponom/FlashcardCX/pkg/settings"
	"github.com/uponom/FlashcardCX/pkg/state"
)

// UpdateSettings shallow-merges patch into the settings and saves them. Keys
// that are unknown or carry invalid values are skipped and reported with
// ErrUnknownSetting; the rest still apply.
func (s *Service) UpdateSettings(_ context.Context, patch map[string]any) (settings.Settings, error) {
	if err := s.ready(); err != nil {
		return settings.Settings{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.Store.State().Settings
	merged, skipped := current.Merge(patch)
	if len(skipped) < len(patch) {
		s.Store.Dispatch(state.ReplaceSettings(merged))
		s.persistSettings()
	}
	if len(skipped) > 0 {
		return merged, fmt.Errorf("%w: %s", ErrUnknownSetting, strings.Join(skipped, ", "))
	}
	return merged, nil
}
