// Package settings runs the settings commands.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/uponom/FlashcardCX/pkg/app"
	"github.com/uponom/FlashcardCX/pkg/printers"
)

var errNoService = errors.New("settings: no service")

type Show struct {
	Service *app.Service
	JSON    bool
	Printer *printers.PrettyPrint
}

func (n *Show) Do(_ context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	s := n.Service.State().Settings
	if n.JSON {
		return pp.JSON(s)
	}
	pp.Settings(s)
	return nil
}

// Set applies key=value pairs. Values that parse as JSON are used as parsed,
// so ttsEnabled=true is a bool and ttsVoiceMap='{"en":"Alex"}' a map; anything
// else is a string.
type Set struct {
	Service *app.Service
	Pairs   []string
	JSON    bool
	Printer *printers.PrettyPrint
}

func (n *Set) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	patch, err := ParsePairs(n.Pairs)
	if err != nil {
		return err
	}
	s, err := n.Service.UpdateSettings(ctx, patch)
	pp.Warning(n.Service.State().PersistWarning)
	if err != nil {
		return err
	}
	if n.JSON {
		return pp.JSON(s)
	}
	pp.Settings(s)
	return nil
}

// ParsePairs turns key=value arguments into a settings patch.
func ParsePairs(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, errors.New("settings: expected at least one key=value")
	}
	patch := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("settings: %q is not key=value", pair)
		}
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			v = raw
		}
		patch[key] = v
	}
	return patch, nil
}
