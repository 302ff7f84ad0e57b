package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"github.com/uponom/FlashcardCX/pkg/card"
	"github.com/uponom/FlashcardCX/pkg/settings"
)

// Record keys.
const (
	KeyFlashcards = "flashcards"
	KeySettings   = "settings"
)

const fileExt = ".json"

// Persistence loads and saves the flashcard list and the settings record.
// Loads never fail: missing or corrupt data yields an empty list or the
// default settings. Saves return the underlying store's error.
// SaveFlashcards writes the extra records after the cards, as they are.
type Persistence interface {
	LoadFlashcards() []any
	SaveFlashcards(cards []card.Card, extra ...any) error
	LoadSettings() settings.Settings
	SaveSettings(s settings.Settings) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config, log *zap.Logger) (Persistence, error) {
	if cfg == nil {
		fc, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		cfg = fc
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}

	d := diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// Another process may rewrite the files; always read from disk.
		CacheSizeMax: 0,
	})
	kv := Quota{KV: d, Limit: cfg.QuotaBytes(), Keys: []string{KeyFlashcards, KeySettings}}
	return New(kv, basePath, log), nil
}

// New wraps kv. basePath is only needed by Watch.
func New(kv KV, basePath string, log *zap.Logger) Persistence {
	if log == nil {
		log = zap.NewNop()
	}
	return &persistence{kv: kv, basePath: basePath, log: log}
}

type persistence struct {
	kv       KV
	basePath string
	log      *zap.Logger
}

func (p *persistence) read(key string) (any, bool) {
	if !p.kv.Has(key) {
		return nil, false
	}
	data, err := p.kv.Read(key)
	if err != nil {
		p.log.Warn("store: read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		p.log.Warn("store: corrupt record ignored", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return v, true
}

func (p *persistence) write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.kv.Write(key, data); err != nil {
		return fmt.Errorf("store: save %s: %w", key, err)
	}
	return nil
}

func (p *persistence) LoadFlashcards() []any {
	v, ok := p.read(KeyFlashcards)
	if !ok {
		return []any{}
	}
	list, ok := v.([]any)
	if !ok {
		p.log.Warn("store: flashcards record is not a list", zap.String("type", fmt.Sprintf("%T", v)))
		return []any{}
	}
	return list
}

func (p *persistence) SaveFlashcards(cards []card.Card, extra ...any) error {
	records := make([]any, 0, len(cards)+len(extra))
	for _, c := range cards {
		records = append(records, c)
	}
	return p.write(KeyFlashcards, append(records, extra...))
}

func (p *persistence) LoadSettings() settings.Settings {
	v, _ := p.read(KeySettings)
	return settings.Decode(v)
}

func (p *persistence) SaveSettings(s settings.Settings) error {
	return p.write(KeySettings, s.Map())
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key + fileExt,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, fileExt)
}

// RecordPath is the file a record key is stored in under basePath.
func RecordPath(basePath, key string) string {
	return filepath.Join(basePath, key+fileExt)
}
