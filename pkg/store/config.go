package store

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultQuota mirrors the few megabytes a browser grants local storage.
const DefaultQuota int64 = 5 * 1024 * 1024

// Config locates the on-disk store.
type Config interface {
	BasePath() string
	// QuotaBytes caps the combined size of stored records; <= 0 disables it.
	QuotaBytes() int64
}

// FileConfig is read from .flashcards.yaml and FLASHCARDS_* environment
// variables.
type FileConfig struct {
	Path         string        `mapstructure:"path"`
	Quota        int64         `mapstructure:"quota"`
	Env          string        `mapstructure:"env"`
	LogLevel     string        `mapstructure:"log_level"`
	AdvanceDelay time.Duration `mapstructure:"advance_delay"`
	TTS          TTSConfig     `mapstructure:"tts"`

	// ConfigFile is the file the values were read from, "" when none was found.
	ConfigFile string `mapstructure:"-"`
}

// TTSConfig configures the external speech engine.
type TTSConfig struct {
	Command string `mapstructure:"command"`
}

func (f *FileConfig) BasePath() string {
	return f.Path
}

func (f *FileConfig) QuotaBytes() int64 {
	return f.Quota
}

// LoadConfig reads configuration from $FLASHCARDS_CONFIG_PATH or the working
// directory. A missing config file is not an error.
func LoadConfig() (*FileConfig, error) {
	v := viper.New()
	v.SetDefault("path", "~/.flashcards.db")
	v.SetDefault("quota", DefaultQuota)
	v.SetDefault("env", "development")
	v.SetDefault("log_level", "")
	v.SetDefault("advance_delay", "20s")
	v.SetDefault("tts.command", "espeak-ng")
	v.SetConfigName(".flashcards") // .yaml is implicit
	v.SetEnvPrefix("FLASHCARDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("FLASHCARDS_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	cfg := &FileConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("store: decode config: %w", err)
	}
	path, err := homedir.Expand(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("store: expand path %q: %w", cfg.Path, err)
	}
	cfg.Path = path
	cfg.ConfigFile = v.ConfigFileUsed()
	return cfg, nil
}
