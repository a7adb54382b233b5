package testsupport

import (
	"path/filepath"
	"testing"

	"subvocab/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.YouTube.APIKey = "test-youtube-key"
	cfg.Gemini.APIKey = "test-gemini-key"

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithDefaultDifficulty overrides the default difficulty on the test config.
func WithDefaultDifficulty(difficulty int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Vocabulary.DefaultDifficulty = difficulty
	}
}

// WithStopWords sets additional stop words on the test config.
func WithStopWords(stops ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Vocabulary.StopWords = stops
	}
}
