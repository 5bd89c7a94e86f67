package testsupport

import (
	"path/filepath"
	"testing"

	"prepdrill/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithRemoteScoring enables remote scoring with the given default provider.
func WithRemoteScoring(provider string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Scoring.RemoteEnabled = true
		cfg.Scoring.Provider = provider
	}
}

// WithCatalogPath points the config at a catalog file.
func WithCatalogPath(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Catalog.Path = path
	}
}
