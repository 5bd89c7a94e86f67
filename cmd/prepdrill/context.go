package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"prepdrill/internal/catalog"
	"prepdrill/internal/config"
	"prepdrill/internal/logging"
	"prepdrill/internal/scoring"
	"prepdrill/internal/services/gemini"
	"prepdrill/internal/services/openai"
	"prepdrill/internal/session"
	"prepdrill/internal/store"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

// appEnv bundles the wired subsystems a command needs. Close releases the
// store; every command that opens an environment must defer it.
type appEnv struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *store.Store
	catalog *catalog.Catalog
	manager *session.Manager
}

func (c *commandContext) openEnvironment() (*appEnv, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize logging: %w", err)
	}
	st, err := store.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	registry := scoring.NewRegistry(
		openai.NewClient(cfg.OpenAIProvider()),
		gemini.NewClient(cfg.GeminiProvider()),
	)
	evaluator := scoring.NewEvaluator(registry, cfg.Scoring.RemoteEnabled, cfg.Scoring.Provider, logger)
	return &appEnv{
		cfg:     cfg,
		logger:  logger,
		store:   st,
		catalog: cat,
		manager: session.NewManager(st, cat, evaluator, logger),
	}, nil
}

func (e *appEnv) Close() error {
	return e.store.Close()
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
