package config

import (
	"os"
	"strings"
)

// normalize expands paths, applies environment fallbacks, and canonicalizes
// enum-like fields. It runs after TOML decoding and before validation.
func (c *Config) normalize() error {
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return err
	}
	if strings.TrimSpace(c.Catalog.Path) != "" {
		if c.Catalog.Path, err = expandPath(c.Catalog.Path); err != nil {
			return err
		}
	}

	c.applyEnvOverrides()

	c.Scoring.Provider = strings.ToLower(strings.TrimSpace(c.Scoring.Provider))
	if c.Scoring.Provider == "" {
		c.Scoring.Provider = defaultProvider
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.OpenAI.TimeoutSeconds <= 0 {
		c.OpenAI.TimeoutSeconds = defaultTimeoutSeconds
	}
	if c.Gemini.TimeoutSeconds <= 0 {
		c.Gemini.TimeoutSeconds = defaultTimeoutSeconds
	}
	return nil
}

// applyEnvOverrides honours the deployment environment: credentials and model
// names fall back to well-known variables when the file leaves them empty, and
// the remote enable flag plus default provider can be forced from outside.
func (c *Config) applyEnvOverrides() {
	if c.OpenAI.APIKey == "" {
		c.OpenAI.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	}
	if c.Gemini.APIKey == "" {
		c.Gemini.APIKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	}
	if c.Gemini.APIKey == "" {
		c.Gemini.APIKey = strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
	}
	if model := strings.TrimSpace(os.Getenv("OPENAI_MODEL")); model != "" {
		c.OpenAI.Model = model
	}
	if model := strings.TrimSpace(os.Getenv("GEMINI_MODEL")); model != "" {
		c.Gemini.Model = model
	}
	if provider := firstEnv("PREPDRILL_PROVIDER", "PROVIDER"); provider != "" {
		c.Scoring.Provider = provider
	}
	if flag := firstEnv("PREPDRILL_USE_REMOTE", "USE_REMOTE"); flag != "" {
		c.Scoring.RemoteEnabled = truthy(flag)
	}
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}

func truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
