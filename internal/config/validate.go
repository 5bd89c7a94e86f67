package config

import (
	"errors"
	"fmt"
	"strings"
)

var knownProviders = map[string]bool{
	"openai": true,
	"gemini": true,
}

// Validate checks configuration invariants that would otherwise surface as
// confusing runtime failures. Missing credentials are deliberately not
// validation errors: the scoring path degrades to the heuristic scorer.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Paths.DataDir) == "" {
		problems = append(problems, "paths.data_dir must not be empty")
	}
	if !knownProviders[c.Scoring.Provider] {
		problems = append(problems, fmt.Sprintf("scoring.provider %q is not one of: openai, gemini", c.Scoring.Provider))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q is not one of: console, json", c.Logging.Format))
	}
	if c.OpenAI.TimeoutSeconds <= 0 {
		problems = append(problems, "openai.timeout_seconds must be positive")
	}
	if c.Gemini.TimeoutSeconds <= 0 {
		problems = append(problems, "gemini.timeout_seconds must be positive")
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.New("invalid configuration: " + strings.Join(problems, "; "))
}
