package main

import (
	"fmt"
	"strings"

	"prepdrill/internal/scoring"
)

// parseRemoteChoice maps the --remote flag to a scoring choice. An unset flag
// defers to configuration; "on"/"off" force the policy; any other value names
// the provider to use.
func parseRemoteChoice(value string) (scoring.RemoteChoice, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return scoring.RemoteDefault(), nil
	case "on", "true", "yes":
		return scoring.RemoteOn(), nil
	case "off", "false", "no":
		return scoring.RemoteOff(), nil
	case "openai":
		return scoring.RemoteVia("openai"), nil
	case "gemini":
		return scoring.RemoteVia("gemini"), nil
	default:
		return scoring.RemoteChoice{}, fmt.Errorf("unknown --remote value %q (expected on, off, openai, or gemini)", value)
	}
}
