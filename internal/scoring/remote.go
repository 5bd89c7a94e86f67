package scoring

import (
	"context"
	"sort"
	"strings"

	"prepdrill/internal/services"
)

// RemoteScorer evaluates an answer through an external model provider. Score
// failures carry one of the services error markers; Validate is a diagnostic
// credential probe, never called on the scoring path.
type RemoteScorer interface {
	Name() string
	Score(ctx context.Context, question, answer string) (*Result, error)
	Validate(ctx context.Context) (string, error)
}

// Registry holds the remote scorers configured for this process, keyed by
// provider name. Selecting a provider that is not registered reports
// services.ErrUnavailable, which the orchestrator absorbs like any other
// provider failure.
type Registry struct {
	providers map[string]RemoteScorer
}

// NewRegistry builds a registry from the supplied providers. Nil entries are
// skipped so callers can register providers conditionally.
func NewRegistry(providers ...RemoteScorer) *Registry {
	registry := &Registry{providers: make(map[string]RemoteScorer, len(providers))}
	for _, provider := range providers {
		if provider == nil {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(provider.Name()))
		if name == "" {
			continue
		}
		registry.providers[name] = provider
	}
	return registry
}

// Lookup returns the provider registered under name.
func (r *Registry) Lookup(name string) (RemoteScorer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if r != nil {
		if provider, ok := r.providers[name]; ok {
			return provider, nil
		}
	}
	return nil, services.Wrap(services.ErrUnavailable, name, "lookup", "provider not registered", nil)
}

// Names returns the registered provider names, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
