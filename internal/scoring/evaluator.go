package scoring

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"prepdrill/internal/services"
)

// RemoteChoice selects remote scoring for a single evaluation. The zero value
// defers to the process-wide configuration; RemoteOn and RemoteOff force the
// decision, and RemoteVia additionally names the provider.
type RemoteChoice struct {
	set      bool
	enabled  bool
	provider string
}

// RemoteDefault defers to the configured enable flag and provider.
func RemoteDefault() RemoteChoice { return RemoteChoice{} }

// RemoteOn forces remote scoring with the configured provider.
func RemoteOn() RemoteChoice { return RemoteChoice{set: true, enabled: true} }

// RemoteOff forces the heuristic path regardless of configuration.
func RemoteOff() RemoteChoice { return RemoteChoice{set: true} }

// RemoteVia forces remote scoring through the named provider.
func RemoteVia(provider string) RemoteChoice {
	return RemoteChoice{set: true, enabled: true, provider: strings.ToLower(strings.TrimSpace(provider))}
}

// Evaluator owns the remote-versus-heuristic policy. It is the only place
// that decides which scorer wins, and Evaluate is the single hard guarantee
// of the scoring subsystem: it always returns a usable Result.
type Evaluator struct {
	heuristic       *Heuristic
	registry        *Registry
	remoteEnabled   bool
	defaultProvider string
	logger          *slog.Logger
}

// NewEvaluator wires the orchestrator. remoteEnabled and defaultProvider come
// from configuration; registry may be empty, in which case every remote
// request degrades to the heuristic scorer.
func NewEvaluator(registry *Registry, remoteEnabled bool, defaultProvider string, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	defaultProvider = strings.ToLower(strings.TrimSpace(defaultProvider))
	if defaultProvider == "" {
		defaultProvider = "openai"
	}
	return &Evaluator{
		heuristic:       NewHeuristic(),
		registry:        registry,
		remoteEnabled:   remoteEnabled,
		defaultProvider: defaultProvider,
		logger:          logger,
	}
}

// Evaluate scores an answer, preferring the selected remote provider and
// silently degrading to the heuristic scorer on any remote failure.
func (e *Evaluator) Evaluate(ctx context.Context, question, answer string, choice RemoteChoice) Result {
	log := e.logger.With(slog.String("evaluation_id", uuid.NewString()))

	enabled := e.remoteEnabled
	if choice.set {
		enabled = choice.enabled
	}
	if enabled {
		provider := choice.provider
		if provider == "" {
			provider = e.defaultProvider
		}
		if result, err := e.scoreRemote(ctx, provider, question, answer); err == nil {
			log.Debug("remote score accepted",
				slog.String("provider", provider),
				slog.Float64("score", result.Score))
			return *result
		} else if services.Recoverable(err) {
			log.Warn("remote scoring failed, using heuristic fallback",
				slog.String("provider", provider),
				slog.String("error", err.Error()))
		} else {
			// Unexpected failure shape; the fallback still applies.
			log.Error("remote scoring failed unexpectedly, using heuristic fallback",
				slog.String("provider", provider),
				slog.String("error", err.Error()))
		}
	}

	result := e.heuristic.Score(question, answer)
	log.Debug("heuristic score produced", slog.Float64("score", result.Score))
	return result
}

// scoreRemote runs a single provider attempt and normalizes the outcome:
// score rounded to one decimal and clamped into [0,10]. No retries; a failed
// attempt falls straight back to the heuristic path.
func (e *Evaluator) scoreRemote(ctx context.Context, name, question, answer string) (*Result, error) {
	provider, err := e.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	result, err := provider.Score(ctx, question, answer)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, services.Wrap(services.ErrProvider, name, "score", "provider returned no result", nil)
	}
	result.Score = clampScore(roundScore(result.Score))
	return result, nil
}
