// Package services defines shared utilities consumed by the remote scoring
// providers and the orchestration layer above them.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that tag provider failures
//     as configuration, availability, transport, or parse problems.
//   - The Recoverable predicate the orchestrator uses to decide whether a
//     failure may be absorbed by the heuristic fallback.
//
// Use these helpers when wiring new providers so failure handling stays
// uniform across the scoring subsystem.
package services
