// Package logging assembles the structured slog loggers used across prepdrill.
//
// It owns the console and JSON handlers, centralizes level parsing and output
// plumbing, and provides a no-op logger for tests. Prefer these constructors
// over hand-rolled slog setup so every component emits records with the same
// shape.
package logging
