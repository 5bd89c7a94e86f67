// Package session orchestrates practice runs: question selection from the
// catalog, answer scoring through the evaluator, and transcript persistence.
package session
