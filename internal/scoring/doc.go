// Package scoring evaluates interview answers.
//
// It defines the Result contract shared by every scorer, the local heuristic
// scorer (lexical and sentiment signals, no network), the two-stage parser
// that recovers structured results from free-form model replies, and the
// Evaluator that owns the remote-versus-heuristic fallback policy. Remote
// providers plug in through the RemoteScorer interface and a name-keyed
// Registry; the Evaluator is the only component allowed to decide which
// scorer wins.
package scoring
