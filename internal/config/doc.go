// Package config loads, normalizes, and validates prepdrill configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// OPENAI_API_KEY and PREPDRILL_USE_REMOTE. The Config type centralizes every
// knob the CLI and core need, so provider credentials and data directories are
// discovered in one pass and never looked up ambiently mid-call.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical provider names, and clear validation errors.
package config
