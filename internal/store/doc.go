// Package store persists practice sessions and their response logs in SQLite.
//
// The Store manages the database connection, schema initialization, and the
// append-only response log per session. Responses are never updated or
// deleted; the insertion order of a session's log is its submission order.
// Storage failures always propagate to the caller: losing a user's answer is
// a hard failure even though a scoring glitch is tolerable.
//
// Treat this package as the single source of truth for transcript semantics;
// when the row layout changes, update schema.sql and bump schemaVersion.
package store
