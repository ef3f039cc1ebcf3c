// Package session holds the state of one logged-in user: who they are, the
// LMP date they entered and their vitals history. A Session is created by
// Login, used by a single presentation layer and discarded by Close. Nothing
// is persisted and nothing is shared between sessions.
//
// Submit runs the whole submission path: parse the raw text fields, validate
// the reading, append it to the history and evaluate it. A rejected
// submission leaves the history exactly as it was.
package session
