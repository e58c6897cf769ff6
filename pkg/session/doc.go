// Package session serializes access to per-user conversation state. A
// Manager wraps a ports.SessionStore with ref-counted in-process locks,
// optionally backed by a distributed locker when several instances share
// one store.
package session
