package domain

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrProfileNotFound is returned when no saved profile exists for a user.
var ErrProfileNotFound = errors.New("profile not found")

// ErrNodeNotFound is returned when a decision node ID is unknown.
var ErrNodeNotFound = errors.New("decision node not found")

// ValidationError reports a bad intake answer. Always recoverable: the
// form re-prompts and the cursor does not advance.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid answer for %s: %s", e.Field, e.Reason)
}

// LookupError reports an unknown node ID or a malformed replay path.
// Recoverable: callers degrade to a fallback node or option.
type LookupError struct {
	Kind string // "node", "option", "path"
	ID   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.ID)
}

func (e *LookupError) Unwrap() error { return ErrNodeNotFound }

// GenerationError reports a recommendation or advice synthesis failure.
// Recoverable: callers substitute canned fallback content.
type GenerationError struct {
	Goal string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed for %s: %v", e.Goal, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// PersistenceError reports an unreachable store. Recoverable: logged and
// swallowed, never surfaced into a conversation turn.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
