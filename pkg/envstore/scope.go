// Package envstore abstracts the OS environment-variable store that
// holds the PATH list. Each Scope has its own backend: the live process
// environment, the per-user persistent store, or the machine-wide
// persistent store. The core list operations only ever see the Store
// interface, so tests substitute an in-memory store and never touch
// real OS state.
package envstore

import (
	"strings"

	"github.com/arthur-debert/pathctl/pkg/errors"
)

// Scope identifies which tier of the environment system a path list
// belongs to.
type Scope int

const (
	// ScopeProcess is the transient environment of the current process tree.
	ScopeProcess Scope = iota
	// ScopeUser is the per-user persistent store.
	ScopeUser
	// ScopeMachine is the machine-wide persistent store. Mutating it
	// requires elevated privileges.
	ScopeMachine
)

// String returns the canonical scope name
func (s Scope) String() string {
	switch s {
	case ScopeProcess:
		return "Process"
	case ScopeUser:
		return "User"
	case ScopeMachine:
		return "Machine"
	default:
		return "Unknown"
	}
}

// ParseScope parses a scope name case-insensitively
func ParseScope(name string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "process", "":
		return ScopeProcess, nil
	case "user":
		return ScopeUser, nil
	case "machine":
		return ScopeMachine, nil
	default:
		return ScopeProcess, errors.Newf(errors.ErrScopeInvalid,
			"unknown scope %q (expected Process, User or Machine)", name)
	}
}

// Scopes lists all valid scopes in order
func Scopes() []Scope {
	return []Scope{ScopeProcess, ScopeUser, ScopeMachine}
}
