package envstore

import (
	"os"

	"github.com/arthur-debert/pathctl/pkg/errors"
)

// PathVar is the name of the environment variable holding the path list.
const PathVar = "PATH"

// Store reads and writes the raw delimited path value for one scope.
// A missing variable reads as the empty string, not an error.
type Store interface {
	Read() (string, error)
	Write(value string) error
}

// New returns the platform backend for the given scope.
func New(scope Scope) Store {
	if scope == ScopeProcess {
		return ProcessStore{}
	}
	return newPersistentStore(scope)
}

// ProcessStore is backed by the environment of the current process.
// Writes are visible to this process and its children only.
type ProcessStore struct{}

// Read returns the current process value of the path variable.
func (ProcessStore) Read() (string, error) {
	return os.Getenv(PathVar), nil
}

// Write replaces the process value of the path variable.
func (ProcessStore) Write(value string) error {
	if err := os.Setenv(PathVar, value); err != nil {
		return errors.Wrap(err, errors.ErrStoreAccess, "failed to set process environment")
	}
	return nil
}

// MemStore is an in-memory Store. It backs unit tests so the core
// operations never touch real OS state.
type MemStore struct {
	value string
}

// NewMemStore returns a MemStore seeded with the given raw value.
func NewMemStore(value string) *MemStore {
	return &MemStore{value: value}
}

// Read returns the stored raw value.
func (m *MemStore) Read() (string, error) {
	return m.value, nil
}

// Write replaces the stored raw value.
func (m *MemStore) Write(value string) error {
	m.value = value
	return nil
}
