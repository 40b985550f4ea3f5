// Package pathlist implements the ordered-list operations over the
// PATH variable of a single scope: enumerate, locate, push and remove.
// All state lives in the envstore backend; each operation is a
// self-contained read-modify-write with no in-process locking. Two
// concurrent processes mutating the same scope can still race; callers
// are expected to avoid that.
package pathlist

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/pathctl/pkg/envstore"
	"github.com/arthur-debert/pathctl/pkg/errors"
	"github.com/arthur-debert/pathctl/pkg/logging"
)

// Manager operates on the path list of one scope.
type Manager struct {
	scope    envstore.Scope
	store    envstore.Store
	sep      string
	elevated func() (bool, error)
	isDir    func(string) bool
	log      zerolog.Logger
}

// Option customizes a Manager. The defaults target the real OS: the
// platform store for the scope, the platform list separator, the real
// privilege check and a filesystem directory check.
type Option func(*Manager)

// WithStore replaces the backing store.
func WithStore(s envstore.Store) Option {
	return func(m *Manager) { m.store = s }
}

// WithSeparator replaces the entry delimiter.
func WithSeparator(sep string) Option {
	return func(m *Manager) { m.sep = sep }
}

// WithElevationCheck replaces the privilege probe used to guard
// Machine-scope mutations.
func WithElevationCheck(fn func() (bool, error)) Option {
	return func(m *Manager) { m.elevated = fn }
}

// WithDirCheck replaces the directory-existence check used by Push.
func WithDirCheck(fn func(string) bool) Option {
	return func(m *Manager) { m.isDir = fn }
}

// New returns a Manager for the given scope.
func New(scope envstore.Scope, opts ...Option) *Manager {
	m := &Manager{
		scope:    scope,
		store:    envstore.New(scope),
		sep:      string(os.PathListSeparator),
		elevated: envstore.Elevated,
		isDir:    dirExists,
		log:      logging.GetLogger("pathlist").With().Stringer("scope", scope).Logger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Scope returns the scope this manager operates on.
func (m *Manager) Scope() envstore.Scope { return m.scope }

// Separator returns the entry delimiter in use.
func (m *Manager) Separator() string { return m.sep }

// List returns the current entries in store order. Splitting keeps any
// empty-string artifacts from doubled delimiters; an absent or empty
// variable yields an empty list.
func (m *Manager) List() ([]string, error) {
	raw, err := m.store.Read()
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return []string{}, nil
	}
	return strings.Split(raw, m.sep), nil
}

// Find returns the zero-based position of the first entry that equals
// the candidate case-insensitively. Position 0 is a legitimate match;
// callers must check found, never the index alone.
func (m *Manager) Find(entry string) (int, bool, error) {
	entries, err := m.List()
	if err != nil {
		return 0, false, err
	}
	idx, found := indexOf(entries, entry)
	return idx, found, nil
}

// PushResult reports the outcome of a Push call.
type PushResult struct {
	Added            int `json:"added" yaml:"added"`
	SkippedMissing   int `json:"skippedMissing" yaml:"skippedMissing"`
	SkippedDuplicate int `json:"skippedDuplicate" yaml:"skippedDuplicate"`
}

// Clean reports whether every candidate was accepted.
func (r PushResult) Clean() bool {
	return r.SkippedMissing == 0 && r.SkippedDuplicate == 0
}

// Push appends the given entries to the list, in caller order, skipping
// candidates that are not existing directories or are already present
// (case-insensitively, including against entries accepted earlier in
// the same call). The full list is written back in a single store write
// when at least one candidate was accepted.
func (m *Manager) Push(entries ...string) (PushResult, error) {
	var res PushResult
	if len(entries) == 0 {
		return res, errors.New(errors.ErrInvalidInput, "no entries given")
	}
	if err := m.guardScope(); err != nil {
		return res, err
	}

	working, err := m.List()
	if err != nil {
		return res, err
	}

	for _, entry := range entries {
		if !m.isDir(entry) {
			m.log.Warn().Str("entry", entry).Msg("Skipping candidate: not an existing directory")
			res.SkippedMissing++
			continue
		}
		if _, found := indexOf(working, entry); found {
			m.log.Debug().Str("entry", entry).Msg("Skipping candidate: already present")
			res.SkippedDuplicate++
			continue
		}
		working = append(working, entry)
		res.Added++
	}

	if res.Added == 0 {
		m.log.Debug().Msg("No candidates accepted, store left untouched")
		return res, nil
	}

	if err := m.store.Write(strings.Join(working, m.sep)); err != nil {
		return res, err
	}
	m.log.Info().Int("added", res.Added).Msg("Path list updated")
	return res, nil
}

// RemoveResult reports the outcome of a Remove call.
type RemoveResult struct {
	Removed         int `json:"removed" yaml:"removed"`
	SkippedNotFound int `json:"skippedNotFound" yaml:"skippedNotFound"`
}

// Clean reports whether every candidate was found and removed.
func (r RemoveResult) Clean() bool {
	return r.SkippedNotFound == 0
}

// Remove excises the given entries from the list. Candidates that are
// not present are skipped; the remaining entries keep their relative
// order. The result is written back in a single store write when at
// least one entry was removed.
func (m *Manager) Remove(entries ...string) (RemoveResult, error) {
	var res RemoveResult
	if len(entries) == 0 {
		return res, errors.New(errors.ErrInvalidInput, "no entries given")
	}
	if err := m.guardScope(); err != nil {
		return res, err
	}

	working, err := m.List()
	if err != nil {
		return res, err
	}

	for _, entry := range entries {
		idx, found := indexOf(working, entry)
		if !found {
			m.log.Warn().Str("entry", entry).Msg("Skipping candidate: not present in path list")
			res.SkippedNotFound++
			continue
		}
		working = append(working[:idx], working[idx+1:]...)
		res.Removed++
	}

	if res.Removed == 0 {
		m.log.Debug().Msg("No entries removed, store left untouched")
		return res, nil
	}

	if err := m.store.Write(strings.Join(working, m.sep)); err != nil {
		return res, err
	}
	m.log.Info().Int("removed", res.Removed).Msg("Path list updated")
	return res, nil
}

// guardScope refuses Machine-scope mutations without elevation, before
// any entry is processed.
func (m *Manager) guardScope() error {
	if m.scope != envstore.ScopeMachine {
		return nil
	}
	elevated, err := m.elevated()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "privilege check failed")
	}
	if !elevated {
		return errors.New(errors.ErrAuthorization,
			"mutating the Machine scope requires elevated privileges")
	}
	return nil
}

// indexOf returns the position of the first case-insensitive match.
func indexOf(entries []string, entry string) (int, bool) {
	for i, e := range entries {
		if strings.EqualFold(e, entry) {
			return i, true
		}
	}
	return 0, false
}

// dirExists reports whether path is an existing directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
