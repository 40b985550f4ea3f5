package pathlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pathctl/pkg/envstore"
	"github.com/arthur-debert/pathctl/pkg/errors"
)

// newTestManager builds a Machine-agnostic manager over an in-memory
// store with a ";" separator. Every path passed in dirs is treated as
// an existing directory; elevation defaults to granted.
func newTestManager(t *testing.T, scope envstore.Scope, raw string, dirs ...string) (*Manager, *envstore.MemStore) {
	t.Helper()
	store := envstore.NewMemStore(raw)
	m := New(scope,
		WithStore(store),
		WithSeparator(";"),
		WithElevationCheck(func() (bool, error) { return true, nil }),
		WithDirCheck(func(path string) bool {
			for _, d := range dirs {
				if strings.EqualFold(d, path) {
					return true
				}
			}
			return false
		}),
	)
	return m, store
}

func TestList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty value yields empty list", "", []string{}},
		{"single entry", `C:\A`, []string{`C:\A`}},
		{"two entries", `C:\A;C:\B`, []string{`C:\A`, `C:\B`}},
		{"empty artifacts are kept", `C:\A;;C:\B`, []string{`C:\A`, ``, `C:\B`}},
		{"trailing delimiter keeps empty entry", `C:\A;`, []string{`C:\A`, ``}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager(t, envstore.ScopeUser, tt.raw)
			got, err := m.List()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListCustomSeparator(t *testing.T) {
	store := envstore.NewMemStore("/usr/bin:/usr/local/bin")
	m := New(envstore.ScopeProcess, WithStore(store), WithSeparator(":"))

	got, err := m.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"/usr/bin", "/usr/local/bin"}, got)
}

func TestFind(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		entry     string
		wantIdx   int
		wantFound bool
	}{
		{"first position is a valid match", `C:\A;C:\B`, `C:\A`, 0, true},
		{"case-insensitive match", `C:\A;C:\B`, `c:\b`, 1, true},
		{"not found", `C:\A;C:\B`, `C:\C`, 0, false},
		{"empty list", ``, `C:\A`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager(t, envstore.ScopeUser, tt.raw)
			idx, found, err := m.Find(tt.entry)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.wantIdx, idx)
			}
		})
	}
}

func TestPushAppendsInCallerOrder(t *testing.T) {
	m, store := newTestManager(t, envstore.ScopeUser, `C:\A;C:\B`, `C:\C`, `C:\D`)

	res, err := m.Push(`C:\C`, `C:\D`)
	require.NoError(t, err)
	assert.Equal(t, PushResult{Added: 2}, res)
	assert.True(t, res.Clean())

	raw, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, `C:\A;C:\B;C:\C;C:\D`, raw)
}

func TestPushDuplicateIsIdempotent(t *testing.T) {
	tests := []struct {
		name  string
		entry string
	}{
		{"same case", `C:\A`},
		{"different case", `c:\a`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, store := newTestManager(t, envstore.ScopeUser, `C:\A;C:\B`, tt.entry)

			res, err := m.Push(tt.entry)
			require.NoError(t, err)
			assert.Equal(t, PushResult{SkippedDuplicate: 1}, res)
			assert.False(t, res.Clean())

			raw, err := store.Read()
			require.NoError(t, err)
			assert.Equal(t, `C:\A;C:\B`, raw, "store must be byte-for-byte unchanged")
		})
	}
}

func TestPushSkipsMissingDirectoriesButAddsValidOnes(t *testing.T) {
	m, store := newTestManager(t, envstore.ScopeUser, `C:\A`, `C:\C`)

	res, err := m.Push(`C:\nope`, `C:\C`)
	require.NoError(t, err)
	assert.Equal(t, PushResult{Added: 1, SkippedMissing: 1}, res)

	raw, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, `C:\A;C:\C`, raw)
}

func TestPushDeduplicatesWithinBatch(t *testing.T) {
	m, store := newTestManager(t, envstore.ScopeUser, ``, `C:\C`)

	res, err := m.Push(`C:\C`, `c:\C`)
	require.NoError(t, err)
	assert.Equal(t, PushResult{Added: 1, SkippedDuplicate: 1}, res)

	raw, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, `C:\C`, raw)
}

func TestPushPreservesExistingOrder(t *testing.T) {
	m, _ := newTestManager(t, envstore.ScopeUser, `C:\A;C:\B;C:\X`, `C:\C`)

	_, err := m.Push(`C:\C`)
	require.NoError(t, err)

	got, err := m.List()
	require.NoError(t, err)
	assert.Equal(t, []string{`C:\A`, `C:\B`, `C:\X`, `C:\C`}, got,
		"pre-existing entries keep their relative positions, new entries append")
}

func TestPushRealDirectoryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := envstore.NewMemStore("")
	m := New(envstore.ScopeProcess, WithStore(store), WithSeparator(string(os.PathListSeparator)))

	res, err := m.Push(dir)
	require.NoError(t, err)
	assert.Equal(t, PushResult{Added: 1}, res)

	got, err := m.List()
	require.NoError(t, err)
	assert.Equal(t, []string{dir}, got)
}

func TestPushRejectsFileAsEntry(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	store := envstore.NewMemStore("")
	m := New(envstore.ScopeProcess, WithStore(store), WithSeparator(";"))

	res, err := m.Push(file)
	require.NoError(t, err)
	assert.Equal(t, PushResult{SkippedMissing: 1}, res)

	raw, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "", raw)
}

func TestPushNoEntries(t *testing.T) {
	m, _ := newTestManager(t, envstore.ScopeUser, ``)

	_, err := m.Push()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestMachineScopeRequiresElevation(t *testing.T) {
	t.Run("push refused", func(t *testing.T) {
		store := envstore.NewMemStore(`C:\A`)
		m := New(envstore.ScopeMachine,
			WithStore(store),
			WithSeparator(";"),
			WithElevationCheck(func() (bool, error) { return false, nil }),
			WithDirCheck(func(string) bool { return true }),
		)

		_, err := m.Push(`C:\B`)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrAuthorization))

		raw, err := store.Read()
		require.NoError(t, err)
		assert.Equal(t, `C:\A`, raw, "store must be byte-for-byte unchanged")
	})

	t.Run("remove refused", func(t *testing.T) {
		store := envstore.NewMemStore(`C:\A`)
		m := New(envstore.ScopeMachine,
			WithStore(store),
			WithSeparator(";"),
			WithElevationCheck(func() (bool, error) { return false, nil }),
		)

		_, err := m.Remove(`C:\A`)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrAuthorization))

		raw, err := store.Read()
		require.NoError(t, err)
		assert.Equal(t, `C:\A`, raw)
	})

	t.Run("push allowed when elevated", func(t *testing.T) {
		store := envstore.NewMemStore(`C:\A`)
		m := New(envstore.ScopeMachine,
			WithStore(store),
			WithSeparator(";"),
			WithElevationCheck(func() (bool, error) { return true, nil }),
			WithDirCheck(func(string) bool { return true }),
		)

		res, err := m.Push(`C:\B`)
		require.NoError(t, err)
		assert.Equal(t, PushResult{Added: 1}, res)
	})
}

func TestRemoveExcisesAndPersists(t *testing.T) {
	m, store := newTestManager(t, envstore.ScopeUser, `C:\A;C:\B;C:\C`)

	res, err := m.Remove(`C:\B`)
	require.NoError(t, err)
	assert.Equal(t, RemoveResult{Removed: 1}, res)
	assert.True(t, res.Clean())

	// The post-removal list must actually reach the store
	raw, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, `C:\A;C:\C`, raw)
}

func TestRemoveCaseInsensitive(t *testing.T) {
	m, store := newTestManager(t, envstore.ScopeUser, `C:\A;C:\B`)

	res, err := m.Remove(`c:\b`)
	require.NoError(t, err)
	assert.Equal(t, RemoveResult{Removed: 1}, res)

	raw, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, `C:\A`, raw)
}

func TestRemoveFirstEntry(t *testing.T) {
	m, store := newTestManager(t, envstore.ScopeUser, `C:\A;C:\B`)

	res, err := m.Remove(`C:\A`)
	require.NoError(t, err)
	assert.Equal(t, RemoveResult{Removed: 1}, res, "position 0 must not be treated as not-found")

	raw, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, `C:\B`, raw)
}

func TestRemoveNotFoundContinuesBatch(t *testing.T) {
	m, store := newTestManager(t, envstore.ScopeUser, `C:\A;C:\B`)

	res, err := m.Remove(`C:\X`, `C:\B`)
	require.NoError(t, err)
	assert.Equal(t, RemoveResult{Removed: 1, SkippedNotFound: 1}, res)
	assert.False(t, res.Clean())

	raw, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, `C:\A`, raw)
}

func TestRemoveNothingFoundLeavesStoreUntouched(t *testing.T) {
	m, store := newTestManager(t, envstore.ScopeUser, `C:\A;C:\B`)

	res, err := m.Remove(`C:\X`)
	require.NoError(t, err)
	assert.Equal(t, RemoveResult{SkippedNotFound: 1}, res)

	raw, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, `C:\A;C:\B`, raw)
}

func TestRemoveNoEntries(t *testing.T) {
	m, _ := newTestManager(t, envstore.ScopeUser, `C:\A`)

	_, err := m.Remove()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

// TestWorkflow walks the full push/find/remove cycle over one store.
func TestWorkflow(t *testing.T) {
	m, store := newTestManager(t, envstore.ScopeUser, `C:\A;C:\B`, `C:\C`)

	res, err := m.Push(`C:\C`)
	require.NoError(t, err)
	assert.Equal(t, PushResult{Added: 1}, res)

	raw, _ := store.Read()
	assert.Equal(t, `C:\A;C:\B;C:\C`, raw)

	dup, err := m.Push(`c:\a`)
	require.NoError(t, err)
	assert.Equal(t, PushResult{SkippedDuplicate: 1}, dup)

	raw, _ = store.Read()
	assert.Equal(t, `C:\A;C:\B;C:\C`, raw)

	rm, err := m.Remove(`C:\B`)
	require.NoError(t, err)
	assert.Equal(t, RemoveResult{Removed: 1}, rm)

	raw, _ = store.Read()
	assert.Equal(t, `C:\A;C:\C`, raw)

	idx, found, err := m.Find(`c:\c`)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, idx)
}
