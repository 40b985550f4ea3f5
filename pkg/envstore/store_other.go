//go:build !windows

package envstore

import (
	"os"

	"github.com/arthur-debert/pathctl/pkg/errors"
)

// fallbackStore stands in for the User and Machine scopes on platforms
// without a native persistent environment store. Reads fall back to the
// process environment so enumeration still works; writes are refused.
type fallbackStore struct {
	scope Scope
}

func newPersistentStore(scope Scope) Store {
	return fallbackStore{scope: scope}
}

func (f fallbackStore) Read() (string, error) {
	return os.Getenv(PathVar), nil
}

func (f fallbackStore) Write(string) error {
	return errors.Newf(errors.ErrStoreUnsupported,
		"no native %s-scope environment store on this platform", f.scope)
}

// Elevated reports whether the process runs as root.
func Elevated() (bool, error) {
	return os.Geteuid() == 0, nil
}
