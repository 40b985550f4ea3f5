//go:build windows

package envstore

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/arthur-debert/pathctl/pkg/errors"
)

// Registry locations of the persistent environment stores.
const (
	userEnvKey    = `Environment`
	machineEnvKey = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`
)

// registryStore persists the path list in the Windows registry, the
// native backing store for User and Machine environment variables.
type registryStore struct {
	scope Scope
	root  registry.Key
	path  string
}

func newPersistentStore(scope Scope) Store {
	if scope == ScopeMachine {
		return registryStore{scope: scope, root: registry.LOCAL_MACHINE, path: machineEnvKey}
	}
	return registryStore{scope: scope, root: registry.CURRENT_USER, path: userEnvKey}
}

func (r registryStore) Read() (string, error) {
	k, err := registry.OpenKey(r.root, r.path, registry.QUERY_VALUE)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrStoreAccess,
			"failed to open %s environment key", r.scope)
	}
	defer func() { _ = k.Close() }()

	value, _, err := k.GetStringValue(PathVar)
	if err == registry.ErrNotExist {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrStoreAccess,
			"failed to read %s from %s environment key", PathVar, r.scope)
	}
	return value, nil
}

func (r registryStore) Write(value string) error {
	k, err := registry.OpenKey(r.root, r.path, registry.SET_VALUE)
	if err != nil {
		return errors.Wrapf(err, errors.ErrStoreAccess,
			"failed to open %s environment key for writing", r.scope)
	}
	defer func() { _ = k.Close() }()

	// REG_EXPAND_SZ keeps %VAR% references in the stored value working.
	if err := k.SetExpandStringValue(PathVar, value); err != nil {
		return errors.Wrapf(err, errors.ErrStoreAccess,
			"failed to write %s to %s environment key", PathVar, r.scope)
	}

	broadcastEnvironmentChange()
	return nil
}

// Elevated reports whether the current process token has administrator
// rights. Machine-scope writes are refused without it.
func Elevated() (bool, error) {
	return windows.GetCurrentProcessToken().IsElevated(), nil
}

// broadcastEnvironmentChange tells running applications to re-read the
// environment after a registry write. Best effort; failures are ignored.
func broadcastEnvironmentChange() {
	user32 := windows.NewLazySystemDLL("user32.dll")
	proc := user32.NewProc("SendMessageTimeoutW")

	env, err := syscall.UTF16PtrFromString("Environment")
	if err != nil {
		return
	}

	const (
		hwndBroadcast   = 0xFFFF
		wmSettingChange = 0x001A
		smtoAbortIfHung = 0x0002
	)
	_, _, _ = proc.Call(
		uintptr(hwndBroadcast),
		uintptr(wmSettingChange),
		0,
		uintptr(unsafe.Pointer(env)),
		uintptr(smtoAbortIfHung),
		5000,
		0,
	)
}
