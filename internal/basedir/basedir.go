// Package basedir resolves the per-user root directories that stash
// artifacts live under. Resolution follows the platform's base-directory
// conventions (XDG on Linux, Application Support on macOS, AppData on
// Windows) via adrg/xdg; environment overrides are checked first so tests
// and sandboxed environments can relocate everything.
package basedir

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// ConfigHomeEnv overrides the per-user configuration root.
	ConfigHomeEnv = "STASH_CONFIG_HOME"
	// DataHomeEnv overrides the per-user data root.
	DataHomeEnv = "STASH_DATA_HOME"
)

var errNoRoot = errors.New("platform reports no base directory")

// ConfigRoot returns the per-user configuration root. It checks
// STASH_CONFIG_HOME first, then the platform's config home.
func ConfigRoot() (string, error) {
	if dir := os.Getenv(ConfigHomeEnv); dir != "" {
		return dir, nil
	}
	if xdg.ConfigHome == "" {
		return "", errNoRoot
	}
	return xdg.ConfigHome, nil
}

// DataRoot returns the per-user data root. It checks STASH_DATA_HOME first,
// then the platform's data home.
func DataRoot() (string, error) {
	if dir := os.Getenv(DataHomeEnv); dir != "" {
		return dir, nil
	}
	if xdg.DataHome == "" {
		return "", errNoRoot
	}
	return xdg.DataHome, nil
}

// Ensure creates a directory (and any missing parents) if it doesn't exist.
func Ensure(path string) error {
	return os.MkdirAll(path, 0755)
}

// Join builds the identity-specific directory under a root without creating it.
func Join(root, organization, application string) string {
	return filepath.Join(root, organization, application)
}
