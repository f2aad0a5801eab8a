package stash

import (
	"github.com/schmitthub/stash/internal/basedir"
)

// Role selects the per-user root and the default serialization format for a
// Configurable type. A type adopts exactly one role by embedding Settings or
// Data.
type Role interface {
	// Name is the role's short name ("settings" or "data").
	Name() string
	// Root resolves the role's directory for an identity, creating it and
	// any missing parents. Two calls in the same process and environment
	// always return the same path.
	Root(id Identity) (string, error)
	// DefaultCodec applies when the artifact name's extension doesn't pick
	// a codec.
	DefaultCodec() Codec
}

// Settings marks a type as settings-like: its artifact lives under the
// per-user configuration root and defaults to TOML, a format meant to be
// edited by hand.
//
//	type Config struct {
//		stash.Settings `toml:"-" yaml:"-" json:"-"`
//
//		Name string `toml:"name"`
//	}
type Settings struct{}

// Role implements part of Configurable.
func (Settings) Role() Role { return settingsRole{} }

// Data marks a type as data-like: its artifact lives under the per-user data
// root and defaults to JSON.
type Data struct{}

// Role implements part of Configurable.
func (Data) Role() Role { return dataRole{} }

type settingsRole struct{}

func (settingsRole) Name() string        { return "settings" }
func (settingsRole) DefaultCodec() Codec { return TOML }

func (r settingsRole) Root(id Identity) (string, error) {
	root, err := basedir.ConfigRoot()
	if err != nil {
		return "", &ResolveError{Role: r.Name(), Err: err}
	}
	return ensureRoot(root, id)
}

type dataRole struct{}

func (dataRole) Name() string        { return "data" }
func (dataRole) DefaultCodec() Codec { return JSON }

func (r dataRole) Root(id Identity) (string, error) {
	root, err := basedir.DataRoot()
	if err != nil {
		return "", &ResolveError{Role: r.Name(), Err: err}
	}
	return ensureRoot(root, id)
}

// ensureRoot joins the identity onto the role root and creates the directory.
func ensureRoot(root string, id Identity) (string, error) {
	dir := basedir.Join(root, id.Organization, id.Application)
	if err := basedir.Ensure(dir); err != nil {
		return "", &IOError{Op: "mkdir", Path: dir, Err: err}
	}
	return dir, nil
}
