// Package stash loads and saves typed application state to OS-appropriate
// per-user file locations.
//
// A type declares a fixed identity (organization, application, artifact
// name) and adopts one of two roles: Settings (configuration root,
// human-editable format) or Data (data root, interchange format). The
// generic operations Path, Load, Save and LoadOrDefault then work for every
// adopting type with no further boilerplate:
//
//	type Config struct {
//		stash.Settings `toml:"-" yaml:"-" json:"-"`
//
//		Name     string `toml:"name"`
//		Attempts int    `toml:"attempts"`
//		Force    bool   `toml:"force"`
//	}
//
//	func (Config) Identity() stash.Identity {
//		return stash.Identity{Organization: "acme", Application: "demo", Name: "config.toml"}
//	}
//
//	state, err := stash.LoadOrDefault[Config]()
//
// Paths are recomputed on every call, nothing is cached, and no locking is
// acquired: concurrent processes writing the same artifact race last-writer-
// wins. The package targets single-process, per-user persistence.
package stash

import (
	"os"
	"path/filepath"

	"github.com/schmitthub/stash/pkg/logger"
)

// Identity names one persisted artifact. The triple is fixed per type and
// deterministically resolves to a single file path; changing any component
// changes the path and orphans previously saved files.
type Identity struct {
	// Organization, e.g. a vendor or GitHub organization name.
	Organization string
	// Application within the organization.
	Application string
	// Name is the artifact file name including extension, e.g. "config.toml".
	// A recognized extension (.toml, .yaml, .yml, .json) selects the codec;
	// anything else uses the role's default.
	Name string
}

func (id Identity) validate() error {
	switch {
	case id.Organization == "":
		return &IdentityError{Field: "organization"}
	case id.Application == "":
		return &IdentityError{Field: "application"}
	case id.Name == "":
		return &IdentityError{Field: "name"}
	}
	return nil
}

// Configurable ties an identity to a role. Implement Identity on the value
// receiver and embed Settings or Data for the Role method; the generic
// operations instantiate a zero value of the type to read both.
type Configurable interface {
	Identity() Identity
	Role() Role
}

// Defaulter lets a type supply non-zero defaults for LoadOrDefault.
// SetDefaults is called on a fresh zero value before it is persisted; types
// without it default to their zero value.
type Defaulter interface {
	SetDefaults()
}

// LoadState is the tagged outcome of LoadOrDefault.
type LoadState[T any] struct {
	// Value is the loaded or freshly defaulted instance.
	Value T
	// Defaulted reports that no artifact existed: Value is the type's
	// default and has already been written to the resolved path.
	Defaulted bool
}

// Dir ensures and returns the role root directory for T:
// <role-root>/<organization>/<application>.
func Dir[T Configurable]() (string, error) {
	var zero T
	id := zero.Identity()
	if err := id.validate(); err != nil {
		return "", err
	}
	return zero.Role().Root(id)
}

// Path ensures the directory exists and returns the artifact's resolved
// path. It fails with whatever the directory resolution failed with.
func Path[T Configurable]() (string, error) {
	path, _, err := resolve[T]()
	return path, err
}

// Load reads and decodes the artifact for T. A missing file surfaces as an
// *IOError satisfying IsNotExist; malformed content surfaces as a
// *DecodeError. Load never falls back to defaults.
func Load[T Configurable]() (T, error) {
	var v T
	path, codec, err := resolve[T]()
	if err != nil {
		return v, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return v, &IOError{Op: "read", Path: path, Err: err}
	}
	if err := codec.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, &DecodeError{Codec: codec.Name(), Path: path, Err: err}
	}
	logger.Debug().Str("path", path).Str("codec", codec.Name()).Msg("artifact loaded")
	return v, nil
}

// Save encodes v and writes the whole artifact, overwriting any existing
// file. No partial-write protection is attempted beyond what the platform
// provides.
func Save[T Configurable](v T) error {
	path, codec, err := resolve[T]()
	if err != nil {
		return err
	}
	data, err := codec.Marshal(v)
	if err != nil {
		return &EncodeError{Codec: codec.Name(), Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	logger.Debug().Str("path", path).Str("codec", codec.Name()).Msg("artifact saved")
	return nil
}

// LoadOrDefault loads the artifact for T, substituting and persisting the
// type's default when and only when no artifact exists. The returned
// LoadState reports which happened.
//
// A Defaulted state guarantees the file now exists: if saving the default
// fails, the call fails. Every load error other than absence — unreadable
// file, malformed content — propagates unchanged; silently defaulting over a
// corrupt file would hide data loss from the caller.
func LoadOrDefault[T Configurable]() (LoadState[T], error) {
	v, err := Load[T]()
	switch {
	case err == nil:
		return LoadState[T]{Value: v}, nil
	case IsNotExist(err):
		def := defaultOf[T]()
		if err := Save(def); err != nil {
			return LoadState[T]{}, err
		}
		logger.Debug().Str("artifact", artifactID[T]()).Msg("artifact defaulted")
		return LoadState[T]{Value: def, Defaulted: true}, nil
	default:
		return LoadState[T]{}, err
	}
}

// resolve computes the artifact path and codec for T, ensuring the role
// directory exists.
func resolve[T Configurable]() (string, Codec, error) {
	var zero T
	id := zero.Identity()
	if err := id.validate(); err != nil {
		return "", nil, err
	}
	role := zero.Role()
	dir, err := role.Root(id)
	if err != nil {
		return "", nil, err
	}
	return filepath.Join(dir, id.Name), codecFor(id.Name, role.DefaultCodec()), nil
}

func defaultOf[T Configurable]() T {
	var v T
	if d, ok := any(&v).(Defaulter); ok {
		d.SetDefaults()
	}
	return v
}

func artifactID[T Configurable]() string {
	var zero T
	id := zero.Identity()
	return id.Organization + "/" + id.Application + "/" + id.Name
}
