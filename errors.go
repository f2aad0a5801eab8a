package stash

import (
	"errors"
	"fmt"
	"io/fs"
)

// ResolveError is returned when the platform cannot produce a root directory
// for a role (for example when no home directory can be determined).
type ResolveError struct {
	Role string
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve %s root: %v", e.Role, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// IOError is returned when a filesystem operation fails. Op is one of
// "mkdir", "read" or "write". The underlying error is preserved through
// Unwrap so callers can distinguish a missing artifact from other failures.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// EncodeError is returned when a value cannot be serialized.
type EncodeError struct {
	Codec string
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Codec, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError is returned when an artifact's bytes cannot be decoded into
// the target type. It carries the underlying parser diagnostic.
type DecodeError struct {
	Codec string
	Path  string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s %s: %v", e.Codec, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IdentityError is returned when a type's identity triple is incomplete.
type IdentityError struct {
	Field string
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("identity %s must not be empty", e.Field)
}

// IsNotExist reports whether err means the artifact is absent, as opposed to
// any other I/O or decode failure. It asserts on the specific not-exist kind
// of a filesystem read error; a permission error or a malformed file is never
// treated as absence.
func IsNotExist(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr) && errors.Is(ioErr.Err, fs.ErrNotExist)
}
