// Package errs defines the error values returned by keyidx packages.
//
// Callers should test errors with errors.Is and errors.As rather than by
// message text: a lookup of a structurally incompatible key, for example,
// returns an error that matches both ErrKeyNotFound and ErrTypeMismatch.
package errs

import (
	"errors"
	"fmt"
)

// Lookup errors.
var (
	// ErrKeyNotFound is matched by every "key is absent" error.
	ErrKeyNotFound = errors.New("keyidx: key not found")
	// ErrTypeMismatch is matched when a query value has a structural kind the engine cannot compare.
	ErrTypeMismatch = errors.New("keyidx: type mismatch")
	// ErrInvalidArgument is the parent of every caller-side argument error.
	ErrInvalidArgument = errors.New("keyidx: invalid argument")
)

// Argument errors, all matching ErrInvalidArgument.
var (
	ErrInvalidSide    = fmt.Errorf("%w: invalid value for side, must be left or right", ErrInvalidArgument)
	ErrNotMonotonic   = fmt.Errorf("%w: index must be monotonic increasing", ErrInvalidArgument)
	ErrNonUniqueIndex = fmt.Errorf("%w: indexer is only valid with a uniquely valued index", ErrInvalidArgument)
	ErrTooManyKeys    = fmt.Errorf("%w: key array exceeds 2^32-1 elements", ErrInvalidArgument)
	ErrInvalidOption  = fmt.Errorf("%w: invalid option value", ErrInvalidArgument)
	ErrInexactFloat   = fmt.Errorf("%w: integer key has no exact float64 value", ErrInvalidArgument)
)

// ErrUnsupportedKind is returned when no engine exists for an array implementation.
var ErrUnsupportedKind = errors.New("keyidx: unsupported key array kind")

// Snapshot codec errors.
var (
	ErrInvalidHeaderSize      = errors.New("keyidx: invalid snapshot header size")
	ErrInvalidMagicNumber     = errors.New("keyidx: invalid snapshot magic number")
	ErrUnsupportedVersion     = errors.New("keyidx: unsupported snapshot version")
	ErrInvalidPayload         = errors.New("keyidx: invalid snapshot payload")
	ErrUnsupportedCompression = errors.New("keyidx: unsupported compression type")
)

// KeyError reports a key that could not be located.
//
// It matches ErrKeyNotFound and unwraps to its cause, which is a
// *TypeMismatchError when the key could never have been present.
type KeyError struct {
	Key   any
	cause error
}

// NewKeyError returns a KeyError for key with no further cause.
func NewKeyError(key any) *KeyError {
	return &KeyError{Key: key}
}

// KeyErrorWithCause returns a KeyError for key wrapping cause.
func KeyErrorWithCause(key any, cause error) *KeyError {
	return &KeyError{Key: key, cause: cause}
}

func (e *KeyError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %#v: %s", ErrKeyNotFound.Error(), e.Key, e.cause.Error())
	}

	return fmt.Sprintf("%s: %#v", ErrKeyNotFound.Error(), e.Key)
}

// Is reports whether target is ErrKeyNotFound.
func (e *KeyError) Is(target error) bool {
	return target == ErrKeyNotFound
}

func (e *KeyError) Unwrap() error { return e.cause }

// TypeMismatchError reports a query value whose structural kind is not
// accepted by an engine. Want names the accepted kind.
type TypeMismatchError struct {
	Key  any
	Want string
}

// NewTypeMismatchError returns a TypeMismatchError for key.
func NewTypeMismatchError(key any, want string) *TypeMismatchError {
	return &TypeMismatchError{Key: key, Want: want}
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: %#v (%T) is not a valid %s key", ErrTypeMismatch.Error(), e.Key, e.Key, e.Want)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
