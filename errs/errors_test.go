package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArgumentErrorsMatchInvalidArgument(t *testing.T) {
	for _, err := range []error{ErrInvalidSide, ErrNotMonotonic, ErrNonUniqueIndex, ErrTooManyKeys, ErrInvalidOption, ErrInexactFloat} {
		require.ErrorIs(t, err, ErrInvalidArgument)
		require.NotErrorIs(t, err, ErrKeyNotFound)
	}
}

func TestKeyError(t *testing.T) {
	err := error(NewKeyError("x"))

	require.ErrorIs(t, err, ErrKeyNotFound)
	require.NotErrorIs(t, err, ErrTypeMismatch)
	require.Contains(t, err.Error(), `"x"`)

	var ke *KeyError
	require.ErrorAs(t, fmt.Errorf("lookup: %w", err), &ke)
	require.Equal(t, "x", ke.Key)
}

func TestKeyErrorWithTypeMismatchCause(t *testing.T) {
	err := error(KeyErrorWithCause(int64(42), NewTypeMismatchError(int64(42), "datetime")))

	require.ErrorIs(t, err, ErrKeyNotFound)
	require.ErrorIs(t, err, ErrTypeMismatch)

	var tm *TypeMismatchError
	require.True(t, errors.As(err, &tm))
	require.Equal(t, "datetime", tm.Want)
	require.Contains(t, err.Error(), "42")
}

func TestTypeMismatchError(t *testing.T) {
	err := error(NewTypeMismatchError("a", "int64"))

	require.ErrorIs(t, err, ErrTypeMismatch)
	require.NotErrorIs(t, err, ErrKeyNotFound)
	require.Contains(t, err.Error(), "string")
	require.Contains(t, err.Error(), "int64")
}
