package errors_test

import (
	stderrors "errors"
	"testing"

	"finder4/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseErrorMessage(t *testing.T) {
	err := errors.NewBrowseError("path not found", "/tmp/gone", errors.PathNotFound, nil)
	assert.Equal(t, "path not found: /tmp/gone", err.Error())
	assert.Equal(t, "/tmp/gone", err.Path())
	assert.Equal(t, errors.PathNotFound, err.Kind())
}

func TestBrowseErrorWrapsCause(t *testing.T) {
	cause := stderrors.New("underlying")
	err := errors.NewBrowseError("error listing directory", "/tmp/x", errors.Unknown, cause)

	assert.Contains(t, err.Error(), "underlying")
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
}

func TestKindHelpers(t *testing.T) {
	notFound := errors.NewBrowseError("path not found", "/a", errors.PathNotFound, nil)
	denied := errors.NewBrowseError("permission denied", "/b", errors.PermissionDenied, nil)
	notDir := errors.NewBrowseError("not a directory", "/c", errors.NotADirectory, nil)

	assert.True(t, errors.IsPathNotFound(notFound))
	assert.False(t, errors.IsPathNotFound(denied))
	assert.True(t, errors.IsPermissionDenied(denied))
	assert.True(t, errors.IsNotADirectory(notDir))
	assert.False(t, errors.IsPermissionDenied(stderrors.New("plain")))
}

func TestKindHelpersSeeThroughWrapping(t *testing.T) {
	inner := errors.NewBrowseError("path not found", "/a", errors.PathNotFound, nil)
	wrapped := errors.Wrap(inner, "rebuilding column")

	require.Error(t, wrapped)
	assert.True(t, errors.IsPathNotFound(wrapped))
	assert.Contains(t, wrapped.Error(), "rebuilding column")
}

func TestConfigError(t *testing.T) {
	err := errors.NewConfigError("invalid configuration", "max_columns", errors.InvalidConfig, nil)
	assert.Equal(t, "invalid configuration: max_columns", err.Error())
	assert.Equal(t, "max_columns", err.Param())
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "context"))
	assert.Nil(t, errors.Wrapf(nil, "context %d", 1))
}

func TestNewf(t *testing.T) {
	err := errors.Newf("bad depth %d", 9)
	assert.Equal(t, "bad depth 9", err.Error())
}
