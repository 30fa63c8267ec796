package watch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"finder4/internal/watch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherLifecycle(t *testing.T) {
	w, err := watch.New()
	require.NoError(t, err)

	assert.False(t, w.IsRunning())
	require.NoError(t, w.Start())
	assert.True(t, w.IsRunning())

	// Starting twice is an error.
	assert.Error(t, w.Start())

	w.Stop()
	assert.False(t, w.IsRunning())
}

func TestWatcherSetDirectories(t *testing.T) {
	w, err := watch.New()
	require.NoError(t, err)
	defer w.Stop()
	require.NoError(t, w.Start())

	dirA := t.TempDir()
	dirB := t.TempDir()

	w.SetDirectories([]string{dirA})
	assert.Equal(t, []string{dirA}, w.Directories())

	// Replacing the set drops the previous directory.
	w.SetDirectories([]string{dirB})
	assert.Equal(t, []string{dirB}, w.Directories())

	// Missing directories are skipped, not fatal.
	w.SetDirectories([]string{filepath.Join(dirB, "missing"), dirA})
	assert.Equal(t, []string{dirA}, w.Directories())
}

func TestWatcherEmitsRefreshOnCreate(t *testing.T) {
	w, err := watch.New()
	require.NoError(t, err)
	defer w.Stop()
	require.NoError(t, w.Start())

	dir := t.TempDir()
	w.SetDirectories([]string{dir})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0644))

	select {
	case refresh, ok := <-w.Events():
		require.True(t, ok)
		assert.Contains(t, refresh.Dir, dir)
	case <-time.After(2 * time.Second):
		t.Fatal("no refresh event received for created file")
	}
}

func TestWatcherStopClosesChannel(t *testing.T) {
	w, err := watch.New()
	require.NoError(t, err)
	require.NoError(t, w.Start())

	w.Stop()

	select {
	case _, ok := <-w.Events():
		assert.False(t, ok, "events channel should be closed after Stop")
	case <-time.After(time.Second):
		t.Fatal("events channel not closed after Stop")
	}
}
