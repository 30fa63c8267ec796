package browse_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"finder4/internal/browse"
	apperrors "finder4/internal/errors"

	"github.com/gobwas/glob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrdering(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "A"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "b.txt"), []byte("b"), 0644))

	lister := browse.NewLister(tmpDir)
	entries, err := lister.List(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Parent entry first, then the directory, then the file.
	assert.Equal(t, browse.ParentLabel, entries[0].Name)
	assert.True(t, entries[0].Parent)
	assert.Equal(t, "A", entries[1].Name)
	assert.True(t, entries[1].Dir)
	assert.Equal(t, "b.txt", entries[2].Name)
	assert.False(t, entries[2].Dir)
}

func TestListCaseInsensitiveSort(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"zebra.txt", "Apple.txt", "mango.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644))
	}

	lister := browse.NewLister(tmpDir)
	entries, err := lister.List(tmpDir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		if !e.Parent {
			names = append(names, e.Name)
		}
	}
	assert.Equal(t, []string{"Apple.txt", "mango.txt", "zebra.txt"}, names)
}

func TestListRootHasNoParentEntry(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("filesystem root differs on Windows")
	}

	lister := browse.NewLister("/")
	entries, err := lister.List("/")
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, e.Parent, "root listing must not contain a parent entry")
		assert.NotEqual(t, browse.ParentLabel, e.Name)
	}
}

func TestListParentEntryTarget(t *testing.T) {
	tmpDir := t.TempDir()
	sub := filepath.Join(tmpDir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))

	lister := browse.NewLister(tmpDir)
	entries, err := lister.List(sub)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	parent := entries[0]
	require.True(t, parent.Parent)
	assert.Equal(t, tmpDir, parent.Path)
	assert.True(t, parent.Dir)
}

func TestListPermissionDeniedSentinel(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced the same way on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission checks are bypassed")
	}

	tmpDir := t.TempDir()
	locked := filepath.Join(tmpDir, "locked")
	require.NoError(t, os.Mkdir(locked, 0755))
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	lister := browse.NewLister(tmpDir)
	entries, err := lister.List(locked)
	require.NoError(t, err, "permission denial is recoverable, not an error")
	require.Len(t, entries, 1)
	assert.Equal(t, browse.PermissionDeniedLabel, entries[0].Name)
	assert.True(t, entries[0].Sentinel)
	assert.Empty(t, entries[0].Path)
	assert.False(t, entries[0].Navigable())
}

func TestListPathNotFound(t *testing.T) {
	lister := browse.NewLister(t.TempDir())
	_, err := lister.List(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, apperrors.IsPathNotFound(err))
}

func TestListNotADirectory(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	lister := browse.NewLister(tmpDir)
	_, err := lister.List(file)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotADirectory(err))
}

func TestListHiddenFiles(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".hidden"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "shown"), []byte("x"), 0644))

	lister := browse.NewLister(tmpDir)
	entries, err := lister.List(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 2, len(entries), "parent + shown")

	lister.ShowHidden = true
	entries, err = lister.List(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 3, len(entries), "parent + hidden + shown")
}

func TestListHidePatterns(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "keep.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "skip.tmp"), []byte("x"), 0644))

	lister := browse.NewLister(tmpDir)
	lister.Hide = []glob.Glob{glob.MustCompile("*.tmp")}

	entries, err := lister.List(tmpDir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, "skip.tmp", e.Name)
	}
}

func TestProduceMapsSeedBelowRoot(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "deep.txt"), []byte("x"), 0644))

	lister := browse.NewLister(tmpDir)
	entries, err := lister.Produce([]string{"a", "b"})
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Contains(t, names, "deep.txt")
}
