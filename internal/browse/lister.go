package browse

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"finder4/internal/errors"
	"finder4/internal/log"
	"finder4/pkg/types"

	"github.com/gobwas/glob"
)

// PermissionDeniedLabel is the display text of the sentinel entry returned
// when a directory cannot be enumerated.
const PermissionDeniedLabel = "Permission Denied"

// ParentLabel is the display text of the synthetic parent entry.
const ParentLabel = ".."

// Lister enumerates directory contents for filesystem-backed columns.
// When used as a Provider, the seed selection names a path below Root.
type Lister struct {
	Root       string
	ShowHidden bool
	Hide       []glob.Glob
}

// NewLister returns a lister anchored at root. An empty root means the
// filesystem root.
func NewLister(root string) *Lister {
	if root == "" {
		root = string(filepath.Separator)
	}
	return &Lister{Root: root}
}

// List returns the immediate children of path sorted directories-first,
// then case-insensitive by name, preceded by a synthetic ".." entry unless
// path is the filesystem root. Permission denial is recoverable: the result
// is a single sentinel entry and a nil error. A missing path or a
// non-directory is a hard error.
func (l *Lister) List(path string) ([]types.Entry, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.NewBrowseError("invalid path", path, errors.InvalidPath, err)
	}

	dirents, err := os.ReadDir(abs)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrPermission):
			log.LogWithFields(log.F("path", abs)).Warn("Permission denied listing directory")
			return []types.Entry{{Name: PermissionDeniedLabel, Sentinel: true}}, nil
		case errors.Is(err, fs.ErrNotExist):
			return nil, errors.NewBrowseError("path not found", abs, errors.PathNotFound, err)
		default:
			if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
				return nil, errors.NewBrowseError("not a directory", abs, errors.NotADirectory, err)
			}
			return nil, errors.NewBrowseError("error listing directory", abs, errors.Unknown, err)
		}
	}

	entries := make([]types.Entry, 0, len(dirents)+1)
	for _, de := range dirents {
		name := de.Name()
		if l.hidden(name) {
			continue
		}
		entry := types.Entry{
			Name: name,
			Path: filepath.Join(abs, name),
			Dir:  de.IsDir(),
		}
		if info, infoErr := de.Info(); infoErr == nil {
			entry.Size = info.Size()
			entry.ModTime = info.ModTime()
		}
		if !entry.Dir {
			// Symlinked directories count as directories, matching what
			// navigation into them would find.
			if info, statErr := os.Stat(entry.Path); statErr == nil && info.IsDir() {
				entry.Dir = true
			}
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Dir != entries[j].Dir {
			return entries[i].Dir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	// The parent pseudo-entry sorts first and only exists below the root.
	if !isFilesystemRoot(abs) {
		parent := types.Entry{
			Name:   ParentLabel,
			Path:   filepath.Dir(abs),
			Dir:    true,
			Parent: true,
		}
		entries = append([]types.Entry{parent}, entries...)
	}

	return entries, nil
}

// hidden reports whether a name is filtered from listings.
func (l *Lister) hidden(name string) bool {
	if !l.ShowHidden && strings.HasPrefix(name, ".") {
		return true
	}
	for _, g := range l.Hide {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// isFilesystemRoot reports whether abs is the filesystem root ("/" on Unix,
// the volume root on Windows).
func isFilesystemRoot(abs string) bool {
	return filepath.Dir(abs) == abs
}

// Produce implements Provider: the seed selection names a directory below
// Root, one segment per depth.
func (l *Lister) Produce(seed []string) ([]types.Entry, error) {
	root := l.Root
	if root == "" {
		root = string(filepath.Separator)
	}
	parts := append([]string{root}, seed...)
	return l.List(filepath.Join(parts...))
}
