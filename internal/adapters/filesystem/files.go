package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/natefinch/atomic"

	"docvault/internal/application"
)

const docExtension = ".md"

// Files performs the primitive file operations within one boundary
// directory. Every operation goes through path security before touching
// the filesystem; writes are atomic (temp sibling + rename) so no reader
// ever observes a half-written file.
type Files struct {
	root string
}

// NewFiles binds a file service to its boundary root.
func NewFiles(root string) *Files {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	return &Files{root: abs}
}

// Root returns the boundary directory.
func (f *Files) Root() string {
	return f.root
}

// ReadText reads a file, following symlinks to the true target.
func (f *Files) ReadText(rel string) (string, error) {
	resolved, err := ResolveWithinBoundary(f.root, rel, true)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(resolved.Abs)
	if err != nil {
		return "", translateFSError(err, resolved.Rel, resolved.Abs)
	}
	return string(data), nil
}

// WriteText writes content atomically, creating parent directories as
// needed.
func (f *Files) WriteText(rel, content string) error {
	resolved, err := ResolveWithinBoundary(f.root, rel, false)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(resolved.Abs), 0o755); err != nil {
		return translateFSError(err, resolved.Rel, resolved.Abs)
	}
	if err := atomic.WriteFile(resolved.Abs, strings.NewReader(content)); err != nil {
		return translateFSError(err, resolved.Rel, resolved.Abs)
	}
	return nil
}

// Exists reports whether a file is present at the path.
func (f *Files) Exists(rel string) (bool, error) {
	resolved, err := ResolveWithinBoundary(f.root, rel, true)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(resolved.Abs)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, translateFSError(err, resolved.Rel, resolved.Abs)
	}
}

// Delete unlinks a file. With cleanup enabled, now-empty ancestor
// directories are removed afterwards, stopping strictly below the boundary
// root. Cleanup is best-effort: it never fails the delete that preceded it.
func (f *Files) Delete(rel string, cleanup bool) error {
	resolved, err := ResolveWithinBoundary(f.root, rel, false)
	if err != nil {
		return err
	}
	if err := os.Remove(resolved.Abs); err != nil {
		return translateFSError(err, resolved.Rel, resolved.Abs)
	}
	if cleanup {
		f.cleanupAncestors(resolved.Rel)
	}
	return nil
}

// cleanupAncestors walks upward from the deleted file's parent directory,
// removing each directory that holds no documents and no subdirectories.
// Dotfiles such as .gitkeep or .DS_Store do not block removal. The walk
// stops silently at the first directory that fails a condition or cannot
// be listed — the primary delete already succeeded.
func (f *Files) cleanupAncestors(rel string) {
	for dir := path.Dir(rel); dir != "." && dir != "/"; dir = path.Dir(dir) {
		abs := filepath.Join(f.root, filepath.FromSlash(dir))
		entries, err := os.ReadDir(abs)
		if err != nil {
			return
		}
		for _, entry := range entries {
			if entry.IsDir() || strings.HasSuffix(entry.Name(), docExtension) {
				return
			}
		}
		if err := os.RemoveAll(abs); err != nil {
			return
		}
	}
}

// translateFSError maps OS errors onto the store taxonomy. One table for
// the whole file layer so every caller reports failures the same way.
func translateFSError(err error, rel, abs string) error {
	kind := application.KindFS
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = application.KindNotFound
	case errors.Is(err, syscall.ENOTEMPTY):
		kind = application.KindDirectoryNotEmpty
	case errors.Is(err, syscall.ENOTDIR), errors.Is(err, syscall.EISDIR):
		kind = application.KindValidation
	case errors.Is(err, fs.ErrPermission), errors.Is(err, syscall.EPERM), errors.Is(err, syscall.EBUSY):
		kind = application.KindFS
	}
	return application.Errorf(kind, "%w", err).At(rel, "").Resolved(abs)
}
