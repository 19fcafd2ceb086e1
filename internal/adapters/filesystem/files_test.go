package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"docvault/internal/application"
)

func TestFiles_WriteReadRoundTrip(t *testing.T) {
	files := NewFiles(t.TempDir())

	if err := files.WriteText("a/b/c.md", "# deep"); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	got, err := files.ReadText("a/b/c.md")
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if got != "# deep" {
		t.Errorf("got %q", got)
	}

	// Overwrite in place
	if err := files.WriteText("a/b/c.md", "# updated"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, _ = files.ReadText("a/b/c.md")
	if got != "# updated" {
		t.Errorf("got %q after overwrite", got)
	}
}

func TestFiles_ReadMissing(t *testing.T) {
	files := NewFiles(t.TempDir())

	_, err := files.ReadText("absent.md")
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestFiles_DeleteWithAncestorCleanup(t *testing.T) {
	root := t.TempDir()
	files := NewFiles(root)

	if err := files.WriteText("a/b/c.md", "x"); err != nil {
		t.Fatal(err)
	}
	if err := files.Delete("a/b/c.md", true); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "a")); !os.IsNotExist(err) {
		t.Error("empty ancestor a/ should be removed")
	}
	if _, err := os.Stat(root); err != nil {
		t.Error("the boundary root itself must survive")
	}
}

func TestFiles_CleanupStopsAtDocuments(t *testing.T) {
	root := t.TempDir()
	files := NewFiles(root)

	if err := files.WriteText("a/keep.md", "keep"); err != nil {
		t.Fatal(err)
	}
	if err := files.WriteText("a/b/c.md", "x"); err != nil {
		t.Fatal(err)
	}
	if err := files.Delete("a/b/c.md", true); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(root, "a", "b")); !os.IsNotExist(err) {
		t.Error("a/b should be removed")
	}
	if _, err := os.Stat(filepath.Join(root, "a", "keep.md")); err != nil {
		t.Error("a/ holds a document and must survive")
	}
}

func TestFiles_CleanupStopsAtSubdirectories(t *testing.T) {
	root := t.TempDir()
	files := NewFiles(root)

	if err := files.WriteText("a/other/d.md", "x"); err != nil {
		t.Fatal(err)
	}
	if err := files.WriteText("a/b/c.md", "x"); err != nil {
		t.Fatal(err)
	}
	if err := files.Delete("a/b/c.md", true); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(root, "a", "b")); !os.IsNotExist(err) {
		t.Error("a/b should be removed")
	}
	if _, err := os.Stat(filepath.Join(root, "a", "other")); err != nil {
		t.Error("a/ holds a subdirectory and must survive")
	}
}

func TestFiles_CleanupIgnoresDotfiles(t *testing.T) {
	root := t.TempDir()
	files := NewFiles(root)

	if err := files.WriteText("a/b/c.md", "x"); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "a", "b", ".gitkeep"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := files.Delete("a/b/c.md", true); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(root, "a", "b")); !os.IsNotExist(err) {
		t.Error("a dotfile alone should not keep a/b alive")
	}
}

func TestFiles_DeleteWithoutCleanup(t *testing.T) {
	root := t.TempDir()
	files := NewFiles(root)

	if err := files.WriteText("a/c.md", "x"); err != nil {
		t.Fatal(err)
	}
	if err := files.Delete("a/c.md", false); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(root, "a")); err != nil {
		t.Error("without cleanup the parent directory stays")
	}
}

func TestFiles_Exists(t *testing.T) {
	files := NewFiles(t.TempDir())

	ok, err := files.Exists("nope.md")
	if err != nil || ok {
		t.Errorf("Exists(nope.md) = (%v, %v)", ok, err)
	}

	if err := files.WriteText("yes.md", "x"); err != nil {
		t.Fatal(err)
	}
	ok, err = files.Exists("yes.md")
	if err != nil || !ok {
		t.Errorf("Exists(yes.md) = (%v, %v)", ok, err)
	}
}
