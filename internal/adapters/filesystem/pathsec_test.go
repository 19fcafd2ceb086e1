package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"docvault/internal/application"
)

func TestValidateRelative(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		want     string
		wantKind application.Kind
	}{
		{
			name: "simple path",
			path: "guides/setup.md",
			want: "guides/setup.md",
		},
		{
			name: "backslashes normalized",
			path: `guides\setup.md`,
			want: "guides/setup.md",
		},
		{
			name: "redundant segments cleaned",
			path: "guides//./setup.md",
			want: "guides/setup.md",
		},
		{
			name:     "empty",
			path:     "",
			wantKind: application.KindValidation,
		},
		{
			name:     "whitespace only",
			path:     "   ",
			wantKind: application.KindValidation,
		},
		{
			name:     "absolute",
			path:     "/etc/passwd",
			wantKind: application.KindValidation,
		},
		{
			name:     "windows drive",
			path:     `C:\temp\x.md`,
			wantKind: application.KindValidation,
		},
		{
			name:     "traversal",
			path:     "../../etc/passwd",
			wantKind: application.KindBoundaryViolation,
		},
		{
			name:     "embedded traversal",
			path:     "guides/../../escape.md",
			wantKind: application.KindBoundaryViolation,
		},
		{
			name:     "dot only",
			path:     ".",
			wantKind: application.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateRelative(tt.path)
			if tt.wantKind != "" {
				if err == nil {
					t.Fatalf("expected %s error, got nil", tt.wantKind)
				}
				if kind := application.KindOf(err); kind != tt.wantKind {
					t.Errorf("got kind %s, want %s", kind, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveWithinBoundary(t *testing.T) {
	boundary := t.TempDir()

	t.Run("nonexistent target is allowed", func(t *testing.T) {
		resolved, err := ResolveWithinBoundary(boundary, "new/file.md", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := filepath.Join(boundary, "new", "file.md")
		if resolved.Abs != want {
			t.Errorf("Abs = %q, want %q", resolved.Abs, want)
		}
		if resolved.Rel != "new/file.md" {
			t.Errorf("Rel = %q", resolved.Rel)
		}
	})

	t.Run("traversal rejected before touching the disk", func(t *testing.T) {
		_, err := ResolveWithinBoundary(boundary, "../outside.md", false)
		if !errors.Is(err, application.ErrBoundaryViolation) {
			t.Errorf("expected boundary violation, got %v", err)
		}
	})

	t.Run("symlink escaping the boundary is rejected", func(t *testing.T) {
		outside := t.TempDir()
		target := filepath.Join(outside, "secret.md")
		if err := os.WriteFile(target, []byte("secret"), 0o644); err != nil {
			t.Fatal(err)
		}
		link := filepath.Join(boundary, "sneaky.md")
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("cannot create symlinks: %v", err)
		}

		if _, err := ResolveWithinBoundary(boundary, "sneaky.md", false); !errors.Is(err, application.ErrBoundaryViolation) {
			t.Errorf("lexical mode: expected boundary violation, got %v", err)
		}
		if _, err := ResolveWithinBoundary(boundary, "sneaky.md", true); !errors.Is(err, application.ErrBoundaryViolation) {
			t.Errorf("follow mode: expected boundary violation, got %v", err)
		}
	})

	t.Run("symlink staying inside the boundary is fine", func(t *testing.T) {
		target := filepath.Join(boundary, "real.md")
		if err := os.WriteFile(target, []byte("real"), 0o644); err != nil {
			t.Fatal(err)
		}
		link := filepath.Join(boundary, "alias.md")
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("cannot create symlinks: %v", err)
		}

		resolved, err := ResolveWithinBoundary(boundary, "alias.md", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		real, _ := filepath.EvalSymlinks(target)
		if resolved.Abs != real {
			t.Errorf("Abs = %q, want %q", resolved.Abs, real)
		}
	})
}
