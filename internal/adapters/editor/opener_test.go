package editor

import "testing"

func TestOpener_Command_Precedence(t *testing.T) {
	t.Setenv("EDITOR", "env-editor")
	t.Setenv("VISUAL", "visual-editor")

	t.Run("configured wins", func(t *testing.T) {
		cmd, err := NewOpener("configured-editor").Command("/tmp/x.md")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd.Args[0] != "configured-editor" {
			t.Errorf("editor = %q", cmd.Args[0])
		}
		if cmd.Args[len(cmd.Args)-1] != "/tmp/x.md" {
			t.Errorf("args = %v", cmd.Args)
		}
	})

	t.Run("EDITOR before VISUAL", func(t *testing.T) {
		cmd, err := NewOpener("").Command("/tmp/x.md")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd.Args[0] != "env-editor" {
			t.Errorf("editor = %q", cmd.Args[0])
		}
	})

	t.Run("VISUAL as fallback", func(t *testing.T) {
		t.Setenv("EDITOR", "")
		cmd, err := NewOpener("").Command("/tmp/x.md")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd.Args[0] != "visual-editor" {
			t.Errorf("editor = %q", cmd.Args[0])
		}
	})
}
