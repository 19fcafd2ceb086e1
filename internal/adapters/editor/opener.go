package editor

import (
	"fmt"
	"os"
	"os/exec"

	"docvault/internal/ports"
)

// Opener implements ports.EditorOpener.
type Opener struct {
	configured string
}

var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates an editor opener. The configured editor (from the
// config file) takes precedence over $EDITOR/$VISUAL.
func NewOpener(configured string) *Opener {
	return &Opener{configured: configured}
}

// OpenFile opens a file in the user's preferred editor.
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor. Useful for
// integrating with bubbletea's ExecProcess.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found (set config.editor, $EDITOR, or install vi/nano)")
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

func (o *Opener) findEditor() string {
	if o.configured != "" {
		return o.configured
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	for _, editor := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}
	return ""
}
