package ports

import "os/exec"

// EditorOpener opens files in the user's preferred editor.
type EditorOpener interface {
	// OpenFile opens the file and blocks until the editor exits.
	OpenFile(path string) error

	// Command returns an exec.Cmd for opening the file, for callers that
	// manage the process themselves (bubbletea's ExecProcess).
	Command(path string) (*exec.Cmd, error)
}
