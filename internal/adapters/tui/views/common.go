package views

import "docvault/internal/domain"

// Messages shared between views and the app model.

// ErrMsg reports a failed operation.
type ErrMsg struct {
	Err error
}

// StatusMsg shows a transient status line.
type StatusMsg struct {
	Text string
}

// OpenEditorMsg asks the app to open a file in the external editor.
type OpenEditorMsg struct {
	Path string // absolute
}

// DeleteRequestMsg asks the app to confirm deletion of a document.
type DeleteRequestMsg struct {
	Entity string
	Info   domain.Info
}

// DeleteConfirmedMsg is emitted when the user confirms a pending delete.
type DeleteConfirmedMsg struct{}

// DeleteCancelledMsg is emitted when the user backs out.
type DeleteCancelledMsg struct{}
