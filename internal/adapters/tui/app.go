package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"docvault/internal/adapters/tui/views"
	"docvault/internal/application/commands"
	"docvault/internal/ports"
)

// ViewState represents the current view.
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewConfirmDelete
)

// App is the main TUI application model.
type App struct {
	stores []ports.DocumentStore
	editor ports.EditorOpener

	state   ViewState
	browser *views.BrowserModel
	confirm *views.ConfirmationModel

	pendingDelete *views.DeleteRequestMsg

	width  int
	height int
}

// NewApp creates a new TUI application over the given stores.
func NewApp(stores []ports.DocumentStore, ed ports.EditorOpener) *App {
	return &App{
		stores:  stores,
		editor:  ed,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(stores),
		confirm: views.NewConfirmationModel(),
	}
}

// Init initializes the application.
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.DeleteRequestMsg:
		a.state = ViewConfirmDelete
		a.pendingDelete = &msg
		a.confirm.SetTarget(msg.Entity, msg.Info)
		return a, nil

	case views.DeleteConfirmedMsg:
		a.state = ViewBrowser
		pending := a.pendingDelete
		a.pendingDelete = nil
		if pending == nil {
			return a, nil
		}
		return a, tea.Sequence(a.deleteDocument(pending), a.browser.Reload())

	case views.DeleteCancelledMsg:
		a.state = ViewBrowser
		a.pendingDelete = nil
		return a, nil

	case views.OpenEditorMsg:
		a.state = ViewBrowser
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			return a, func() tea.Msg { return views.ErrMsg{Err: msg.err} }
		}
		return a, a.browser.Reload()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewConfirmDelete:
		_, cmd = a.confirm.Update(msg)
	}

	return a, cmd
}

func (a *App) storeFor(entity string) ports.DocumentStore {
	for _, store := range a.stores {
		if store.Entity().Name == entity {
			return store
		}
	}
	return nil
}

func (a *App) deleteDocument(pending *views.DeleteRequestMsg) tea.Cmd {
	store := a.storeFor(pending.Entity)
	info := pending.Info
	return func() tea.Msg {
		if store == nil {
			return views.StatusMsg{Text: "Nothing to delete"}
		}
		cmd := commands.NewDeleteCommand(store, info.ID, string(info.Scope), "")
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return views.ErrMsg{Err: err}
		}
		return views.StatusMsg{Text: result.Message}
	}
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view.
func (a *App) View() string {
	switch a.state {
	case ViewConfirmDelete:
		return a.confirm.View()
	default:
		return a.browser.View()
	}
}
