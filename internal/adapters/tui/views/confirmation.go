package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"docvault/internal/adapters/tui/styles"
	"docvault/internal/domain"
)

// ConfirmKeyMap defines key bindings for the confirmation view.
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

var ConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmationModel asks the user to confirm deleting one document.
type ConfirmationModel struct {
	entity string
	target domain.Info
	keys   ConfirmKeyMap
}

// NewConfirmationModel creates a confirmation model with default keys.
func NewConfirmationModel() *ConfirmationModel {
	return &ConfirmationModel{keys: ConfirmKeys}
}

// SetTarget sets the document pending deletion.
func (m *ConfirmationModel) SetTarget(entity string, info domain.Info) {
	m.entity = entity
	m.target = info
}

// Update handles key messages for the confirmation view.
func (m *ConfirmationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Confirm):
			return m, func() tea.Msg { return DeleteConfirmedMsg{} }
		case key.Matches(keyMsg, m.keys.Cancel):
			return m, func() tea.Msg { return DeleteCancelledMsg{} }
		}
	}
	return m, nil
}

// Init is a no-op.
func (m *ConfirmationModel) Init() tea.Cmd {
	return nil
}

// View renders the confirmation prompt.
func (m *ConfirmationModel) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Delete " + m.entity))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(m.target.ID)
	b.WriteString("  ")
	b.WriteString(m.target.Path)
	b.WriteString("  ")
	b.WriteString(styles.ScopeStyle(string(m.target.Scope)).Render(string(m.target.Scope)))
	b.WriteString("\n\n")
	b.WriteString("Delete this ")
	b.WriteString(m.entity)
	b.WriteString("? ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return styles.App.Render(b.String())
}
