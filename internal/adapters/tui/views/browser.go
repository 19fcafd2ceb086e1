package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"docvault/internal/adapters/tui/styles"
	"docvault/internal/domain"
	"docvault/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view.
type BrowserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	Preview key.Binding
	Edit    key.Binding
	Delete  key.Binding
	CopyID  key.Binding
	Reload  key.Binding
	Quit    key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "entity type"),
	),
	Preview: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "preview"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	CopyID: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy id"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel lists the documents of one entity type across both scopes,
// with an inline preview pane.
type BrowserModel struct {
	stores     []ports.DocumentStore
	storeIdx   int
	infos      []domain.Info
	cursor     int
	preview    string
	showPrev   bool
	width      int
	height     int
	message    string
	messageErr bool
}

// NewBrowserModel creates a new browser model.
func NewBrowserModel(stores []ports.DocumentStore) *BrowserModel {
	return &BrowserModel{stores: stores}
}

// Init loads the first listing.
func (m *BrowserModel) Init() tea.Cmd {
	return m.load
}

// Reload refreshes the current listing.
func (m *BrowserModel) Reload() tea.Cmd {
	return m.load
}

// SetSize updates the view dimensions.
func (m *BrowserModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *BrowserModel) store() ports.DocumentStore {
	return m.stores[m.storeIdx]
}

func (m *BrowserModel) load() tea.Msg {
	infos, err := m.store().List("", "")
	if err != nil {
		return ErrMsg{err}
	}
	return docsLoadedMsg{infos}
}

type docsLoadedMsg struct {
	infos []domain.Info
}

type previewLoadedMsg struct {
	content string
}

func (m *BrowserModel) selected() (domain.Info, bool) {
	if m.cursor < 0 || m.cursor >= len(m.infos) {
		return domain.Info{}, false
	}
	return m.infos[m.cursor], true
}

func (m *BrowserModel) loadPreview() tea.Cmd {
	info, ok := m.selected()
	if !ok {
		return nil
	}
	store := m.store()
	return func() tea.Msg {
		doc, err := store.Read(domain.IDAddress(info.ID))
		if err != nil {
			return ErrMsg{err}
		}
		return previewLoadedMsg{doc.Content}
	}
}

// Update handles messages for the browser.
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case docsLoadedMsg:
		m.infos = msg.infos
		if m.cursor >= len(m.infos) {
			m.cursor = len(m.infos) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.showPrev = false
		return m, nil

	case previewLoadedMsg:
		m.preview = msg.content
		m.showPrev = true
		return m, nil

	case ErrMsg:
		m.message = msg.Err.Error()
		m.messageErr = true
		return m, nil

	case StatusMsg:
		m.message = msg.Text
		m.messageErr = false
		return m, nil

	case tea.KeyMsg:
		m.message = ""

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.showPrev = false
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.infos)-1 {
				m.cursor++
				m.showPrev = false
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.NextTab):
			m.storeIdx = (m.storeIdx + 1) % len(m.stores)
			m.cursor = 0
			m.showPrev = false
			return m, m.load

		case key.Matches(msg, BrowserKeys.Preview):
			if m.showPrev {
				m.showPrev = false
				return m, nil
			}
			return m, m.loadPreview()

		case key.Matches(msg, BrowserKeys.Edit):
			if info, ok := m.selected(); ok {
				abs := filepath.Join(m.store().Root(info.Scope), filepath.FromSlash(info.Path))
				return m, func() tea.Msg { return OpenEditorMsg{Path: abs} }
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Delete):
			if info, ok := m.selected(); ok {
				entity := m.store().Entity().Name
				return m, func() tea.Msg { return DeleteRequestMsg{Entity: entity, Info: info} }
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.CopyID):
			if info, ok := m.selected(); ok {
				if err := clipboard.WriteAll(info.ID); err != nil {
					m.message = err.Error()
					m.messageErr = true
				} else {
					m.message = fmt.Sprintf("Copied %s", info.ID)
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.load
		}
	}

	return m, nil
}

// View renders the browser.
func (m *BrowserModel) View() string {
	var sb strings.Builder

	entity := m.store().Entity()
	sb.WriteString(styles.Title.Render(fmt.Sprintf("docvault — %ss", entity.Name)))
	sb.WriteByte('\n')

	if len(m.infos) == 0 {
		sb.WriteString(styles.MutedText.Render("No documents. Create one with the CLI or MCP tools."))
		sb.WriteByte('\n')
	}

	for i, info := range m.infos {
		line := fmt.Sprintf("%-10s %s", info.ID, info.Path)
		if info.Title != "" {
			line += styles.MutedText.Render("  " + info.Title)
		}
		if info.Override {
			line += styles.RowOverride.Render("  [override]")
		}
		tag := styles.ScopeStyle(string(info.Scope)).Render(string(info.Scope))

		if i == m.cursor {
			sb.WriteString(styles.RowSelected.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("  " + tag)
		sb.WriteByte('\n')
	}

	if m.showPrev {
		preview := m.preview
		if limit := previewLimit(m.height); len(preview) > limit {
			preview = preview[:limit] + "\n…"
		}
		sb.WriteByte('\n')
		sb.WriteString(styles.Preview.Width(max(20, m.width-6)).Render(preview))
		sb.WriteByte('\n')
	}

	if m.message != "" {
		sb.WriteByte('\n')
		if m.messageErr {
			sb.WriteString(styles.ErrorMsg.Render(m.message))
		} else {
			sb.WriteString(styles.Success.Render(m.message))
		}
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
	sb.WriteString(helpLine())
	return styles.App.Render(sb.String())
}

func helpLine() string {
	bindings := []key.Binding{
		BrowserKeys.Up, BrowserKeys.Down, BrowserKeys.NextTab, BrowserKeys.Preview,
		BrowserKeys.Edit, BrowserKeys.Delete, BrowserKeys.CopyID, BrowserKeys.Reload, BrowserKeys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, styles.HelpKey.Render(b.Help().Key)+" "+styles.HelpDesc.Render(b.Help().Desc))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, strings.Join(parts, styles.MutedText.Render(" • ")))
}

func previewLimit(height int) int {
	if height <= 0 {
		return 2000
	}
	return height * 120
}
