package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"docvault/internal/adapters/editor"
	"docvault/internal/adapters/filesystem"
	"docvault/internal/adapters/tui"
	"docvault/internal/config"
	"docvault/internal/domain"
	"docvault/internal/ports"
)

func main() {
	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(workDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	stores := make([]ports.DocumentStore, 0, len(domain.Entities))
	for _, entity := range domain.Entities {
		project, shared := cfg.Roots(entity)
		stores = append(stores, filesystem.NewStore(entity, project, shared))
	}
	editorOpener := editor.NewOpener(cfg.Editor)

	app := tui.NewApp(stores, editorOpener)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
