package cmd

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"docvault/internal/adapters/editor"
	"docvault/internal/application/commands"
	"docvault/internal/ports"
)

var openCmd = &cobra.Command{
	Use:   "open <id-or-path>",
	Short: "Open a document in your editor",
	Long: `Open a document in the configured editor (config.editor, then
$EDITOR, then $VISUAL, then whatever vi-alike is installed).

Examples:
  docvault-cli open doc007
  docvault-cli open guides/setup.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := GetStore()
		if err != nil {
			return err
		}
		doc, err := commands.NewReadCommand(store, args[0], scopeName).Execute(context.Background())
		if err != nil {
			return err
		}
		abs := filepath.Join(store.Root(doc.Scope), filepath.FromSlash(doc.Path))
		var opener ports.EditorOpener = editor.NewOpener(Config().Editor)
		return opener.OpenFile(abs)
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
