package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"docvault/internal/application/commands"
)

var catShowHash bool

var catCmd = &cobra.Command{
	Use:   "cat <id-or-path>",
	Short: "Print a document's content",
	Long: `Print a document's content to stdout.

Examples:
  docvault-cli cat doc007
  docvault-cli cat guides/setup.md
  docvault-cli cat sdoc012 --hash`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := GetStore()
		if err != nil {
			return err
		}
		readCmd := commands.NewReadCommand(store, args[0], scopeName)
		doc, err := readCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		if catShowHash {
			fmt.Printf("id: %s\npath: %s\nscope: %s\nhash: %s\n\n", doc.ID, doc.Path, doc.Scope, doc.Hash)
		}
		fmt.Print(doc.Content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catCmd)
	catCmd.Flags().BoolVar(&catShowHash, "hash", false, "print the id/path/scope/hash header")
}
