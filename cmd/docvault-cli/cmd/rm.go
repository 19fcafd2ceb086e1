package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"docvault/internal/application/commands"
)

var rmExpectedHash string

var rmCmd = &cobra.Command{
	Use:   "rm <id-or-path>",
	Short: "Delete a document",
	Long: `Delete a document, its index entries, and any directories left
empty by the removal. Deleting something that does not exist is not an
error.

Examples:
  docvault-cli rm doc007
  docvault-cli rm guides/setup.md --expected-hash <hash>`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := GetStore()
		if err != nil {
			return err
		}
		deleteCmd := commands.NewDeleteCommand(store, args[0], scopeName, rmExpectedHash)
		result, err := deleteCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
	rmCmd.Flags().StringVar(&rmExpectedHash, "expected-hash", "", "fail if the current content hash differs")
}
