package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"docvault/internal/application/commands"
)

var createContent string

var createCmd = &cobra.Command{
	Use:   "create <path>",
	Short: "Create a new document at a path",
	Long: `Create a new document at a relative path. The ID is minted
automatically from the index.

Content comes from --content, or from stdin when the flag is absent.

Examples:
  docvault-cli create guides/setup.md --content "# Setup"
  docvault-cli create guides/setup.md < setup.md
  docvault-cli create -t template -s shared review.md --content "# Review"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := GetStore()
		if err != nil {
			return err
		}
		content := createContent
		if !cmd.Flags().Changed("content") {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			content = string(data)
		}

		createCmd := commands.NewCreateCommand(store, args[0], scopeName, content)
		result, err := createCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		fmt.Printf("hash: %s\n", result.Document.Hash)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createContent, "content", "c", "", "document content (default: read stdin)")
}
