package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"docvault/internal/application/commands"
)

var mvDestScope string

var mvCmd = &cobra.Command{
	Use:   "mv <id-or-path> <dest-path>",
	Short: "Move a document to a new path",
	Long: `Move a document to a new relative path, optionally into the
other scope. The document always gets a fresh ID at the destination;
the old ID stops resolving.

Examples:
  docvault-cli mv doc007 guides/setup-v2.md
  docvault-cli mv guides/setup.md setup.md --dest-scope shared`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := GetStore()
		if err != nil {
			return err
		}
		moveCmd := commands.NewMoveCommand(store, args[0], args[1], mvDestScope)
		result, err := moveCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mvCmd)
	mvCmd.Flags().StringVar(&mvDestScope, "dest-scope", "", "destination scope (default: keep the source scope)")
}
