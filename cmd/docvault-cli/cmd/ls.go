package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"docvault/internal/application/commands"
)

var lsPrefix string

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List documents",
	Long: `List documents from the index.

Without --scope, project and shared are merged: a project document at
the same path as a shared one shadows it and is marked as an override.

Examples:
  docvault-cli ls
  docvault-cli ls -s shared
  docvault-cli ls --prefix guides/`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := GetStore()
		if err != nil {
			return err
		}
		listCmd := commands.NewListCommand(store, scopeName, lsPrefix)
		infos, err := listCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		for _, info := range infos {
			line := fmt.Sprintf("%-10s %s (%s)", info.ID, info.Path, info.Scope)
			if info.Title != "" {
				line += "  " + info.Title
			}
			if info.Override {
				line += "  [overrides shared]"
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().StringVarP(&lsPrefix, "prefix", "p", "", "only list paths starting with this prefix")
}
