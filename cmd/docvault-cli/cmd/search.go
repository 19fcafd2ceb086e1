package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"docvault/internal/adapters/sqlite"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search documents by keyword",
	Long: `Search every entity type and scope by keyword, matching title,
path, and content.

The search database is a derived cache; run "docvault-cli sync" after
editing files outside the tools to bring it up to date.

Examples:
  docvault-cli search deployment
  docvault-cli search "code review"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index := sqlite.NewSearchIndex(Config().SearchDBPath(), AllStores()...)
		if err := index.Open(); err != nil {
			return err
		}
		defer index.Close()

		results, err := index.Search(args[0])
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}
		for _, r := range results {
			line := fmt.Sprintf("%-10s %-10s %s (%s)", r.Entity, r.ID, r.Path, r.Scope)
			if r.Snippet != "" {
				line += "  " + r.Snippet
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
