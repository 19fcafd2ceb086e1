package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"docvault/internal/adapters/sqlite"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Rebuild the search database",
	Long: `Rebuild the search database from the document stores. The
database is a cache: this command restores everything it ever holds.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		index := sqlite.NewSearchIndex(Config().SearchDBPath(), AllStores()...)
		if err := index.Open(); err != nil {
			return err
		}
		defer index.Close()

		stats, err := index.SyncFull()
		if err != nil {
			return err
		}
		fmt.Printf("Indexed %d documents in %s\n", stats.DocsIndexed, stats.Duration.Round(time.Millisecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
