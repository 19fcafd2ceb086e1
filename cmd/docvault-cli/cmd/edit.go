package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"docvault/internal/application/commands"
	"docvault/internal/domain"
)

var (
	editOpsJSON      string
	editExpectedHash string
)

var editCmd = &cobra.Command{
	Use:   "edit <id-or-path>",
	Short: "Apply edit operations to a document",
	Long: `Apply a JSON array of edit operations to a document.

Operations run in order against the in-memory content; the file is
rewritten once, atomically. Pass --expected-hash to fail with a
conflict if the document changed since you read it.

Operation forms:
  {"op": "replaceOnce", "oldText": "...", "newText": "..."}
  {"op": "replaceAll", "oldText": "...", "newText": "..."}
  {"op": "replaceRegex", "pattern": "...", "replacement": "...", "flags": "im"}
  {"op": "replaceAllContent", "content": "..."}

Examples:
  docvault-cli edit doc007 --ops '[{"op":"replaceOnce","oldText":"draft","newText":"final"}]'
  docvault-cli edit guides/setup.md --ops-file ops.json --expected-hash <hash>`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := GetStore()
		if err != nil {
			return err
		}
		raw := []byte(editOpsJSON)
		if !cmd.Flags().Changed("ops") {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			raw = data
		}
		ops, err := domain.DecodeEditOps(raw)
		if err != nil {
			return err
		}

		editCmd := commands.NewEditCommand(store, args[0], scopeName, ops, editExpectedHash)
		result, err := editCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		fmt.Printf("hash: %s\n", result.Document.Hash)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editOpsJSON, "ops", "", "edit operations as a JSON array (default: read stdin)")
	editCmd.Flags().StringVar(&editExpectedHash, "expected-hash", "", "fail if the current content hash differs")
}
