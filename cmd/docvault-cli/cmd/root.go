package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docvault/internal/adapters/filesystem"
	"docvault/internal/config"
	"docvault/internal/domain"
	"docvault/internal/ports"
)

var (
	entityName string
	scopeName  string

	cfg    config.Config
	stores map[string]ports.DocumentStore
)

var rootCmd = &cobra.Command{
	Use:   "docvault-cli",
	Short: "CLI for the docvault markdown store",
	Long: `docvault-cli manages namespaced markdown documents across a
project scope and a shared scope.

Documents are addressed by ID (doc007, sdoc012) or by relative path.
Use --type to work with templates or cartridges instead of docs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		workDir, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg, err = config.Load(workDir)
		if err != nil {
			return err
		}
		stores = make(map[string]ports.DocumentStore, len(domain.Entities))
		for _, entity := range domain.Entities {
			project, shared := cfg.Roots(entity)
			stores[entity.Name] = filesystem.NewStore(entity, project, shared)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&entityName, "type", "t", domain.EntityDoc.Name, "entity type: doc, template, or cartridge")
	rootCmd.PersistentFlags().StringVarP(&scopeName, "scope", "s", "", "scope: project or shared (default: infer)")
}

// GetStore returns the store selected by the --type flag.
func GetStore() (ports.DocumentStore, error) {
	store, ok := stores[entityName]
	if !ok {
		return nil, fmt.Errorf("unknown entity type: %q (expected doc, template, or cartridge)", entityName)
	}
	return store, nil
}

// AllStores returns every entity store, in a stable order.
func AllStores() []ports.DocumentStore {
	all := make([]ports.DocumentStore, 0, len(domain.Entities))
	for _, entity := range domain.Entities {
		all = append(all, stores[entity.Name])
	}
	return all
}

// Config returns the loaded configuration.
func Config() config.Config {
	return cfg
}
