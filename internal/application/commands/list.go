package commands

import (
	"context"

	"docvault/internal/application"
	"docvault/internal/domain"
	"docvault/internal/ports"
)

// ListCommand lists documents from the index, optionally filtered by scope
// and path prefix.
type ListCommand struct {
	store      ports.DocumentStore
	Scope      string
	PathPrefix string
}

// NewListCommand creates a new ListCommand.
func NewListCommand(store ports.DocumentStore, scope, pathPrefix string) *ListCommand {
	return &ListCommand{store: store, Scope: scope, PathPrefix: pathPrefix}
}

// Validate checks if the list operation is valid.
func (c *ListCommand) Validate() error {
	_, err := application.ValidateScope(c.Scope)
	return err
}

// Execute runs the list command.
func (c *ListCommand) Execute(ctx context.Context) ([]domain.Info, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	scope, _ := application.ValidateScope(c.Scope)
	return c.store.List(scope, c.PathPrefix)
}
