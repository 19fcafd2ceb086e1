package commands

import (
	"context"
	"fmt"

	"docvault/internal/application"
	"docvault/internal/ports"
)

// DeleteResult contains the result of a delete.
type DeleteResult struct {
	Deleted bool
	Message string
}

// DeleteCommand removes a document. Idempotent: deleting an absent target
// reports Deleted=false rather than failing.
type DeleteCommand struct {
	store        ports.DocumentStore
	Identifier   string
	Scope        string
	ExpectedHash string
}

// NewDeleteCommand creates a new DeleteCommand.
func NewDeleteCommand(store ports.DocumentStore, identifier, scope, expectedHash string) *DeleteCommand {
	return &DeleteCommand{store: store, Identifier: identifier, Scope: scope, ExpectedHash: expectedHash}
}

// Validate checks if the delete operation is valid.
func (c *DeleteCommand) Validate() error {
	if err := application.ValidateRequired("identifier", c.Identifier); err != nil {
		return err
	}
	_, err := application.ValidateScope(c.Scope)
	return err
}

// Execute runs the delete command.
func (c *DeleteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	scope, _ := application.ValidateScope(c.Scope)

	addr := c.store.Resolver().Resolve(c.Identifier)
	if scope != "" {
		addr.Scope = scope
	}
	deleted, err := c.store.Delete(addr, c.ExpectedHash)
	if err != nil {
		return nil, err
	}
	msg := fmt.Sprintf("Deleted %s", c.Identifier)
	if !deleted {
		msg = fmt.Sprintf("Nothing to delete: %s", c.Identifier)
	}
	return &DeleteResult{Deleted: deleted, Message: msg}, nil
}
