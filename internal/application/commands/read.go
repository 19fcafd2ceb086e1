package commands

import (
	"context"

	"docvault/internal/application"
	"docvault/internal/ports"
)

// ReadCommand reads a document by ID or path.
type ReadCommand struct {
	store      ports.DocumentStore
	Identifier string
	Scope      string
}

// NewReadCommand creates a new ReadCommand.
func NewReadCommand(store ports.DocumentStore, identifier, scope string) *ReadCommand {
	return &ReadCommand{store: store, Identifier: identifier, Scope: scope}
}

// Validate checks if the read operation is valid.
func (c *ReadCommand) Validate() error {
	if err := application.ValidateRequired("identifier", c.Identifier); err != nil {
		return err
	}
	_, err := application.ValidateScope(c.Scope)
	return err
}

// Execute runs the read command.
func (c *ReadCommand) Execute(ctx context.Context) (*application.Document, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	scope, _ := application.ValidateScope(c.Scope)

	addr := c.store.Resolver().Resolve(c.Identifier)
	if scope != "" {
		addr.Scope = scope
	}
	return c.store.Read(addr)
}
