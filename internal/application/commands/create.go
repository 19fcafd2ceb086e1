package commands

import (
	"context"
	"fmt"

	"docvault/internal/application"
	"docvault/internal/domain"
	"docvault/internal/ports"
)

// CreateResult contains the result of creating a document.
type CreateResult struct {
	Document *domain.Document
	Message  string
}

// CreateCommand creates a document at a path.
type CreateCommand struct {
	store   ports.DocumentStore
	Path    string
	Scope   string
	Content string
}

// NewCreateCommand creates a new CreateCommand.
func NewCreateCommand(store ports.DocumentStore, path, scope, content string) *CreateCommand {
	return &CreateCommand{store: store, Path: path, Scope: scope, Content: content}
}

// Validate checks if the create operation is valid.
func (c *CreateCommand) Validate() error {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return err
	}
	if _, err := application.ValidateScope(c.Scope); err != nil {
		return err
	}
	if c.store != nil && c.store.Resolver().IsEntityID(c.Path) {
		return application.Errorf(application.KindValidation, "path must not look like a %s ID: %s", c.store.Entity().Name, c.Path)
	}
	return nil
}

// Execute runs the create command.
func (c *CreateCommand) Execute(ctx context.Context) (*CreateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	scope, _ := application.ValidateScope(c.Scope)

	doc, err := c.store.Create(domain.PathAddress(c.Path, scope), c.Content)
	if err != nil {
		return nil, err
	}
	return &CreateResult{
		Document: doc,
		Message:  fmt.Sprintf("Created %s %s at %s (%s)", c.store.Entity().Name, doc.ID, doc.Path, doc.Scope),
	}, nil
}
