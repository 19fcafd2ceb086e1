package commands

import (
	"context"
	"fmt"

	"docvault/internal/application"
	"docvault/internal/domain"
	"docvault/internal/ports"
)

// EditResult contains the result of editing a document.
type EditResult struct {
	Document *domain.Document
	Message  string
}

// EditCommand applies edit operations to a document with an optional hash
// guard.
type EditCommand struct {
	store        ports.DocumentStore
	Identifier   string
	Scope        string
	Ops          []domain.EditOp
	ExpectedHash string
}

// NewEditCommand creates a new EditCommand.
func NewEditCommand(store ports.DocumentStore, identifier, scope string, ops []domain.EditOp, expectedHash string) *EditCommand {
	return &EditCommand{store: store, Identifier: identifier, Scope: scope, Ops: ops, ExpectedHash: expectedHash}
}

// Validate checks if the edit operation is valid.
func (c *EditCommand) Validate() error {
	if err := application.ValidateRequired("identifier", c.Identifier); err != nil {
		return err
	}
	if _, err := application.ValidateScope(c.Scope); err != nil {
		return err
	}
	if len(c.Ops) == 0 {
		return application.Errorf(application.KindValidation, "at least one edit operation is required")
	}
	return nil
}

// Execute runs the edit command.
func (c *EditCommand) Execute(ctx context.Context) (*EditResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	scope, _ := application.ValidateScope(c.Scope)

	addr := c.store.Resolver().Resolve(c.Identifier)
	if scope != "" {
		addr.Scope = scope
	}
	doc, err := c.store.Edit(addr, c.Ops, c.ExpectedHash)
	if err != nil {
		return nil, err
	}
	return &EditResult{
		Document: doc,
		Message:  fmt.Sprintf("Edited %s (%d operation(s))", doc.ID, len(c.Ops)),
	}, nil
}
