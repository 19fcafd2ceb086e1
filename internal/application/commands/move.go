package commands

import (
	"context"
	"fmt"

	"docvault/internal/application"
	"docvault/internal/domain"
	"docvault/internal/ports"
)

// MoveResult contains the result of moving a document.
type MoveResult struct {
	OriginalID string
	Moved      *domain.Document
	Message    string
}

// MoveCommand relocates a document to a new path, minting a fresh ID.
type MoveCommand struct {
	store            ports.DocumentStore
	Source           string
	DestinationPath  string
	DestinationScope string
}

// NewMoveCommand creates a new MoveCommand.
func NewMoveCommand(store ports.DocumentStore, source, destPath, destScope string) *MoveCommand {
	return &MoveCommand{store: store, Source: source, DestinationPath: destPath, DestinationScope: destScope}
}

// Validate checks if the move operation is valid.
func (c *MoveCommand) Validate() error {
	if err := application.ValidateRequired("source", c.Source); err != nil {
		return err
	}
	if err := application.ValidateRequired("destination path", c.DestinationPath); err != nil {
		return err
	}
	if _, err := application.ValidateScope(c.DestinationScope); err != nil {
		return err
	}
	if c.store != nil && c.store.Resolver().IsEntityID(c.DestinationPath) {
		return application.Errorf(application.KindValidation, "destination must be a path, got ID %s", c.DestinationPath)
	}
	return nil
}

// Execute runs the move command.
func (c *MoveCommand) Execute(ctx context.Context) (*MoveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	destScope, _ := application.ValidateScope(c.DestinationScope)

	src := c.store.Resolver().Resolve(c.Source)
	moved, err := c.store.Move(src, c.DestinationPath, destScope)
	if err != nil {
		return nil, err
	}
	return &MoveResult{
		OriginalID: c.Source,
		Moved:      moved,
		Message:    fmt.Sprintf("Moved to %s at %s (%s)", moved.ID, moved.Path, moved.Scope),
	}, nil
}
