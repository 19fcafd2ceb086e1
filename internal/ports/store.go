package ports

import "docvault/internal/domain"

// DocumentStore is the CRUD protocol over one entity type (docs, templates
// or cartridges) across the project and shared scopes.
//
// Every operation accepts an Address: either a stable ID or a relative
// path, with an optional explicit scope. Failures carry the store error
// taxonomy (validation, boundary, not-found, hash-mismatch, fs).
type DocumentStore interface {
	// Entity returns the entity type this store manages.
	Entity() domain.Entity

	// Root returns the boundary directory of a scope.
	Root(scope domain.Scope) string

	// Resolver returns the ID/path classifier for this entity type.
	Resolver() *domain.EntityResolver

	// Create writes a new document at a path-kind address and returns it
	// with its minted ID. The path must not be ID-shaped and must not
	// already exist in the resolved scope.
	Create(addr domain.Address, content string) (*domain.Document, error)

	// Read returns the document with its current content hash.
	Read(addr domain.Address) (*domain.Document, error)

	// Edit applies the operations in order and rewrites the file
	// atomically. A non-empty expectedHash that does not match the current
	// on-disk hash fails with a hash mismatch before any mutation. The ID
	// and path are stable across edits.
	Edit(addr domain.Address, ops []domain.EditOp, expectedHash string) (*domain.Document, error)

	// Delete removes the document and its index entries. Idempotent:
	// deleting an absent target returns (false, nil), never a not-found
	// error. The same hash guard as Edit applies when expectedHash is
	// non-empty.
	Delete(addr domain.Address, expectedHash string) (bool, error)

	// List returns index-backed entries. An empty scope merges both
	// scopes, marking project documents that shadow a shared path as
	// overrides. A non-empty pathPrefix filters by path prefix.
	List(scope domain.Scope, pathPrefix string) ([]domain.Info, error)

	// Move relocates a document: create at the destination (minting a
	// fresh ID — an ID is tied to a document's lifetime at one path),
	// then delete at the source. A cross-scope move is two independent
	// operations; a crash between them can leave a duplicate or an
	// orphan.
	Move(src domain.Address, destPath string, destScope domain.Scope) (*domain.Document, error)
}
