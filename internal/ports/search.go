package ports

import "docvault/internal/domain"

// SearchIndex is a derived, rebuildable cache over every scope and entity
// type. The per-scope JSON indexes stay authoritative; dropping the search
// database loses nothing that a SyncFull cannot restore.
type SearchIndex interface {
	Open() error
	Close() error

	// SyncFull rebuilds the index from the stores.
	SyncFull() (*domain.SyncStats, error)

	// Search returns documents whose title, path or body contains the
	// query (case-insensitive).
	Search(query string) ([]domain.SearchResult, error)
}
