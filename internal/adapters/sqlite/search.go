// Package sqlite provides the derived search index. It is a rebuildable
// cache: the per-scope JSON indexes remain authoritative, and deleting the
// database costs nothing but a SyncFull.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"docvault/internal/domain"
	"docvault/internal/ports"
)

const schemaVersion = "1"

// SearchIndex implements ports.SearchIndex over a set of document stores.
type SearchIndex struct {
	db     *sql.DB
	dbPath string
	stores []ports.DocumentStore
}

var _ ports.SearchIndex = (*SearchIndex)(nil)

// NewSearchIndex creates a search index backed by the database at dbPath,
// fed from the given stores.
func NewSearchIndex(dbPath string, stores ...ports.DocumentStore) *SearchIndex {
	return &SearchIndex{dbPath: dbPath, stores: stores}
}

// Open initializes the database, creating the schema if needed.
func (ix *SearchIndex) Open() error {
	if err := os.MkdirAll(filepath.Dir(ix.dbPath), 0o755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", ix.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	ix.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS documents (
			entity TEXT NOT NULL,
			scope TEXT NOT NULL,
			doc_id TEXT NOT NULL,
			path TEXT NOT NULL,
			title TEXT NOT NULL,
			body TEXT NOT NULL,
			indexed_at INTEGER NOT NULL,
			PRIMARY KEY (entity, scope, doc_id)
		);
		CREATE INDEX IF NOT EXISTS idx_documents_path ON documents(path);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	_, err = db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (ix *SearchIndex) Close() error {
	if ix.db != nil {
		return ix.db.Close()
	}
	return nil
}

// Search returns documents whose title, path or body contains the query,
// case-insensitive.
func (ix *SearchIndex) Search(query string) ([]domain.SearchResult, error) {
	like := "%" + strings.ToLower(query) + "%"
	rows, err := ix.db.Query(`
		SELECT entity, scope, doc_id, path, title, body
		FROM documents
		WHERE lower(title) LIKE ? OR lower(path) LIKE ? OR lower(body) LIKE ?
		ORDER BY entity, scope, path`,
		like, like, like)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.SearchResult
	for rows.Next() {
		var r domain.SearchResult
		var scope, body string
		if err := rows.Scan(&r.Entity, &scope, &r.ID, &r.Path, &r.Title, &body); err != nil {
			return nil, err
		}
		r.Scope = domain.Scope(scope)
		r.Snippet = snippet(body, query)
		results = append(results, r)
	}
	return results, rows.Err()
}

// snippet returns the first line containing the query, trimmed.
func snippet(body, query string) string {
	lowered := strings.ToLower(query)
	for _, line := range strings.Split(body, "\n") {
		if strings.Contains(strings.ToLower(line), lowered) {
			return strings.TrimSpace(line)
		}
	}
	return ""
}
