package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
	"time"
)

// Document is one markdown file addressed by ID or path within a scope.
type Document struct {
	ID      string
	Path    string // POSIX-style relative path under the scope root
	Scope   Scope
	Content string
	Hash    string // freshness token for optimistic concurrency
}

// Info is the listing view of a document. Content is not loaded; Title
// comes from the front matter when present.
type Info struct {
	ID       string
	Path     string
	Scope    Scope
	Title    string
	Override bool // set when a project document shadows a shared one at the same path
}

// SearchResult is one hit from the derived search index.
type SearchResult struct {
	Entity  string
	ID      string
	Path    string
	Scope   Scope
	Title   string
	Snippet string
}

// SyncStats reports the outcome of a search-index rebuild.
type SyncStats struct {
	DocsIndexed int
	Duration    time.Duration
}

// HashContent computes the content fingerprint used by the hash guard.
// SHA-256 hex; any stable digest would do — this is a freshness token, not
// a ledger.
func HashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// SortInfos orders listing entries by path, project before shared on ties.
func SortInfos(infos []Info) {
	slices.SortFunc(infos, func(a, b Info) int {
		if c := strings.Compare(a.Path, b.Path); c != 0 {
			return c
		}
		return strings.Compare(string(a.Scope), string(b.Scope))
	})
}
