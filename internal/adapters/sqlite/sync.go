package sqlite

import (
	"time"

	"docvault/internal/domain"
)

// SyncFull rebuilds the index from scratch: every document of every store,
// both scopes.
func (ix *SearchIndex) SyncFull() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	tx, err := ix.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM documents`); err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	for _, store := range ix.stores {
		for _, scope := range domain.Scopes {
			infos, err := store.List(scope, "")
			if err != nil {
				return nil, err
			}
			for _, info := range infos {
				doc, err := store.Read(domain.IDAddress(info.ID))
				if err != nil {
					// Index entry without a readable file; skip it
					// rather than failing the rebuild.
					continue
				}
				_, err = tx.Exec(`
					INSERT INTO documents (entity, scope, doc_id, path, title, body, indexed_at)
					VALUES (?, ?, ?, ?, ?, ?, ?)`,
					store.Entity().Name, string(scope), doc.ID, doc.Path,
					domain.ExtractTitle(doc.Content), doc.Content, now)
				if err != nil {
					return nil, err
				}
				stats.DocsIndexed++
			}
		}
	}

	if _, err := tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)`, now); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	stats.Duration = time.Since(start)
	return stats, nil
}
