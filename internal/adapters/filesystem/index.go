package filesystem

import (
	"encoding/json"
	"errors"

	"docvault/internal/application"
	"docvault/internal/domain"
)

// IndexFileName is the per-scope index file at the scope root.
const IndexFileName = ".index.json"

// Index is the bidirectional id↔path mapping for one scope. Both maps must
// agree at all times: for every id, PathToID[ID[id].Path] == id, with no
// dangling entries on either side.
type Index struct {
	ID       map[string]IndexEntry `json:"id"`
	PathToID map[string]string     `json:"pathToId"`
}

// IndexEntry holds the per-ID record.
type IndexEntry struct {
	Path string `json:"path"`
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		ID:       map[string]IndexEntry{},
		PathToID: map[string]string{},
	}
}

// Insert records both directions of the mapping.
func (ix *Index) Insert(id, path string) {
	ix.ID[id] = IndexEntry{Path: path}
	ix.PathToID[path] = id
}

// Remove drops both directions of the mapping.
func (ix *Index) Remove(id string) {
	if entry, ok := ix.ID[id]; ok {
		delete(ix.PathToID, entry.Path)
	}
	delete(ix.ID, id)
}

// NextID mints the next ID for the entity at the scope: the highest numeric
// suffix across existing IDs plus one, zero-padded to three digits.
func (ix *Index) NextID(resolver *domain.EntityResolver, scope domain.Scope) string {
	max := 0
	for id := range ix.ID {
		if n, ok := resolver.IDNumber(id); ok && n > max {
			max = n
		}
	}
	return resolver.Entity().FormatID(scope, max+1)
}

// LoadIndex reads the scope's index file. A missing file yields an empty
// index. Legacy flat-format files ({"<id>": "<path>"}) are migrated and
// written back immediately, so the next reader sees the current format.
func LoadIndex(files *Files) (*Index, error) {
	raw, err := files.ReadText(IndexFileName)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return NewIndex(), nil
		}
		return nil, err
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, application.Errorf(application.KindFS, "corrupt index file: %w", err).At(IndexFileName, "")
	}

	_, hasID := probe["id"]
	_, hasPathToID := probe["pathToId"]
	if !hasID && !hasPathToID {
		return migrateLegacyIndex(files, raw)
	}

	ix := NewIndex()
	if err := json.Unmarshal([]byte(raw), ix); err != nil {
		return nil, application.Errorf(application.KindFS, "corrupt index file: %w", err).At(IndexFileName, "")
	}
	if ix.ID == nil {
		ix.ID = map[string]IndexEntry{}
	}
	if ix.PathToID == nil {
		ix.PathToID = map[string]string{}
	}
	return ix, nil
}

// migrateLegacyIndex converts the legacy flat {id: path} format and
// persists the result before returning it. Idempotent: once migrated the
// file carries the "id"/"pathToId" keys and never takes this path again.
func migrateLegacyIndex(files *Files, raw string) (*Index, error) {
	var legacy map[string]string
	if err := json.Unmarshal([]byte(raw), &legacy); err != nil {
		return nil, application.Errorf(application.KindFS, "corrupt legacy index file: %w", err).At(IndexFileName, "")
	}
	ix := NewIndex()
	for id, path := range legacy {
		ix.Insert(id, path)
	}
	if err := SaveIndex(files, ix); err != nil {
		return nil, err
	}
	return ix, nil
}

// SaveIndex serializes the index pretty-printed and persists it atomically.
func SaveIndex(files *Files, ix *Index) error {
	data, err := json.MarshalIndent(ix, "", "  ")
	if err != nil {
		return application.Errorf(application.KindFS, "encoding index: %w", err)
	}
	return files.WriteText(IndexFileName, string(data)+"\n")
}
