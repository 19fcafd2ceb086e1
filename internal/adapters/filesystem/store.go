package filesystem

import (
	"errors"
	"strings"

	"docvault/internal/application"
	"docvault/internal/domain"
)

// Store implements ports.DocumentStore for one entity type over the two
// scope roots. The per-scope JSON index is authoritative for what exists;
// the filesystem holds the content.
type Store struct {
	entity   domain.Entity
	resolver *domain.EntityResolver
	files    map[domain.Scope]*Files
}

// NewStore builds a store for an entity type with its project and shared
// boundary roots.
func NewStore(entity domain.Entity, projectRoot, sharedRoot string) *Store {
	return &Store{
		entity:   entity,
		resolver: domain.NewEntityResolver(entity),
		files: map[domain.Scope]*Files{
			domain.ScopeProject: NewFiles(projectRoot),
			domain.ScopeShared:  NewFiles(sharedRoot),
		},
	}
}

// Entity returns the entity type this store manages.
func (s *Store) Entity() domain.Entity {
	return s.entity
}

// Root returns the boundary directory of a scope.
func (s *Store) Root(scope domain.Scope) string {
	return s.files[scope].Root()
}

// Resolver returns the ID/path classifier for this entity type.
func (s *Store) Resolver() *domain.EntityResolver {
	return s.resolver
}

func (s *Store) index(scope domain.Scope) (*Index, error) {
	return LoadIndex(s.files[scope])
}

// location is a fully resolved document address.
type location struct {
	scope domain.Scope
	id    string
	path  string
}

// resolve turns an address into a concrete (scope, id, path) triple, or a
// NOT_FOUND error when the index has no entry for it.
func (s *Store) resolve(addr domain.Address) (location, error) {
	switch addr.Kind {
	case domain.KindID:
		return s.resolveID(addr)
	case domain.KindPath:
		return s.resolvePath(addr)
	default:
		return location{}, application.Errorf(application.KindValidation, "unknown address kind")
	}
}

func (s *Store) resolveID(addr domain.Address) (location, error) {
	id := addr.Value
	scope, ok := s.resolver.DetectScopeFromID(id)
	if !ok {
		return location{}, application.Errorf(application.KindValidation, "not a valid %s ID: %s", s.entity.Name, id)
	}
	if addr.Scope != "" && addr.Scope != scope {
		return location{}, application.Errorf(application.KindValidation, "scope %s does not match ID prefix of %s", addr.Scope, id)
	}
	ix, err := s.index(scope)
	if err != nil {
		return location{}, err
	}
	entry, ok := ix.ID[id]
	if !ok {
		return location{}, application.Errorf(application.KindNotFound, "%s not found: %s", s.entity.Name, id).At("", scope)
	}
	return location{scope: scope, id: id, path: entry.Path}, nil
}

func (s *Store) resolvePath(addr domain.Address) (location, error) {
	cleaned, err := ValidateRelative(addr.Value)
	if err != nil {
		return location{}, err
	}
	if addr.Scope != "" {
		ix, err := s.index(addr.Scope)
		if err != nil {
			return location{}, err
		}
		id, ok := ix.PathToID[cleaned]
		if !ok {
			return location{}, application.Errorf(application.KindNotFound, "%s not found: %s", s.entity.Name, cleaned).At(cleaned, addr.Scope)
		}
		return location{scope: addr.Scope, id: id, path: cleaned}, nil
	}
	// No explicit scope: project shadows shared.
	for _, scope := range domain.Scopes {
		ix, err := s.index(scope)
		if err != nil {
			return location{}, err
		}
		if id, ok := ix.PathToID[cleaned]; ok {
			return location{scope: scope, id: id, path: cleaned}, nil
		}
	}
	return location{}, application.Errorf(application.KindNotFound, "%s not found: %s", s.entity.Name, cleaned).At(cleaned, "")
}

// Create writes a new document and returns it with its minted ID.
func (s *Store) Create(addr domain.Address, content string) (*domain.Document, error) {
	if addr.Kind != domain.KindPath {
		return nil, application.Errorf(application.KindValidation, "create requires a path address, got ID %s", addr.Value)
	}
	cleaned, err := ValidateRelative(addr.Value)
	if err != nil {
		return nil, err
	}
	if cleaned == IndexFileName {
		return nil, application.Errorf(application.KindValidation, "path is reserved for the index: %s", cleaned).At(cleaned, addr.Scope)
	}
	if s.resolver.IsEntityID(cleaned) {
		return nil, application.Errorf(application.KindValidation, "path must not look like a %s ID: %s", s.entity.Name, cleaned).At(cleaned, addr.Scope)
	}

	scope := addr.Scope
	if scope == "" {
		// Absence in every index means "new document, default scope".
		if loc, err := s.resolvePath(domain.PathAddress(cleaned, "")); err == nil {
			scope = loc.scope
		} else if errors.Is(err, application.ErrNotFound) {
			scope = domain.ScopeProject
		} else {
			return nil, err
		}
	}

	ix, err := s.index(scope)
	if err != nil {
		return nil, err
	}
	if existing, ok := ix.PathToID[cleaned]; ok {
		return nil, application.Errorf(application.KindValidation, "path already exists as %s: %s", existing, cleaned).At(cleaned, scope)
	}

	id := ix.NextID(s.resolver, scope)
	if err := s.files[scope].WriteText(cleaned, content); err != nil {
		return nil, err
	}
	ix.Insert(id, cleaned)
	if err := SaveIndex(s.files[scope], ix); err != nil {
		return nil, err
	}

	return &domain.Document{
		ID:      id,
		Path:    cleaned,
		Scope:   scope,
		Content: content,
		Hash:    domain.HashContent(content),
	}, nil
}

// Read returns the document with its current content hash.
func (s *Store) Read(addr domain.Address) (*domain.Document, error) {
	loc, err := s.resolve(addr)
	if err != nil {
		return nil, err
	}
	content, err := s.files[loc.scope].ReadText(loc.path)
	if err != nil {
		return nil, err
	}
	return &domain.Document{
		ID:      loc.id,
		Path:    loc.path,
		Scope:   loc.scope,
		Content: content,
		Hash:    domain.HashContent(content),
	}, nil
}

// Edit applies the operations in order and rewrites the file atomically.
// The ID and path are stable across edits; the index is untouched.
func (s *Store) Edit(addr domain.Address, ops []domain.EditOp, expectedHash string) (*domain.Document, error) {
	loc, err := s.resolve(addr)
	if err != nil {
		return nil, err
	}
	content, err := s.files[loc.scope].ReadText(loc.path)
	if err != nil {
		return nil, err
	}
	if err := checkHash(expectedHash, content, loc); err != nil {
		return nil, err
	}

	edited, err := domain.ApplyEdits(content, ops)
	if err != nil {
		return nil, application.Errorf(application.KindValidation, "%w", err).At(loc.path, loc.scope)
	}
	if err := s.files[loc.scope].WriteText(loc.path, edited); err != nil {
		return nil, err
	}

	return &domain.Document{
		ID:      loc.id,
		Path:    loc.path,
		Scope:   loc.scope,
		Content: edited,
		Hash:    domain.HashContent(edited),
	}, nil
}

// Delete removes the document, its index entries, and any now-empty
// ancestor directories. Deleting an absent target returns (false, nil).
func (s *Store) Delete(addr domain.Address, expectedHash string) (bool, error) {
	loc, err := s.resolve(addr)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if expectedHash != "" {
		// An index entry without a file leaves nothing to guard.
		present, err := s.files[loc.scope].Exists(loc.path)
		if err != nil {
			return false, err
		}
		if present {
			content, err := s.files[loc.scope].ReadText(loc.path)
			if err != nil {
				return false, err
			}
			if err := checkHash(expectedHash, content, loc); err != nil {
				return false, err
			}
		}
	}

	if err := s.files[loc.scope].Delete(loc.path, true); err != nil && !errors.Is(err, application.ErrNotFound) {
		return false, err
	}

	ix, err := s.index(loc.scope)
	if err != nil {
		return false, err
	}
	ix.Remove(loc.id)
	if err := SaveIndex(s.files[loc.scope], ix); err != nil {
		return false, err
	}
	return true, nil
}

// List returns index-backed entries; it never walks directories. An empty
// scope merges both scopes with project shadowing shared.
func (s *Store) List(scope domain.Scope, pathPrefix string) ([]domain.Info, error) {
	if scope != "" {
		infos, err := s.listScope(scope, pathPrefix)
		if err != nil {
			return nil, err
		}
		domain.SortInfos(infos)
		return infos, nil
	}

	project, err := s.listScope(domain.ScopeProject, pathPrefix)
	if err != nil {
		return nil, err
	}
	shared, err := s.listScope(domain.ScopeShared, pathPrefix)
	if err != nil {
		return nil, err
	}

	projectPaths := make(map[string]int, len(project))
	for i, info := range project {
		projectPaths[info.Path] = i
	}

	merged := project
	for _, info := range shared {
		if i, ok := projectPaths[info.Path]; ok {
			// Project shadows shared at the same path.
			merged[i].Override = true
			continue
		}
		merged = append(merged, info)
	}
	domain.SortInfos(merged)
	return merged, nil
}

func (s *Store) listScope(scope domain.Scope, pathPrefix string) ([]domain.Info, error) {
	ix, err := s.index(scope)
	if err != nil {
		return nil, err
	}
	infos := make([]domain.Info, 0, len(ix.ID))
	for id, entry := range ix.ID {
		if pathPrefix != "" && !strings.HasPrefix(entry.Path, pathPrefix) {
			continue
		}
		info := domain.Info{ID: id, Path: entry.Path, Scope: scope}
		// Title is display sugar; a missing or unreadable file does not
		// fail the listing.
		if content, err := s.files[scope].ReadText(entry.Path); err == nil {
			info.Title = domain.ExtractTitle(content)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Move relocates a document by creating it at the destination and deleting
// it at the source. The destination always gets a fresh ID: an ID names a
// document's lifetime at one path, not file identity. A cross-scope move is
// two independent index updates — a crash between them can leave two live
// copies or an orphaned destination. That gap is deliberate; there is no
// two-phase commit here.
func (s *Store) Move(src domain.Address, destPath string, destScope domain.Scope) (*domain.Document, error) {
	loc, err := s.resolve(src)
	if err != nil {
		return nil, err
	}
	content, err := s.files[loc.scope].ReadText(loc.path)
	if err != nil {
		return nil, err
	}

	if destScope == "" {
		destScope = loc.scope
	}
	cleanedDest, err := ValidateRelative(destPath)
	if err != nil {
		return nil, err
	}
	if destScope == loc.scope && cleanedDest == loc.path {
		return nil, application.Errorf(application.KindValidation, "source and destination are the same: %s", cleanedDest).At(cleanedDest, destScope)
	}

	moved, err := s.Create(domain.PathAddress(cleanedDest, destScope), content)
	if err != nil {
		return nil, err
	}

	if _, err := s.Delete(domain.Address{Kind: domain.KindID, Value: loc.id}, ""); err != nil {
		return nil, application.Errorf(application.KindFS, "moved to %s but failed to remove source %s: %w", moved.ID, loc.id, err).At(loc.path, loc.scope)
	}
	return moved, nil
}

func checkHash(expected, content string, loc location) error {
	if expected == "" {
		return nil
	}
	current := domain.HashContent(content)
	if current != expected {
		return application.Errorf(application.KindHashMismatch, "document changed since last read (expected %.12s, now %.12s)", expected, current).At(loc.path, loc.scope)
	}
	return nil
}
