package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Scope identifies one of the two independent storage domains.
type Scope string

const (
	// ScopeProject is the workspace-local root.
	ScopeProject Scope = "project"
	// ScopeShared is the user-wide root.
	ScopeShared Scope = "shared"
)

// Scopes lists both scopes in resolution order (project shadows shared).
var Scopes = []Scope{ScopeProject, ScopeShared}

// ParseScope converts a string into a Scope. Empty input is allowed and
// means "unspecified" — callers infer the scope themselves.
func ParseScope(s string) (Scope, error) {
	switch s {
	case "", string(ScopeProject), string(ScopeShared):
		return Scope(s), nil
	default:
		return "", fmt.Errorf("invalid scope: %q (expected project or shared)", s)
	}
}

// Entity describes one stored entity type. The prefix is the project-scope
// ID prefix; the shared-scope prefix is the same with a leading "s".
type Entity struct {
	Name   string // "doc", "template", "cartridge"
	Prefix string // "doc", "tpl", "crt"
}

var (
	EntityDoc       = Entity{Name: "doc", Prefix: "doc"}
	EntityTemplate  = Entity{Name: "template", Prefix: "tpl"}
	EntityCartridge = Entity{Name: "cartridge", Prefix: "crt"}
)

// Entities lists every entity type the store manages.
var Entities = []Entity{EntityDoc, EntityTemplate, EntityCartridge}

// EntityByName looks up an entity type by its name.
func EntityByName(name string) (Entity, error) {
	for _, e := range Entities {
		if e.Name == name {
			return e, nil
		}
	}
	return Entity{}, fmt.Errorf("unknown entity type: %q", name)
}

// IDPrefix returns the ID prefix for the given scope.
func (e Entity) IDPrefix(scope Scope) string {
	if scope == ScopeShared {
		return "s" + e.Prefix
	}
	return e.Prefix
}

// FormatID mints an ID string for the entity at the given scope. Numbers are
// zero-padded to three digits and grow past that without re-padding
// (doc007, doc1000).
func (e Entity) FormatID(scope Scope, n int) string {
	return fmt.Sprintf("%s%03d", e.IDPrefix(scope), n)
}

// AddressKind discriminates the two addressing modes.
type AddressKind int

const (
	KindID AddressKind = iota
	KindPath
)

func (k AddressKind) String() string {
	if k == KindID {
		return "id"
	}
	return "path"
}

// Address is the union accepted by every store operation: either a stable
// ID or a relative path, with an optional explicit scope. An empty Scope
// means "infer it" — from the ID prefix for IDs, from index probing for
// paths.
type Address struct {
	Kind  AddressKind
	Value string
	Scope Scope
}

// IDAddress builds an ID-kind address.
func IDAddress(id string) Address {
	return Address{Kind: KindID, Value: id}
}

// PathAddress builds a path-kind address.
func PathAddress(path string, scope Scope) Address {
	return Address{Kind: KindPath, Value: path, Scope: scope}
}

// Resolver classifies identifiers for a single ID pattern. It is the single
// source of truth for "is this an ID or a path" — call sites must never
// duplicate the regex inline.
type Resolver struct {
	pattern *regexp.Regexp
	entity  string
}

// NewResolver builds a resolver from an anchored ID pattern and the entity
// name it reports in errors.
func NewResolver(idPattern, entityName string) *Resolver {
	return &Resolver{
		pattern: regexp.MustCompile(idPattern),
		entity:  entityName,
	}
}

// IsID reports whether the identifier matches this resolver's ID pattern.
func (r *Resolver) IsID(identifier string) bool {
	return r.pattern.MatchString(identifier)
}

// Resolve classifies an identifier as an ID or a path.
func (r *Resolver) Resolve(identifier string) Address {
	if r.IsID(identifier) {
		return Address{Kind: KindID, Value: identifier}
	}
	return Address{Kind: KindPath, Value: identifier}
}

// EntityResolver composes the project and shared resolvers for one entity
// type and adds scope detection from the ID prefix.
type EntityResolver struct {
	entity  Entity
	project *Resolver
	shared  *Resolver
}

// NewEntityResolver builds the resolver pair for an entity type.
func NewEntityResolver(e Entity) *EntityResolver {
	return &EntityResolver{
		entity:  e,
		project: NewResolver(`^`+e.IDPrefix(ScopeProject)+`\d{3,}$`, e.Name),
		shared:  NewResolver(`^`+e.IDPrefix(ScopeShared)+`\d{3,}$`, e.Name),
	}
}

// Entity returns the entity type this resolver serves.
func (r *EntityResolver) Entity() Entity {
	return r.entity
}

// IsEntityID reports whether the identifier is an ID of this entity type in
// either scope.
func (r *EntityResolver) IsEntityID(identifier string) bool {
	return r.shared.IsID(identifier) || r.project.IsID(identifier)
}

// DetectScopeFromID infers the scope from an ID's prefix. The shared
// pattern is checked first since "sdoc007" would otherwise never match.
func (r *EntityResolver) DetectScopeFromID(id string) (Scope, bool) {
	if r.shared.IsID(id) {
		return ScopeShared, true
	}
	if r.project.IsID(id) {
		return ScopeProject, true
	}
	return "", false
}

// Resolve classifies an identifier, filling in the scope for IDs.
func (r *EntityResolver) Resolve(identifier string) Address {
	if scope, ok := r.DetectScopeFromID(identifier); ok {
		return Address{Kind: KindID, Value: identifier, Scope: scope}
	}
	return Address{Kind: KindPath, Value: identifier}
}

// IDNumber extracts the numeric suffix of an ID of this entity type.
func (r *EntityResolver) IDNumber(id string) (int, bool) {
	scope, ok := r.DetectScopeFromID(id)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, r.entity.IDPrefix(scope)))
	if err != nil {
		return 0, false
	}
	return n, true
}
