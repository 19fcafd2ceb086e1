package application

import "docvault/internal/domain"

// Re-export domain types for use by adapters.
type (
	Address      = domain.Address
	Document     = domain.Document
	Entity       = domain.Entity
	Info         = domain.Info
	Scope        = domain.Scope
	SearchResult = domain.SearchResult
)

const (
	ScopeProject = domain.ScopeProject
	ScopeShared  = domain.ScopeShared
)
