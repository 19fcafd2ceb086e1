package commands

import (
	"context"
	"strings"
	"testing"

	"docvault/internal/domain"
)

func TestEditCommand_Validate(t *testing.T) {
	ops := []domain.EditOp{domain.ReplaceOnce{OldText: "a", NewText: "b"}}

	tests := []struct {
		name       string
		identifier string
		scope      string
		ops        []domain.EditOp
		wantErr    bool
		errMsg     string
	}{
		{
			name:       "valid edit by ID",
			identifier: "doc007",
			ops:        ops,
		},
		{
			name:       "valid edit by path",
			identifier: "guides/setup.md",
			scope:      "shared",
			ops:        ops,
		},
		{
			name:    "empty identifier",
			ops:     ops,
			wantErr: true,
			errMsg:  "identifier is required",
		},
		{
			name:       "no operations",
			identifier: "doc007",
			wantErr:    true,
			errMsg:     "at least one edit operation",
		},
		{
			name:       "invalid scope",
			identifier: "doc007",
			scope:      "everywhere",
			ops:        ops,
			wantErr:    true,
			errMsg:     "invalid scope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewEditCommand(newFakeStore(), tt.identifier, tt.scope, tt.ops, "")
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestEditCommand_ScopeOverridesAddress(t *testing.T) {
	store := newFakeStore()
	store.doc = &domain.Document{ID: "doc007", Path: "setup.md", Scope: domain.ScopeProject}

	cmd := NewEditCommand(store, "setup.md", "project", []domain.EditOp{domain.ReplaceAllContent{Content: "x"}}, "")
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.lastAddr.Kind != domain.KindPath {
		t.Errorf("expected path address, got %s", store.lastAddr.Kind)
	}
	if store.lastAddr.Scope != domain.ScopeProject {
		t.Errorf("expected project scope on address, got %q", store.lastAddr.Scope)
	}
}
