package commands

import (
	"strings"
	"testing"
)

func TestCreateCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		scope   string
		wantErr bool
		errMsg  string
	}{
		{
			name:  "valid create",
			path:  "guides/setup.md",
			scope: "project",
		},
		{
			name: "valid create without scope",
			path: "setup.md",
		},
		{
			name:    "empty path",
			path:    "",
			wantErr: true,
			errMsg:  "path is required",
		},
		{
			name:    "invalid scope",
			path:    "setup.md",
			scope:   "global",
			wantErr: true,
			errMsg:  "invalid scope",
		},
		{
			name:    "path shaped like a project ID",
			path:    "doc007",
			wantErr: true,
			errMsg:  "must not look like a doc ID",
		},
		{
			name:    "path shaped like a shared ID",
			path:    "sdoc012",
			wantErr: true,
			errMsg:  "must not look like a doc ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewCreateCommand(newFakeStore(), tt.path, tt.scope, "# content")
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
