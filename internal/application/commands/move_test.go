package commands

import (
	"strings"
	"testing"
)

func TestMoveCommand_Validate(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		destPath  string
		destScope string
		wantErr   bool
		errMsg    string
	}{
		{
			name:     "valid move by ID",
			source:   "doc007",
			destPath: "guides/setup-v2.md",
		},
		{
			name:      "valid move across scopes",
			source:    "guides/setup.md",
			destPath:  "setup.md",
			destScope: "shared",
		},
		{
			name:     "empty source",
			destPath: "x.md",
			wantErr:  true,
			errMsg:   "source is required",
		},
		{
			name:    "empty destination",
			source:  "doc007",
			wantErr: true,
			errMsg:  "destination path is required",
		},
		{
			name:      "invalid destination scope",
			source:    "doc007",
			destPath:  "x.md",
			destScope: "nowhere",
			wantErr:   true,
			errMsg:    "invalid scope",
		},
		{
			name:     "destination shaped like an ID",
			source:   "doc007",
			destPath: "doc008",
			wantErr:  true,
			errMsg:   "destination must be a path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewMoveCommand(newFakeStore(), tt.source, tt.destPath, tt.destScope)
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
