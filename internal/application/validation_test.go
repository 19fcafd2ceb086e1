package application

import (
	"errors"
	"strings"
	"testing"

	"docvault/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	if err := ValidateRequired("path", "guides/setup.md"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := ValidateRequired("path", "   ")
	if err == nil {
		t.Fatal("expected error for blank value")
	}
	if !strings.Contains(err.Error(), "path is required") {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("expected a validation error")
	}
}

func TestValidateScope(t *testing.T) {
	scope, err := ValidateScope("shared")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scope != domain.ScopeShared {
		t.Errorf("got %q, want shared", scope)
	}

	if scope, err := ValidateScope(""); err != nil || scope != "" {
		t.Errorf("empty scope should pass through, got (%q, %v)", scope, err)
	}

	if _, err := ValidateScope("global"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
