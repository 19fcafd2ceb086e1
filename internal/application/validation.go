package application

import (
	"strings"

	"docvault/internal/domain"
)

// ValidateRequired checks that a field is non-empty after trimming.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return Errorf(KindValidation, "%s is required", field)
	}
	return nil
}

// ValidateScope checks an optional scope string and converts it.
func ValidateScope(value string) (domain.Scope, error) {
	scope, err := domain.ParseScope(value)
	if err != nil {
		return "", Errorf(KindValidation, "%v", err)
	}
	return scope, nil
}
