package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"docvault/internal/application"
)

// Path security for scope boundaries. Pure aside from the lstat/realpath
// calls needed for symlink checks.

var windowsDrivePattern = regexp.MustCompile(`^[a-zA-Z]:`)

// ValidateRelative checks a caller-supplied relative path and returns its
// normalized forward-slash form. Empty and absolute paths are validation
// errors; any ".." segment is a boundary violation.
func ValidateRelative(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", application.Errorf(application.KindValidation, "path must not be empty")
	}
	slashed := strings.ReplaceAll(p, `\`, "/")
	if strings.HasPrefix(slashed, "/") || windowsDrivePattern.MatchString(slashed) {
		return "", application.Errorf(application.KindValidation, "path must be relative: %s", p).At(p, "")
	}
	for _, seg := range strings.Split(slashed, "/") {
		if seg == ".." {
			return "", application.Errorf(application.KindBoundaryViolation, "path traversal not allowed: %s", p).At(p, "")
		}
	}
	cleaned := path.Clean(slashed)
	if cleaned == "." || cleaned == "" {
		return "", application.Errorf(application.KindValidation, "path must not be empty: %s", p)
	}
	return cleaned, nil
}

// Resolved is the outcome of a boundary resolution: the absolute path in
// native separators and the normalized forward-slash relative path.
type Resolved struct {
	Abs string
	Rel string
}

// ResolveWithinBoundary resolves a relative path against a boundary
// directory and guarantees the result stays inside it.
//
// Default mode: the lexical target is checked; if the target itself is a
// symlink, its real destination is checked too, so a symlink inside the
// boundary pointing outside is rejected. A non-existent target is not an
// error here — create needs to resolve paths that do not exist yet.
//
// With followSymlinks the real path is fully resolved before the check;
// readers use this to land on the true file.
func ResolveWithinBoundary(boundary, rel string, followSymlinks bool) (Resolved, error) {
	cleaned, err := ValidateRelative(rel)
	if err != nil {
		return Resolved{}, err
	}

	absBoundary, err := filepath.Abs(boundary)
	if err != nil {
		return Resolved{}, application.Errorf(application.KindFS, "resolving boundary: %w", err)
	}
	abs := filepath.Join(absBoundary, filepath.FromSlash(cleaned))

	if err := checkWithin(absBoundary, abs, cleaned); err != nil {
		return Resolved{}, err
	}

	if followSymlinks {
		real, err := filepath.EvalSymlinks(abs)
		switch {
		case err == nil:
			if err := checkRealWithin(absBoundary, real, cleaned); err != nil {
				return Resolved{}, err
			}
			abs = real
		case errors.Is(err, fs.ErrNotExist):
			// Target missing; the caller's read will surface NOT_FOUND.
		default:
			return Resolved{}, application.Errorf(application.KindFS, "resolving path: %w", err).At(cleaned, "")
		}
		return Resolved{Abs: abs, Rel: cleaned}, nil
	}

	info, err := os.Lstat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Fine: create resolves paths before they exist.
	case err != nil:
		return Resolved{}, application.Errorf(application.KindFS, "stat %s: %w", cleaned, err).At(cleaned, "")
	case info.Mode()&os.ModeSymlink != 0:
		real, err := filepath.EvalSymlinks(abs)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				break // dangling symlink, target checked on use
			}
			return Resolved{}, application.Errorf(application.KindFS, "resolving symlink %s: %w", cleaned, err).At(cleaned, "")
		}
		if err := checkRealWithin(absBoundary, real, cleaned); err != nil {
			return Resolved{}, err
		}
	}

	return Resolved{Abs: abs, Rel: cleaned}, nil
}

// checkWithin verifies containment via relative-path analysis, never string
// prefixes — "/root2" is not inside "/root".
func checkWithin(boundary, target, rel string) error {
	relToBoundary, err := filepath.Rel(boundary, target)
	if err != nil {
		return application.Errorf(application.KindBoundaryViolation, "path escapes boundary: %s", rel).At(rel, "").Resolved(target)
	}
	if relToBoundary == "" || relToBoundary == ".." || strings.HasPrefix(relToBoundary, ".."+string(filepath.Separator)) || filepath.IsAbs(relToBoundary) {
		return application.Errorf(application.KindBoundaryViolation, "path escapes boundary: %s", rel).At(rel, "").Resolved(target)
	}
	return nil
}

// checkRealWithin compares a fully resolved target against the resolved
// boundary, so symlinked boundary roots compare consistently.
func checkRealWithin(boundary, realTarget, rel string) error {
	realBoundary, err := filepath.EvalSymlinks(boundary)
	if err != nil {
		realBoundary = boundary
	}
	if err := checkWithin(realBoundary, realTarget, rel); err != nil {
		return application.Errorf(application.KindBoundaryViolation, "symlink target escapes boundary: %s", rel).At(rel, "").Resolved(realTarget)
	}
	return nil
}
