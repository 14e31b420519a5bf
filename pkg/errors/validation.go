package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputPath validates a user-supplied output file path.
// It rejects paths that could escape the working tree or smuggle control
// characters into shell output.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateFontName validates a font file name passed to the measurer.
// Font names are resolved against system font directories, so they must be
// simple basenames without path components.
func ValidateFontName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidFont, "font name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidFont, "font name cannot contain path separators")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidFont, "font name contains invalid control characters")
		}
	}

	return nil
}
