package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateNodeID validates a node (attribute) identifier for safety and
// correctness. Node IDs become map keys, SVG element IDs, cache key material,
// and URL path segments, so the rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No "->" (reserved as the connection ID separator)
//   - No path separators
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidNode, "node id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidNode, "node id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNode, "node id contains invalid control characters")
		}
	}

	if strings.Contains(id, "->") {
		return New(ErrCodeInvalidNode, "node id cannot contain %q (reserved connection separator)", "->")
	}

	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidNode, "node id cannot contain path separators")
	}

	return nil
}

// documentNameRegex matches safe document names: letters, digits, and a few
// common separators. Enforced on create so names are safe as file names.
var documentNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ._-]*$`)

// ValidateDocumentName validates a mapping document name.
func ValidateDocumentName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDocument, "document name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidDocument, "document name too long (max 128 characters)")
	}

	if !documentNameRegex.MatchString(name) {
		return New(ErrCodeInvalidDocument, "invalid document name: %q", name)
	}

	return nil
}

// ValidatePath validates an output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
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

// addrRegex matches "host:port" listen addresses with an optional host part.
var addrRegex = regexp.MustCompile(`^[A-Za-z0-9.\-]*:[0-9]{1,5}$`)

// ValidateAddr validates an HTTP listen address of the form "host:port".
func ValidateAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidInput, "listen address cannot be empty")
	}

	if !addrRegex.MatchString(addr) {
		return New(ErrCodeInvalidInput, "invalid listen address: %q (expected host:port)", addr)
	}

	return nil
}
