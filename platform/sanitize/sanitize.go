// Package sanitize provides filename sanitization for artifact handling.
package sanitize

import (
	"fmt"
	"regexp"
	"strings"
)

// filenameRegex matches the characters allowed in an artifact filename.
// Anything with path separators, traversal sequences, or shell metacharacters
// is rejected outright rather than rewritten.
var filenameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Filename validates a caller-supplied artifact filename. The returned name
// is safe to join onto a directory without escaping it.
func Filename(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("filename is empty")
	}
	if strings.Contains(trimmed, "..") {
		return "", fmt.Errorf("filename %q contains a traversal sequence", trimmed)
	}
	if !filenameRegex.MatchString(trimmed) {
		return "", fmt.Errorf("filename %q contains invalid characters", trimmed)
	}
	return trimmed, nil
}
