package assets

import "strings"

// ValidateThemeName checks that a theme name is safe to use as a file name
// component. Names with path separators, traversal sequences, or null bytes
// are rejected to prevent escaping the theme directory.
func ValidateThemeName(name string) error {
	if name == "" {
		return ErrInvalidThemeName
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.Contains(name, "..") {
		return ErrInvalidThemeName
	}
	return nil
}
