package assets

import "errors"

// Sentinel errors for asset loading.
var (
	ErrThemeNotFound    = errors.New("theme not found")
	ErrInvalidThemeName = errors.New("invalid theme name")
	ErrInvalidBasePath  = errors.New("invalid base path")
)
