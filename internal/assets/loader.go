package assets

// Loader defines the contract for loading theme CSS by name.
// Implementations may load from embedded assets or the filesystem.
type Loader interface {
	// LoadTheme loads a CSS theme by name (without the .css extension).
	// Returns ErrThemeNotFound if the theme doesn't exist.
	LoadTheme(name string) (string, error)
}
