package latex2web

// Built-in theme names.
const (
	// DefaultTheme is used when the requested theme is unknown.
	DefaultTheme = "clean-serif"

	// DarkTheme is the built-in dark variant.
	DarkTheme = "dark"
)

// themeLoader abstracts theme CSS lookup so tests can stub it.
// internal/assets provides the embedded and filesystem implementations.
type themeLoader interface {
	LoadTheme(name string) (string, error)
}

// resolveTheme maps a theme name to its CSS text. Unknown names fall back
// silently to the default theme; resolution never fails on user input, only
// when the built-in default itself cannot be loaded.
func resolveTheme(loader themeLoader, name string) (string, error) {
	css, err := loader.LoadTheme(name)
	if err == nil {
		return css, nil
	}
	return loader.LoadTheme(DefaultTheme)
}
