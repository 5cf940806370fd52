package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirLoader loads themes from a filesystem directory, falling back to the
// embedded themes for names the directory doesn't provide. Custom themes
// take precedence over built-ins of the same name.
type DirLoader struct {
	base     string
	fallback Loader
}

// NewDirLoader creates a DirLoader rooted at base. The directory should
// contain {name}.css files. Returns ErrInvalidBasePath if base is not a
// readable directory.
func NewDirLoader(base string) (*DirLoader, error) {
	info, err := os.Stat(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidBasePath, base, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrInvalidBasePath, base)
	}
	return &DirLoader{base: base, fallback: NewEmbeddedLoader()}, nil
}

// LoadTheme loads {base}/{name}.css, falling back to the embedded theme of
// the same name when the file does not exist.
func (d *DirLoader) LoadTheme(name string) (string, error) {
	if err := ValidateThemeName(name); err != nil {
		return "", err
	}

	path := filepath.Join(d.base, name+".css")
	content, err := os.ReadFile(path) // #nosec G304 -- name is validated, base is user-chosen
	if err == nil {
		return string(content), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("reading theme file %q: %w", path, err)
	}

	return d.fallback.LoadTheme(name)
}

// Compile-time interface check.
var _ Loader = (*DirLoader)(nil)
