// Package assets provides theme CSS loading for the HTML output.
//
// Themes are embedded in the binary; a filesystem directory may override
// them by name, with embedded themes as fallback.
package assets
