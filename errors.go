package latex2web

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInput      = errors.New("input path cannot be empty")
	ErrLaTeXMLNotFound = errors.New("latexml not found")
	ErrLaTeXMLFailed   = errors.New("latexml conversion failed")
	ErrParse           = errors.New("failed to parse LaTeXML output")

	// Converter configuration validation errors.
	ErrInvalidHighlightMode = errors.New("invalid highlight mode")
	ErrInvalidThemeDir      = errors.New("invalid theme directory")
)
