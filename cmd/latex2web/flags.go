package main

import (
	"errors"

	flag "github.com/spf13/pflag"
)

// errNoInput is returned when no positional input path is given.
var errNoInput = errors.New("usage: latex2web <input.tex> [flags]")

// cliFlags holds all command-line flags.
type cliFlags struct {
	output    string
	theme     string
	themeDir  string
	highlight string
	config    string
	keepXML   bool
	quiet     bool
	verbose   bool
	version   bool
}

// parseFlags parses args (including the program name) and returns the flags
// and the positional input path.
func parseFlags(args []string) (*cliFlags, string, error) {
	fs := flag.NewFlagSet("latex2web", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output HTML path (default: input with .html extension)")
	fs.StringVarP(&f.theme, "theme", "t", "", "theme name (clean-serif, dark, or a custom theme)")
	fs.StringVar(&f.themeDir, "theme-dir", "", "directory of custom {name}.css themes")
	fs.StringVar(&f.highlight, "highlight", "", "code highlighting mode: client or server")
	fs.StringVarP(&f.config, "config", "c", "", "YAML config file path")
	fs.BoolVar(&f.keepXML, "keep-xml", false, "also write the intermediate LaTeXML XML")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
	fs.BoolVar(&f.version, "version", false, "print the version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, "", err
	}
	if f.version {
		return f, "", nil
	}
	if fs.NArg() < 1 {
		return nil, "", errNoInput
	}
	return f, fs.Arg(0), nil
}
