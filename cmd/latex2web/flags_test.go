package main

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseFlags
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults with input only", func(t *testing.T) {
		t.Parallel()

		f, input, err := parseFlags([]string{"latex2web", "paper.tex"})
		if err != nil {
			t.Fatalf("parseFlags: %v", err)
		}
		if input != "paper.tex" {
			t.Errorf("input = %q, want %q", input, "paper.tex")
		}
		if f.output != "" || f.theme != "" || f.themeDir != "" || f.highlight != "" || f.config != "" {
			t.Errorf("string flags not empty by default: %+v", f)
		}
		if f.keepXML || f.quiet || f.verbose {
			t.Errorf("bool flags not false by default: %+v", f)
		}
	})

	t.Run("all flags set", func(t *testing.T) {
		t.Parallel()

		f, input, err := parseFlags([]string{
			"latex2web",
			"-o", "out.html",
			"-t", "dark",
			"--theme-dir", "themes",
			"--highlight", "server",
			"-c", "conf.yaml",
			"--keep-xml",
			"-q",
			"-v",
			"paper.tex",
		})
		if err != nil {
			t.Fatalf("parseFlags: %v", err)
		}
		if input != "paper.tex" {
			t.Errorf("input = %q, want %q", input, "paper.tex")
		}
		if f.output != "out.html" {
			t.Errorf("output = %q", f.output)
		}
		if f.theme != "dark" {
			t.Errorf("theme = %q", f.theme)
		}
		if f.themeDir != "themes" {
			t.Errorf("themeDir = %q", f.themeDir)
		}
		if f.highlight != "server" {
			t.Errorf("highlight = %q", f.highlight)
		}
		if f.config != "conf.yaml" {
			t.Errorf("config = %q", f.config)
		}
		if !f.keepXML || !f.quiet || !f.verbose {
			t.Errorf("bool flags not set: %+v", f)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseFlags([]string{"latex2web", "-t", "dark"})
		if !errors.Is(err, errNoInput) {
			t.Errorf("error = %v, want errNoInput", err)
		}
	})

	t.Run("version needs no input", func(t *testing.T) {
		t.Parallel()

		f, _, err := parseFlags([]string{"latex2web", "--version"})
		if err != nil {
			t.Fatalf("parseFlags: %v", err)
		}
		if !f.version {
			t.Error("version flag not set")
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseFlags([]string{"latex2web", "--bogus", "paper.tex"})
		if err == nil {
			t.Error("parseFlags accepted an unknown flag")
		}
	})
}
