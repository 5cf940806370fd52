package latex2web

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner abstracts command execution to enable testing without real
// subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// latexmlBinary is the external converter executable name.
const latexmlBinary = "latexml"

// installHint guides users when latexml is missing from PATH.
const installHint = "install with: brew install latexml (mac) or apt install latexml (linux)"

// LaTeXMLConverter converts LaTeX source to intermediate XML by invoking the
// latexml CLI.
type LaTeXMLConverter struct {
	Runner CommandRunner
}

// NewLaTeXMLConverter creates a LaTeXMLConverter with a real command runner.
func NewLaTeXMLConverter() *LaTeXMLConverter {
	return &LaTeXMLConverter{Runner: &ExecRunner{}}
}

// CheckInstalled verifies that latexml is available. The returned error
// carries installation guidance.
func (c *LaTeXMLConverter) CheckInstalled(ctx context.Context) error {
	if _, _, err := c.Runner.Run(ctx, latexmlBinary, "--version"); err != nil {
		return fmt.Errorf("%w: %s", ErrLaTeXMLNotFound, installHint)
	}
	return nil
}

// ToXML converts the LaTeX file at path to LaTeXML's intermediate XML.
// On failure latexml's stderr is surfaced verbatim in the error. There are
// no retries; a failed conversion is fatal to the run.
func (c *LaTeXMLConverter) ToXML(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", ErrEmptyInput
	}

	stdout, stderr, err := c.Runner.Run(ctx, latexmlBinary, path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrLaTeXMLFailed, strings.TrimSpace(stderr))
	}

	return stdout, nil
}
