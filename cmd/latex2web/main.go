package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"go.uber.org/automaxprocs/maxprocs"

	latex2web "github.com/alnah/go-latex2web"
	"github.com/alnah/go-latex2web/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 1
)

func main() {
	os.Exit(realMain(os.Args))
}

func realMain(args []string) int {
	flags, inputPath, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}
	if flags.version {
		fmt.Println("latex2web " + Version)
		return exitSuccess
	}

	logging.Setup(os.Stderr, flags.quiet, flags.verbose)

	// Error ignored: maxprocs.Set only fails if the GOMAXPROCS env is
	// invalid, in which case Go runtime defaults apply and the program
	// continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, v ...interface{}) {
		log.Debug().Msgf(format, v...)
	}))

	cfg := DefaultConfig()
	if flags.config != "" {
		cfg, err = LoadConfig(flags.config)
		if err != nil {
			log.Error().Err(err).Msg("loading config")
			return exitError
		}
	}
	cfg.mergeFlags(flags)

	var opts []latex2web.Option
	if cfg.Theme != "" {
		opts = append(opts, latex2web.WithTheme(cfg.Theme))
	}
	if cfg.ThemeDir != "" {
		opts = append(opts, latex2web.WithThemeDir(cfg.ThemeDir))
	}
	if cfg.Highlight != "" {
		opts = append(opts, latex2web.WithHighlight(cfg.Highlight))
	}

	conv, err := latex2web.NewConverter(opts...)
	if err != nil {
		log.Error().Err(err).Msg("configuring converter")
		return exitError
	}

	outputPath := resolveOutputPath(flags.output, cfg.OutputDir, inputPath)
	if err := run(context.Background(), conv, inputPath, outputPath, flags.keepXML); err != nil {
		log.Error().Err(err).Msg("conversion failed")
		return exitError
	}
	return exitSuccess
}
