package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	latex2web "github.com/alnah/go-latex2web"
	"github.com/alnah/go-latex2web/internal/fileutil"
)

// converter abstracts the library entry point for testing.
type converter interface {
	Convert(ctx context.Context, input latex2web.Input) (*latex2web.Result, error)
}

// resolveOutputPath picks the output file: the -o flag wins, then the config
// output directory with the derived file name, then the input path with its
// extension replaced by .html.
func resolveOutputPath(flagOutput, outputDir, inputPath string) string {
	if flagOutput != "" {
		return flagOutput
	}
	derived := fileutil.ReplaceExt(inputPath, "html")
	if outputDir != "" {
		return filepath.Join(outputDir, filepath.Base(derived))
	}
	return derived
}

// run converts one input file and writes the result.
func run(ctx context.Context, conv converter, inputPath, outputPath string, keepXML bool) error {
	log.Info().Str("input", inputPath).Msg("converting with latexml")

	result, err := conv.Convert(ctx, latex2web.Input{Path: inputPath})
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(result.HTML), 0o644); err != nil { // #nosec G306 -- rendered document, not a secret
		return fmt.Errorf("writing output file: %w", err)
	}
	log.Info().Str("output", outputPath).Msg("wrote document")

	if keepXML {
		xmlPath := fileutil.ReplaceExt(outputPath, "xml")
		if err := os.WriteFile(xmlPath, []byte(result.XML), 0o644); err != nil { // #nosec G306
			return fmt.Errorf("writing intermediate XML: %w", err)
		}
		log.Debug().Str("xml", xmlPath).Msg("kept intermediate XML")
	}

	return nil
}
