package main

import (
	"context"
	"errors"
	"os"

	pdfbookmark "github.com/alnah/go-pdfbookmark"
	"github.com/alnah/go-pdfbookmark/internal/config"
)

// Exit codes for the pdf-bookmark CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or outline syntax
	ExitIO      = 3 // File not found, permission denied
	ExitTool    = 4 // pdftk or Ghostscript missing, failing, or timed out
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// External tool errors (exit 4). Checked first: a missing executable
	// also matches os.ErrNotExist.
	if errors.Is(err, pdfbookmark.ErrToolNotFound) ||
		errors.Is(err, pdfbookmark.ErrExternalTool) ||
		errors.Is(err, pdfbookmark.ErrInvalidDumpValue) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitTool
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, pdfbookmark.ErrNoInput) {
		return ExitIO
	}

	// Usage/config/syntax errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, pdfbookmark.ErrInvalidBookmarkSyntax) ||
		errors.Is(err, pdfbookmark.ErrInvalidBookmarkLevel) ||
		errors.Is(err, pdfbookmark.ErrInvalidUnicodeMarkToken) ||
		errors.Is(err, pdfbookmark.ErrInvalidRomanNumeral) ||
		errors.Is(err, pdfbookmark.ErrRomanOutOfRange) ||
		errors.Is(err, pdfbookmark.ErrInvalidLettersNumeral) ||
		errors.Is(err, pdfbookmark.ErrLettersOutOfRange) {
		return ExitUsage
	}

	return ExitGeneral
}
