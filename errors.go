package pdfbookmark

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for library operations.
var (
	// Numeral codec errors.
	ErrInvalidRomanNumeral   = errors.New("invalid roman numeral")
	ErrRomanOutOfRange       = errors.New("roman numeral out of range")
	ErrInvalidLettersNumeral = errors.New("invalid letters numeral")
	ErrLettersOutOfRange     = errors.New("letters numeral out of range")

	// Outline text and structure errors.
	ErrInvalidBookmarkSyntax = errors.New("invalid bookmark syntax")
	ErrInvalidBookmarkLevel  = errors.New("invalid bookmark level")

	// Dump parsing errors.
	ErrInvalidDumpValue = errors.New("invalid dump value")

	// Marking language errors.
	ErrInvalidUnicodeMarkToken = errors.New("invalid unicode mark token")

	// External tool errors.
	ErrExternalTool     = errors.New("external tool failed")
	ErrToolNotFound     = errors.New("external tool not found")
	ErrNoInput          = errors.New("no input PDF specified")
	ErrPageCountUnknown = errors.New("page count unknown")
)

// ToolError reports a non-zero exit from pdftk or Ghostscript.
// It matches ErrExternalTool with errors.Is.
type ToolError struct {
	Tool     string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s: %s exited with code %d", ErrExternalTool, e.Tool, e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ":\n " + stderr
	}
	return msg
}

func (e *ToolError) Unwrap() error {
	return ErrExternalTool
}

// syntaxError wraps ErrInvalidBookmarkSyntax with the offending line number.
func syntaxError(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrInvalidBookmarkSyntax, line, fmt.Sprintf(format, args...))
}
