// Package fileutil provides temporary file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrPatternEmpty         = errors.New("temp file pattern cannot be empty")
	ErrPatternPathTraversal = errors.New("temp file pattern contains path separator or null byte")
)

// WriteTempFile creates a temporary file named after pattern (see
// os.CreateTemp) holding content. Returns the file path and a cleanup
// function to remove the file.
func WriteTempFile(content, pattern string) (path string, cleanup func(), err error) {
	if err := ValidatePattern(pattern); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// ValidatePattern checks that the pattern is safe for use in temp file names.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return ErrPatternEmpty
	}
	if strings.ContainsAny(pattern, "/\\\x00") {
		return ErrPatternPathTraversal
	}
	return nil
}

// TempFiles groups temporary files that share one lifetime.
// The zero value is ready to use; call Cleanup with defer.
type TempFiles struct {
	cleanups []func()
}

// Write creates one more temporary file and returns its path.
func (t *TempFiles) Write(content, pattern string) (string, error) {
	path, cleanup, err := WriteTempFile(content, pattern)
	if err != nil {
		return "", err
	}
	t.cleanups = append(t.cleanups, cleanup)
	return path, nil
}

// Len returns the number of files still tracked.
func (t *TempFiles) Len() int {
	return len(t.cleanups)
}

// Cleanup removes every file written so far. It is safe to call twice.
func (t *TempFiles) Cleanup() {
	for _, cleanup := range t.cleanups {
		cleanup()
	}
	t.cleanups = nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "work" -> false (config name)
//   - "./work.yaml" -> true (relative path)
//   - "/etc/pdf-bookmark.yaml" -> true (absolute)
//   - "C:\config\work.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
