// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alnah/go-pdfbookmark/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// GOOS is the target platform used for install suggestions. Overridable in tests.
var GOOS = runtime.GOOS

// installCommands maps tool and platform to an install command.
var installCommands = map[string]map[string]string{
	"pdftk": {
		"darwin":  "brew install pdftk-java",
		"linux":   "apt install pdftk-java",
		"windows": "choco install pdftk-java",
	},
	"gs": {
		"darwin":  "brew install ghostscript",
		"linux":   "apt install ghostscript",
		"windows": "choco install ghostscript",
	},
}

// ForToolNotFound returns hints for a missing external executable.
// tool is the configured name or path; the basename selects the suggestion.
func ForToolNotFound(tool, envVar string) string {
	var hints []string

	base := strings.TrimSuffix(tool[strings.LastIndexAny(tool, `/\`)+1:], ".exe")
	if base == "gswin64c" || base == "gswin32c" {
		base = "gs"
	}
	if cmd := installCommands[base][GOOS]; cmd != "" && !IsInContainer() {
		hints = append(hints, "install with '"+cmd+"'")
	} else if IsInContainer() {
		hints = append(hints, "add the package providing "+base+" to the container image")
	}

	if envVar != "" && os.Getenv(envVar) == "" {
		hints = append(hints, "set "+envVar+" to the executable path")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-pdfbookmark/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForSyntax returns a hint for outline parse errors.
func ForSyntax() string {
	return format("bookmark lines read \"<indent>title....page\"; directives read \"!!! key = value\"")
}

// ForOutputDirectory returns hints for output file creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
