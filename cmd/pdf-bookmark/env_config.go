package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-pdfbookmark/internal/config"
)

// Environment variable names.
const (
	envConfigPath  = "PDFBOOKMARK_CONFIG"
	envPdftk       = "PDFBOOKMARK_PDFTK"
	envGhostscript = "PDFBOOKMARK_GS"
	envTimeout     = "PDFBOOKMARK_TIMEOUT"
	envPrefix      = "PDFBOOKMARK_"
)

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath  string        // PDFBOOKMARK_CONFIG: config file name or path
	Pdftk       string        // PDFBOOKMARK_PDFTK: pdftk executable
	Ghostscript string        // PDFBOOKMARK_GS: Ghostscript executable
	Timeout     time.Duration // PDFBOOKMARK_TIMEOUT: external tool timeout
}

// knownEnvVars lists valid PDFBOOKMARK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envConfigPath:  true,
	envPdftk:       true,
	envGhostscript: true,
	envTimeout:     true,
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable or non-positive timeout is ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:  os.Getenv(envConfigPath),
		Pdftk:       os.Getenv(envPdftk),
		Ghostscript: os.Getenv(envGhostscript),
	}

	if timeout := os.Getenv(envTimeout); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized PDFBOOKMARK_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Executable overrides replace config file values when set.
// Priority: CLI flags > env vars > config file > defaults
// (CLI flags are applied later by each command; timeout in resolveTimeout).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Pdftk != "" {
		cfg.Tools.Pdftk = env.Pdftk
	}
	if env.Ghostscript != "" {
		cfg.Tools.Ghostscript = env.Ghostscript
	}
}
