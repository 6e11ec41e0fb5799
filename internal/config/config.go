package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	pdfbookmark "github.com/alnah/go-pdfbookmark"
	"github.com/alnah/go-pdfbookmark/internal/fileutil"
	"github.com/alnah/go-pdfbookmark/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxToolPathLength = 4096 // PATH_MAX on Linux
	MaxTitleLength    = 500  // Document title
	MaxAuthorLength   = 200  // Author name(s)
	MaxKeywordLength  = 100  // Single keyword
	MaxKeywords       = 50   // Keyword count
	MaxDurationLength = 20   // "1m30s"
)

// DefaultFormat is the bookmark command's output format.
const DefaultFormat = "bmk"

// Formats lists the bookmark output formats, in help order.
var Formats = []string{"bmk", "none", "pdftk", "pdfmark", "json", "yaml"}

// configDirName is the directory under the user config dir searched by name.
const configDirName = "go-pdfbookmark"

// Config holds all configuration for bookmark conversion.
type Config struct {
	Tools   ToolsConfig   `yaml:"tools"`
	Timeout string        `yaml:"timeout"` // Go duration, empty = no timeout
	Outline OutlineConfig `yaml:"outline"`
	DocInfo DocInfoConfig `yaml:"docinfo"`
}

// ToolsConfig names the external executables.
type ToolsConfig struct {
	Pdftk       string `yaml:"pdftk"` // dump_data collaborator
	Ghostscript string `yaml:"gs"`    // pdfwrite collaborator
}

// OutlineConfig holds bookmark conversion defaults.
type OutlineConfig struct {
	CollapseLevel int    `yaml:"collapseLevel"` // 0 = expand all
	Format        string `yaml:"format"`        // one of Formats
}

// DocInfoConfig holds document metadata stamped when merging.
type DocInfoConfig struct {
	Title    string   `yaml:"title"`
	Author   string   `yaml:"author"`
	Keywords []string `yaml:"keywords"`
}

// TimeoutDuration parses Timeout; empty means no timeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout %q: %v", ErrInvalidField, c.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidField, c.Timeout)
	}
	return d, nil
}

// Validate checks field lengths and enumerations.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("tools.pdftk", c.Tools.Pdftk, MaxToolPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("tools.gs", c.Tools.Ghostscript, MaxToolPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("timeout", c.Timeout, MaxDurationLength); err != nil {
		return err
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	if c.Outline.CollapseLevel < 0 {
		return fmt.Errorf("%w: outline.collapseLevel must be >= 0, got %d", ErrInvalidField, c.Outline.CollapseLevel)
	}
	if c.Outline.Format != "" && !slices.Contains(Formats, c.Outline.Format) {
		return fmt.Errorf("%w: outline.format %q (must be one of %s)", ErrInvalidField, c.Outline.Format, strings.Join(Formats, ", "))
	}

	if err := validateFieldLength("docinfo.title", c.DocInfo.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("docinfo.author", c.DocInfo.Author, MaxAuthorLength); err != nil {
		return err
	}
	if len(c.DocInfo.Keywords) > MaxKeywords {
		return fmt.Errorf("%w: docinfo.keywords (%d entries, max %d)", ErrFieldTooLong, len(c.DocInfo.Keywords), MaxKeywords)
	}
	for i, kw := range c.DocInfo.Keywords {
		if err := validateFieldLength(fmt.Sprintf("docinfo.keywords[%d]", i), kw, MaxKeywordLength); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Tools:   ToolsConfig{Pdftk: pdfbookmark.DefaultPdftk, Ghostscript: pdfbookmark.DefaultGhostscript},
		Outline: OutlineConfig{Format: DefaultFormat},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// ./<name>.yaml, ./<name>.yml, then the same names under
// <user config dir>/go-pdfbookmark/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, path := range paths {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
