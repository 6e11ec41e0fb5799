package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	pdfbookmark "github.com/alnah/go-pdfbookmark"
	"github.com/alnah/go-pdfbookmark/internal/config"
	"github.com/alnah/go-pdfbookmark/internal/fileutil"
	"github.com/alnah/go-pdfbookmark/internal/hints"
)

// settings is the resolved configuration of one command run.
type settings struct {
	cfg     *config.Config
	timeout time.Duration
}

// loadSettings resolves configuration in priority order:
// CLI flags > env vars > config file > defaults.
// mergeFlags applies the command's own flags after env and common flags.
func loadSettings(common commonFlags, env *Environment, mergeFlags func(*config.Config)) (*settings, error) {
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	if common.pdftk != "" {
		cfg.Tools.Pdftk = common.pdftk
	}
	if common.ghostscript != "" {
		cfg.Tools.Ghostscript = common.ghostscript
	}
	if mergeFlags != nil {
		mergeFlags(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout, err := resolveTimeout(common.timeout, envCfg.Timeout, cfg)
	if err != nil {
		return nil, err
	}

	return &settings{cfg: cfg, timeout: timeout}, nil
}

// resolveTimeout picks the tool timeout: flag > env > config. Zero means none.
func resolveTimeout(flagValue string, envValue time.Duration, cfg *config.Config) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid --timeout %q: %v", ErrUsage, flagValue, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: --timeout must be positive, got %s", ErrUsage, flagValue)
		}
		return d, nil
	}
	if envValue > 0 {
		return envValue, nil
	}
	return cfg.TimeoutDuration()
}

// newLogger builds the stderr logger: --verbose shows debug records,
// --quiet only errors.
func newLogger(w io.Writer, common commonFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case common.verbose:
		level = slog.LevelDebug
	case common.quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newService builds the library service from resolved settings.
func newService(s *settings, logger *slog.Logger, runner pdfbookmark.CommandRunner) *pdfbookmark.Service {
	opts := []pdfbookmark.Option{
		pdfbookmark.WithPdftk(s.cfg.Tools.Pdftk),
		pdfbookmark.WithGhostscript(s.cfg.Tools.Ghostscript),
		pdfbookmark.WithLogger(logger),
	}
	if runner != nil {
		opts = append(opts, pdfbookmark.WithRunner(runner))
	}
	if s.timeout > 0 {
		opts = append(opts, pdfbookmark.WithTimeout(s.timeout))
	}
	return pdfbookmark.New(opts...)
}

// withToolHints appends actionable hints to external tool failures.
// tool is the executable that was invoked, envVar its override variable.
func withToolHints(err error, tool, envVar string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pdfbookmark.ErrToolNotFound):
		return fmt.Errorf("%w%s", err, hints.ForToolNotFound(tool, envVar))
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	default:
		return err
	}
}
