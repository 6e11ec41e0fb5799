package pdfbookmark

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-pdfbookmark/internal/fileutil"
)

// Default executables.
const (
	DefaultPdftk       = "pdftk"
	DefaultGhostscript = "gs"
)

// maxParallelDumps bounds concurrent pdftk processes during MergeSets.
const maxParallelDumps = 4

// Service runs the external collaborators: pdftk for dumps and Ghostscript
// for stamping pdfmark statements into PDFs.
type Service struct {
	cfg    serviceConfig
	runner CommandRunner
	log    *slog.Logger
}

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	pdftk   string
	gs      string
	timeout time.Duration // 0 = no timeout
}

// Option configures a Service.
type Option func(*Service)

// WithPdftk sets the pdftk executable name or path.
func WithPdftk(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.cfg.pdftk = name
		}
	}
}

// WithGhostscript sets the Ghostscript executable name or path.
func WithGhostscript(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.cfg.gs = name
		}
	}
}

// WithTimeout bounds every external tool invocation.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("pdfbookmark: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithRunner replaces the command runner (tests use a mock).
func WithRunner(r CommandRunner) Option {
	return func(s *Service) {
		s.runner = r
	}
}

// WithLogger sets the logger for tool invocations. Default discards.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		cfg:    serviceConfig{pdftk: DefaultPdftk, gs: DefaultGhostscript},
		runner: &ExecRunner{},
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Dump runs "pdftk <pdf> dump_data" and parses its output.
// The raw dump text is returned alongside the parsed set.
func (s *Service) Dump(ctx context.Context, pdf string) (string, *BookmarkSet, error) {
	if pdf == "" {
		return "", nil, ErrNoInput
	}

	raw, err := s.runTool(ctx, s.cfg.pdftk, pdf, "dump_data")
	if err != nil {
		return "", nil, err
	}

	set, err := ParseDump(raw)
	if err != nil {
		return "", nil, fmt.Errorf("parsing dump of %s: %w", pdf, err)
	}
	return raw, set, nil
}

// MergeSets dumps every input concurrently and merges the results in input
// order, as if the PDFs were concatenated.
func (s *Service) MergeSets(ctx context.Context, pdfs ...string) (*BookmarkSet, error) {
	if len(pdfs) == 0 {
		return nil, ErrNoInput
	}

	sets := make([]*BookmarkSet, len(pdfs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelDumps)
	for i, pdf := range pdfs {
		g.Go(func() error {
			_, set, err := s.Dump(gctx, pdf)
			if err != nil {
				return err
			}
			sets[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Merge(sets...)
}

// Apply stamps the set's bookmarks (and optional document info) into output,
// rendered from inputs concatenated in order.
func (s *Service) Apply(ctx context.Context, set *BookmarkSet, info *DocInfo, output string, inputs ...string) error {
	if err := set.Validate(); err != nil {
		return err
	}
	return s.Render(ctx, ExportPdfmark(set, info), output, inputs...)
}

// Render runs Ghostscript over inputs with the given pdfmark text. Outline
// entries already present in the inputs are suppressed; marks replaces them.
// Temporary shim and mark files are removed on every return path.
func (s *Service) Render(ctx context.Context, marks, output string, inputs ...string) error {
	if len(inputs) == 0 {
		return ErrNoInput
	}
	if output == "" {
		return fmt.Errorf("%w: output path is empty", ErrNoInput)
	}

	var files fileutil.TempFiles
	defer files.Cleanup()

	noop, err := files.Write(noopShim, noopPattern)
	if err != nil {
		return err
	}
	restore, err := files.Write(restoreShim, restorePattern)
	if err != nil {
		return err
	}
	markFile, err := files.Write(marks, marksPattern)
	if err != nil {
		return err
	}

	args := make([]string, 0, len(inputs)+7)
	args = append(args, "-dBATCH", "-dNOPAUSE", "-sDEVICE=pdfwrite", "-sOutputFile="+output, noop)
	args = append(args, inputs...)
	args = append(args, restore, markFile)

	_, err = s.runTool(ctx, s.cfg.gs, args...)
	return err
}

// runTool runs one external command and maps its failure to the package
// error kinds.
func (s *Service) runTool(ctx context.Context, tool string, args ...string) (string, error) {
	if s.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.timeout)
		defer cancel()
	}

	start := time.Now()
	stdout, stderr, err := s.runner.Run(ctx, tool, args...)
	elapsed := time.Since(start)

	if err == nil {
		s.log.Debug("external tool finished", "tool", tool, "args", len(args), "duration", elapsed)
		return stdout, nil
	}
	s.log.Warn("external tool failed", "tool", tool, "duration", elapsed, "error", err)

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrToolNotFound, tool)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("%s: %w", tool, ctxErr)
	}

	var exitErr interface{ ExitCode() int }
	if errors.As(err, &exitErr) {
		return "", &ToolError{Tool: tool, Args: args, ExitCode: exitErr.ExitCode(), Stderr: stderr}
	}
	return "", fmt.Errorf("running %s: %w", tool, err)
}
