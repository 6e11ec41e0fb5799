package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	pdfbookmark "github.com/alnah/go-pdfbookmark"
	"github.com/alnah/go-pdfbookmark/internal/config"
	"github.com/alnah/go-pdfbookmark/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("usage error")
	ErrReadInput   = errors.New("failed to read input file")
	ErrWriteOutput = errors.New("failed to write output")
)

// stdinPath selects standard input for --bookmark.
const stdinPath = "-"

// runBookmark imports bookmarks from an outline file or a PDF dump, prints
// them in the selected format, and optionally applies them to a copy of the PDF.
func runBookmark(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBookmarkFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, positional[0])
	}
	if flags.bookmark == "" && flags.pdf == "" {
		return fmt.Errorf("%w: either --bookmark or --pdf is required", ErrUsage)
	}
	if flags.outputPDF != "" && flags.pdf == "" {
		return fmt.Errorf("%w: --output-pdf requires --pdf", ErrUsage)
	}

	s, err := loadSettings(flags.common, env, func(cfg *config.Config) {
		mergeBookmarkFlags(flags, cfg)
	})
	if err != nil {
		return err
	}
	logger := newLogger(env.Stderr, flags.common)
	svc := newService(s, logger, env.Runner)

	var raw string
	var set *pdfbookmark.BookmarkSet
	if flags.bookmark != "" {
		set, err = importBookmarkFile(flags.bookmark, s.cfg.Outline.CollapseLevel, env.Stdin)
		if err != nil {
			return err
		}
	} else {
		raw, set, err = svc.Dump(ctx, flags.pdf)
		if err != nil {
			return withToolHints(err, s.cfg.Tools.Pdftk, envPdftk)
		}
		set.ApplyCollapseLevel(s.cfg.Outline.CollapseLevel)
	}
	logger.Debug("bookmarks loaded", "bookmarks", len(set.Bookmarks), "page_labels", len(set.PageLabels))

	if err := writeFormat(env.Stdout, s.cfg.Outline.Format, raw, set); err != nil {
		return err
	}

	if flags.outputPDF == "" {
		return nil
	}
	if err := svc.Apply(ctx, set, nil, flags.outputPDF, flags.pdf); err != nil {
		return withToolHints(err, s.cfg.Tools.Ghostscript, envGhostscript)
	}
	logger.Info("bookmarks applied", "output", flags.outputPDF, "bookmarks", len(set.Bookmarks))
	return nil
}

// mergeBookmarkFlags merges CLI flags into config. CLI flags take precedence.
func mergeBookmarkFlags(flags *bookmarkFlags, cfg *config.Config) {
	if flags.format != "" {
		cfg.Outline.Format = flags.format
	}
	if flags.collapse.set {
		cfg.Outline.CollapseLevel = flags.collapse.level
	}
}

// importBookmarkFile reads and parses an outline file; "-" reads stdin.
func importBookmarkFile(path string, collapseLevel int, stdin io.Reader) (*pdfbookmark.BookmarkSet, error) {
	var data []byte
	var err error
	if path == stdinPath {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) // #nosec G304 -- user-provided path
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	set, err := pdfbookmark.ImportOutline(string(data), collapseLevel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w%s", path, err, hints.ForSyntax())
	}
	return set, nil
}
