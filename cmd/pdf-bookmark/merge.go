package main

import (
	"context"
	"fmt"
	"os"

	pdfbookmark "github.com/alnah/go-pdfbookmark"
	"github.com/alnah/go-pdfbookmark/internal/config"
	"github.com/alnah/go-pdfbookmark/internal/fileutil"
	"github.com/alnah/go-pdfbookmark/internal/hints"
)

// defaultMergeOutput is the merge command's output when --output is absent.
const defaultMergeOutput = "output.pdf"

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// runMerge concatenates the input PDFs into one, carrying over every input's
// bookmarks and page labels shifted to its position in the result.
//
// With --pdfmarks naming an existing file, that file is used as-is. With
// --pdfmarks naming a missing file, the generated marks are written there
// for editing and nothing is rendered.
func runMerge(ctx context.Context, args []string, env *Environment) error {
	flags, inputs, err := parseMergeFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("%w: merge requires at least one input PDF", ErrUsage)
	}
	if flags.output == "" {
		return fmt.Errorf("%w: --output must not be empty", ErrUsage)
	}

	s, err := loadSettings(flags.common, env, func(cfg *config.Config) {
		mergeMergeFlags(flags, cfg)
	})
	if err != nil {
		return err
	}
	logger := newLogger(env.Stderr, flags.common)
	svc := newService(s, logger, env.Runner)

	if flags.pdfmarks != "" && fileutil.FileExists(flags.pdfmarks) {
		marks, err := os.ReadFile(flags.pdfmarks) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		logger.Info("using existing pdfmarks file", "path", flags.pdfmarks)
		if err := svc.Render(ctx, string(marks), flags.output, inputs...); err != nil {
			return withToolHints(err, s.cfg.Tools.Ghostscript, envGhostscript)
		}
		logger.Info("merged", "inputs", len(inputs), "output", flags.output)
		return nil
	}

	set, err := svc.MergeSets(ctx, inputs...)
	if err != nil {
		return withToolHints(err, s.cfg.Tools.Pdftk, envPdftk)
	}
	set.ApplyCollapseLevel(s.cfg.Outline.CollapseLevel)

	info := &pdfbookmark.DocInfo{
		Title:    s.cfg.DocInfo.Title,
		Author:   s.cfg.DocInfo.Author,
		Keywords: s.cfg.DocInfo.Keywords,
	}

	if flags.pdfmarks != "" {
		marks := pdfbookmark.ExportPdfmark(set, info)
		// #nosec G306 -- pdfmarks files are meant to be edited
		if err := os.WriteFile(flags.pdfmarks, []byte(marks), filePermissions); err != nil {
			return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		}
		logger.Info("pdfmarks written; edit it and rerun to merge", "path", flags.pdfmarks)
		return nil
	}

	if err := svc.Apply(ctx, set, info, flags.output, inputs...); err != nil {
		return withToolHints(err, s.cfg.Tools.Ghostscript, envGhostscript)
	}
	logger.Info("merged", "inputs", len(inputs), "output", flags.output, "bookmarks", len(set.Bookmarks))
	return nil
}

// mergeMergeFlags merges CLI flags into config. CLI flags take precedence.
func mergeMergeFlags(flags *mergeFlags, cfg *config.Config) {
	if flags.title != "" {
		cfg.DocInfo.Title = flags.title
	}
	if flags.author != "" {
		cfg.DocInfo.Author = flags.author
	}
	if len(flags.keywords) > 0 {
		cfg.DocInfo.Keywords = flags.keywords
	}
	if flags.collapse.set {
		cfg.Outline.CollapseLevel = flags.collapse.level
	}
}
