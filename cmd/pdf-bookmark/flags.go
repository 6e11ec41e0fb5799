package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config      string
	timeout     string
	pdftk       string
	ghostscript string
	quiet       bool
	verbose     bool
}

// collapseFlag holds --collapse-level; set records whether it was given,
// since 0 is a meaningful value.
type collapseFlag struct {
	level int
	set   bool
}

// bookmarkFlags holds all flags for the bookmark command.
type bookmarkFlags struct {
	common    commonFlags
	format    string
	collapse  collapseFlag
	bookmark  string
	pdf       string
	outputPDF string
}

// mergeFlags holds all flags for the merge command.
type mergeFlags struct {
	common   commonFlags
	output   string
	title    string
	author   string
	keywords []string
	pdfmarks string
	collapse collapseFlag
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "external tool timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.pdftk, "pdftk", "", "pdftk executable name or path")
	fs.StringVar(&f.ghostscript, "gs", "", "Ghostscript executable name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show external tool invocations")
}

// addCollapseFlag adds --collapse-level to a FlagSet.
func addCollapseFlag(fs *flag.FlagSet, f *collapseFlag) {
	fs.IntVarP(&f.level, "collapse-level", "l", 0, "collapse bookmarks at this level and deeper (0 = expand all)")
}

// parseBookmarkFlags parses bookmark command flags and returns positional args.
func parseBookmarkFlags(args []string, usage io.Writer) (*bookmarkFlags, []string, error) {
	fs := flag.NewFlagSet("pdf-bookmark", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &bookmarkFlags{}

	fs.StringVarP(&f.format, "format", "f", "", "output format: bmk, none, pdftk, pdfmark, json, yaml")
	fs.StringVarP(&f.bookmark, "bookmark", "b", "", "bookmark file to import (- = stdin)")
	fs.StringVarP(&f.pdf, "pdf", "p", "", "PDF to dump bookmarks from, or to apply them to")
	fs.StringVarP(&f.outputPDF, "output-pdf", "o", "", "write a copy of --pdf with the bookmarks applied")
	addCollapseFlag(fs, &f.collapse)
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printBookmarkUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	f.collapse.set = fs.Changed("collapse-level")

	return f, fs.Args(), nil
}

// parseMergeFlags parses merge command flags and returns the input PDFs.
func parseMergeFlags(args []string, usage io.Writer) (*mergeFlags, []string, error) {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &mergeFlags{}

	fs.StringVarP(&f.output, "output", "o", defaultMergeOutput, "merged PDF path")
	fs.StringVar(&f.title, "title", "", "document title")
	fs.StringVar(&f.author, "author", "", "document author")
	fs.StringArrayVar(&f.keywords, "keyword", nil, "document keyword (repeatable)")
	fs.StringVar(&f.pdfmarks, "pdfmarks", "", "pdfmarks file: reused if it exists, else written and not applied")
	addCollapseFlag(fs, &f.collapse)
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printMergeUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	f.collapse.set = fs.Changed("collapse-level")

	return f, fs.Args(), nil
}

// usageError tags a pflag parse error; flag.ErrHelp passes through.
// pflag's own error printing is discarded in favor of runMain's report.
func usageError(err error) error {
	if err == flag.ErrHelp {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUsage, err)
}
