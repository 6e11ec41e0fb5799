package main

import (
	"encoding/json"
	"fmt"
	"io"

	pdfbookmark "github.com/alnah/go-pdfbookmark"
	"github.com/alnah/go-pdfbookmark/internal/yamlutil"
)

// Output formats of the bookmark command.
const (
	formatBmk     = "bmk"
	formatNone    = "none"
	formatPdftk   = "pdftk"
	formatPdfmark = "pdfmark"
	formatJSON    = "json"
	formatYAML    = "yaml"
)

// writeFormat prints set in format. raw is the pdftk dump the set came from,
// empty when it was imported from an outline file; the pdftk format echoes
// it verbatim.
func writeFormat(w io.Writer, format, raw string, set *pdfbookmark.BookmarkSet) error {
	var out []byte
	switch format {
	case formatNone:
		return nil
	case formatBmk:
		text, err := pdfbookmark.ExportOutline(set)
		if err != nil {
			return err
		}
		out = []byte(text)
	case formatPdftk:
		out = []byte(raw)
	case formatPdfmark:
		out = []byte(pdfbookmark.ExportPdfmark(set, nil))
	case formatJSON:
		data, err := json.MarshalIndent(withEmptyLists(set), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		out = append(data, '\n')
	case formatYAML:
		data, err := yamlutil.Marshal(withEmptyLists(set))
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		out = data
	default:
		return fmt.Errorf("%w: unknown format %q", ErrUsage, format)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// withEmptyLists returns a shallow copy whose nil slices are empty, so
// structured formats print [] instead of null.
func withEmptyLists(set *pdfbookmark.BookmarkSet) *pdfbookmark.BookmarkSet {
	out := *set
	if out.Bookmarks == nil {
		out.Bookmarks = []pdfbookmark.Bookmark{}
	}
	if out.PageLabels == nil {
		out.PageLabels = []pdfbookmark.PageLabel{}
	}
	return &out
}
