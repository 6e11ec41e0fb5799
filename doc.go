// Package pdfbookmark converts PDF bookmarks and page labels between three
// notations: the "pdftk dump_data" report, an editable plain-text outline,
// and Ghostscript pdfmark statements.
//
// # Quick Start
//
// Dump a PDF's bookmarks to the editable outline notation:
//
//	svc := pdfbookmark.New()
//	_, set, err := svc.Dump(ctx, "book.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	text, err := pdfbookmark.ExportOutline(set)
//
// Edit the text, then stamp it back:
//
//	set, err := pdfbookmark.ImportOutline(text, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = svc.Apply(ctx, set, nil, "out.pdf", "book.pdf")
//
// # Outline Notation
//
// One bookmark per line; two spaces of indentation per nesting level; at
// least four dots between title and displayed page number:
//
//	!!! # Generated bmk file
//
//	!!! new_index = 1
//	!!! num_start = 1
//	!!! num_style = Roman
//
//	Preface....................i
//
//	!!! new_index = 5
//	!!! num_start = 1
//	!!! num_style = Arabic
//
//	Chapter 1..................1
//	  Section 1.1..............3
//
// Lines starting with "!!!" are directives: new_index, num_start and
// num_style describe the page-label region of the following bookmarks;
// collapse_level marks bookmarks at or below that level as collapsed;
// level_indent changes the number of spaces per level.
//
// # External Tools
//
// Service shells out to pdftk and gs. Executables, timeout, logger and
// command runner are set with functional options:
//
//	svc := pdfbookmark.New(
//	    pdfbookmark.WithGhostscript("/opt/gs/bin/gs"),
//	    pdfbookmark.WithTimeout(2 * time.Minute),
//	)
//
// A non-zero exit is reported as *ToolError, which matches ErrExternalTool
// through errors.Is.
//
// # Merging
//
// MergeSets dumps several PDFs and shifts each input's bookmarks and page
// labels past the pages of the inputs before it; Apply then renders all
// inputs into one document:
//
//	set, err := svc.MergeSets(ctx, "a.pdf", "b.pdf")
//	err = svc.Apply(ctx, set, &pdfbookmark.DocInfo{Title: "Book"}, "out.pdf", "a.pdf", "b.pdf")
package pdfbookmark
