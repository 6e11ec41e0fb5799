package pdfbookmark_test

import (
	"fmt"

	pdfbookmark "github.com/alnah/go-pdfbookmark"
)

// Example converts an edited outline into Ghostscript pdfmark statements.
// Applying them to a PDF requires gs (see Service.Apply).
func Example() {
	outline := `!!! num_style = Roman
Preface....i
!!! new_index = 3
!!! num_style = Arabic
Chapter 1....1
  Section 1.1....2
`
	set, err := pdfbookmark.ImportOutline(outline, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(pdfbookmark.ExportPdfmark(set, &pdfbookmark.DocInfo{Title: "My Book"}))
	// Output:
	// [ /Title (My Book)
	//   /DOCINFO pdfmark
	// [/Title (Preface) /Page 1 /OUT pdfmark
	// [/Count 1 /Title (Chapter 1) /Page 3 /OUT pdfmark
	// [/Title (Section 1.1) /Page 4 /OUT pdfmark
}

// Example_merge shows the page offsets applied when concatenating documents.
func Example_merge() {
	front := &pdfbookmark.BookmarkSet{
		Bookmarks: []pdfbookmark.Bookmark{{Level: 1, Title: "Contents", Page: 1}},
		Pages:     2,
	}
	body := &pdfbookmark.BookmarkSet{
		Bookmarks: []pdfbookmark.Bookmark{{Level: 1, Title: "Chapter 1", Page: 1}},
		Pages:     10,
	}

	merged, err := pdfbookmark.Merge(front, body)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, bm := range merged.Bookmarks {
		fmt.Println(bm.Title, bm.Page)
	}
	fmt.Println("pages:", merged.Pages)
	// Output:
	// Contents 1
	// Chapter 1 3
	// pages: 12
}

// ExampleEncodeMarkString shows the two string encodings of the marking language.
func ExampleEncodeMarkString() {
	fmt.Println(pdfbookmark.EncodeMarkString("Notes (draft)"))
	fmt.Println(pdfbookmark.EncodeMarkString("αβγ"))
	// Output:
	// (Notes \(draft\))
	// <FEFF03B103B203B3>
}
