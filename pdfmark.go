package pdfbookmark

import (
	"fmt"
	"strings"
)

// ExportPdfmark renders the bookmarks as Ghostscript pdfmark statements, one
// "/OUT pdfmark" per bookmark in outline order. A non-empty info adds a
// leading "/DOCINFO pdfmark" statement.
func ExportPdfmark(set *BookmarkSet, info *DocInfo) string {
	var b strings.Builder

	if !info.IsEmpty() {
		writeDocInfo(&b, info)
	}

	counts := ChildCounts(set.Bookmarks)
	for i, bm := range set.Bookmarks {
		b.WriteByte('[')
		if n := counts[i]; n > 0 {
			if bm.Collapse {
				n = -n
			}
			fmt.Fprintf(&b, "/Count %d ", n)
		}
		fmt.Fprintf(&b, "/Title %s /Page %d /OUT pdfmark\n", EncodeMarkString(bm.Title), bm.Page)
	}

	return b.String()
}

func writeDocInfo(b *strings.Builder, info *DocInfo) {
	var attrs []string
	if info.Title != "" {
		attrs = append(attrs, "/Title "+EncodeMarkString(info.Title))
	}
	if info.Author != "" {
		attrs = append(attrs, "/Author "+EncodeMarkString(info.Author))
	}
	if len(info.Keywords) > 0 {
		attrs = append(attrs, "/Keywords "+EncodeMarkString(strings.Join(info.Keywords, ", ")))
	}
	attrs = append(attrs, "/DOCINFO pdfmark")

	b.WriteString("[ ")
	b.WriteString(strings.Join(attrs, "\n  "))
	b.WriteByte('\n')
}
