package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	pdfbookmark "github.com/alnah/go-pdfbookmark"
)

func sampleOutputSet() *pdfbookmark.BookmarkSet {
	return &pdfbookmark.BookmarkSet{
		Bookmarks: []pdfbookmark.Bookmark{
			{Level: 1, Title: "Chapter 1", Page: 3},
			{Level: 2, Title: "Section 1.1", Page: 4},
		},
		PageLabels: []pdfbookmark.PageLabel{{NewIndex: 3, NumStart: 1, NumStyle: pdfbookmark.Arabic}},
		Pages:      10,
	}
}

// ---------------------------------------------------------------------------
// TestWriteFormat - Output format selection
// ---------------------------------------------------------------------------

func TestWriteFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		raw    string
		want   []string
	}{
		{"bmk", formatBmk, "", []string{"!!! # Generated bmk file", "!!! new_index = 3", "Chapter 1................1", "  Section 1.1................2"}},
		{"pdfmark", formatPdfmark, "", []string{"[/Count 1 /Title (Chapter 1) /Page 3 /OUT pdfmark"}},
		{"pdftk echoes raw", formatPdftk, "NumberOfPages: 10\n", []string{"NumberOfPages: 10"}},
		{"yaml", formatYAML, "", []string{"bookmark:", "title: Chapter 1", "page_label:", "num_style: Arabic", "pages: 10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := writeFormat(&buf, tt.format, tt.raw, sampleOutputSet()); err != nil {
				t.Fatalf("writeFormat() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output should contain %q, got:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestWriteFormat_None(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeFormat(&buf, formatNone, "raw", sampleOutputSet()); err != nil {
		t.Fatalf("writeFormat() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestWriteFormat_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeFormat(&buf, formatJSON, "", sampleOutputSet()); err != nil {
		t.Fatalf("writeFormat() error = %v", err)
	}

	var got pdfbookmark.BookmarkSet
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got.Bookmarks) != 2 || got.PageLabels[0].NumStyle != pdfbookmark.Arabic || got.Pages != 10 {
		t.Errorf("decoded = %+v", got)
	}
}

func TestWriteFormat_EmptyListsNotNull(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeFormat(&buf, formatJSON, "", &pdfbookmark.BookmarkSet{}); err != nil {
		t.Fatalf("writeFormat() error = %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "null") {
		t.Errorf("output = %s, want empty lists instead of null", out)
	}
	if !strings.Contains(out, `"bookmark": []`) {
		t.Errorf("output = %s, want \"bookmark\": []", out)
	}
}

func TestWriteFormat_Errors(t *testing.T) {
	t.Parallel()

	if err := writeFormat(&bytes.Buffer{}, "xml", "", sampleOutputSet()); !errors.Is(err, ErrUsage) {
		t.Errorf("unknown format error = %v, want %v", err, ErrUsage)
	}

	if err := writeFormat(failingWriter{}, formatBmk, "", sampleOutputSet()); !errors.Is(err, ErrWriteOutput) {
		t.Errorf("write failure error = %v, want %v", err, ErrWriteOutput)
	}

	unrepresentable := &pdfbookmark.BookmarkSet{
		Bookmarks:  []pdfbookmark.Bookmark{{Level: 1, Title: "Huge", Page: 6000}},
		PageLabels: []pdfbookmark.PageLabel{{NewIndex: 1, NumStart: 1, NumStyle: pdfbookmark.Roman}},
	}
	if err := writeFormat(&bytes.Buffer{}, formatBmk, "", unrepresentable); !errors.Is(err, pdfbookmark.ErrRomanOutOfRange) {
		t.Errorf("unrepresentable page error = %v, want %v", err, pdfbookmark.ErrRomanOutOfRange)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }
