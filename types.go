package pdfbookmark

import (
	"fmt"
	"strings"
)

// NumStyle is the display numbering scheme of a page-label region.
type NumStyle int

// Numbering schemes.
const (
	Arabic NumStyle = iota
	Roman
	Letters
)

// String returns the name used by the outline text notation.
func (s NumStyle) String() string {
	switch s {
	case Arabic:
		return "Arabic"
	case Roman:
		return "Roman"
	case Letters:
		return "Letters"
	default:
		return fmt.Sprintf("NumStyle(%d)", int(s))
	}
}

// ParseNumStyle parses a numbering scheme name, case-insensitively.
// pdftk's verbose style names are accepted too.
func ParseNumStyle(name string) (NumStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "arabic", "decimalarabicnumerals":
		return Arabic, nil
	case "roman", "uppercaseromannumerals", "lowercaseromannumerals":
		return Roman, nil
	case "letters", "uppercaseletters", "lowercaseletters":
		return Letters, nil
	}
	return Arabic, fmt.Errorf("unknown numbering style %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s NumStyle) MarshalText() ([]byte, error) {
	switch s {
	case Arabic, Roman, Letters:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("unknown numbering style %d", int(s))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *NumStyle) UnmarshalText(text []byte) error {
	style, err := ParseNumStyle(string(text))
	if err != nil {
		return err
	}
	*s = style
	return nil
}

// Bookmark is one outline entry. Page is the absolute page index in the
// target document; Level 1 is the top of the outline.
type Bookmark struct {
	Level    int    `json:"level" yaml:"level"`
	Title    string `json:"title" yaml:"title"`
	Page     int    `json:"page" yaml:"page"`
	Collapse bool   `json:"collapse" yaml:"collapse"`
}

// PageLabel is a page-label region: from absolute page NewIndex onward,
// pages display as NumStart, NumStart+1, ... in NumStyle.
type PageLabel struct {
	NewIndex int      `json:"new_index" yaml:"new_index"`
	NumStart int      `json:"num_start" yaml:"num_start"`
	NumStyle NumStyle `json:"num_style" yaml:"num_style"`
}

// DisplayPage returns the displayed number of an absolute page inside the region.
func (pl PageLabel) DisplayPage(page int) int {
	return page - pl.NewIndex + pl.NumStart
}

// AbsolutePage is the inverse of DisplayPage.
func (pl PageLabel) AbsolutePage(display int) int {
	return display - pl.NumStart + pl.NewIndex
}

// BookmarkSet owns the bookmarks and page-label regions of one document.
// Bookmarks are in depth-first outline order; PageLabels ascend by NewIndex.
// Pages is the document page count, 0 when unknown.
type BookmarkSet struct {
	Bookmarks  []Bookmark  `json:"bookmark" yaml:"bookmark"`
	PageLabels []PageLabel `json:"page_label" yaml:"page_label"`
	Pages      int         `json:"pages,omitempty" yaml:"pages,omitempty"`
}

// DocInfo is the optional document metadata of the marking output.
type DocInfo struct {
	Title    string   `json:"title,omitempty" yaml:"title,omitempty"`
	Author   string   `json:"author,omitempty" yaml:"author,omitempty"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// IsEmpty reports whether no metadata is set.
func (d *DocInfo) IsEmpty() bool {
	return d == nil || (d.Title == "" && d.Author == "" && len(d.Keywords) == 0)
}

// Validate checks the outline structure: the first level is 1, levels never
// skip a nesting step, and pages are non-negative.
func (s *BookmarkSet) Validate() error {
	prev := 0
	for i, bm := range s.Bookmarks {
		if bm.Level < 1 || bm.Level > prev+1 {
			return fmt.Errorf("%w: bookmark %d (%q) has level %d after level %d",
				ErrInvalidBookmarkLevel, i, bm.Title, bm.Level, prev)
		}
		if bm.Page < 0 {
			return fmt.Errorf("%w: bookmark %d (%q) has negative page %d",
				ErrInvalidBookmarkLevel, i, bm.Title, bm.Page)
		}
		prev = bm.Level
	}
	return nil
}

// LabelFor returns the index of the region covering page, or -1 when no
// region starts at or before it.
func (s *BookmarkSet) LabelFor(page int) int {
	idx := -1
	for i, pl := range s.PageLabels {
		if page >= pl.NewIndex {
			idx = i
		}
	}
	return idx
}
