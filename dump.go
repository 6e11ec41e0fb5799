package pdfbookmark

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// recordKind identifies a record type of the pdftk dump_data output.
type recordKind int

const (
	kindBookmark recordKind = iota
	kindPageLabel
)

// Key prefixes of the tracked record kinds.
const (
	bookmarkPrefix  = "Bookmark"
	pageLabelPrefix = "PageLabel"
	pageCountKey    = "NumberOfPages"
)

var numericRefPattern = regexp.MustCompile(`&#([0-9]+);`)

// bookmarkRecord accumulates the fields of one BookmarkBegin block.
type bookmarkRecord struct {
	Title string
	Level int
	Page  int

	title, level, page bool
}

func (r *bookmarkRecord) complete() bool {
	return r.title && r.level && r.page
}

// pageLabelRecord accumulates the fields of one PageLabelBegin block.
type pageLabelRecord struct {
	NewIndex int
	Start    int
	Style    NumStyle

	newIndex, start, style bool
}

func (r *pageLabelRecord) complete() bool {
	return r.newIndex && r.start && r.style
}

// dumpParser is a streaming state machine holding one partial record per kind.
type dumpParser struct {
	set       *BookmarkSet
	bookmark  bookmarkRecord
	pageLabel pageLabelRecord
}

// ParseDump converts pdftk dump_data output into a BookmarkSet.
// Lines without a ": " separator and unknown keys are skipped, since the
// dump carries document metadata unrelated to bookmarks.
func ParseDump(data string) (*BookmarkSet, error) {
	p := &dumpParser{set: &BookmarkSet{}}

	for i, line := range strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n") {
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		if err := p.feed(key, value); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidDumpValue, i+1, err)
		}
	}

	return p.set, nil
}

func (p *dumpParser) feed(key, value string) error {
	switch {
	case key == pageCountKey:
		n, err := parseDumpInt(key, value)
		if err != nil {
			return err
		}
		p.set.Pages = n
		return nil
	case strings.HasPrefix(key, pageLabelPrefix):
		return p.feedField(kindPageLabel, strings.TrimPrefix(key, pageLabelPrefix), key, value)
	case strings.HasPrefix(key, bookmarkPrefix):
		return p.feedField(kindBookmark, strings.TrimPrefix(key, bookmarkPrefix), key, value)
	}
	return nil
}

func (p *dumpParser) feedField(kind recordKind, field, key, value string) error {
	var err error

	switch kind {
	case kindBookmark:
		r := &p.bookmark
		switch field {
		case "Title":
			r.Title, r.title = decodeNumericRefs(value), true
		case "Level":
			r.Level, err = parseDumpInt(key, value)
			r.level = err == nil
		case "PageNumber":
			r.Page, err = parseDumpInt(key, value)
			r.page = err == nil
		default:
			return nil
		}
		if err == nil && r.complete() {
			p.set.Bookmarks = append(p.set.Bookmarks, Bookmark{Level: r.Level, Title: r.Title, Page: r.Page})
			*r = bookmarkRecord{}
		}

	case kindPageLabel:
		r := &p.pageLabel
		switch field {
		case "NewIndex":
			r.NewIndex, err = parseDumpInt(key, value)
			r.newIndex = err == nil
		case "Start":
			r.Start, err = parseDumpInt(key, value)
			r.start = err == nil
		case "NumStyle":
			r.Style, r.style = dumpNumStyle(value), true
		default:
			return nil
		}
		if err == nil && r.complete() {
			p.set.PageLabels = append(p.set.PageLabels, PageLabel{NewIndex: r.NewIndex, NumStart: r.Start, NumStyle: r.Style})
			*r = pageLabelRecord{}
		}
	}

	return err
}

func parseDumpInt(key, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, value)
	}
	return n, nil
}

// dumpNumStyle maps pdftk style names; unknown styles fall back to Arabic.
func dumpNumStyle(name string) NumStyle {
	switch strings.TrimSpace(name) {
	case "UppercaseRomanNumerals", "LowercaseRomanNumerals":
		return Roman
	case "UppercaseLetters", "LowercaseLetters":
		return Letters
	default:
		return Arabic
	}
}

// decodeNumericRefs replaces &#NNN; references with their code points.
func decodeNumericRefs(s string) string {
	if !strings.Contains(s, "&#") {
		return s
	}
	return numericRefPattern.ReplaceAllStringFunc(s, func(ref string) string {
		n, err := strconv.Atoi(ref[2 : len(ref)-1])
		if err != nil || n > 0x10FFFF {
			return ref
		}
		return string(rune(n))
	})
}
