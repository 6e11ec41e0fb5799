package pdfbookmark

import (
	"fmt"
	"strconv"
	"strings"
)

// Outline text notation constants.
const (
	directivePrefix    = "!!!"
	outlineHeader      = "!!! # Generated bmk file\n"
	minimumDots        = 4
	exportDots         = "................"
	DefaultLevelIndent = 2
)

// Outline directive keys.
const (
	keyNewIndex      = "new_index"
	keyNumStart      = "num_start"
	keyNumStyle      = "num_style"
	keyCollapseLevel = "collapse_level"
	keyLevelIndent   = "level_indent"
)

// ExportOutline renders the set in the editable outline notation.
// Page-label directives are emitted whenever the covering region changes and
// collapse_level directives whenever ImportOutline would otherwise derive a
// different collapse flag.
func ExportOutline(set *BookmarkSet) (string, error) {
	var b strings.Builder
	b.WriteString(outlineHeader)

	current := -1
	collapseLevel := 0

	for _, bm := range set.Bookmarks {
		idx := set.LabelFor(bm.Page)
		if idx != current {
			label := PageLabel{NewIndex: 1, NumStart: 1, NumStyle: Arabic}
			if idx >= 0 {
				label = set.PageLabels[idx]
			}
			writeLabelDirectives(&b, label)
			current = idx
		}

		page := strconv.Itoa(bm.Page)
		if idx >= 0 {
			label := set.PageLabels[idx]
			var err error
			page, err = label.NumStyle.Format(label.DisplayPage(bm.Page))
			if err != nil {
				return "", fmt.Errorf("bookmark %q: %w", bm.Title, err)
			}
		}

		if bm.Collapse != IsCollapsed(bm.Level, collapseLevel) {
			collapseLevel = 0
			if bm.Collapse {
				collapseLevel = bm.Level
			}
			fmt.Fprintf(&b, "%s %s = %d\n", directivePrefix, keyCollapseLevel, collapseLevel)
		}

		title := bm.Title
		if strings.HasSuffix(title, ".") {
			// Trailing dots would merge into the fill; import trims the space.
			title += " "
		}
		fmt.Fprintf(&b, "%s%s%s%s\n", strings.Repeat(" ", DefaultLevelIndent*(bm.Level-1)), title, exportDots, page)
	}

	return b.String(), nil
}

func writeLabelDirectives(b *strings.Builder, label PageLabel) {
	b.WriteByte('\n')
	fmt.Fprintf(b, "%s %s = %d\n", directivePrefix, keyNewIndex, label.NewIndex)
	fmt.Fprintf(b, "%s %s = %d\n", directivePrefix, keyNumStart, label.NumStart)
	fmt.Fprintf(b, "%s %s = %s\n", directivePrefix, keyNumStyle, label.NumStyle)
	b.WriteByte('\n')
}

// outlineState is the directive state while importing.
type outlineState struct {
	label         PageLabel
	labelSaved    bool
	collapseLevel int
	levelIndent   int
	prevLevel     int
}

// ImportOutline parses the editable outline notation. collapseLevel is the
// initial collapse threshold, overridable by collapse_level directives.
func ImportOutline(text string, collapseLevel int) (*BookmarkSet, error) {
	set := &BookmarkSet{}
	st := &outlineState{
		label:         PageLabel{NewIndex: 1, NumStart: 1, NumStyle: Arabic},
		collapseLevel: collapseLevel,
		levelIndent:   DefaultLevelIndent,
	}

	for i, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		lineNo := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(line, directivePrefix) {
			if err := st.applyDirective(lineNo, line[len(directivePrefix):]); err != nil {
				return nil, err
			}
			continue
		}

		if !st.labelSaved {
			set.PageLabels = append(set.PageLabels, st.label)
			st.labelSaved = true
		}

		bm, err := st.parseBookmark(lineNo, line)
		if err != nil {
			return nil, err
		}
		set.Bookmarks = append(set.Bookmarks, bm)
	}

	return set, nil
}

func (st *outlineState) applyDirective(lineNo int, body string) error {
	if strings.HasPrefix(strings.TrimSpace(body), "#") {
		return nil
	}

	key, value, ok := strings.Cut(body, "=")
	if !ok {
		return syntaxError(lineNo, "directive %q must be \"key = value\"", directivePrefix+body)
	}
	key, value = strings.TrimSpace(key), strings.TrimSpace(value)

	switch key {
	case keyNewIndex:
		n, err := directiveInt(lineNo, key, value)
		if err != nil {
			return err
		}
		st.label = PageLabel{NewIndex: n, NumStart: 1, NumStyle: Arabic}
		st.labelSaved = false
	case keyNumStart:
		n, err := directiveInt(lineNo, key, value)
		if err != nil {
			return err
		}
		st.label.NumStart = n
	case keyNumStyle:
		style, err := ParseNumStyle(value)
		if err != nil {
			return syntaxError(lineNo, "%s: %v", key, err)
		}
		st.label.NumStyle = style
	case keyCollapseLevel:
		n, err := directiveInt(lineNo, key, value)
		if err != nil {
			return err
		}
		if n < 0 {
			return syntaxError(lineNo, "%s must be >= 0, got %d", key, n)
		}
		st.collapseLevel = n
	case keyLevelIndent:
		n, err := directiveInt(lineNo, key, value)
		if err != nil {
			return err
		}
		if n < 1 {
			return syntaxError(lineNo, "%s must be >= 1, got %d", key, n)
		}
		st.levelIndent = n
	case "":
		return syntaxError(lineNo, "directive key is empty")
	}

	return nil
}

func directiveInt(lineNo int, key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, syntaxError(lineNo, "%s: %q is not an integer", key, value)
	}
	return n, nil
}

func (st *outlineState) parseBookmark(lineNo int, line string) (Bookmark, error) {
	spaces := len(line) - len(strings.TrimLeft(line, " "))
	if spaces%st.levelIndent != 0 {
		return Bookmark{}, syntaxError(lineNo, "indentation of %d spaces is not a multiple of %d", spaces, st.levelIndent)
	}
	level := spaces/st.levelIndent + 1
	if level > st.prevLevel+1 {
		return Bookmark{}, syntaxError(lineNo, "level %d cannot follow level %d", level, st.prevLevel)
	}

	title, token, err := splitTitlePage(line[spaces:])
	if err != nil {
		return Bookmark{}, syntaxError(lineNo, "%v", err)
	}

	display, err := st.label.NumStyle.Parse(token)
	if err != nil {
		return Bookmark{}, fmt.Errorf("%w: line %d: page number %q: %w", ErrInvalidBookmarkSyntax, lineNo, token, err)
	}
	page := st.label.AbsolutePage(display)
	if page < 0 {
		return Bookmark{}, syntaxError(lineNo, "page %q resolves to negative page %d", token, page)
	}

	st.prevLevel = level
	return Bookmark{
		Level:    level,
		Title:    title,
		Page:     page,
		Collapse: IsCollapsed(level, st.collapseLevel),
	}, nil
}

// splitTitlePage splits at the first run of at least minimumDots dots.
func splitTitlePage(s string) (title, page string, err error) {
	start := strings.Index(s, strings.Repeat(".", minimumDots))
	if start < 0 {
		return "", "", fmt.Errorf("at least %d \".\" must separate title and page", minimumDots)
	}
	rest := strings.TrimLeft(s[start:], ".")
	return strings.TrimSpace(s[:start]), strings.TrimSpace(rest), nil
}
