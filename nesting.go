package pdfbookmark

// ChildCount returns the number of direct children of bookmarks[i]: entries
// one level deeper that appear before the next entry at the same or a
// shallower level.
func ChildCount(bookmarks []Bookmark, i int) int {
	level := bookmarks[i].Level
	count := 0
	for _, bm := range bookmarks[i+1:] {
		if bm.Level <= level {
			break
		}
		if bm.Level == level+1 {
			count++
		}
	}
	return count
}

// ChildCounts returns ChildCount for every bookmark in one pass per entry.
func ChildCounts(bookmarks []Bookmark) []int {
	counts := make([]int, len(bookmarks))
	for i := range bookmarks {
		counts[i] = ChildCount(bookmarks, i)
	}
	return counts
}

// IsCollapsed reports whether a bookmark at level is collapsed under the
// collapse threshold. A threshold of 0 collapses nothing.
func IsCollapsed(level, collapseLevel int) bool {
	return collapseLevel != 0 && level >= collapseLevel
}

// ApplyCollapseLevel sets the Collapse flag of every bookmark from the
// threshold, overwriting previous flags.
func (s *BookmarkSet) ApplyCollapseLevel(collapseLevel int) {
	for i := range s.Bookmarks {
		s.Bookmarks[i].Collapse = IsCollapsed(s.Bookmarks[i].Level, collapseLevel)
	}
}
