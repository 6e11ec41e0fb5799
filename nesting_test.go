package pdfbookmark

import (
	"reflect"
	"testing"
)

func bookmarksAt(levels ...int) []Bookmark {
	bms := make([]Bookmark, len(levels))
	for i, level := range levels {
		bms[i] = Bookmark{Level: level, Title: "b", Page: i + 1}
	}
	return bms
}

// ---------------------------------------------------------------------------
// TestChildCounts - Direct-child counting
// ---------------------------------------------------------------------------

func TestChildCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		levels []int
		want   []int
	}{
		{"empty", nil, []int{}},
		{"single", []int{1}, []int{0}},
		{"direct children only", []int{1, 2, 3, 3, 2}, []int{2, 2, 0, 0, 0}},
		{"siblings stop the scan", []int{1, 2, 1, 2, 2}, []int{1, 0, 2, 0, 0}},
		{"shallower entry stops the scan", []int{1, 2, 3, 1, 3}, []int{1, 1, 0, 0, 0}},
		{"flat", []int{1, 1, 1}, []int{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ChildCounts(bookmarksAt(tt.levels...))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ChildCounts(%v) = %v, want %v", tt.levels, got, tt.want)
			}
		})
	}
}

func TestChildCount_NestedExample(t *testing.T) {
	t.Parallel()

	bms := bookmarksAt(1, 2, 3, 3, 2)

	// Level-3 entries are grandchildren of the first entry and not counted.
	if got := ChildCount(bms, 0); got != 2 {
		t.Errorf("ChildCount(level 1) = %d, want 2", got)
	}
	if got := ChildCount(bms, 1); got != 2 {
		t.Errorf("ChildCount(level 2) = %d, want 2", got)
	}
}

// ---------------------------------------------------------------------------
// TestCollapse - Collapse threshold
// ---------------------------------------------------------------------------

func TestIsCollapsed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level, threshold int
		want             bool
	}{
		{1, 0, false},
		{5, 0, false},
		{1, 2, false},
		{2, 2, true},
		{3, 2, true},
		{1, 1, true},
	}

	for _, tt := range tests {
		if got := IsCollapsed(tt.level, tt.threshold); got != tt.want {
			t.Errorf("IsCollapsed(%d, %d) = %v, want %v", tt.level, tt.threshold, got, tt.want)
		}
	}
}

func TestBookmarkSet_ApplyCollapseLevel(t *testing.T) {
	t.Parallel()

	set := &BookmarkSet{Bookmarks: bookmarksAt(1, 2, 3, 2)}
	set.Bookmarks[0].Collapse = true

	set.ApplyCollapseLevel(2)
	want := []bool{false, true, true, true}
	for i, bm := range set.Bookmarks {
		if bm.Collapse != want[i] {
			t.Errorf("Bookmarks[%d].Collapse = %v, want %v", i, bm.Collapse, want[i])
		}
	}

	set.ApplyCollapseLevel(0)
	for i, bm := range set.Bookmarks {
		if bm.Collapse {
			t.Errorf("Bookmarks[%d].Collapse = true after ApplyCollapseLevel(0)", i)
		}
	}
}
