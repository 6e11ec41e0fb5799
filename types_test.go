package pdfbookmark

import (
	"encoding/json"
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseNumStyle - Scheme names
// ---------------------------------------------------------------------------

func TestParseNumStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    NumStyle
		wantErr bool
	}{
		{"Arabic", Arabic, false},
		{"roman", Roman, false},
		{" LETTERS ", Letters, false},
		{"DecimalArabicNumerals", Arabic, false},
		{"LowercaseRomanNumerals", Roman, false},
		{"UppercaseLetters", Letters, false},
		{"Greek", Arabic, true},
		{"", Arabic, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseNumStyle(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseNumStyle(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseNumStyle(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNumStyle_String(t *testing.T) {
	t.Parallel()

	if got := NumStyle(7).String(); got != "NumStyle(7)" {
		t.Errorf("NumStyle(7).String() = %q, want %q", got, "NumStyle(7)")
	}
	if _, err := NumStyle(7).MarshalText(); err == nil {
		t.Error("NumStyle(7).MarshalText() expected error, got nil")
	}
}

func TestNumStyle_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(PageLabel{NewIndex: 3, NumStart: 1, NumStyle: Roman})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"new_index":3,"num_start":1,"num_style":"Roman"}`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var pl PageLabel
	if err := json.Unmarshal([]byte(`{"new_index":1,"num_start":1,"num_style":"letters"}`), &pl); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if pl.NumStyle != Letters {
		t.Errorf("NumStyle = %v, want %v", pl.NumStyle, Letters)
	}
}

// ---------------------------------------------------------------------------
// TestPageLabel - Display/absolute page arithmetic
// ---------------------------------------------------------------------------

func TestPageLabel_DisplayPage(t *testing.T) {
	t.Parallel()

	pl := PageLabel{NewIndex: 5, NumStart: 1, NumStyle: Arabic}

	tests := []struct {
		page, display int
	}{
		{5, 1},
		{6, 2},
		{104, 100},
	}

	for _, tt := range tests {
		if got := pl.DisplayPage(tt.page); got != tt.display {
			t.Errorf("DisplayPage(%d) = %d, want %d", tt.page, got, tt.display)
		}
		if got := pl.AbsolutePage(tt.display); got != tt.page {
			t.Errorf("AbsolutePage(%d) = %d, want %d", tt.display, got, tt.page)
		}
	}
}

// ---------------------------------------------------------------------------
// TestBookmarkSet_LabelFor - Covering region lookup
// ---------------------------------------------------------------------------

func TestBookmarkSet_LabelFor(t *testing.T) {
	t.Parallel()

	set := &BookmarkSet{PageLabels: []PageLabel{
		{NewIndex: 3, NumStart: 1, NumStyle: Roman},
		{NewIndex: 10, NumStart: 1, NumStyle: Arabic},
	}}

	tests := []struct {
		page int
		want int
	}{
		{1, -1},
		{3, 0},
		{9, 0},
		{10, 1},
		{500, 1},
	}

	for _, tt := range tests {
		if got := set.LabelFor(tt.page); got != tt.want {
			t.Errorf("LabelFor(%d) = %d, want %d", tt.page, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestBookmarkSet_Validate - Level invariants
// ---------------------------------------------------------------------------

func TestBookmarkSet_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		levels  []int
		page    int
		wantErr bool
	}{
		{"empty", nil, 1, false},
		{"nested", []int{1, 2, 3, 3, 2, 1}, 1, false},
		{"starts at 2", []int{2}, 1, true},
		{"skips a level", []int{1, 3}, 1, true},
		{"zero level", []int{1, 0}, 1, true},
		{"negative page", []int{1}, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set := &BookmarkSet{}
			for _, level := range tt.levels {
				set.Bookmarks = append(set.Bookmarks, Bookmark{Level: level, Title: "x", Page: tt.page})
			}

			err := set.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidBookmarkLevel) {
				t.Errorf("Validate() error = %v, want %v", err, ErrInvalidBookmarkLevel)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDocInfo_IsEmpty
// ---------------------------------------------------------------------------

func TestDocInfo_IsEmpty(t *testing.T) {
	t.Parallel()

	var nilInfo *DocInfo
	if !nilInfo.IsEmpty() {
		t.Error("nil DocInfo should be empty")
	}
	if !(&DocInfo{}).IsEmpty() {
		t.Error("zero DocInfo should be empty")
	}
	if (&DocInfo{Keywords: []string{"fun"}}).IsEmpty() {
		t.Error("DocInfo with keywords should not be empty")
	}
}
