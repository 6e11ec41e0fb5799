package pdfbookmark

import "fmt"

// Merge concatenates the sets of documents rendered back to back. Each
// input's bookmark pages and page-label starts are shifted by the total page
// count of the inputs before it. Every input but the last must know its
// page count.
func Merge(sets ...*BookmarkSet) (*BookmarkSet, error) {
	merged := &BookmarkSet{}
	if len(sets) == 0 {
		return merged, nil
	}

	offset := 0
	for i, set := range sets {
		if set.Pages <= 0 && i < len(sets)-1 {
			return nil, fmt.Errorf("%w: input %d", ErrPageCountUnknown, i+1)
		}

		// An unlabelled input must not inherit the numbering of the previous one.
		if len(set.PageLabels) == 0 && len(merged.PageLabels) > 0 {
			merged.PageLabels = append(merged.PageLabels, PageLabel{NewIndex: offset + 1, NumStart: 1, NumStyle: Arabic})
		}

		for _, bm := range set.Bookmarks {
			bm.Page += offset
			merged.Bookmarks = append(merged.Bookmarks, bm)
		}
		for _, pl := range set.PageLabels {
			pl.NewIndex += offset
			merged.PageLabels = append(merged.PageLabels, pl)
		}
		offset += set.Pages
	}

	if sets[len(sets)-1].Pages > 0 {
		merged.Pages = offset
	}
	return merged, nil
}
