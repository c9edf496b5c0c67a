package trees

import (
	"slices"
	"strings"
)

// Entry is one immediate child of a listed directory
type Entry struct {
	Name  string
	IsDir bool
}

// SortEntries returns a sorted copy of entries: directories first, then
// files, each group ordered by case-insensitive name. The sort is stable,
// so names equal under case folding keep their listing order.
func SortEntries(entries []Entry) []Entry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, compareEntries)
	return sorted
}

func compareEntries(a, b Entry) int {
	if a.IsDir != b.IsDir {
		if a.IsDir {
			return -1
		}
		return 1
	}
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}
