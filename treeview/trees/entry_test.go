package trees

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestSortEntries(t *testing.T) {
	t.Run("directories before files", func(t *testing.T) {
		entries := []Entry{
			{Name: "a.txt"},
			{Name: "z", IsDir: true},
			{Name: "c.txt"},
			{Name: "b", IsDir: true},
		}

		sorted := SortEntries(entries)

		assert.Equal(t, []string{"b", "z", "a.txt", "c.txt"}, names(sorted))
	})

	t.Run("case-insensitive within each group", func(t *testing.T) {
		entries := []Entry{
			{Name: "beta", IsDir: true},
			{Name: "Alpha", IsDir: true},
			{Name: "readme.md"},
			{Name: "Makefile"},
			{Name: "LICENSE"},
		}

		sorted := SortEntries(entries)

		assert.Equal(t, []string{"Alpha", "beta", "LICENSE", "Makefile", "readme.md"}, names(sorted))
	})

	t.Run("case-folded ties keep listing order", func(t *testing.T) {
		entries := []Entry{{Name: "b"}, {Name: "B"}, {Name: "a"}}

		sorted := SortEntries(entries)

		assert.Equal(t, []string{"a", "b", "B"}, names(sorted))

		reversed := SortEntries([]Entry{{Name: "B"}, {Name: "b"}, {Name: "a"}})
		assert.Equal(t, []string{"a", "B", "b"}, names(reversed))
	})

	t.Run("single-rune lower-case mapping", func(t *testing.T) {
		// U+0130 lowers to a plain "i", so "İa" sorts before "ib"
		entries := []Entry{{Name: "ib"}, {Name: "\u0130a"}}

		sorted := SortEntries(entries)

		assert.Equal(t, []string{"\u0130a", "ib"}, names(sorted))
	})

	t.Run("input slice is not modified", func(t *testing.T) {
		entries := []Entry{{Name: "b.txt"}, {Name: "a", IsDir: true}}

		_ = SortEntries(entries)

		assert.Equal(t, []string{"b.txt", "a"}, names(entries))
	})

	t.Run("empty listing", func(t *testing.T) {
		assert.Empty(t, SortEntries(nil))
	})
}
