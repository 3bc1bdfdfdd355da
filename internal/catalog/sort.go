package catalog

import (
	"sort"
	"strings"

	"github.com/MunoMono/reference-library/internal/domain"
)

// missingYearKey sorts entries without a year after every dated entry.
const missingYearKey = "9999"

// SortEntries orders entries by (author, year, title), case-insensitive,
// with missing years last. Stable, so equal keys keep input order.
func SortEntries(entries []domain.BibEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entryKey(entries[i]) < entryKey(entries[j])
	})
}

func entryKey(e domain.BibEntry) string {
	year := strings.TrimSpace(e.Year)
	if year == "" {
		year = missingYearKey
	}
	return strings.ToLower(e.Author) + "\x00" + year + "\x00" + strings.ToLower(e.Title)
}

// lessNumericAware orders bucket labels with a leading decimal number (for
// example "2 DDR archive") numerically first; labels without one sort after
// all numbered labels, alphabetically among themselves.
func lessNumericAware(a, b string) bool {
	na, aok := leadingInt(a)
	nb, bok := leadingInt(b)
	switch {
	case aok && bok:
		if na != nb {
			return na < nb
		}
		return strings.ToLower(a) < strings.ToLower(b)
	case aok:
		return true
	case bok:
		return false
	default:
		return strings.ToLower(a) < strings.ToLower(b)
	}
}

// leadingInt parses a decimal integer prefix followed by whitespace.
func leadingInt(s string) (int, bool) {
	i := 0
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i == 0 || i >= len(s) || (s[i] != ' ' && s[i] != '\t') {
		return 0, false
	}
	return n, true
}
