package bibtex

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/MunoMono/reference-library/internal/domain"
)

var (
	braces     = regexp.MustCompile(`[{}]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// CleanTeX strips the TeX markup reference managers leave in field values:
// \textbar escapes, escaped ampersands, grouping braces, runs of whitespace.
func CleanTeX(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, `{\textbar}`, "|")
	s = strings.ReplaceAll(s, `\textbar`, "|")
	s = strings.ReplaceAll(s, `\&`, "&")
	s = braces.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// normalizeRecord maps a raw record onto the uniform entry shape. Missing or
// malformed fields become empty strings; they never block the entry.
func normalizeRecord(rec record) domain.BibEntry {
	get := func(name string) string { return strings.TrimSpace(rec.fields[name]) }
	first := func(names ...string) string {
		for _, n := range names {
			if v := get(n); v != "" {
				return v
			}
		}
		return ""
	}

	key := rec.citeKey
	if key == "" {
		// Anchors and bucket membership need a stable per-run identity even
		// when the export omits the cite key.
		key = uuid.New().String()
	}

	return domain.BibEntry{
		Key:         key,
		Type:        capitalize(rec.entryType),
		Title:       CleanTeX(strings.Trim(get("title"), " {}")),
		Author:      CleanTeX(get("author")),
		Year:        get("year"),
		Venue:       CleanTeX(first("journal", "booktitle", "publisher")),
		DOI:         get("doi"),
		URL:         get("url"),
		Tags:        CleanTeX(first("keywords", "keyword")),
		Collections: first("collections", "groups"),
	}
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
