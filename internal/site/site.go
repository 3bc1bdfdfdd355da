// Package site renders the aggregated catalog as a single self-contained
// HTML page: tag index, one section per bucket, client-side search.
package site

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/MunoMono/reference-library/internal/catalog"
	"github.com/MunoMono/reference-library/internal/domain"
	"github.com/MunoMono/reference-library/internal/taxonomy"
)

//go:embed page.tmpl
var pageTmpl string

var tmpl = template.Must(template.New("page").Parse(pageTmpl))

// Page is the template payload for one generated catalog page.
type Page struct {
	Title    string
	Index    []IndexLink
	Sections []Section
	Charts   []string // chart SVG filenames, shown when present
}

// IndexLink is one entry of the tag index nav.
type IndexLink struct {
	Anchor string
	Label  string
}

// Section is one bucket rendered as a heading plus its entry list.
type Section struct {
	Anchor  string
	Heading string
	Entries []EntryView
}

// EntryView is one entry prepared for markup.
type EntryView struct {
	Key        string
	Title      string
	Authors    string
	Year       string
	Venue      string
	Type       string
	DOI        string
	URL        string
	Tags       []string
	SearchText string // lowercase haystack for the client-side filter
}

// Render produces the catalog page for one aggregation result.
func Render(res catalog.Result, charts []string) ([]byte, error) {
	page := Page{Title: "Reference library", Charts: charts}

	for _, b := range res.TagBuckets {
		page.Index = append(page.Index, IndexLink{Anchor: anchorID(b.Label), Label: b.Label})
		page.Sections = append(page.Sections, section(b))
	}
	if res.Untagged.Count > 0 {
		page.Sections = append(page.Sections, section(res.Untagged))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

// Build renders the page and writes it to dir/index.html.
func Build(res catalog.Result, charts []string, dir string) (string, error) {
	out, err := Render(res, charts)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, out, 0644); err != nil {
		return "", fmt.Errorf("write page: %w", err)
	}
	return path, nil
}

func section(b domain.Bucket) Section {
	s := Section{Anchor: anchorID(b.Label), Heading: b.Label}
	for _, e := range b.Entries {
		s.Entries = append(s.Entries, entryView(e))
	}
	return s
}

func entryView(e domain.BibEntry) EntryView {
	v := EntryView{
		Key:     e.Key,
		Title:   e.Title,
		Authors: FormatAuthors(e.Author),
		Year:    e.Year,
		Venue:   e.Venue,
		Type:    e.Type,
		DOI:     e.DOI,
		URL:     e.URL,
	}
	for _, tag := range taxonomy.CanonicalizeField(e.Tags) {
		v.Tags = append(v.Tags, tag.Label)
	}
	v.SearchText = strings.ToLower(strings.Join([]string{
		v.Title, v.Authors, v.Venue, v.Year, strings.Join(v.Tags, " "),
	}, " "))
	return v
}

var andSplit = regexp.MustCompile(`\s+and\s+`)

// FormatAuthors compacts a BibTeX " and "-joined author string for display:
// one name as-is, two joined with "&", more as "First et al.".
func FormatAuthors(authors string) string {
	if strings.TrimSpace(authors) == "" {
		return ""
	}
	parts := andSplit.Split(authors, -1)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	switch len(parts) {
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " & " + parts[1]
	default:
		return parts[0] + " et al."
	}
}

var anchorUnsafe = regexp.MustCompile(`[^a-z0-9-]+`)

func anchorID(label string) string {
	id := strings.ToLower(label)
	id = strings.ReplaceAll(id, " ", "-")
	id = anchorUnsafe.ReplaceAllString(id, "-")
	return strings.Trim(id, "-")
}
