// Package catalog buckets normalized entries by canonical tag and by
// resolved collection path. Aggregation is a pure function of its inputs:
// the same entries and paths always produce the same buckets in the same
// order.
package catalog

import (
	"sort"
	"strings"

	"github.com/MunoMono/reference-library/internal/domain"
	"github.com/MunoMono/reference-library/internal/taxonomy"
)

// UntaggedLabel names the reserved bucket for entries without tag segments.
// It is kept apart from the tag buckets so a freeform tag with the same text
// can never merge into it.
const UntaggedLabel = "(Untagged)"

// Result is one full aggregation pass over the library snapshot.
type Result struct {
	Entries           []domain.BibEntry `json:"entries"`
	TagBuckets        []domain.Bucket   `json:"tag_buckets"`
	CollectionBuckets []domain.Bucket   `json:"collection_buckets"`
	Untagged          domain.Bucket     `json:"untagged"`
}

// Build aggregates entries into tag buckets and collection buckets.
// pathsByKey is the resolved collection forest; it may be empty, in which
// case no collection buckets are produced.
func Build(entries []domain.BibEntry, pathsByKey map[string]string) Result {
	res := Result{
		Entries:  entries,
		Untagged: domain.Bucket{Label: UntaggedLabel},
	}

	byTag := map[string]*domain.Bucket{}
	var tagOrder []string
	for _, e := range entries {
		tags := taxonomy.CanonicalizeField(e.Tags)
		if len(tags) == 0 {
			res.Untagged.Entries = append(res.Untagged.Entries, e)
			continue
		}
		for _, tag := range tags {
			b, ok := byTag[tag.Key]
			if !ok {
				b = &domain.Bucket{Label: tag.Label}
				byTag[tag.Key] = b
				tagOrder = append(tagOrder, tag.Key)
			}
			b.Entries = append(b.Entries, e)
		}
	}

	for _, key := range tagOrder {
		res.TagBuckets = append(res.TagBuckets, *byTag[key])
	}
	sort.SliceStable(res.TagBuckets, func(i, j int) bool {
		return strings.ToLower(res.TagBuckets[i].Label) < strings.ToLower(res.TagBuckets[j].Label)
	})

	res.CollectionBuckets = collectionBuckets(entries, pathsByKey)

	finish := func(b *domain.Bucket) {
		SortEntries(b.Entries)
		b.Count = len(b.Entries)
	}
	for i := range res.TagBuckets {
		finish(&res.TagBuckets[i])
	}
	for i := range res.CollectionBuckets {
		finish(&res.CollectionBuckets[i])
	}
	finish(&res.Untagged)
	return res
}

// collectionBuckets matches each entry's collection segments against the
// resolved breadcrumb paths, case-insensitively. Full paths match first;
// a bare leaf name also matches as a convenience for hand-edited exports.
func collectionBuckets(entries []domain.BibEntry, pathsByKey map[string]string) []domain.Bucket {
	paths := uniquePaths(pathsByKey)
	if len(paths) == 0 {
		return nil
	}

	leafOf := func(path string) string {
		if i := strings.LastIndex(path, pathSeparator); i >= 0 {
			return path[i+len(pathSeparator):]
		}
		return path
	}

	var buckets []domain.Bucket
	for _, path := range paths {
		var b domain.Bucket
		b.Label = path
		for _, e := range entries {
			for _, seg := range splitCollections(e.Collections) {
				if strings.EqualFold(seg, path) || strings.EqualFold(seg, leafOf(path)) {
					b.Entries = append(b.Entries, e)
					break
				}
			}
		}
		if len(b.Entries) > 0 {
			buckets = append(buckets, b)
		}
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return lessNumericAware(buckets[i].Label, buckets[j].Label)
	})
	return buckets
}

// pathSeparator must match collections.PathSeparator.
const pathSeparator = " ▸ "

func uniquePaths(byKey map[string]string) []string {
	seen := make(map[string]bool, len(byKey))
	var out []string
	for _, p := range byKey {
		if p != "" && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

func splitCollections(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	var out []string
	for _, seg := range strings.FieldsFunc(field, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	}) {
		if seg = strings.TrimSpace(seg); seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// SplitPaperTypes divides tag buckets into the fixed paper-type taxonomy
// (singles and family members) and everything else.
func SplitPaperTypes(buckets []domain.Bucket) (paperTypes, other []domain.Bucket) {
	for _, b := range buckets {
		if taxonomy.Canonicalize(b.Label).Kind != domain.Freeform {
			paperTypes = append(paperTypes, b)
		} else {
			other = append(other, b)
		}
	}
	return paperTypes, other
}
