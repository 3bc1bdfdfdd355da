package domain

// BibEntry is one normalized bibliographic record. Built once from the
// library export and never mutated afterwards.
type BibEntry struct {
	Key         string `json:"key"`
	Type        string `json:"type,omitempty"`
	Title       string `json:"title,omitempty"`
	Author      string `json:"author,omitempty"`
	Year        string `json:"year,omitempty"`
	Venue       string `json:"venue,omitempty"`
	DOI         string `json:"doi,omitempty"`
	URL         string `json:"url,omitempty"`
	Tags        string `json:"tags,omitempty"`        // raw keyword field, comma/semicolon separated
	Collections string `json:"collections,omitempty"` // raw collection field, comma/semicolon/newline separated
}

// TagKind says where a canonical tag identity came from.
type TagKind int

const (
	// Single is a standalone tag from the fixed taxonomy.
	Single TagKind = iota
	// FamilyMember is an enumerated member of a prefix-delimited family.
	FamilyMember
	// Freeform is any tag outside the fixed taxonomy, carried through as-is.
	Freeform
)

func (k TagKind) String() string {
	switch k {
	case Single:
		return "single"
	case FamilyMember:
		return "family-member"
	default:
		return "freeform"
	}
}

// CanonicalTag is the identity a raw tag string resolves to. Two raw strings
// with the same normal form resolve to the same Key.
type CanonicalTag struct {
	Kind  TagKind `json:"kind"`
	Key   string  `json:"key"`   // normalized, lowercase
	Label string  `json:"label"` // human display form
}

// CollectionNode is one node of the collection forest as delivered by the
// upstream feed. ParentKey is nil for roots.
type CollectionNode struct {
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	ParentKey *string `json:"parent_key,omitempty"`
}

// Bucket groups entries under one label (a tag display label or a breadcrumb
// path). Entries are kept in the stable catalog order; Count == len(Entries).
type Bucket struct {
	Label   string     `json:"label"`
	Entries []BibEntry `json:"entries"`
	Count   int        `json:"count"`
}

// ChartDatum is one (label, value) slice of a chart, with the palette color
// assigned by rank.
type ChartDatum struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}
