package taxonomy

import (
	"strings"

	"github.com/MunoMono/reference-library/internal/domain"
)

// Canonicalize resolves one raw tag segment to its canonical identity.
//
// Resolution order: exact single (including registered spelling variants),
// then family prefix + enumerated member, then freeform. A label that starts
// with a family prefix but is not an enumerated member still resolves to
// freeform rather than erroring; in practice that usually means the member
// tables are missing an entry.
func Canonicalize(raw string) domain.CanonicalTag {
	cleaned := strings.Join(strings.Fields(raw), " ")
	key := Normalize(cleaned)

	if label, ok := singlesByKey[key]; ok {
		return domain.CanonicalTag{Kind: domain.Single, Key: Normalize(label), Label: label}
	}

	for _, prefix := range familyPrefixes {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if label, ok := membersByKey[key]; ok {
			return domain.CanonicalTag{Kind: domain.FamilyMember, Key: Normalize(label), Label: label}
		}
		break
	}

	return domain.CanonicalTag{Kind: domain.Freeform, Key: key, Label: cleaned}
}

// CanonicalizeField splits a raw keyword field and canonicalizes each
// segment, deduplicating by key while preserving first-seen order.
func CanonicalizeField(field string) []domain.CanonicalTag {
	segments := Split(field)
	if len(segments) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(segments))
	out := make([]domain.CanonicalTag, 0, len(segments))
	for _, seg := range segments {
		tag := Canonicalize(seg)
		if tag.Key == "" || seen[tag.Key] {
			continue
		}
		seen[tag.Key] = true
		out = append(out, tag)
	}
	return out
}
