package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MunoMono/reference-library/internal/domain"
)

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Theoretical paper",
		"  Data driven  |artefact paper ",
		"Émile’s notes — draft",
		"PhD thesis",
		"weird   spacing\ttabs",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "re-normalizing %q must be a no-op", in)
	}
}

func TestNormalizeFoldsSpellingVariants(t *testing.T) {
	assert.Equal(t,
		Normalize("Consciousness-raising paper"),
		Normalize("Consciousness raising paper"))
	assert.Equal(t,
		Normalize("Data driven|artefact paper"),
		Normalize("data driven  |  Artefact paper"))
}

func TestCanonicalizeSingles(t *testing.T) {
	tag := Canonicalize("theoretical PAPER")
	assert.Equal(t, domain.Single, tag.Kind)
	assert.Equal(t, "Theoretical paper", tag.Label)

	// Both spellings resolve to the identical identity.
	a := Canonicalize("Consciousness-raising paper")
	b := Canonicalize("Consciousness raising paper")
	assert.Equal(t, a, b)
	assert.Equal(t, domain.Single, a.Kind)
	assert.Equal(t, "Consciousness-raising paper", a.Label)
}

func TestCanonicalizeIdempotentOnNormalForm(t *testing.T) {
	for _, raw := range []string{"Theoretical paper", "Methods | tutorial paper", "Design history"} {
		direct := Canonicalize(raw)
		renormalized := Canonicalize(Normalize(raw))
		assert.Equal(t, direct.Kind, renormalized.Kind)
		assert.Equal(t, direct.Key, renormalized.Key)
	}
}

func TestCanonicalizeFamilyMembers(t *testing.T) {
	tag := Canonicalize("Data driven | artefact paper")
	assert.Equal(t, domain.FamilyMember, tag.Kind)
	assert.Equal(t, "Data driven | artefact paper", tag.Label)

	tag = Canonicalize("METHODS|method-mongering paper")
	assert.Equal(t, domain.FamilyMember, tag.Kind)
	assert.Equal(t, "Methods | method-mongering paper", tag.Label)
}

func TestCanonicalizeUnmatchedFamilyPrefixIsFreeform(t *testing.T) {
	tag := Canonicalize("Methods | brand new paper")
	assert.Equal(t, domain.Freeform, tag.Kind)
	assert.Equal(t, "methods | brand new paper", tag.Key)
	assert.Equal(t, "Methods | brand new paper", tag.Label)
}

func TestCanonicalizeFreeform(t *testing.T) {
	tag := Canonicalize("  Design   History ")
	assert.Equal(t, domain.Freeform, tag.Kind)
	assert.Equal(t, "design history", tag.Key)
	assert.Equal(t, "Design History", tag.Label)
}

func TestSplit(t *testing.T) {
	assert.Equal(t,
		[]string{"a", "b", "c"},
		Split("a, b; c"))
	assert.Equal(t,
		[]string{"one tag"},
		Split("  one tag  "))
	assert.Nil(t, Split("  ,, ;  "))
	assert.Nil(t, Split(""))
}

func TestCanonicalizeFieldDeduplicates(t *testing.T) {
	tags := CanonicalizeField("Review paper, review PAPER; Design history")
	require.Len(t, tags, 2)
	assert.Equal(t, "Review paper", tags[0].Label)
	assert.Equal(t, "Design history", tags[1].Label)
}
