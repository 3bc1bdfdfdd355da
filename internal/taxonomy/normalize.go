// Package taxonomy resolves free-text tag labels to canonical identities.
//
// Labels typed by hand in the reference manager drift: case, curly quotes,
// hyphen vs space, spacing around the "|" family delimiter. Normalize folds
// all of that away so differently-spelled labels meet at one key.
package taxonomy

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	pipeSpacing  = regexp.MustCompile(`\s*\|\s*`)
	nonAlnumPipe = regexp.MustCompile(`[^a-z0-9|]+`)
	multiSpace   = regexp.MustCompile(`\s+`)

	caseFolder = cases.Fold()
)

// Normalize returns the canonical matching form of a tag label: NFKC,
// case-folded, curly punctuation mapped to ASCII, " | " around the family
// delimiter, everything outside letters/digits/pipe collapsed to single
// spaces. Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(s)
	s = caseFolder.String(s)
	s = strings.NewReplacer("–", "-", "—", "-", "’", "'").Replace(s)
	s = pipeSpacing.ReplaceAllString(s, " | ")
	s = nonAlnumPipe.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Split divides a raw keyword field into individual tag segments. Tags are
// comma or semicolon separated; empty segments are dropped.
func Split(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	var out []string
	for _, seg := range strings.FieldsFunc(field, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}
