package taxonomy

// The fixed paper-type taxonomy. These tables are built once below and never
// written again; lookups go through Canonicalize.

// singleLabels are the standalone paper-type tags.
var singleLabels = []string{
	"Theoretical paper",
	"Consciousness-raising paper",
	"Agenda setting paper",
	"Review paper",
	"Position paper",
	"PhD thesis",
}

// singleVariants maps known alternate spellings to their canonical label.
var singleVariants = map[string]string{
	"Consciousness raising paper": "Consciousness-raising paper",
}

// family is one prefix-delimited sub-taxonomy.
type family struct {
	Prefix string // display form, e.g. "Data driven |"
	Label  string
}

var families = []family{
	{Prefix: "Data driven |", Label: "Data driven"},
	{Prefix: "Methods |", Label: "Methods"},
}

// memberLabels enumerate every recognized family member.
var memberLabels = []string{
	"Data driven | meta-study paper",
	"Data driven | artefact paper",
	"Data driven | work-in-progress paper",
	"Methods | method introduction paper",
	"Methods | tutorial paper",
	"Methods | method-mongering paper",
	"Methods | demonstration of concept paper",
}

// Normalized lookup tables, built once.
var (
	singlesByKey = func() map[string]string {
		m := make(map[string]string, len(singleLabels)+len(singleVariants))
		for _, label := range singleLabels {
			m[Normalize(label)] = label
		}
		for variant, label := range singleVariants {
			m[Normalize(variant)] = label
		}
		return m
	}()

	familyPrefixes = func() []string {
		out := make([]string, len(families))
		for i, f := range families {
			out[i] = Normalize(f.Prefix)
		}
		return out
	}()

	membersByKey = func() map[string]string {
		m := make(map[string]string, len(memberLabels))
		for _, label := range memberLabels {
			m[Normalize(label)] = label
		}
		return m
	}()
)

// PaperTypeLabels returns the display labels of the full fixed taxonomy
// (family members first, then singles), in table order.
func PaperTypeLabels() []string {
	out := make([]string, 0, len(memberLabels)+len(singleLabels))
	out = append(out, memberLabels...)
	out = append(out, singleLabels...)
	return out
}
