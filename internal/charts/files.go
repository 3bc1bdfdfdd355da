package charts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MunoMono/reference-library/internal/catalog"
)

// BuildFiles renders the two standard charts for an aggregation result and
// writes them into dir. Returned names are relative to dir.
//
// The paper-type chart covers the fixed taxonomy buckets and is never
// collapsed (the taxonomy is small); it renders as a pie while it fits,
// bars otherwise. The collections chart covers every remaining tag bucket,
// collapsed to topK plus "Other", always as bars.
func BuildFiles(res catalog.Result, topK, pieMax int, dir string) ([]string, error) {
	if pieMax <= 0 {
		pieMax = PieMaxCategories
	}
	paperTypes, other := catalog.SplitPaperTypes(res.TagBuckets)

	paperData := Map(paperTypes, len(paperTypes))
	otherData := Map(other, topK)

	paperSVG := HBarSVG(paperData, "Paper types", 0)
	if len(paperData) <= pieMax {
		paperSVG = PieSVG(paperData, "Paper types", 0)
	}
	collSVG := HBarSVG(otherData, "Collections", 0)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create chart dir: %w", err)
	}
	files := map[string]string{
		"chart_paper_types.svg": paperSVG,
		"chart_collections.svg": collSVG,
	}
	names := make([]string, 0, len(files))
	for _, name := range []string{"chart_paper_types.svg", "chart_collections.svg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(files[name]), 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
		names = append(names, name)
	}
	return names, nil
}
