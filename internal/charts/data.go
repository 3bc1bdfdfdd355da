// Package charts turns bucket counts into renderer-agnostic chart data and
// renders it as self-contained SVG.
package charts

import (
	"sort"

	"github.com/MunoMono/reference-library/internal/domain"
)

// Palette is the fixed chart palette, applied cyclically by rank. A label's
// color can change between runs when its rank changes; color stability is
// explicitly not promised.
var Palette = []string{
	"#78a9ff", "#a7f0ba", "#ffb3b8", "#ffd7a8", "#e8daff", "#b3e6ff",
	"#f1c21b", "#8a3ffc", "#33b1ff", "#fa4d56", "#6fdc8c", "#ff832b",
}

// DefaultTopK is the category limit before the tail collapses into "Other".
const DefaultTopK = 12

// PieMaxCategories is the largest category count still drawn as a pie;
// bigger datasets switch to horizontal bars.
const PieMaxCategories = 9

// OtherLabel names the synthetic category holding collapsed tail counts.
const OtherLabel = "Other"

// Map converts buckets into ordered chart data: count descending, then label
// ascending. When more than topK categories exist, the tail is collapsed into
// a single "Other" category with their summed count. topK <= 0 uses
// DefaultTopK.
func Map(buckets []domain.Bucket, topK int) []domain.ChartDatum {
	if topK <= 0 {
		topK = DefaultTopK
	}

	data := make([]domain.ChartDatum, 0, len(buckets))
	for _, b := range buckets {
		if b.Count > 0 {
			data = append(data, domain.ChartDatum{Label: b.Label, Value: b.Count})
		}
	}
	sort.SliceStable(data, func(i, j int) bool {
		if data[i].Value != data[j].Value {
			return data[i].Value > data[j].Value
		}
		return data[i].Label < data[j].Label
	})

	if len(data) > topK {
		rest := 0
		for _, d := range data[topK:] {
			rest += d.Value
		}
		data = append(data[:topK:topK], domain.ChartDatum{Label: OtherLabel, Value: rest})
	}

	for i := range data {
		data[i].Color = Palette[i%len(Palette)]
	}
	return data
}
