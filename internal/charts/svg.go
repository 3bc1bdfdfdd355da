package charts

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/MunoMono/reference-library/internal/domain"
)

// PieSVG renders chart data as a pie with a side legend. Angles start at the
// top and run clockwise in data order.
func PieSVG(data []domain.ChartDatum, title string, size int) string {
	if size <= 0 {
		size = 420
	}
	total := 0
	for _, d := range data {
		total += d.Value
	}
	if total == 0 {
		total = 1
	}

	cx := float64(size) / 2
	cy := float64(size) / 2
	r := float64(size) * 0.44

	polar := func(deg float64) (float64, float64) {
		rad := deg * math.Pi / 180
		return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img" aria-label="%s">`,
		size, size, size, size, esc(title))
	fmt.Fprintf(&sb, `<title>%s</title>`, esc(title))
	fmt.Fprintf(&sb, `<rect x="0" y="0" width="%d" height="%d" fill="none" />`, size, size)

	a0 := -90.0
	for _, d := range data {
		frac := float64(d.Value) / float64(total)
		a1 := a0 + frac*360.0
		large := 0
		if math.Mod(a1-a0, 360) > 180 {
			large = 1
		}
		x0, y0 := polar(a0)
		x1, y1 := polar(a1)
		fmt.Fprintf(&sb,
			`<path d="M %.3f %.3f L %.3f %.3f A %.3f %.3f 0 %d 1 %.3f %.3f Z" fill="%s" stroke="#161616" stroke-width="0.5"/>`,
			cx, cy, x0, y0, r, r, large, x1, y1, d.Color)
		a0 = a1
	}

	legendX := float64(size) * 0.64
	legendY := float64(size) * 0.12
	const lineH = 18.0
	sb.WriteString(`<g font-family="IBM Plex Sans, system-ui" font-size="12" fill="#f4f4f4">`)
	fmt.Fprintf(&sb, `<text x="%.0f" y="%.0f" font-size="16" font-weight="600">%s</text>`,
		float64(size)*0.06, float64(size)*0.08, esc(title))
	for i, d := range data {
		y := legendY + float64(i)*lineH
		fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="12" height="12" rx="2" fill="%s"/>`,
			legendX, y-10, d.Color)
		fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" dominant-baseline="middle">%s (%d)</text>`,
			legendX+18, y, esc(d.Label), d.Value)
	}
	sb.WriteString(`</g></svg>`)
	return sb.String()
}

// HBarSVG renders chart data as horizontal bars, one row per category.
func HBarSVG(data []domain.ChartDatum, title string, width int) string {
	if width <= 0 {
		width = 720
	}
	const (
		barH  = 22
		gap   = 8
		left  = 180.0
		right = 24.0
		top   = 48.0
	)
	height := 90 + len(data)*(barH+gap)
	maxV := 1
	for _, d := range data {
		if d.Value > maxV {
			maxV = d.Value
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img" aria-label="%s">`,
		width, height, width, height, esc(title))
	fmt.Fprintf(&sb, `<title>%s</title>`, esc(title))
	fmt.Fprintf(&sb, `<rect x="0" y="0" width="%d" height="%d" fill="none" />`, width, height)
	sb.WriteString(`<g font-family="IBM Plex Sans, system-ui" fill="#f4f4f4">`)
	fmt.Fprintf(&sb, `<text x="24" y="28" font-size="18" font-weight="600">%s</text>`, esc(title))

	for i, d := range data {
		y := top + float64(i*(barH+gap))
		w := (float64(width) - left - right) * float64(d.Value) / float64(maxV)
		fmt.Fprintf(&sb, `<text x="24" y="%.1f" font-size="12">%s</text>`, y+barH*0.7, esc(d.Label))
		fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%d" rx="4" fill="%s"/>`,
			left, y, w, barH, d.Color)
		fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" font-size="12">%d</text>`,
			left+w+6, y+barH*0.7, d.Value)
	}
	sb.WriteString(`</g></svg>`)
	return sb.String()
}

func esc(s string) string {
	return html.EscapeString(s)
}
