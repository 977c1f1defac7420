package downloads

import (
	"fmt"
	"strings"
)

// Chart geometry in viewBox units.
const (
	ViewBox      = "0 0 100 100"
	BaselinePath = "M 0 90 L 100 90"
	baselineY    = "90"
)

// Chart holds the SVG paths for a series.
type Chart struct {
	ViewBox  string   `json:"viewBox"`
	Baseline string   `json:"baseline"`
	Line     string   `json:"line"`
	Area     string   `json:"area"`
	Labels   []string `json:"labels"`
}

// NewChart builds the chart for s.
func NewChart(s *Stats) Chart {
	values := s.Values()
	return Chart{
		ViewBox:  ViewBox,
		Baseline: BaselinePath,
		Line:     LinePath(values),
		Area:     AreaPath(values),
		Labels:   s.Labels(),
	}
}

type point struct{ x, y string }

// points maps values into the 0..100 box: x spreads evenly, y keeps a
// 10-unit margin top and bottom.
func points(values []int64) []point {
	if len(values) == 0 {
		return nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := float64(max(hi-lo, 1))
	steps := float64(max(len(values)-1, 1))

	out := make([]point, len(values))
	for i, v := range values {
		x := float64(i) / steps * 100
		y := 100 - (float64(v-lo)/span)*80 - 10
		out[i] = point{x: fmt.Sprintf("%.2f", x), y: fmt.Sprintf("%.2f", y)}
	}
	return out
}

// LinePath returns "M x y L x y ...", or "" for an empty series.
func LinePath(values []int64) string {
	pts := points(values)
	if len(pts) == 0 {
		return ""
	}

	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&b, "%s %s %s", cmd, p.x, p.y)
	}
	return b.String()
}

// AreaPath closes the line down to the baseline.
func AreaPath(values []int64) string {
	pts := points(values)
	if len(pts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(pts)+3)
	parts = append(parts, "M "+pts[0].x+" "+baselineY)
	for _, p := range pts {
		parts = append(parts, "L "+p.x+" "+p.y)
	}
	parts = append(parts, "L "+pts[len(pts)-1].x+" "+baselineY, "Z")
	return strings.Join(parts, " ")
}
