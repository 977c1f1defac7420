package downloads

import (
	"fmt"
	"html/template"
	"io"
)

var svgTemplate = template.Must(template.New("chart.svg").Parse(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="{{.Chart.ViewBox}}" preserveAspectRatio="none" role="img" aria-label="Weekly downloads of {{.Stats.Package}}">
  <title>{{.Stats.Message}}</title>
  <path d="{{.Chart.Baseline}}" stroke="rgba(15,23,42,0.06)" stroke-width="1"/>
{{- if .Chart.Area}}
  <path d="{{.Chart.Area}}" fill="rgba(37, 99, 235, 0.1)" stroke="none"/>
{{- end}}
{{- if .Chart.Line}}
  <path d="{{.Chart.Line}}" fill="none" stroke="rgb(37, 99, 235)" stroke-width="2.5" stroke-linejoin="round" stroke-linecap="round" vector-effect="non-scaling-stroke"/>
{{- end}}
{{- with .Stats.Overlay}}
  <text x="50" y="50" text-anchor="middle" font-size="5" fill="#64748b">{{.}}</text>
{{- end}}
</svg>
`))

// WriteSVG renders a standalone chart for s.
func WriteSVG(w io.Writer, s *Stats) error {
	data := struct {
		Stats *Stats
		Chart Chart
	}{Stats: s, Chart: NewChart(s)}

	if err := svgTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("downloads: render svg: %w", err)
	}
	return nil
}
