package docs

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/PankajKumardev/initgen/internal/downloads"
	"github.com/PankajKumardev/initgen/internal/stack"
)

//go:embed assets
var assets embed.FS

var pageTemplate = template.Must(template.ParseFS(assets, "assets/index.html.tmpl"))

// InstallCommand is one entry of the install section.
type InstallCommand struct {
	Label   string
	Command string
}

// InstallCommands are shown on the landing page.
var InstallCommands = []InstallCommand{
	{Label: "Install globally", Command: "npm install -g initgen"},
	{Label: "Or run without installing", Command: "npx initgen"},
}

type pageData struct {
	InstallCommands []InstallCommand
	QuickStart      template.HTML
	Stacks          []stack.Descriptor
	Stats           *downloads.Stats
	Chart           downloads.Chart
	Weekly          string
	Monthly         string
}

var (
	quickStartOnce sync.Once
	quickStartHTML template.HTML
	quickStartErr  error
)

// QuickStart renders the embedded quick-start markdown.
func QuickStart() (template.HTML, error) {
	quickStartOnce.Do(func() {
		src, err := assets.ReadFile("assets/quickstart.md")
		if err != nil {
			quickStartErr = err
			return
		}
		md := goldmark.New(goldmark.WithExtensions(extension.GFM))
		var buf bytes.Buffer
		if err := md.Convert(src, &buf); err != nil {
			quickStartErr = fmt.Errorf("docs: render quick start: %w", err)
			return
		}
		quickStartHTML = template.HTML(buf.String())
	})
	return quickStartHTML, quickStartErr
}

// RenderPage writes the landing page for the given catalog and stats.
func RenderPage(w io.Writer, stacks []stack.Descriptor, stats *downloads.Stats) error {
	qs, err := QuickStart()
	if err != nil {
		return err
	}
	data := pageData{
		InstallCommands: InstallCommands,
		QuickStart:      qs,
		Stacks:          stacks,
		Stats:           stats,
		Chart:           downloads.NewChart(stats),
		Weekly:          downloads.FormatCount(stats.Weekly),
		Monthly:         downloads.FormatCount(stats.Monthly),
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("docs: render page: %w", err)
	}
	return nil
}
