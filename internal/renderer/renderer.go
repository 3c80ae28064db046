// Package renderer turns resolved document records into output bytes:
// markdown bodies become HTML wrapped in a minimal layout. It also
// answers the output-extension query documents memoize.
package renderer

import (
	"bytes"
	"html/template"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"git.home.luguber.info/inful/sitegen/internal/document"
	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// markdownExtensions are the source extensions rendered as markdown.
var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mkd":      true,
}

// converter is initialized once and shared. The goldmark configuration
// never changes and the Markdown instance is safe to share; parsing
// state is per-call.
var (
	converter     goldmark.Markdown
	converterOnce sync.Once
)

func getConverter() goldmark.Markdown {
	converterOnce.Do(func() {
		converter = goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.DefinitionList,
			),
			goldmark.WithRendererOptions(
				gmhtml.WithUnsafe(),
			),
		)
	})
	return converter
}

// layout is the built-in page shell. Deliberately minimal; theming is a
// template-engine concern outside this core.
var layout = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html{{if .Locale}} lang="{{.Locale}}"{{end}}>
<head>
<meta charset="utf-8">
<title>{{.Title}}{{if .SiteTitle}} | {{.SiteTitle}}{{end}}</title>
{{if .Summary}}<meta name="description" content="{{.Summary}}">{{end}}
</head>
<body>
<main>
{{.Body}}
</main>
</body>
</html>
`))

// Renderer renders records. Zero value is not usable; use New.
type Renderer struct {
	siteTitle string
}

// New creates a renderer.
func New(siteTitle string) *Renderer {
	return &Renderer{siteTitle: siteTitle}
}

// OutputExtensionFor implements document.ExtensionOracle: markdown-ish
// sources produce .html, everything else passes its extension through.
func (rd *Renderer) OutputExtensionFor(r *document.Record) string {
	ext := strings.ToLower(r.Extension())
	if markdownExtensions[ext] || ext == ".yaml" || ext == ".yml" {
		return ".html"
	}
	return ext
}

// Render produces the document's output bytes and stores them in
// RawOutput. Non-markdown sources pass through unrendered.
func (rd *Renderer) Render(r *document.Record) error {
	ext := strings.ToLower(r.Extension())
	if !markdownExtensions[ext] {
		r.RawOutput = []byte(r.Content)
		return nil
	}

	var body bytes.Buffer
	if err := getConverter().Convert([]byte(r.Content), &body); err != nil {
		return sgerrors.RenderFailed(r.Path(), err)
	}

	title, _ := r.Data.GetOr("title", "").(string)
	locale, _ := r.Data.GetOr("locale", "").(string)

	summary := ""
	if v, ok := r.Data.Get("summary"); ok {
		summary, _ = v.(string)
	} else if v, ok := r.Data.Get("excerpt"); ok {
		if s, isStr := v.(string); isStr {
			summary = PlainText(renderFragment(s))
			if summary != "" {
				r.Data.Set("summary", summary)
			}
		}
	}

	var page bytes.Buffer
	err := layout.Execute(&page, struct {
		Title, SiteTitle, Locale, Summary string
		Body                              template.HTML
	}{
		Title:     title,
		SiteTitle: rd.siteTitle,
		Locale:    locale,
		Summary:   summary,
		Body:      template.HTML(body.String()),
	})
	if err != nil {
		return sgerrors.RenderFailed(r.Path(), err)
	}

	r.RawOutput = page.Bytes()
	return nil
}

// renderFragment converts a markdown snippet to HTML, swallowing errors
// (summaries are best-effort).
func renderFragment(md string) string {
	var buf bytes.Buffer
	if err := getConverter().Convert([]byte(md), &buf); err != nil {
		return md
	}
	return buf.String()
}
