package templates

import (
	"html/template"
	"strings"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/builder"
)

// Stylesheet serializes every project style rule into one <style> block.
// Empty rules are skipped; a project without styles yields "".
func Stylesheet(project *builder.ProjectData) string {
	if project == nil || len(project.Styles) == 0 {
		return ""
	}

	var b strings.Builder
	for _, rule := range project.Styles {
		b.WriteString(rule.CSS())
	}
	if b.Len() == 0 {
		return ""
	}
	return "<style>" + b.String() + "</style>"
}

var documentShell = template.Must(template.New("document").Parse(
	`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
		`<meta name="viewport" content="width=device-width, initial-scale=1">` +
		`<title>{{.Title}}</title>{{.Stylesheet}}</head>` +
		`<body>{{.Body}}</body></html>`,
))

type documentData struct {
	Title      string
	Stylesheet template.HTML
	Body       template.HTML
}

// RenderDocument wraps the synthesized frames of a project in a full HTML
// document with the project stylesheet inlined. This is the static output
// the hydration pass runs over.
func RenderDocument(title string, project *builder.ProjectData) (string, error) {
	synth := NewSynthesizer(project)

	var body strings.Builder
	for _, root := range project.Roots() {
		body.WriteString(synth.ComponentToHTML(root))
	}

	var out strings.Builder
	err := documentShell.Execute(&out, documentData{
		Title:      title,
		Stylesheet: template.HTML(Stylesheet(project)),
		Body:       template.HTML(body.String()),
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}
