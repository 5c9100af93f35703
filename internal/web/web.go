// Package web holds the embedded HTML pages served by the annotation
// backend. The pages are deliberately minimal; all interesting behavior
// lives in the JSON endpoints the front end calls.
package web

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates. Parsing failures are
// programmer errors (the templates ship with the binary), so it panics
// rather than returning an error.
func NewRenderer() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// IndexPage renders the annotation page for a single video.
func (r *Renderer) IndexPage(w io.Writer, videoID string) error {
	return r.tmpl.ExecuteTemplate(w, "index.html", map[string]any{
		"VideoID": videoID,
	})
}

// VideosPage renders the blast library listing. blasts is a slice of
// asset triples; the template only reads exported fields, so any struct
// with Folder/VideoURL/CSVURL/PDFURL works.
func (r *Renderer) VideosPage(w io.Writer, blasts any) error {
	return r.tmpl.ExecuteTemplate(w, "videos.html", map[string]any{
		"Blasts": blasts,
	})
}
