// Package web serves the HTML page shells. Pages are thin: they load the
// frontend bundle which talks to the JSON API and the notification socket.
package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Pages struct {
	tmpl *template.Template
}

func NewPages() (*Pages, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Pages{tmpl: tmpl}, nil
}

type pageData struct {
	Title string
	Page  string
}

// Render returns a handler serving the named page shell.
func (p *Pages) Render(page, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := p.tmpl.ExecuteTemplate(w, "page.html", pageData{Title: title, Page: page}); err != nil {
			log.Printf("ERROR [web.Render] template %s: %v", page, err)
		}
	}
}
