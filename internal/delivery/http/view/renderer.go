package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"doctor-directory/internal/delivery/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// RenderDirectory writes the page. It renders into a buffer first so a
// template error never leaves a half-written response.
func (r *Renderer) RenderDirectory(w http.ResponseWriter, statusCode int, page dto.DirectoryPage) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "directory.html", page); err != nil {
		return fmt.Errorf("render directory: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err := buf.WriteTo(w)
	return err
}

// StaticHandler serves the embedded stylesheet tree. Mount it under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
