package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"weather-story/internal/domain/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

// Flash is a one-shot message shown on the next page render
type Flash struct {
	Kind    string
	Message string
}

// IndexPage is the data of templates/index.html
type IndexPage struct {
	ContextPath              string
	Country                  string
	Cities                   []string
	SelectedCity             string
	MissingSecrets           []string
	PostingEnabled           bool
	MissingSocialCredentials []string
	Generation               *entity.Generation
	ImageURL                 string
	Flashes                  []Flash
}

// CanPost reports whether the post form is shown
func (p IndexPage) CanPost() bool {
	return p.PostingEnabled && p.Generation != nil && p.Generation.Post == nil
}

// Renderer renders the embedded html templates for echo
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.New("").Funcs(template.FuncMap{
		"limit": func() int { return entity.NarrativeLimit },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
