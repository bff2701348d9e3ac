package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"haven/internal/detail"
	"haven/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data handed to the detail page template.
type Page struct {
	View   detail.View
	User   *session.User
	Dialog detail.Dialog
	// Reserve is set after the Reserve button was pressed.
	Reserve bool
	// Notice is shown above the reviews when a submission failed and the
	// dialog cannot be reopened.
	Notice string
}

type Renderer struct {
	pages *template.Template
}

func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"stars": stars,
		"seq":   seq,
		"inc":   func(i int) int { return i + 1 },
	}

	pages, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{pages: pages}, nil
}

// SpotDetail renders the page for the view's status. Output is buffered so a
// template error never leaves a half-written page.
func (r *Renderer) SpotDetail(w io.Writer, page Page) error {
	name := "detail.html"
	switch page.View.Status {
	case detail.StatusLoading:
		name = "loading.html"
	case detail.StatusNotFound:
		name = "not_found.html"
	}

	var buf bytes.Buffer
	if err := r.pages.ExecuteTemplate(&buf, name, page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func stars(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += "★"
	}
	return out
}

func seq(from, to int) []int {
	s := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		s = append(s, i)
	}
	return s
}
