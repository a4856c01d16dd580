package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/klabast/wb-services/feriados-kalender/internal/calendar"
	"github.com/klabast/wb-services/feriados-kalender/ui"
)

const (
	baseTemplatePath     = "gohtml/base.gohtml"
	partialsTemplateGlob = "gohtml/partials/*.gohtml"
	staticDir            = "static"
	indexFile            = "index.html"
)

// Page is the data of the generated calendar page.
type Page struct {
	Title     string
	BodyClass string
	Pressed   bool

	// Preference is the stored choice: "dark", "light" or "unset".
	Preference string

	Year     *calendar.Year
	Holidays []calendar.IndexEntry
	Footer   template.HTML
}

// Manager holds the parsed page templates.
type Manager struct {
	page *template.Template
}

// NewManager parses the embedded templates.
func NewManager() (*Manager, error) {
	tmpl, err := template.New("base").Funcs(tmplFuncs).ParseFS(ui.Files, baseTemplatePath, partialsTemplateGlob)
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Manager{page: tmpl}, nil
}

// RenderPage executes the page into w. Nothing is written if execution
// fails.
func (m *Manager) RenderPage(w io.Writer, page *Page) error {
	return writeTemplate(w, m.page, "base", page)
}

// RenderPartial executes a single named partial, e.g. "month".
func (m *Manager) RenderPartial(w io.Writer, name string, data any) error {
	if m.page.Lookup(name) == nil {
		return fmt.Errorf("partial template %q was not found", name)
	}
	return writeTemplate(w, m.page, name, data)
}

// WriteSite writes index.html and the static assets into dir and returns the
// path of the index file.
func (m *Manager) WriteSite(dir string, page *Page) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	var buf bytes.Buffer
	if err := m.RenderPage(&buf, page); err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}

	indexPath := filepath.Join(dir, indexFile)
	if err := os.WriteFile(indexPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", indexPath, err)
	}

	if err := copyStatic(dir); err != nil {
		return "", err
	}
	return indexPath, nil
}

func copyStatic(dir string) error {
	return fs.WalkDir(ui.Files, staticDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		target := filepath.Join(dir, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}

		data, err := fs.ReadFile(ui.Files, p)
		if err != nil {
			return fmt.Errorf("reading embedded %s: %w", path.Base(p), err)
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
		return nil
	})
}

func writeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, name, data); err != nil {
		return err
	}

	_, err := buf.WriteTo(w)
	return err
}
