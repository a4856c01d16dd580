package view

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
)

var markdown = goldmark.New()

// RenderMarkdown converts the page footer from Markdown. Raw HTML in the
// source is dropped by goldmark's default renderer.
func RenderMarkdown(src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
