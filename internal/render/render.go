// Package render fills a Markdown template with one MethodRecord.
package render

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"dockit/internal/doctree"
	"dockit/internal/logger"
	"dockit/internal/model"
	"dockit/internal/placeholder"
	"dockit/internal/resolver"
)

//go:embed template.md
var defaultTemplate []byte

// DefaultTemplate returns the embedded template source
func DefaultTemplate() []byte {
	return append([]byte(nil), defaultTemplate...)
}

// Renderer holds a template source. Every Render call parses its own tree,
// so a Renderer is safe for concurrent use.
type Renderer struct {
	source []byte
	name   string
}

// New loads the template at templatePath, or the embedded default when the
// path is empty
func New(templatePath string) (*Renderer, error) {
	if templatePath == "" {
		return &Renderer{source: defaultTemplate, name: "embedded"}, nil
	}

	src, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	if len(placeholder.Find(string(src))) == 0 {
		logger.Warn("Template %s contains no ${...} placeholders", templatePath)
	}
	return &Renderer{source: src, name: templatePath}, nil
}

// NewFromString creates a renderer for an in-memory template
func NewFromString(tmpl string) *Renderer {
	return &Renderer{source: []byte(tmpl), name: "inline"}
}

// Name identifies the template source in logs
func (r *Renderer) Name() string {
	return r.name
}

// Render returns the template filled with rec
func (r *Renderer) Render(rec *model.MethodRecord) string {
	root := doctree.Parse(r.source)

	// Resolve mutates the root's child list; iterate a snapshot
	for _, block := range root.Children() {
		tokens := placeholder.Find(block.Chars())
		if len(tokens) == 0 {
			continue
		}
		resolver.Resolve(block, tokens, rec)
	}

	return root.Chars()
}

// RenderAll renders every record and joins them with a horizontal rule
func (r *Renderer) RenderAll(records []*model.MethodRecord) string {
	parts := make([]string, 0, len(records))
	for _, rec := range records {
		parts = append(parts, strings.TrimRight(r.Render(rec), "\n")+"\n")
	}
	return strings.Join(parts, "\n---\n\n")
}
