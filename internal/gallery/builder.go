// Package gallery writes rendered chart documents and an HTML index page
// linking them together.
package gallery

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/zengeld/zengeld-canvas/internal/logger"
)

// Entry is one chart on the index page.
type Entry struct {
	Title   string
	File    string
	Caption string
}

// Builder accumulates chart files in an output directory and renders the
// index page from markdown.
type Builder struct {
	outputDir string
	md        goldmark.Markdown
	log       *logger.Logger
	entries   []Entry
}

// NewBuilder creates a builder rooted at outputDir, creating it if needed.
func NewBuilder(outputDir string) (*Builder, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &Builder{
		outputDir: outputDir,
		md:        md,
		log:       logger.Global().WithComponent("gallery"),
	}, nil
}

// WriteChart stores one SVG document and records it for the index.
func (b *Builder) WriteChart(name, title, caption, svg string) error {
	file := name + ".svg"
	path := filepath.Join(b.outputDir, file)
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("failed to write chart %s: %w", name, err)
	}
	b.log.Infof("wrote %s (%d bytes)", path, len(svg))
	b.entries = append(b.entries, Entry{Title: title, File: file, Caption: caption})
	return nil
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { background: #131722; color: #b2b5be; font-family: sans-serif; max-width: 1100px; margin: 0 auto; padding: 24px; }
h1, h2 { color: #d1d4dc; }
img { max-width: 100%; border: 1px solid #2a2e39; border-radius: 4px; }
a { color: #2196f3; }
</style>
</head>
<body>
{{.Content}}
</body>
</html>
`))

// WriteIndex converts the accumulated entries to markdown, renders it to
// HTML, and writes index.html.
func (b *Builder) WriteIndex(title string) error {
	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", title)
	for _, e := range b.entries {
		fmt.Fprintf(&md, "## %s\n\n", e.Title)
		if e.Caption != "" {
			fmt.Fprintf(&md, "%s\n\n", e.Caption)
		}
		fmt.Fprintf(&md, "![%s](%s)\n\n", e.Title, e.File)
	}

	var body bytes.Buffer
	if err := b.md.Convert([]byte(md.String()), &body); err != nil {
		return fmt.Errorf("failed to convert markdown: %w", err)
	}

	var page bytes.Buffer
	err := indexTemplate.Execute(&page, struct {
		Title   string
		Content template.HTML
	}{Title: title, Content: template.HTML(body.String())})
	if err != nil {
		return fmt.Errorf("failed to execute index template: %w", err)
	}

	path := filepath.Join(b.outputDir, "index.html")
	if err := os.WriteFile(path, page.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	b.log.Infof("wrote %s", path)
	return nil
}
