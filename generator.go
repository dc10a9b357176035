package codewheel

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/gogpu/codewheel/recording"
	_ "github.com/gogpu/codewheel/recording/backends/svg" // default backend
)

// Document is one composed page, ready to be written.
type Document struct {
	Page      string
	Recording *recording.Recording
}

// Generator turns encoder specs into page documents.
// A Generator holds no state between calls and is safe for concurrent use.
type Generator struct {
	opts options
}

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{opts: o}
}

// PageSize returns the page canvas size in millimetres.
func (g *Generator) PageSize() (width, height float64) {
	return g.opts.pageWidth, g.opts.pageHeight
}

// Backend returns the name of the backend documents are written with.
func (g *Generator) Backend() string {
	return g.opts.backend
}

func (g *Generator) log() *slog.Logger {
	if g.opts.logger != nil {
		return g.opts.logger
	}
	return Logger()
}

// Generate composes one document per distinct page, in order of first
// mention in specs.
func (g *Generator) Generate(specs []EncoderSpec) []Document {
	pages := GroupPages(specs)
	docs := make([]Document, len(pages))
	for i, p := range pages {
		docs[i] = Document{
			Page:      p.Name,
			Recording: composePage(p, g.opts.pageWidth, g.opts.pageHeight, g.log()),
		}
	}
	return docs
}

func (g *Generator) play(doc Document) (recording.Backend, error) {
	b, err := recording.NewBackend(g.opts.backend)
	if err != nil {
		return nil, fmt.Errorf("codewheel: %w", err)
	}
	if err := doc.Recording.Playback(b); err != nil {
		return nil, fmt.Errorf("codewheel: render page %q: %w", doc.Page, err)
	}
	return b, nil
}

// Render writes doc to w in the Generator's backend format.
func (g *Generator) Render(w io.Writer, doc Document) error {
	b, err := g.play(doc)
	if err != nil {
		return err
	}
	wb, ok := b.(recording.WriterBackend)
	if !ok {
		return fmt.Errorf("codewheel: backend %q cannot write to a stream", g.opts.backend)
	}
	if _, err := wb.WriteTo(w); err != nil {
		return fmt.Errorf("codewheel: write page %q: %w", doc.Page, err)
	}
	return nil
}

// WriteFiles regenerates every page of specs into dir, one file per page
// named after it, overwriting existing files. It stops at the first
// failure and returns the paths written so far.
func (g *Generator) WriteFiles(specs []EncoderSpec, dir string) ([]string, error) {
	var written []string
	for _, doc := range g.Generate(specs) {
		b, err := g.play(doc)
		if err != nil {
			return written, err
		}
		fb, ok := b.(recording.FileBackend)
		if !ok {
			return written, fmt.Errorf("codewheel: backend %q cannot save files", g.opts.backend)
		}
		path := filepath.Join(dir, doc.Page+fb.Extension())
		if err := fb.SaveToFile(path); err != nil {
			return written, fmt.Errorf("codewheel: write page %q: %w", doc.Page, err)
		}
		g.log().Info("wrote page", "page", doc.Page, "path", path)
		written = append(written, path)
	}
	return written, nil
}
