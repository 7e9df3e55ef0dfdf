package extract

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/compliance-checklist/backend/internal/models"
)

// Extractor pulls plain text out of one document format.
type Extractor interface {
	// Name returns the unique name of the extractor.
	Name() string
	// Extensions returns the lowercase file extensions this extractor handles.
	Extensions() []string
	// Extract reads the file and returns its plain text.
	Extract(filePath string) (string, error)
}

// Registry holds all available extractors keyed by file extension.
type Registry struct {
	byExt map[string]Extractor
}

func NewRegistry() *Registry {
	r := &Registry{byExt: make(map[string]Extractor)}
	r.Register(NewPDFExtractor())
	r.Register(NewDocxExtractor())
	r.Register(NewPlainTextExtractor())
	r.Register(NewExcelExtractor())
	return r
}

// Register adds a new extractor to the registry.
func (r *Registry) Register(e Extractor) {
	for _, ext := range e.Extensions() {
		r.byExt[strings.ToLower(ext)] = e
	}
}

// Find returns the extractor for a filename, detected by extension.
func (r *Registry) Find(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if e, ok := r.byExt[ext]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("no suitable extractor found for file: %s", filename)
}

// Names returns the names of the registered extractors, sorted and
// deduplicated across extensions.
func (r *Registry) Names() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0, len(r.byExt))
	for _, e := range r.byExt {
		if _, ok := seen[e.Name()]; ok {
			continue
		}
		seen[e.Name()] = struct{}{}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// Supported reports whether a filename's extension has an extractor.
func (r *Registry) Supported(filename string) bool {
	_, ok := r.byExt[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// ExtractDocument runs extraction for one stored file and builds the
// Document the analysis pipeline consumes. Failures never propagate:
// an unknown extension or an extraction error yields an unsupported
// Document carrying a human-readable message.
func (r *Registry) ExtractDocument(filename, filePath string) models.Document {
	e, err := r.Find(filename)
	if err != nil {
		return models.Document{
			Filename:  filename,
			Supported: false,
			Errors:    "Unsupported file type",
		}
	}

	text, err := e.Extract(filePath)
	if err != nil {
		return models.Document{
			Filename:  filename,
			Supported: false,
			Errors:    fmt.Sprintf("Extraction error: %v", err),
		}
	}

	return models.Document{
		Filename:  filename,
		Supported: true,
		Text:      text,
	}
}
