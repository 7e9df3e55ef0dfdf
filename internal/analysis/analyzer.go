package analysis

import (
	"strings"
	"sync"

	"github.com/compliance-checklist/backend/internal/models"
	"github.com/compliance-checklist/backend/internal/nlp"
)

// NoteNoText marks a supported document whose text is empty or
// whitespace-only. Distinct from an extraction failure.
const NoteNoText = "No text found"

// noteUnsupported is the fallback when an unsupported document arrives
// without a message of its own.
const noteUnsupported = "unsupported file"

// Analyzer runs the per-document pipeline: classification, summary,
// obligation detection. It works from one immutable RuleSet snapshot, so
// every document of a batch sees the same rules.
type Analyzer struct {
	rules      *RuleSet
	classifier *Classifier
	summarizer *Summarizer
	detector   *Detector
	summaryLen int
}

// NewAnalyzer wires the pipeline components over a shared rule set.
func NewAnalyzer(rules *RuleSet, engine nlp.Engine, searcher nlp.Searcher, summarizer *Summarizer, summaryLen int) *Analyzer {
	return &Analyzer{
		rules:      rules,
		classifier: NewClassifier(rules),
		summarizer: summarizer,
		detector:   NewDetector(rules, engine, searcher),
		summaryLen: summaryLen,
	}
}

// AnalyzeDocument produces the analysis record for one document.
// Unsupported documents keep their carried error as the note; supported
// documents without usable text get NoteNoText. Otherwise the three
// analysis calls are independent and run concurrently.
func (a *Analyzer) AnalyzeDocument(doc models.Document) models.DocumentEntry {
	entry := models.DocumentEntry{Filename: doc.Filename, Supported: doc.Supported}

	if !doc.Supported {
		entry.Note = doc.Errors
		if entry.Note == "" {
			entry.Note = noteUnsupported
		}
		return entry
	}

	if strings.TrimSpace(doc.Text) == "" {
		entry.Note = NoteNoText
		return entry
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		entry.Domain = a.classifier.Classify(doc.Text)
	}()
	go func() {
		defer wg.Done()
		entry.Summary = a.summarizer.Summarize(doc.Text, a.summaryLen)
	}()
	go func() {
		defer wg.Done()
		entry.Obligations = a.detector.Detect(doc.Text)
	}()
	wg.Wait()

	return entry
}
