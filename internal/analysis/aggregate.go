package analysis

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/compliance-checklist/backend/internal/models"
	"github.com/compliance-checklist/backend/internal/nlp"
)

// Options tunes a Pipeline.
type Options struct {
	// SummarySentences is the extractive summary length. Defaults to 3.
	SummarySentences int
	// MaxConcurrentDocuments bounds parallel per-document analysis within
	// one Aggregate call. Defaults to 4.
	MaxConcurrentDocuments int
	// Searcher is the optional free-text date search capability.
	Searcher nlp.Searcher
}

// Pipeline is the batch entry point of the analysis core. It is safe for
// concurrent use: each Aggregate call snapshots the active rule set and
// owns its checklist counter, so concurrent batches stay isolated.
type Pipeline struct {
	engine      nlp.Engine
	searcher    nlp.Searcher
	summarizer  *Summarizer
	summaryLen  int
	concurrency int

	mu    sync.RWMutex
	rules *RuleSet
}

// NewPipeline builds a Pipeline over the given rule set and NLP engine.
func NewPipeline(rules *RuleSet, engine nlp.Engine, opts Options) (*Pipeline, error) {
	if opts.SummarySentences <= 0 {
		opts.SummarySentences = 3
	}
	if opts.MaxConcurrentDocuments <= 0 {
		opts.MaxConcurrentDocuments = 4
	}

	summarizer, err := NewSummarizer(engine)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		engine:      engine,
		searcher:    opts.Searcher,
		summarizer:  summarizer,
		summaryLen:  opts.SummarySentences,
		concurrency: opts.MaxConcurrentDocuments,
		rules:       rules,
	}, nil
}

// Rules returns the active rule set.
func (p *Pipeline) Rules() *RuleSet {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rules
}

// SetRules swaps the active rule set. Running batches keep the snapshot
// they started with.
func (p *Pipeline) SetRules(rules *RuleSet) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rules = rules
}

// Aggregate analyzes a batch of documents and builds the combined
// result. Per-document analysis runs in parallel, but entries are
// reassembled in input order and checklist IDs are assigned strictly
// sequentially in document-then-obligation order, starting at 1.
func (p *Pipeline) Aggregate(ctx context.Context, docs []models.Document) *models.AnalysisResult {
	rules := p.Rules()
	analyzer := NewAnalyzer(rules, p.engine, p.searcher, p.summarizer, p.summaryLen)

	entries := make([]models.DocumentEntry, len(docs))
	grp, _ := errgroup.WithContext(ctx)
	grp.SetLimit(p.concurrency)
	for i := range docs {
		i := i
		grp.Go(func() error {
			entries[i] = analyzer.AnalyzeDocument(docs[i])
			return nil
		})
	}
	// Workers only write their own slot and never fail.
	_ = grp.Wait()

	result := &models.AnalysisResult{
		Files:             entries,
		CombinedChecklist: make([]models.ChecklistItem, 0),
	}

	counter := 0
	for i := range entries {
		for _, o := range entries[i].Obligations {
			counter++
			result.CombinedChecklist = append(result.CombinedChecklist, models.ChecklistItem{
				ID:         counter,
				Document:   entries[i].Filename,
				Sentence:   o.Sentence,
				Dates:      append([]string(nil), o.Dates...),
				AssignedTo: "",
				Status:     models.StatusOpen,
				Risk:       rules.RiskOf(o.Sentence),
			})
		}
	}

	return result
}
