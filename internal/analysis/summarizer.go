package analysis

import (
	"math"
	"sort"
	"strings"

	bleveanalysis "github.com/blevesearch/bleve/analysis"
	"github.com/blevesearch/bleve/analysis/lang/en"
	"github.com/blevesearch/bleve/registry"

	"github.com/compliance-checklist/backend/internal/nlp"
)

// Summarizer builds extractive summaries: sentences are scored by TF-IDF
// term weight (each sentence is a "document", the sentence list the
// "corpus") and the top scorers are re-joined in original order.
type Summarizer struct {
	engine   nlp.Engine
	analyzer *bleveanalysis.Analyzer
}

// NewSummarizer creates a Summarizer. Terms come from bleve's registered
// English analyzer: unicode tokenization, lowercasing, English stopword
// removal, porter stemming.
func NewSummarizer(engine nlp.Engine) (*Summarizer, error) {
	cache := registry.NewCache()
	analyzer, err := cache.AnalyzerNamed(en.AnalyzerName)
	if err != nil {
		return nil, err
	}
	return &Summarizer{engine: engine, analyzer: analyzer}, nil
}

// Summarize returns up to n sentences of text joined by single spaces.
// With n or fewer sentences the whole text is returned in order; beyond
// that the n highest-scoring sentences are selected, ties going to the
// earlier sentence, and re-ordered by original position before joining.
func (s *Summarizer) Summarize(text string, n int) string {
	sents := s.engine.Sentences(text)
	if len(sents) == 0 {
		return ""
	}
	if len(sents) <= n {
		return strings.Join(sents, " ")
	}

	scores := s.scoreSentences(sents)

	idx := make([]int, len(sents))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if scores[idx[a]] != scores[idx[b]] {
			return scores[idx[a]] > scores[idx[b]]
		}
		return idx[a] < idx[b]
	})

	selected := append([]int(nil), idx[:n]...)
	sort.Ints(selected)

	parts := make([]string, 0, n)
	for _, i := range selected {
		parts = append(parts, sents[i])
	}
	return strings.Join(parts, " ")
}

// scoreSentences computes per-sentence TF-IDF totals with smoothed
// document frequency: idf = ln((1+n)/(1+df)) + 1.
func (s *Summarizer) scoreSentences(sents []string) []float64 {
	termCounts := make([]map[string]int, len(sents))
	docFreq := make(map[string]int)

	for i, sent := range sents {
		counts := make(map[string]int)
		for _, term := range s.terms(sent) {
			counts[term]++
		}
		termCounts[i] = counts
		for term := range counts {
			docFreq[term]++
		}
	}

	n := float64(len(sents))
	scores := make([]float64, len(sents))
	for i, counts := range termCounts {
		var total float64
		for term, tf := range counts {
			idf := math.Log((1+n)/(1+float64(docFreq[term]))) + 1
			total += float64(tf) * idf
		}
		scores[i] = total
	}
	return scores
}

func (s *Summarizer) terms(sentence string) []string {
	stream := s.analyzer.Analyze([]byte(sentence))
	out := make([]string, 0, len(stream))
	for _, tok := range stream {
		out = append(out, string(tok.Term))
	}
	return out
}
