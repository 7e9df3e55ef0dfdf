package models

import "encoding/json"

// RiskLevel is the coarse severity assigned to a checklist item.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// ItemStatus tracks the workflow state of a checklist item. New items
// always start Open; further states belong to downstream tooling.
type ItemStatus string

const StatusOpen ItemStatus = "Open"

// Obligation is a duty-bearing sentence with its normalized dates.
// Dates are ISO-8601 calendar dates, deduplicated and sorted ascending.
type Obligation struct {
	Sentence string   `json:"sentence" msgpack:"sentence"`
	Dates    []string `json:"dates" msgpack:"dates"`
}

// ChecklistItem is one globally identified, trackable unit derived from
// an obligation. IDs are assigned in strictly increasing discovery order
// across a whole batch and are never reused.
type ChecklistItem struct {
	ID         int        `json:"id" msgpack:"id"`
	Document   string     `json:"document" msgpack:"document"`
	Sentence   string     `json:"sentence" msgpack:"sentence"`
	Dates      []string   `json:"dates" msgpack:"dates"`
	AssignedTo string     `json:"assigned_to" msgpack:"assigned_to"`
	Status     ItemStatus `json:"status" msgpack:"status"`
	Risk       RiskLevel  `json:"risk" msgpack:"risk"`
}

// DocumentEntry is the per-document analysis record. Note is set exactly
// when the document was unsupported or had no usable text, in which case
// the analysis fields stay empty.
type DocumentEntry struct {
	Filename    string       `json:"filename"`
	Supported   bool         `json:"supported"`
	Note        string       `json:"note,omitempty"`
	Domain      string       `json:"domain,omitempty"`
	Summary     string       `json:"summary,omitempty"`
	Obligations []Obligation `json:"obligations,omitempty"`
}

// MarshalJSON distinguishes a document analyzed down to zero obligations
// from a note entry: the former serializes "obligations": [], the latter
// has no obligations key at all. omitempty alone drops both, since
// encoding/json cannot tell a nil slice from an empty one.
func (e DocumentEntry) MarshalJSON() ([]byte, error) {
	type entry DocumentEntry
	aux := struct {
		entry
		Obligations json.RawMessage `json:"obligations,omitempty"`
	}{entry: entry(e)}

	if e.Obligations != nil {
		data, err := json.Marshal(e.Obligations)
		if err != nil {
			return nil, err
		}
		aux.Obligations = data
	}
	return json.Marshal(aux)
}

// AnalysisResult is the sole output of the pipeline: one entry per input
// document in input order, plus the flattened checklist ascending by id.
type AnalysisResult struct {
	Files             []DocumentEntry `json:"files"`
	CombinedChecklist []ChecklistItem `json:"combined_checklist"`
}
