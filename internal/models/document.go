package models

// Document is one unit of input to the analysis pipeline: the extracted
// text of an uploaded file, or the reason extraction was not possible.
// Immutable once built by the extraction layer.
type Document struct {
	Filename  string `json:"filename"`
	Supported bool   `json:"supported"`
	Text      string `json:"text,omitempty"`
	Errors    string `json:"errors,omitempty"`
}
