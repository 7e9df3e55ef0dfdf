package extract

import "os"

// PlainTextExtractor reads text-based files verbatim.
type PlainTextExtractor struct{}

func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

func (e *PlainTextExtractor) Name() string {
	return "text"
}

func (e *PlainTextExtractor) Extensions() []string {
	return []string{".txt", ".text", ".md", ".log"}
}

func (e *PlainTextExtractor) Extract(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
