package extract

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor extracts text from PDF files page by page. Pages that fail
// text extraction are skipped rather than failing the whole document.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

func (e *PDFExtractor) Name() string {
	return "pdf"
}

func (e *PDFExtractor) Extensions() []string {
	return []string{".pdf"}
}

func (e *PDFExtractor) Extract(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var chunks []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		txt, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if txt = strings.TrimSpace(txt); txt != "" {
			chunks = append(chunks, txt)
		}
	}

	return strings.Join(chunks, "\n"), nil
}
