package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"
)

// DocxExtractor extracts paragraph text from DOCX files. A .docx is a zip
// container; the text lives in word/document.xml as w:t runs grouped into
// w:p paragraphs, so the archive is read directly without a format library.
type DocxExtractor struct{}

func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

func (e *DocxExtractor) Name() string {
	return "docx"
}

func (e *DocxExtractor) Extensions() []string {
	return []string{".docx"}
}

func (e *DocxExtractor) Extract(filePath string) (string, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return "", fmt.Errorf("opening docx container: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("opening document.xml: %w", err)
		}
		defer rc.Close()
		return extractDocxParagraphs(xml.NewDecoder(rc))
	}

	return "", fmt.Errorf("word/document.xml not found in archive")
}

// extractDocxParagraphs walks the document token stream, collecting text
// runs (w:t) and emitting one line per paragraph (w:p).
func extractDocxParagraphs(dec *xml.Decoder) (string, error) {
	var lines []string
	var para strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if line := strings.TrimSpace(para.String()); line != "" {
					lines = append(lines, line)
				}
				para.Reset()
			}
		case xml.CharData:
			if inText {
				para.Write(t)
			}
		}
	}

	if line := strings.TrimSpace(para.String()); line != "" {
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}
