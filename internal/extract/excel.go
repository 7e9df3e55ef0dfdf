package extract

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExcelExtractor extracts cell text from spreadsheet files, one line per
// row with cells joined by single spaces. Legacy .xls files are routed
// here too; excelize rejects them on open and the error surfaces as a
// per-document extraction failure.
type ExcelExtractor struct{}

func NewExcelExtractor() *ExcelExtractor {
	return &ExcelExtractor{}
}

func (e *ExcelExtractor) Name() string {
	return "excel"
}

func (e *ExcelExtractor) Extensions() []string {
	return []string{".xlsx", ".xls"}
}

func (e *ExcelExtractor) Extract(filePath string) (string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var lines []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		for _, row := range rows {
			line := strings.TrimSpace(strings.Join(row, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
	}

	return strings.Join(lines, "\n"), nil
}
