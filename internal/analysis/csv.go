package analysis

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/compliance-checklist/backend/internal/models"
)

// ChecklistCSVHeader is the column order of the tabular checklist
// projection.
var ChecklistCSVHeader = []string{"id", "document", "sentence", "dates", "assigned_to", "status", "risk"}

// WriteChecklistCSV writes the flattened checklist projection: one row
// per item, dates semicolon-joined.
func WriteChecklistCSV(w io.Writer, items []models.ChecklistItem) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ChecklistCSVHeader); err != nil {
		return err
	}
	for _, item := range items {
		row := []string{
			strconv.Itoa(item.ID),
			item.Document,
			item.Sentence,
			strings.Join(item.Dates, ";"),
			item.AssignedTo,
			string(item.Status),
			string(item.Risk),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
