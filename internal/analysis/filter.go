package analysis

import (
	"strings"

	"github.com/compliance-checklist/backend/internal/models"
)

// FilterChecklist applies a ChecklistQuery and pagination to in-memory
// items. It backs checklist reads when a session has no database store.
// Items are assumed ordered by id, as Aggregate emits them.
func FilterChecklist(items []models.ChecklistItem, q ChecklistQuery, page, pageSize int) ([]models.ChecklistItem, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 100
	}

	search := strings.ToLower(q.Search)
	matched := make([]models.ChecklistItem, 0, len(items))
	for _, item := range items {
		if q.Risk != "" && string(item.Risk) != q.Risk {
			continue
		}
		if q.Document != "" && item.Document != q.Document {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Sentence), search) {
			continue
		}
		matched = append(matched, item)
	}

	total := len(matched)
	start := (page - 1) * pageSize
	if start >= total {
		return []models.ChecklistItem{}, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return matched[start:end], total
}
