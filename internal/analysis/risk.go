package analysis

import (
	"strings"

	"github.com/compliance-checklist/backend/internal/models"
)

// RiskOf assigns a risk tier to an obligation sentence by keyword
// presence. Tiers are checked in priority order: a sentence matching
// both High and Medium keywords is High.
func (rs *RuleSet) RiskOf(sentence string) models.RiskLevel {
	s := strings.ToLower(sentence)
	for _, kw := range rs.Risk.High {
		if strings.Contains(s, kw) {
			return models.RiskHigh
		}
	}
	for _, kw := range rs.Risk.Medium {
		if strings.Contains(s, kw) {
			return models.RiskMedium
		}
	}
	return models.RiskLow
}
