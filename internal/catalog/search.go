package catalog

import (
	"strings"

	"github.com/bobmcallan/vibeterms/internal/models"
)

// Search keeps terms whose category matches (CategoryAll or "" matches every
// category) and whose word, definition, simple explanation or any tag contains
// query, case-insensitively. Order is preserved. An empty query matches all.
func Search(terms []models.Term, category models.Category, query string) []models.Term {
	q := strings.ToLower(query)
	out := make([]models.Term, 0, len(terms))
	for _, t := range terms {
		if category != models.CategoryAll && category != "" && t.Category != category {
			continue
		}
		if !matchesQuery(t, q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesQuery(t models.Term, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Word), q) ||
		strings.Contains(strings.ToLower(t.Definition), q) ||
		strings.Contains(strings.ToLower(t.SimpleExplanation), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
