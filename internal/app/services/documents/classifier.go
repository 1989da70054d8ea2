package documents

import (
	"strings"

	"carelink-service/internal/pkg/fhir_dto"
)

// ClassifySection computes the category of one composition section. The
// precedence is fixed: exact code match first, then title keywords in rule
// order, then the others bucket. Every section maps to exactly one category.
func ClassifySection(section *fhir_dto.CompositionSection) string {
	if category, ok := sectionCodeCategories[section.SectionCode()]; ok {
		return category
	}
	title := strings.ToLower(section.Title)
	for _, rule := range titleKeywordRules {
		if strings.Contains(title, rule.keyword) {
			return rule.category
		}
	}
	return CategoryOthers
}
