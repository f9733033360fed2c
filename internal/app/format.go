package app

import (
	"fmt"
	"strings"

	"github.com/bobmcallan/vibeterms/internal/models"
)

// FormatTermList renders search results as a markdown table.
func FormatTermList(terms []models.Term, category models.Category, query string) string {
	var sb strings.Builder

	scope := string(category)
	if scope == "" {
		scope = string(models.CategoryAll)
	}
	sb.WriteString(fmt.Sprintf("# 용어 목록 (%s", scope))
	if query != "" {
		sb.WriteString(fmt.Sprintf(", \"%s\"", query))
	}
	sb.WriteString(fmt.Sprintf(") · %d개\n\n", len(terms)))

	if len(terms) == 0 {
		sb.WriteString("검색 결과가 없습니다.\n")
		return sb.String()
	}

	sb.WriteString("| ID | 용어 | 카테고리 | 정의 |\n")
	sb.WriteString("|----|------|----------|------|\n")
	for _, t := range terms {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			t.ID, escapeCell(t.Word), t.Category, escapeCell(t.Definition)))
	}
	return sb.String()
}

// FormatTerm renders one term card as markdown.
func FormatTerm(t models.Term) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", t.Word))
	sb.WriteString(fmt.Sprintf("**카테고리:** %s  \n**ID:** %s\n\n", t.Category, t.ID))
	sb.WriteString(fmt.Sprintf("## 정의\n\n%s\n\n", t.Definition))
	sb.WriteString(fmt.Sprintf("## 쉽게 말하면\n\n%s\n\n", t.SimpleExplanation))
	sb.WriteString(fmt.Sprintf("## 비유\n\n> %s\n\n", t.Analogy))
	sb.WriteString(fmt.Sprintf("## 프롬프트 예시\n\n```\n%s\n```\n", t.ExamplePrompt))
	if len(t.Tags) > 0 {
		tags := make([]string, len(t.Tags))
		for i, tag := range t.Tags {
			tags[i] = "#" + tag
		}
		sb.WriteString(fmt.Sprintf("\n%s\n", strings.Join(tags, " ")))
	}
	return sb.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
