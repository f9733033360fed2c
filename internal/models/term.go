package models

import (
	"fmt"
	"strings"
)

// Category is one of the six fixed glossary categories. Values are the Korean
// display labels, which is also what gets persisted and sent to Gemini.
type Category string

const (
	CategoryPlanning     Category = "기획/설계"
	CategoryCoding       Category = "개발/코딩"
	CategoryPrompting    Category = "프롬프트/주문"
	CategoryInfra        Category = "배포/운영"
	CategoryDesign       Category = "디자인/UI"
	CategoryDataAnalysis Category = "데이터/분석"
)

// CategoryAll is the filter wildcard. It is never a valid term category.
const CategoryAll Category = "ALL"

var categories = []Category{
	CategoryPlanning,
	CategoryCoding,
	CategoryPrompting,
	CategoryInfra,
	CategoryDesign,
	CategoryDataAnalysis,
}

// Categories returns the six categories in declaration order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryValues returns the category labels as plain strings (schema enums).
func CategoryValues() []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}

// Valid reports whether c is one of the six fixed categories.
func (c Category) Valid() bool {
	for _, v := range categories {
		if c == v {
			return true
		}
	}
	return false
}

// Term is a glossary entry. Built-in and generated terms share this shape.
// JSON names match the persisted blobs and the Gemini response schema.
type Term struct {
	ID                string   `json:"id"`
	Word              string   `json:"word"`
	Category          Category `json:"category"`
	Definition        string   `json:"definition"`
	SimpleExplanation string   `json:"simpleExplanation"`
	Analogy           string   `json:"analogy"`
	ExamplePrompt     string   `json:"examplePrompt"`
	Tags              []string `json:"tags"`
}

// Validate checks the shape contract shared by every term, excluding the id.
func (t *Term) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"word", t.Word},
		{"definition", t.Definition},
		{"simpleExplanation", t.SimpleExplanation},
		{"analogy", t.Analogy},
		{"examplePrompt", t.ExamplePrompt},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("term field '%s' is empty", f.name)
		}
	}
	if !t.Category.Valid() {
		return fmt.Errorf("term category '%s' is not a known category", t.Category)
	}
	return nil
}

// Clone returns a deep copy so callers can't mutate catalog state through tags.
func (t Term) Clone() Term {
	if t.Tags != nil {
		tags := make([]string, len(t.Tags))
		copy(tags, t.Tags)
		t.Tags = tags
	}
	return t
}

// CatalogState is the persisted user slice of the catalog.
type CatalogState struct {
	CustomTerms       []Term   `json:"customTerms"`
	DeletedDefaultIDs []string `json:"deletedDefaultIds"`
}
