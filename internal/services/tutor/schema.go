package tutor

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"

	"github.com/bobmcallan/vibeterms/internal/models"
)

var termFields = []string{"word", "category", "definition", "simpleExplanation", "analogy", "examplePrompt", "tags"}

// termResponseSchema constrains the model's JSON output to the Term shape.
func termResponseSchema() *genai.Schema {
	str := func() *genai.Schema { return &genai.Schema{Type: genai.TypeString} }
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"word":              str(),
			"category":          {Type: genai.TypeString, Enum: models.CategoryValues()},
			"definition":        str(),
			"simpleExplanation": str(),
			"analogy":           str(),
			"examplePrompt":     str(),
			"tags":              {Type: genai.TypeArray, Items: str()},
		},
		Required: append([]string(nil), termFields...),
	}
}

// termValidationSchema mirrors termResponseSchema as JSON Schema so the
// decoded document is checked locally; the model does not always honor the
// response schema.
func termValidationSchema() map[string]any {
	nonEmpty := map[string]any{"type": "string", "minLength": 1}
	enum := make([]any, 0, len(models.Categories()))
	for _, v := range models.CategoryValues() {
		enum = append(enum, v)
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"word":              nonEmpty,
			"category":          map[string]any{"type": "string", "enum": enum},
			"definition":        nonEmpty,
			"simpleExplanation": nonEmpty,
			"analogy":           nonEmpty,
			"examplePrompt":     nonEmpty,
			"tags":              map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required": termFields,
	}
}

type validator struct {
	schema *gojsonschema.Schema
}

func newValidator() (*validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(termValidationSchema()))
	if err != nil {
		return nil, fmt.Errorf("compile term schema: %w", err)
	}
	return &validator{schema: schema}, nil
}

func (v *validator) validate(doc string) error {
	result, err := v.schema.Validate(gojsonschema.NewStringLoader(doc))
	if err != nil {
		return fmt.Errorf("validation execution failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(errs, "; "))
}
