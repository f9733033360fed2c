// Package interfaces defines service contracts for vibeterms
package interfaces

import (
	"context"

	"google.golang.org/genai"
)

// GeminiClient provides access to the Gemini generative API
type GeminiClient interface {
	// GenerateContent returns free text (markdown) for a prompt
	GenerateContent(ctx context.Context, prompt string) (string, error)

	// GenerateJSON returns a JSON document constrained by schema
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}
