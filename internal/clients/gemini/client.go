// Package gemini provides a client for the Google Gemini API
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/bobmcallan/vibeterms/internal/common"
	"github.com/bobmcallan/vibeterms/internal/interfaces"
)

const (
	DefaultModel = "gemini-2.5-flash"

	// NoThinkingBudget leaves the model's thinking configuration untouched.
	NoThinkingBudget int32 = -1
)

// Client implements the GeminiClient interface
type Client struct {
	client         *genai.Client
	model          string
	thinkingBudget int32
	logger         *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithModel sets the model to use
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithThinkingBudget sets the thinking token budget for text generation.
// Zero disables thinking; NoThinkingBudget keeps the model default.
func WithThinkingBudget(budget int32) ClientOption {
	return func(c *Client) {
		c.thinkingBudget = budget
	}
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client:         genaiClient,
		model:          DefaultModel,
		thinkingBudget: NoThinkingBudget,
		logger:         common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.model
}

// GenerateContent generates free text (markdown) from a prompt
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	c.logger.Debug().Str("model", c.model).Int32("thinking_budget", c.thinkingBudget).Msg("Generating content")

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), textConfig(c.thinkingBudget))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(result), nil
}

// GenerateJSON generates a JSON document constrained by schema
func (c *Client) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	c.logger.Debug().Str("model", c.model).Msg("Generating structured content")

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), jsonConfig(schema))
	if err != nil {
		return "", fmt.Errorf("failed to generate structured content: %w", err)
	}

	return extractTextFromResponse(result), nil
}

func textConfig(budget int32) *genai.GenerateContentConfig {
	if budget < 0 {
		return nil
	}
	b := budget
	return &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: &b},
	}
}

func jsonConfig(schema *genai.Schema) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
}

// extractTextFromResponse extracts text from a generate content response.
// A response without content yields "", which callers treat as empty output.
func extractTextFromResponse(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}

	return sb.String()
}

// Ensure Client implements GeminiClient
var _ interfaces.GeminiClient = (*Client)(nil)
