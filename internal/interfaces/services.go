package interfaces

import (
	"context"

	"github.com/bobmcallan/vibeterms/internal/models"
)

// CatalogService manages the merged glossary of built-in and generated terms
type CatalogService interface {
	AllTerms() []models.Term
	Search(category models.Category, query string) []models.Term
	Get(id string) (models.Term, bool)
	AddGeneratedTerm(ctx context.Context, term models.Term)
	DeleteTerm(ctx context.Context, id string)
	Reset(ctx context.Context)
	State() models.CatalogState
}

// SettingsService persists the user-supplied Gemini API key
type SettingsService interface {
	APIKey(ctx context.Context) string
	SetAPIKey(ctx context.Context, key string) error
	Masked(ctx context.Context) string
}

// TutorService calls Gemini to synthesize new terms and explain existing ones.
// Failures are reported in the result, never as errors.
type TutorService interface {
	SynthesizeTerm(ctx context.Context, keyword, userKey string) models.TermResult
	ExplainTerm(ctx context.Context, term models.Term, question, userKey string) models.ExplainResult
	HasCredential(userKey string) bool
}
