// Package tutor is the Gemini boundary: it synthesizes new glossary terms and
// explains existing ones. Every failure is folded into the result value.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bobmcallan/vibeterms/internal/common"
	"github.com/bobmcallan/vibeterms/internal/interfaces"
	"github.com/bobmcallan/vibeterms/internal/models"
)

// CredentialProvider supplies the process-level Gemini key.
type CredentialProvider interface {
	Credential() (string, bool)
}

// ClientFactory builds a Gemini client for one call.
type ClientFactory func(ctx context.Context, apiKey string) (interfaces.GeminiClient, error)

// Service implements TutorService
type Service struct {
	credentials CredentialProvider
	newClient   ClientFactory
	validator   *validator
	logger      *common.Logger
	newID       func() string
}

// Option configures the service
type Option func(*Service)

// WithIDGenerator replaces the term id generator
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

// NewService creates a new tutor service. credentials may be nil, in which
// case only user keys are used.
func NewService(credentials CredentialProvider, factory ClientFactory, logger *common.Logger, opts ...Option) (*Service, error) {
	if factory == nil {
		return nil, fmt.Errorf("client factory is required")
	}
	v, err := newValidator()
	if err != nil {
		return nil, err
	}

	s := &Service{
		credentials: credentials,
		newClient:   factory,
		validator:   v,
		logger:      logger,
		newID:       NewTermID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewTermID returns a fresh generated-term id: unix millis plus a random suffix.
func NewTermID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// ResolveCredential picks the trimmed user key when present, else the
// provider's key. ok is false when neither exists.
func (s *Service) ResolveCredential(userKey string) (string, bool) {
	if k := strings.TrimSpace(userKey); k != "" {
		return k, true
	}
	if s.credentials == nil {
		return "", false
	}
	return s.credentials.Credential()
}

// HasCredential reports whether a call with userKey would reach the model.
func (s *Service) HasCredential(userKey string) bool {
	_, ok := s.ResolveCredential(userKey)
	return ok
}

// SynthesizeTerm asks the model for a full term record for keyword.
func (s *Service) SynthesizeTerm(ctx context.Context, keyword, userKey string) models.TermResult {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return models.TermResult{Failure: models.FailureMalformed}
	}

	apiKey, ok := s.ResolveCredential(userKey)
	if !ok {
		s.logger.Warn().Str("keyword", keyword).Msg("Term generation skipped: no Gemini credential")
		return models.TermResult{Failure: models.FailureNoCredential}
	}

	client, err := s.newClient(ctx, apiKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create Gemini client")
		return models.TermResult{Failure: models.FailureConnection}
	}

	text, err := client.GenerateJSON(ctx, buildTermPrompt(keyword), termResponseSchema())
	if err != nil {
		s.logger.Error().Err(err).Str("keyword", keyword).Msg("Term generation failed")
		return models.TermResult{Failure: models.FailureConnection}
	}
	if strings.TrimSpace(text) == "" {
		s.logger.Warn().Str("keyword", keyword).Msg("Term generation returned no text")
		return models.TermResult{Failure: models.FailureEmpty}
	}

	term, err := s.decodeTerm(text)
	if err != nil {
		s.logger.Warn().Err(err).Str("keyword", keyword).Msg("Generated term rejected")
		return models.TermResult{Failure: models.FailureMalformed}
	}

	term.ID = s.newID()
	s.logger.Info().Str("id", term.ID).Str("word", term.Word).Str("category", string(term.Category)).Msg("Term generated")
	return models.TermResult{Term: term}
}

func (s *Service) decodeTerm(text string) (*models.Term, error) {
	if err := s.validator.validate(text); err != nil {
		return nil, err
	}

	var term models.Term
	if err := json.Unmarshal([]byte(text), &term); err != nil {
		return nil, fmt.Errorf("decode term: %w", err)
	}
	if term.Tags == nil {
		term.Tags = []string{}
	}
	if err := term.Validate(); err != nil {
		return nil, err
	}
	return &term, nil
}

// ExplainTerm answers question about term, or produces the three-part deep
// dive when question is blank. Text is always displayable.
func (s *Service) ExplainTerm(ctx context.Context, term models.Term, question, userKey string) models.ExplainResult {
	apiKey, ok := s.ResolveCredential(userKey)
	if !ok {
		return models.ExplainResult{Text: MsgNoCredential, Failure: models.FailureNoCredential}
	}

	prompt := buildDeepDivePrompt(term)
	if q := strings.TrimSpace(question); q != "" {
		prompt = buildQuestionPrompt(term, q)
	}

	client, err := s.newClient(ctx, apiKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create Gemini client")
		return models.ExplainResult{Text: MsgConnectionFailed, Failure: models.FailureConnection}
	}

	text, err := client.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Error().Err(err).Str("term", term.ID).Msg("Explanation failed")
		return models.ExplainResult{Text: MsgConnectionFailed, Failure: models.FailureConnection}
	}
	if strings.TrimSpace(text) == "" {
		return models.ExplainResult{Text: MsgEmptyExplanation, Failure: models.FailureEmpty}
	}

	return models.ExplainResult{Text: text}
}

// Ensure Service implements TutorService
var _ interfaces.TutorService = (*Service)(nil)
