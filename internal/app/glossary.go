package app

import (
	"context"
	"strings"

	"github.com/bobmcallan/vibeterms/internal/common"
	"github.com/bobmcallan/vibeterms/internal/models"
	"github.com/bobmcallan/vibeterms/internal/services/tutor"
)

// UserKey returns the per-request override key if one was sent, else the
// saved user key. An empty result means the environment credential applies.
func (a *App) UserKey(ctx context.Context) string {
	if k := common.ResolveGeminiKeyOverride(ctx); k != "" {
		return k
	}
	return a.Settings.APIKey(ctx)
}

// GenerateTerm synthesizes a term for keyword and, on success, adds it to
// the catalog.
func (a *App) GenerateTerm(ctx context.Context, keyword string) models.TermResult {
	res := a.Tutor.SynthesizeTerm(ctx, strings.TrimSpace(keyword), a.UserKey(ctx))
	if res.OK() {
		a.Catalog.AddGeneratedTerm(ctx, *res.Term)
	}
	return res
}

// ExplainTerm asks the tutor about a visible term. found is false for an
// unknown id, in which case no call is made.
func (a *App) ExplainTerm(ctx context.Context, id, question string) (res models.ExplainResult, found bool) {
	term, ok := a.Catalog.Get(id)
	if !ok {
		return models.ExplainResult{}, false
	}
	return a.Tutor.ExplainTerm(ctx, term, question, a.UserKey(ctx)), true
}

// GenerateFailureMessage maps a failed generation to the message shown to the user.
func GenerateFailureMessage(f models.Failure) string {
	if f == models.FailureNoCredential {
		return tutor.MsgGenerateNoCredential
	}
	return tutor.MsgGenerateFailed
}
