package common

import (
	"context"
	"strings"
)

// UserContext holds per-request overrides injected via X-Vibeterms-* headers.
// When absent (nil), the stored settings and environment are used.
type UserContext struct {
	GeminiAPIKey string
}

type contextKey int

const userContextKey contextKey = iota

// WithUserContext stores a UserContext in the request context.
func WithUserContext(ctx context.Context, uc *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, uc)
}

// UserContextFromContext retrieves the UserContext from context, or nil if absent.
func UserContextFromContext(ctx context.Context) *UserContext {
	uc, _ := ctx.Value(userContextKey).(*UserContext)
	return uc
}

// ResolveGeminiKeyOverride returns the per-request Gemini key, or "" when none was sent.
func ResolveGeminiKeyOverride(ctx context.Context) string {
	if uc := UserContextFromContext(ctx); uc != nil {
		return strings.TrimSpace(uc.GeminiAPIKey)
	}
	return ""
}
