package common

import (
	"context"
	"testing"
)

func TestResolveGeminiKeyOverride(t *testing.T) {
	if got := ResolveGeminiKeyOverride(context.Background()); got != "" {
		t.Errorf("no user context: got %q", got)
	}

	ctx := WithUserContext(context.Background(), &UserContext{GeminiAPIKey: " header-key "})
	if got := ResolveGeminiKeyOverride(ctx); got != "header-key" {
		t.Errorf("got %q, want header-key", got)
	}
}
