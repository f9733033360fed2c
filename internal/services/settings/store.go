// Package settings persists the user-supplied Gemini API key
package settings

import (
	"context"
	"errors"
	"strings"

	"github.com/bobmcallan/vibeterms/internal/common"
	"github.com/bobmcallan/vibeterms/internal/interfaces"
	"github.com/bobmcallan/vibeterms/internal/models"
)

// Store implements SettingsService over the key-value storage
type Store struct {
	kv     interfaces.KeyValueStorage
	logger *common.Logger
}

// NewStore creates a settings store
func NewStore(kv interfaces.KeyValueStorage, logger *common.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

// APIKey returns the saved key, or "" when none is saved or storage fails.
func (s *Store) APIKey(ctx context.Context) string {
	v, err := s.kv.Get(ctx, models.KeyUserAPIKey)
	if err != nil {
		if !errors.Is(err, interfaces.ErrKeyNotFound) {
			s.logger.Warn().Err(err).Msg("Failed to read user API key")
		}
		return ""
	}
	return strings.TrimSpace(v)
}

// SetAPIKey saves the trimmed key. An empty key clears the setting.
func (s *Store) SetAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return s.kv.Delete(ctx, models.KeyUserAPIKey)
	}
	return s.kv.Set(ctx, models.KeyUserAPIKey, key)
}

// Masked returns the saved key with all but the last four characters hidden.
func (s *Store) Masked(ctx context.Context) string {
	return MaskKey(s.APIKey(ctx))
}

// MaskKey hides all but the last four characters of key.
func MaskKey(key string) string {
	if key == "" {
		return ""
	}
	r := []rune(key)
	if len(r) <= 4 {
		return strings.Repeat("*", len(r))
	}
	return strings.Repeat("*", len(r)-4) + string(r[len(r)-4:])
}

// Ensure Store implements SettingsService
var _ interfaces.SettingsService = (*Store)(nil)
