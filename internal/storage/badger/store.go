// Package badger implements KeyValueStorage using BadgerHold.
package badger

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bobmcallan/vibeterms/internal/common"
	"github.com/bobmcallan/vibeterms/internal/interfaces"
	"github.com/bobmcallan/vibeterms/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// Store wraps a BadgerHold database holding KV entries.
type Store struct {
	db     *badgerhold.Store
	logger *common.Logger
}

// NewStore opens (or creates) a BadgerHold store at the given directory path.
func NewStore(logger *common.Logger, path string) (*Store, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create badger directory %s: %w", path, err)
	}

	options := badgerhold.DefaultOptions
	options.Dir = path
	options.ValueDir = path
	options.Logger = nil // Disable default badger logger

	db, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database at %s: %w", path, err)
	}

	logger.Debug().Str("path", path).Msg("BadgerHold store opened")

	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	var entry models.KVEntry
	if err := s.db.Get(key, &entry); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return "", fmt.Errorf("key '%s': %w", key, interfaces.ErrKeyNotFound)
		}
		return "", fmt.Errorf("failed to get key '%s': %w", key, err)
	}
	return entry.Value, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	if err := s.db.Upsert(key, &entry); err != nil {
		return fmt.Errorf("failed to set key '%s': %w", key, err)
	}
	s.logger.Trace().Str("key", key).Int("bytes", len(value)).Msg("KV set")
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	err := s.db.Delete(key, models.KVEntry{})
	if err != nil && !errors.Is(err, badgerhold.ErrNotFound) {
		return fmt.Errorf("failed to delete key '%s': %w", key, err)
	}
	return nil
}

// Close closes the BadgerHold database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

var _ interfaces.KeyValueStorage = (*Store)(nil)
