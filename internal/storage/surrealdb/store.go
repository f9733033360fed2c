// Package surrealdb implements KeyValueStorage on a SurrealDB "kv" table.
package surrealdb

import (
	"context"
	"fmt"

	"github.com/bobmcallan/vibeterms/internal/common"
	"github.com/bobmcallan/vibeterms/internal/interfaces"
	"github.com/bobmcallan/vibeterms/internal/models"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

const kvTable = "kv"

// Store keeps each key as a record kv:<key> with {key, value} content.
type Store struct {
	db     *surrealdb.DB
	logger *common.Logger
	owned  bool
}

// NewStore connects, signs in and selects the namespace/database from config.
func NewStore(ctx context.Context, logger *common.Logger, config common.SurrealDBConfig) (*Store, error) {
	db, err := surrealdb.New(config.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SurrealDB: %w", err)
	}

	if _, err := db.SignIn(ctx, map[string]interface{}{
		"user": config.Username,
		"pass": config.Password,
	}); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("failed to sign in to SurrealDB: %w", err)
	}

	if err := db.Use(ctx, config.Namespace, config.Database); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("failed to select namespace/database: %w", err)
	}

	s, err := NewStoreFromDB(ctx, db, logger)
	if err != nil {
		db.Close(ctx)
		return nil, err
	}
	s.owned = true

	logger.Info().
		Str("address", config.Address).
		Str("namespace", config.Namespace).
		Str("database", config.Database).
		Msg("SurrealDB storage initialized")

	return s, nil
}

// NewStoreFromDB wraps an already-connected database. The caller keeps
// ownership of db; Close on the returned store leaves it open.
func NewStoreFromDB(ctx context.Context, db *surrealdb.DB, logger *common.Logger) (*Store, error) {
	// SurrealDB v3 errors on querying non-existent tables
	sql := fmt.Sprintf("DEFINE TABLE IF NOT EXISTS %s SCHEMALESS", kvTable)
	if _, err := surrealdb.Query[any](ctx, db, sql, nil); err != nil {
		return nil, fmt.Errorf("failed to define table %s: %w", kvTable, err)
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	entry, err := surrealdb.Select[models.KVEntry](ctx, s.db, surrealmodels.NewRecordID(kvTable, key))
	if err != nil {
		return "", fmt.Errorf("failed to select key '%s': %w", key, err)
	}
	if entry == nil {
		return "", fmt.Errorf("key '%s': %w", key, interfaces.ErrKeyNotFound)
	}
	return entry.Value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	sql := "UPSERT type::record('kv', $id) CONTENT $kv"
	vars := map[string]any{
		"id": key,
		"kv": models.KVEntry{Key: key, Value: value},
	}

	for attempt := 1; attempt <= 3; attempt++ {
		_, err := surrealdb.Query[[]models.KVEntry](ctx, s.db, sql, vars)
		if err == nil {
			return nil
		}
		s.logger.Debug().Err(err).Str("key", key).Int("attempt", attempt).Msg("SurrealDB upsert failed")
		if attempt == 3 {
			return fmt.Errorf("failed to set key '%s' after retries: %w", key, err)
		}
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := surrealdb.Delete[models.KVEntry](ctx, s.db, surrealmodels.NewRecordID(kvTable, key)); err != nil {
		return fmt.Errorf("failed to delete key '%s': %w", key, err)
	}
	return nil
}

// Close closes the connection when the store opened it.
func (s *Store) Close() error {
	if s.owned && s.db != nil {
		return s.db.Close(context.Background())
	}
	return nil
}

var _ interfaces.KeyValueStorage = (*Store)(nil)
