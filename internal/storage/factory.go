package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bobmcallan/vibeterms/internal/common"
	"github.com/bobmcallan/vibeterms/internal/interfaces"
	"github.com/bobmcallan/vibeterms/internal/storage/badger"
	"github.com/bobmcallan/vibeterms/internal/storage/surrealdb"
)

// Backend type constants.
const (
	BackendBadger    = "badger"
	BackendFile      = "file"
	BackendMemory    = "memory"
	BackendSurrealDB = "surrealdb"
)

// fileVersions is how many backups the file backend keeps per key.
const fileVersions = 2

// NewKeyValueStorage opens the backend named in config.Storage.Backend.
// Supported backends: "badger" (default), "file", "memory", "surrealdb".
func NewKeyValueStorage(ctx context.Context, logger *common.Logger, config *common.Config) (interfaces.KeyValueStorage, error) {
	backend := strings.ToLower(strings.TrimSpace(config.Storage.Backend))
	if backend == "" {
		backend = BackendBadger
	}

	switch backend {
	case BackendBadger:
		return badger.NewStore(logger, filepath.Join(config.Storage.Path, "badger"))

	case BackendFile:
		return NewFileStore(logger, config.Storage.Path, fileVersions)

	case BackendMemory:
		logger.Warn().Msg("Using in-memory storage: catalog changes will be lost on restart")
		return NewMemoryStore(), nil

	case BackendSurrealDB:
		return surrealdb.NewStore(ctx, logger, config.Storage.SurrealDB)

	default:
		return nil, fmt.Errorf("unknown storage backend: %s (supported: badger, file, memory, surrealdb)", backend)
	}
}
