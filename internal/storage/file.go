// Package storage provides key-value persistence with pluggable backends.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bobmcallan/vibeterms/internal/common"
	"github.com/bobmcallan/vibeterms/internal/interfaces"
	"github.com/bobmcallan/vibeterms/internal/models"
)

// FileStore keeps one JSON file per key under basePath/kv, with optional
// version backups (key.json.v1 .. key.json.vN).
type FileStore struct {
	dir      string
	versions int
	logger   *common.Logger
	mu       sync.Mutex
}

// NewFileStore creates a FileStore and ensures its directory exists.
func NewFileStore(logger *common.Logger, basePath string, versions int) (*FileStore, error) {
	if versions < 0 {
		versions = 0
	}
	dir := filepath.Join(basePath, "kv")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	logger.Debug().Str("path", dir).Int("versions", versions).Msg("FileStore opened")
	return &FileStore{dir: dir, versions: versions, logger: logger}, nil
}

// sanitizeKey makes a key safe for use as a filename.
// Replaces /, \, : with _ and collapses ".." to "_" to prevent path traversal.
func sanitizeKey(key string) string {
	r := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "..", "_")
	return r.Replace(key)
}

func (fs *FileStore) filePath(key string) string {
	return filepath.Join(fs.dir, sanitizeKey(key)+".json")
}

func (fs *FileStore) Get(_ context.Context, key string) (string, error) {
	path := fs.filePath(key)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("key '%s': %w", key, interfaces.ErrKeyNotFound)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	var entry models.KVEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return entry.Value, nil
}

// Set writes the entry atomically: temp file in the same directory, then rename.
func (fs *FileStore) Set(_ context.Context, key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	target := fs.filePath(key)

	jsonData, err := json.MarshalIndent(models.KVEntry{Key: key, Value: value}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	jsonData = append(jsonData, '\n')

	if fs.versions > 0 {
		fs.rotateVersions(target)
	}

	tmpFile, err := os.CreateTemp(fs.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(jsonData); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// rotateVersions shifts existing versions up and moves current to v1.
// v{N} -> deleted, v{N-1} -> v{N}, ..., v1 -> v2, current -> v1
func (fs *FileStore) rotateVersions(target string) {
	os.Remove(fmt.Sprintf("%s.v%d", target, fs.versions))

	for i := fs.versions; i > 1; i-- {
		src := fmt.Sprintf("%s.v%d", target, i-1)
		dst := fmt.Sprintf("%s.v%d", target, i)
		os.Rename(src, dst) // may not exist yet
	}

	if _, err := os.Stat(target); err == nil {
		os.Rename(target, target+".v1")
	}
}

// Delete removes a key and all its version backups. Missing keys are ignored.
func (fs *FileStore) Delete(_ context.Context, key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	target := fs.filePath(key)
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", target, err)
	}
	for i := 1; i <= fs.versions; i++ {
		os.Remove(fmt.Sprintf("%s.v%d", target, i))
	}
	return nil
}

// Close is a no-op; files are closed after every write.
func (fs *FileStore) Close() error {
	return nil
}

var _ interfaces.KeyValueStorage = (*FileStore)(nil)
