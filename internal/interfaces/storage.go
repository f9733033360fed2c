package interfaces

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned (wrapped) by KeyValueStorage.Get for a missing key.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStorage is the durable string-valued store behind the catalog and
// settings. A missing key is not a failure for callers: they treat it as empty.
type KeyValueStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
