package models

// Storage keys. Each is an independent string value in the key-value store.
const (
	KeyCustomTerms       = "customTerms"
	KeyDeletedDefaultIDs = "deletedDefaultIds"
	KeyUserAPIKey        = "userApiKey"
)

// KVEntry is a single stored key-value pair.
type KVEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
