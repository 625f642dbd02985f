package kv

import "context"

// Store is the durable key-value capability injected into studykit services.
// Values are opaque strings; serialization is the caller's concern.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound if absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
