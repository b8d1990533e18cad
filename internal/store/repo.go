package store

import "context"

// KV is the persistence capability the statistics store is built on:
// a flat map from key to a text document.
type KV interface {
	// Get returns the value under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set replaces the value under key.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key succeeds.
	Remove(ctx context.Context, key string) error
}

var (
	_ KV = (*Store)(nil)
	_ KV = (*Memory)(nil)
)
