// Package kvstore provides key-based persistent storage with JSON
// encode/decode and default-value fallback.
//
// The adapter isolates every persistence-backend call so the rest of the
// system can run against an in-memory stub. Read failures degrade silently
// to the caller's default value and write failures are swallowed; the store
// is a local cache, not a system of record.
package kvstore

import (
	"context"
	"encoding/json"
)

// Store is the persistence contract shared by all drivers.
type Store interface {
	// Load returns the raw bytes stored at key. The boolean is false when
	// the key is absent.
	Load(ctx context.Context, key string) ([]byte, bool, error)

	// Save writes raw bytes at key, replacing any previous value.
	Save(ctx context.Context, key string, value []byte) error

	// Remove deletes the value at key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Clear deletes every key owned by this store.
	Clear(ctx context.Context) error

	// Ping checks backend connectivity.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// Get loads and decodes the JSON value at key. It returns defaultValue when
// the key is absent, the driver fails, or the stored bytes do not parse.
// Get never returns an error.
func Get[T any](ctx context.Context, s Store, key string, defaultValue T) T {
	raw, ok, err := s.Load(ctx, key)
	if err != nil || !ok {
		return defaultValue
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return defaultValue
	}
	return out
}

// Put encodes value as JSON and writes it at key. Marshal and driver errors
// are swallowed; the worst-case failure mode is stale data on the next load.
func Put[T any](ctx context.Context, s Store, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = s.Save(ctx, key, raw)
}
