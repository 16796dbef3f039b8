// Package kvstore is the persisted key-value store the session is mirrored
// into: string values addressed by string keys ("@user", "@token", ...).
//
// Two implementations are provided. SQLiteStore keeps the data in a local
// SQLite file (pure-Go driver, schema managed by embedded goose migrations);
// MemoryStore keeps it in a map and is meant for tests and throwaway runs.
//
// MultiSet and MultiRemove apply all of their keys or none of them.
package kvstore

import "context"

// Store is asynchronous-style string storage keyed by name.
type Store interface {
	// Get returns the value under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	MultiSet(ctx context.Context, pairs map[string]string) error
	MultiRemove(ctx context.Context, keys ...string) error
}
