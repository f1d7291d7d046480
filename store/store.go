// Package store provides the key-value medium collections are persisted
// to: one key per collection, values are opaque JSON blobs. The SQLite
// implementation backs the running server; the in-memory one backs tests.
package store

type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
