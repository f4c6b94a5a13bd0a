package kv

import (
	"context"
)

// Store is a persistent key-value store.
type Store interface {
	// Get returns the stored value or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set inserts or replaces the value under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Transactor is implemented by stores that can apply several writes atomically.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}

// RunInTx runs fn atomically when s supports it and directly otherwise.
func RunInTx(ctx context.Context, s Store, fn func(ctx context.Context, s Store) error) error {
	if tx, ok := s.(Transactor); ok {
		return tx.RunInTx(ctx, fn)
	}
	return fn(ctx, s)
}
