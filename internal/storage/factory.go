package storage

import (
	"context"
	"fmt"
)

func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return newSQLiteStore(sqlitePath)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", kind)
	}
}

func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}

// ResetIfSupported drops all persisted data when the backend supports it.
func ResetIfSupported(ctx context.Context, store Store) error {
	resetter, ok := store.(Resetter)
	if !ok {
		return fmt.Errorf("store backend does not support reset")
	}
	return resetter.Reset(ctx)
}
