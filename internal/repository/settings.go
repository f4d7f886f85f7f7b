package repository

import "context"

// Settings defines the interface for the persisted settings table.
type Settings interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set upserts a key/value pair.
	Set(ctx context.Context, key, value string) error

	// All returns every stored setting.
	All(ctx context.Context) (map[string]string, error)
}
