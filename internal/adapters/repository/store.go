// Package repository persists the identity catalog snapshot between runs.
package repository

import "context"

// CatalogStore keeps the raw catalog snapshot downloaded from the league
// service.
type CatalogStore interface {
	// Save replaces the snapshot.
	Save(ctx context.Context, data []byte) error
	// Load returns the snapshot, or ErrNotFound if none was saved.
	Load(ctx context.Context) ([]byte, error)
	// Exists reports whether a snapshot is present.
	Exists(ctx context.Context) bool
}
