// Package storage holds the blob store behind photo uploads and the static
// photo endpoint. The core generation pipeline never talks to it directly; it
// only ever sees public URLs.
package storage

import "context"

// Store is the contract shared by the filesystem and Supabase backends.
type Store interface {
	// Upload persists data under key and returns the canonical storage path.
	Upload(ctx context.Context, key, mime string, data []byte) (string, error)
	// Read returns the bytes stored under key.
	Read(ctx context.Context, key string) ([]byte, error)
	// Remove deletes the object stored under path.
	Remove(ctx context.Context, path string) error
	// PublicURL maps a storage path to the URL browsers fetch it from.
	PublicURL(path string) string
}
