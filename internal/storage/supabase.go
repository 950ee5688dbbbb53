package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	storage_go "github.com/supabase-community/storage-go"
)

// SupabaseStore keeps photos in a Supabase Storage bucket, matching where the
// product's web client uploads to.
type SupabaseStore struct {
	client *storage_go.Client
	bucket string
}

// NewSupabaseStore builds a store against the given project URL and service
// key.
func NewSupabaseStore(projectURL, serviceKey, bucket string) (*SupabaseStore, error) {
	projectURL = strings.TrimRight(strings.TrimSpace(projectURL), "/")
	if projectURL == "" {
		return nil, errors.New("storage: supabase url is required")
	}
	if strings.TrimSpace(serviceKey) == "" {
		return nil, errors.New("storage: supabase service key is required")
	}
	if strings.TrimSpace(bucket) == "" {
		return nil, errors.New("storage: supabase bucket is required")
	}
	client := storage_go.NewClient(projectURL+"/storage/v1", serviceKey, nil)
	return &SupabaseStore{client: client, bucket: bucket}, nil
}

// Upload stores the bytes under key and returns the bucket-relative path.
func (s *SupabaseStore) Upload(ctx context.Context, key, mime string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	cleanKey, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	opts := storage_go.FileOptions{ContentType: &mime}
	if _, err := s.client.UploadFile(s.bucket, cleanKey, bytes.NewReader(data), opts); err != nil {
		return "", fmt.Errorf("storage: supabase upload: %w", err)
	}
	return cleanKey, nil
}

// Read downloads the object stored under key.
func (s *SupabaseStore) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cleanKey, err := sanitizeKey(key)
	if err != nil {
		return nil, err
	}
	data, err := s.client.DownloadFile(s.bucket, cleanKey)
	if err != nil {
		return nil, fmt.Errorf("storage: supabase download: %w", err)
	}
	return data, nil
}

// Remove deletes the object stored under path.
func (s *SupabaseStore) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cleanKey, err := sanitizeKey(path)
	if err != nil {
		return err
	}
	if _, err := s.client.RemoveFile(s.bucket, []string{cleanKey}); err != nil {
		return fmt.Errorf("storage: supabase remove: %w", err)
	}
	return nil
}

// PublicURL returns the public object URL for a stored path.
func (s *SupabaseStore) PublicURL(path string) string {
	return s.client.GetPublicUrl(s.bucket, strings.TrimLeft(path, "/")).SignedURL
}

var _ Store = (*SupabaseStore)(nil)
