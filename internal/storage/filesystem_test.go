package storage

import (
	"bytes"
	"context"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "/api/photos")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()
	data := []byte{0x89, 0x50, 0x4e, 0x47}

	path, err := store.Upload(ctx, "plans/a.png", "image/png", data)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if path != "plans/a.png" {
		t.Fatalf("path = %q", path)
	}

	got, err := store.Read(ctx, path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("read bytes mismatch")
	}

	if url := store.PublicURL(path); url != "/api/photos/plans/a.png" {
		t.Fatalf("url = %q", url)
	}

	if err := store.Remove(ctx, path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := store.Read(ctx, path); err == nil {
		t.Fatalf("read after remove should fail")
	}
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "/api/photos")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	for _, key := range []string{"../escape.png", "..", "a/../../escape.png", "  "} {
		if _, err := store.Upload(ctx, key, "image/png", []byte("x")); err == nil {
			t.Fatalf("upload accepted key %q", key)
		}
		if _, err := store.Read(ctx, key); err == nil {
			t.Fatalf("read accepted key %q", key)
		}
	}
}

func TestSanitizeKeyNormalizes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/plans/a.png", "plans/a.png"},
		{"./plans/a.png", "plans/a.png"},
		{"plans//a.png", "plans/a.png"},
		{`plans\a.png`, "plans/a.png"},
	}
	for _, tc := range cases {
		got, err := sanitizeKey(tc.in)
		if err != nil {
			t.Fatalf("sanitizeKey(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("sanitizeKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
