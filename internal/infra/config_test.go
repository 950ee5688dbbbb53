package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "k")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("port = %q", cfg.Port)
	}
	if cfg.GeminiImageModel != "gemini-3-pro-image-preview" {
		t.Fatalf("image model = %q", cfg.GeminiImageModel)
	}
	if cfg.HTTPWriteTimeout != 120*time.Second {
		t.Fatalf("write timeout = %v", cfg.HTTPWriteTimeout)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("origins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadConfigRequiresGeminiKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error without GEMINI_API_KEY")
	}
}

func TestLoadConfigRequiresSupabaseKeyWithURL(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_SERVICE_KEY", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error without SUPABASE_SERVICE_KEY")
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" http://a.example , ,http://b.example")
	if len(got) != 2 || got[0] != "http://a.example" || got[1] != "http://b.example" {
		t.Fatalf("splitCSV = %v", got)
	}
}
