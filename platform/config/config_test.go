package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("NOTION_TOKEN", "secret_abc")
	t.Setenv("SUBCONTRACTORS_DB", "db-subs")
	t.Setenv("SUB_ITINERARY_DB", "db-items")
	t.Setenv("TASK_DB", "db-tasks")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":8000" {
		t.Fatalf("expected default addr :8000, got %q", cfg.HTTPAddr)
	}
	if cfg.NotionBaseURL != "https://api.notion.com" {
		t.Fatalf("unexpected base url %q", cfg.NotionBaseURL)
	}
	if cfg.NotionTimeout != 15*time.Second {
		t.Fatalf("expected 15s timeout, got %s", cfg.NotionTimeout)
	}
	if cfg.TaskLookupConcurrency != 1 {
		t.Fatalf("expected sequential task lookups by default, got %d", cfg.TaskLookupConcurrency)
	}
}

func TestLoad_LegacyKeys(t *testing.T) {
	t.Setenv("NOTION_TOKEN", "")
	t.Setenv("TOKEN", "legacy_token")
	t.Setenv("SUBCONTRACTORS_DB", "")
	t.Setenv("SUBCONTRACTORS", "legacy-subs")
	t.Setenv("SUB_ITINERARY_DB", "db-items")
	t.Setenv("TASK_DB", "db-tasks")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GetNotionToken() != "legacy_token" {
		t.Fatalf("expected legacy token, got %q", cfg.GetNotionToken())
	}
	if cfg.GetSubcontractorsDB() != "legacy-subs" {
		t.Fatalf("expected legacy subcontractors db, got %q", cfg.GetSubcontractorsDB())
	}
}

func TestLoad_MissingToken(t *testing.T) {
	setRequired(t)
	t.Setenv("NOTION_TOKEN", "")
	t.Setenv("TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when token is missing")
	}
}

func TestLoad_WildcardCORSRejectsCredentials(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_ORIGINS", "*")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for wildcard origins with credentials")
	}
}
