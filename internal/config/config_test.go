package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("timeout = %v, want 15s default", cfg.HTTPTimeout)
	}
	if !cfg.UseLocalScorer() {
		t.Error("expected local scorer with no API URL configured")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("UPSKILL_API_URL", "https://api.example.com")
	t.Setenv("UPSKILL_API_TOKEN", "secret")
	t.Setenv("UPSKILL_HTTP_TIMEOUT", "3s")
	t.Setenv("UPSKILL_DB", "/tmp/upskill-test.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Errorf("api url = %q", cfg.APIBaseURL)
	}
	if cfg.APIToken != "secret" {
		t.Errorf("token = %q", cfg.APIToken)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Errorf("timeout = %v, want 3s", cfg.HTTPTimeout)
	}
	if cfg.DBPath != "/tmp/upskill-test.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
	if cfg.UseLocalScorer() {
		t.Error("expected remote scorer with API URL set")
	}
}

func TestLoad_OfflineOverridesAPIURL(t *testing.T) {
	t.Setenv("UPSKILL_API_URL", "https://api.example.com")
	t.Setenv("UPSKILL_OFFLINE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.UseLocalScorer() {
		t.Error("expected offline flag to force the local scorer")
	}
}
