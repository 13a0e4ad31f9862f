package shared_test

import (
	"os"
	"testing"
	"time"

	"hbnb_web/internal/shared"
)

// unsetenv clears keys for the test and restores it afterwards.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "API_BASE_URL", "HTTP_ADDR", "TOKEN_COOKIE", "HTTP_TIMEOUT", "API_RPS")

	cfg, err := shared.Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.APIBase != "http://localhost:5000/api" {
		t.Fatalf("APIBase = %q", cfg.APIBase)
	}
	if cfg.TokenCookie != "token" || cfg.HTTPTimeout != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.test/v1")
	t.Setenv("API_RPS", "3")
	t.Setenv("HTTP_TIMEOUT", "30s")

	cfg, err := shared.Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.APIBase != "https://api.example.test/v1" || cfg.APIRate != 3 || cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	unsetenv(t, "API_BASE_URL")
	t.Setenv("HTTP_TIMEOUT", "soon")

	if _, err := shared.Load(); err == nil {
		t.Fatalf("expected error for invalid HTTP_TIMEOUT")
	}
}
