package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := Validate(cfg); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestDefaultConfigGeneratesSecret(t *testing.T) {
	a := NewDefaultConfig()
	b := NewDefaultConfig()
	if len(a.Session.Secret) != 32 {
		t.Errorf("expected 32 byte session secret, got %d", len(a.Session.Secret))
	}
	if a.Session.Secret == b.Session.Secret {
		t.Error("two default configs share the same session secret")
	}
}

func TestDurationTOMLRoundTrip(t *testing.T) {
	type doc struct {
		D Duration `toml:"d"`
	}

	var got doc
	if _, err := toml.Decode(`d = "45m"`, &got); err != nil {
		t.Fatalf("failed to decode duration: %v", err)
	}
	if got.D.Duration != 45*time.Minute {
		t.Errorf("expected 45m, got %v", got.D.Duration)
	}

	text, err := got.D.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(text) != "45m0s" {
		t.Errorf("expected marshalled text '45m0s', got %q", text)
	}
}

func TestDurationInvalidText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("not-a-duration")); err == nil {
		t.Error("expected error for invalid duration text")
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
public_dir = "static"

[session]
secret = "file_secret_is_32_bytes_long_xxx"
duration = "2h"

[server]
addr = ":9999"

[movies]
base_url = "https://movies.example.com/"
api_key = "file-key"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.PublicDir != "static" {
		t.Errorf("expected public_dir 'static', got %q", cfg.PublicDir)
	}
	if cfg.Session.Secret != "file_secret_is_32_bytes_long_xxx" {
		t.Errorf("session secret not taken from file: %q", cfg.Session.Secret)
	}
	if cfg.Session.Duration.Duration != 2*time.Hour {
		t.Errorf("expected session duration 2h, got %v", cfg.Session.Duration.Duration)
	}
	if cfg.Server.Addr != "localhost:9999" {
		t.Errorf("expected normalized addr 'localhost:9999', got %q", cfg.Server.Addr)
	}
	if cfg.Movies.APIKey != "file-key" {
		t.Errorf("expected movies api key from file, got %q", cfg.Movies.APIKey)
	}
	// Untouched sections keep their defaults.
	if cfg.Session.CookieName != "reelmark_session" {
		t.Errorf("expected default cookie name, got %q", cfg.Session.CookieName)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("SESSION_SECRET", "env_secret_is_32_bytes_long_xxxx")
	t.Setenv("MOVIES_API_KEY", "env-key")
	t.Setenv("OAUTH2_GOOGLE_CLIENT_ID", "env-client-id")
	t.Setenv("OAUTH2_GOOGLE_CLIENT_SECRET", "env-client-secret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Session.Secret != "env_secret_is_32_bytes_long_xxxx" {
		t.Errorf("session secret not taken from environment: %q", cfg.Session.Secret)
	}
	if cfg.Movies.APIKey != "env-key" {
		t.Errorf("movies api key not taken from environment: %q", cfg.Movies.APIKey)
	}

	google := cfg.OAuth2Providers["google"]
	if google.ClientID != "env-client-id" || google.ClientSecret != "env-client-secret" {
		t.Errorf("google credentials not taken from environment: %+v", google)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.toml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestProviderUpdate(t *testing.T) {
	first := NewDefaultConfig()
	provider := NewProvider(first)

	if provider.Get() != first {
		t.Error("Get did not return the initial config")
	}

	second := NewDefaultConfig()
	provider.Update(second)
	if provider.Get() != second {
		t.Error("Get did not return the updated config")
	}
}
