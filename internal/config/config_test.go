package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestMustLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "public.yaml", `
pg:
  host: localhost
  port: 5432
  user: u
  password: p
  dbname: forum
port: 8080
base_url: http://localhost:8080
jwt_ttl_hours: 168
log_level: debug
`)
	writeConfig(t, dir, "private.yaml", "jwt_key: 'k'\n")

	cfg := MustLoad(dir)

	if cfg.JwtKey() != "k" {
		t.Errorf("unexpected jwt key: %q", cfg.JwtKey())
	}
	if cfg.JwtTTL() != 168*time.Hour {
		t.Errorf("unexpected jwt ttl: %v", cfg.JwtTTL())
	}
	if cfg.Public.Pg.Dbname != "forum" {
		t.Errorf("unexpected dbname: %q", cfg.Public.Pg.Dbname)
	}
}

func TestMustLoad_MissingJwtKey(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "public.yaml", "jwt_ttl_hours: 168\n")
	writeConfig(t, dir, "private.yaml", "email:\n  smtp_port: 587\n")

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic due to missing jwt_key, got none")
		}
	}()

	_ = MustLoad(dir)
}

func TestMustLoad_MissingFile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic due to missing config file, got none")
		}
	}()

	_ = MustLoad(t.TempDir())
}
