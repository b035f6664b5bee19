package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Database.Name != "habitflow_db" {
		t.Errorf("db name = %q", cfg.Database.Name)
	}
	if cfg.JWT.ExpiryHours != 24 {
		t.Errorf("jwt expiry = %d", cfg.JWT.ExpiryHours)
	}
	if len(cfg.CORS.AllowOrigins) != 1 || cfg.CORS.AllowOrigins[0] != "http://localhost:3000" {
		t.Errorf("cors origins = %v", cfg.CORS.AllowOrigins)
	}
}

func TestLoadYamlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  port: \"9090\"\ndatabase:\n  name: testdb\ncors:\n  allowOrigins:\n    - https://habitflow.app\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Name != "testdb" {
		t.Errorf("db name = %q, want testdb", cfg.Database.Name)
	}
	if len(cfg.CORS.AllowOrigins) != 1 || cfg.CORS.AllowOrigins[0] != "https://habitflow.app" {
		t.Errorf("cors origins = %v", cfg.CORS.AllowOrigins)
	}
	// Unset fields still get defaults.
	if cfg.Redis.Host != "localhost" {
		t.Errorf("redis host = %q", cfg.Redis.Host)
	}
}

func TestCSRFConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("csrf:\n  enabled: true\n  authKey: \"32-byte-long-auth-key-for-tests!\"\n  insecure: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.CSRF.Enabled || !cfg.CSRF.Insecure {
		t.Errorf("csrf config = %+v", cfg.CSRF)
	}
	if cfg.CSRF.AuthKey != "32-byte-long-auth-key-for-tests!" {
		t.Errorf("auth key = %q", cfg.CSRF.AuthKey)
	}

	// Without the block, csrf stays off and cookies stay secure.
	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CSRF.Enabled || cfg.CSRF.Insecure {
		t.Errorf("csrf defaults = %+v", cfg.CSRF)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "7070")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("port = %q, want env override 7070", cfg.Server.Port)
	}
}

func TestDSNAndRedisAddr(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := "host=localhost port=5432 user=postgres password=postgres dbname=habitflow_db sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
	if got := cfg.RedisAddr(); got != "localhost:6379" {
		t.Errorf("RedisAddr = %q", got)
	}
}
