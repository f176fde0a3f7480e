package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleYAML = `
server:
  port: 9090
database:
  driver: mongo
  uri: mongodb://localhost:27017
  dbname: listings
redis:
  host: cache.internal
cache:
  ttl: 2m
jwt:
  secret: s3cret
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.DBName != "listings" {
		t.Errorf("dbname = %q", cfg.Database.DBName)
	}
	if cfg.Cache.TTL != 2*time.Minute {
		t.Errorf("cache ttl = %v, want 2m", cfg.Cache.TTL)
	}
	if cfg.Cache.Driver != DriverRedis {
		t.Errorf("cache driver default = %q", cfg.Cache.Driver)
	}
	if cfg.RedisAddr() != "cache.internal:6379" {
		t.Errorf("redis addr = %q", cfg.RedisAddr())
	}
	if cfg.JWT.TTL != 24*time.Hour {
		t.Errorf("jwt ttl default = %v", cfg.JWT.TTL)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("CACHE_DRIVER", "memory")
	t.Setenv("DB_NAME", "fromenv")

	cfg, err := LoadConfig(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Redis.Port != 6380 {
		t.Errorf("redis port = %d, want 6380", cfg.Redis.Port)
	}
	if cfg.Cache.Driver != DriverMemory {
		t.Errorf("cache driver = %q, want memory", cfg.Cache.Driver)
	}
	if cfg.Database.DBName != "fromenv" {
		t.Errorf("dbname = %q, want fromenv", cfg.Database.DBName)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "missing secret", body: "database:\n  driver: memory\n"},
		{name: "mongo without uri", body: "database:\n  driver: mongo\njwt:\n  secret: x\n"},
		{name: "unknown cache driver", body: "database:\n  driver: memory\ncache:\n  driver: memcached\njwt:\n  secret: x\n"},
		{name: "bad redis port env", body: "database:\n  driver: memory\njwt:\n  secret: x\n", env: map[string]string{"REDIS_PORT": "abc"}},
		{name: "invalid yaml", body: "server: [1, 2"},
		{name: "production without origins", body: "server:\n  env: production\ndatabase:\n  driver: memory\njwt:\n  secret: x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Parse([]byte(tt.body)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestAllowedOrigins(t *testing.T) {
	body := "server:\n  env: production\n  allowed_origins: [\"https://a.example\"]\ndatabase:\n  driver: memory\njwt:\n  secret: x\n"

	cfg, err := Parse([]byte(body))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !cfg.IsProduction() || len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "https://a.example" {
		t.Fatalf("origins from yaml = %v", cfg.Server.AllowedOrigins)
	}

	t.Setenv("ALLOWED_ORIGINS", "https://b.example, https://c.example,")
	cfg, err = Parse([]byte(body))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{"https://b.example", "https://c.example"}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[0] != want[0] || cfg.Server.AllowedOrigins[1] != want[1] {
		t.Fatalf("origins from env = %v, want %v", cfg.Server.AllowedOrigins, want)
	}
}
