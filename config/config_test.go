package config

import (
	"testing"
	"time"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"DATABASE_URL":   "postgres://localhost/tournaments",
		"JWT_SECRET_KEY": "secret",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want 8080", cfg.ServerPort)
	}
	if cfg.StandingsCacheTTL != 10*time.Minute {
		t.Errorf("StandingsCacheTTL = %s, want 10m", cfg.StandingsCacheTTL)
	}
	if cfg.RedisURL != "" || cfg.R2.Complete() {
		t.Errorf("optional backends should be disabled by default: %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"DATABASE_URL":         "postgres://localhost/tournaments",
		"JWT_SECRET_KEY":       "secret",
		"SERVER_PORT":          "9090",
		"REDIS_URL":            "redis://localhost:6379/0",
		"STANDINGS_CACHE_TTL":  "30s",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example,",
		"R2_ACCOUNT_ID":        "acc",
		"R2_ACCESS_KEY_ID":     "key",
		"R2_SECRET_ACCESS_KEY": "secret",
		"R2_BUCKET_NAME":       "bucket",
		"R2_PUBLIC_BASE_URL":   "https://cdn.example",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServerPort != 9090 || cfg.StandingsCacheTTL != 30*time.Second {
		t.Errorf("unexpected port/ttl: %d %s", cfg.ServerPort, cfg.StandingsCacheTTL)
	}
	if !cfg.R2.Complete() {
		t.Error("R2 config should be complete")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestFromEnvErrors(t *testing.T) {
	base := func() map[string]string {
		return map[string]string{"DATABASE_URL": "postgres://x", "JWT_SECRET_KEY": "k"}
	}
	tests := []struct {
		name   string
		mutate func(map[string]string)
	}{
		{"missing database url", func(m map[string]string) { delete(m, "DATABASE_URL") }},
		{"missing jwt key", func(m map[string]string) { delete(m, "JWT_SECRET_KEY") }},
		{"bad port", func(m map[string]string) { m["SERVER_PORT"] = "http" }},
		{"port out of range", func(m map[string]string) { m["SERVER_PORT"] = "70000" }},
		{"bad ttl", func(m map[string]string) { m["STANDINGS_CACHE_TTL"] = "soon" }},
		{"negative ttl", func(m map[string]string) { m["STANDINGS_CACHE_TTL"] = "-1m" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := base()
			tt.mutate(values)
			if _, err := FromEnv(env(values)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
