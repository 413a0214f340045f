package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/tinytally"
  skip_migrate: true

redis:
  addr: "localhost:6379"
  report_ttl: "2m"

log:
  level: "debug"
  format: "text"

auth:
  static_tokens: "tok-a=parent-1,tok-b=parent-2"

insights:
  timezone: "UTC"
  default_days: 14
  max_days: 60
  wet_diaper_threshold: 5
  side_lookback: "48h"
`

func TestLoad_DefaultsFromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout = %s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Database.DSN != "" {
		t.Errorf("dsn should default to empty (memory store), got %q", cfg.Database.DSN)
	}
	if cfg.Database.SkipMigrate {
		t.Errorf("migrations should run by default")
	}
	if cfg.Redis.ReportTTL != 60*time.Second {
		t.Errorf("report ttl = %s, want 60s", cfg.Redis.ReportTTL)
	}
	if cfg.Insights.DefaultDays != 7 || cfg.Insights.MaxDays != 90 {
		t.Errorf("insights days = %d/%d, want 7/90", cfg.Insights.DefaultDays, cfg.Insights.MaxDays)
	}
	if cfg.Insights.WetDiaperThreshold != 6 {
		t.Errorf("wet threshold = %d, want 6", cfg.Insights.WetDiaperThreshold)
	}
	if cfg.Insights.SideLookback != 72*time.Hour {
		t.Errorf("side lookback = %s, want 72h", cfg.Insights.SideLookback)
	}
	if cfg.Auth.VerifyURL != "" || cfg.Auth.VerifyTimeout != 5*time.Second {
		t.Errorf("auth verify = %q/%s, want empty/5s", cfg.Auth.VerifyURL, cfg.Auth.VerifyTimeout)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Addr() != "127.0.0.1:9090" {
		t.Errorf("addr = %q", cfg.Server.Addr())
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("read timeout = %s", cfg.Server.ReadTimeout)
	}
	// no definido en el yaml: default
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("write timeout = %s, want default 30s", cfg.Server.WriteTimeout)
	}
	if !cfg.Database.SkipMigrate {
		t.Errorf("skip_migrate should be true")
	}
	if cfg.Redis.ReportTTL != 2*time.Minute {
		t.Errorf("report ttl = %s", cfg.Redis.ReportTTL)
	}
	if cfg.Insights.DefaultDays != 14 || cfg.Insights.WetDiaperThreshold != 5 {
		t.Errorf("insights = %+v", cfg.Insights)
	}

	tokens, err := cfg.Auth.Tokens()
	if err != nil {
		t.Fatalf("Tokens returned error: %v", err)
	}
	if tokens["tok-b"] != "parent-2" || len(tokens) != 2 {
		t.Errorf("tokens = %v", tokens)
	}

	loc, err := cfg.Insights.Location()
	if err != nil || loc != time.UTC {
		t.Errorf("location = %v, %v", loc, err)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("INSIGHTS_MAX_DAYS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Insights.MaxDays != 30 {
		t.Errorf("max days = %d, want 30", cfg.Insights.MaxDays)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func validConfig() Config {
	return Config{
		Server: ServerConfig{Port: 8080},
		Redis:  RedisConfig{ReportTTL: time.Minute},
		Log:    LogConfig{Format: "json"},
		Insights: InsightsConfig{
			Timezone:           "UTC",
			DefaultDays:        7,
			MaxDays:            90,
			WetDiaperThreshold: 6,
			SideLookback:       72 * time.Hour,
		},
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"bad port":           func(c *Config) { c.Server.Port = 0 },
		"redis without ttl":  func(c *Config) { c.Redis = RedisConfig{Addr: "localhost:6379"} },
		"bad log format":     func(c *Config) { c.Log.Format = "xml" },
		"bad tokens":         func(c *Config) { c.Auth.StaticTokens = "tok-only" },
		"unknown timezone":   func(c *Config) { c.Insights.Timezone = "Mars/Olympus_Mons" },
		"default above max":  func(c *Config) { c.Insights.DefaultDays = 120 },
		"zero max days":      func(c *Config) { c.Insights.MaxDays = 0 },
		"zero wet threshold": func(c *Config) { c.Insights.WetDiaperThreshold = 0 },
		"zero side lookback": func(c *Config) { c.Insights.SideLookback = 0 },
		"verify no timeout":  func(c *Config) { c.Auth = AuthConfig{VerifyURL: "http://idp"} },
	}

	base := validConfig()
	if err := base.Validate(); err != nil {
		t.Fatalf("base config should be valid: %v", err)
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := validConfig()
			mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestAuthConfig_Tokens(t *testing.T) {
	tokens, err := AuthConfig{}.Tokens()
	if err != nil || tokens != nil {
		t.Fatalf("empty config should be dev mode, got %v, %v", tokens, err)
	}

	tokens, err = AuthConfig{StaticTokens: " a=u1 , ,b=u2"}.Tokens()
	if err != nil {
		t.Fatalf("Tokens returned error: %v", err)
	}
	if tokens["a"] != "u1" || tokens["b"] != "u2" {
		t.Fatalf("tokens = %v", tokens)
	}

	if _, err := (AuthConfig{StaticTokens: "=u1"}).Tokens(); err == nil {
		t.Fatal("expected error for empty token")
	}
}
