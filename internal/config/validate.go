package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate chequea rangos y formatos. Load la llama automáticamente.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range (got %d)", c.Server.Port)
	}
	if c.Redis.Addr != "" && c.Redis.ReportTTL <= 0 {
		return fmt.Errorf("redis.report_ttl must be > 0 (got %s)", c.Redis.ReportTTL)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}
	if _, err := c.Auth.Tokens(); err != nil {
		return fmt.Errorf("auth.static_tokens: %w", err)
	}
	if c.Auth.VerifyURL != "" && c.Auth.VerifyTimeout <= 0 {
		return fmt.Errorf("auth.verify_timeout must be > 0 (got %s)", c.Auth.VerifyTimeout)
	}
	if err := c.Insights.validate(); err != nil {
		return fmt.Errorf("insights: %w", err)
	}
	return nil
}

func (i InsightsConfig) validate() error {
	if _, err := i.Location(); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	if i.MaxDays < 1 {
		return fmt.Errorf("max_days must be >= 1 (got %d)", i.MaxDays)
	}
	if i.DefaultDays < 1 || i.DefaultDays > i.MaxDays {
		return fmt.Errorf("default_days must be in [1, %d] (got %d)", i.MaxDays, i.DefaultDays)
	}
	if i.WetDiaperThreshold < 1 {
		return fmt.Errorf("wet_diaper_threshold must be >= 1 (got %d)", i.WetDiaperThreshold)
	}
	if i.SideLookback <= 0 {
		return fmt.Errorf("side_lookback must be > 0 (got %s)", i.SideLookback)
	}
	return nil
}

// Location resuelve la zona horaria ("Local", "UTC" o nombre IANA).
func (i InsightsConfig) Location() (*time.Location, error) {
	tz := strings.TrimSpace(i.Timezone)
	if tz == "" {
		return time.Local, nil
	}
	return time.LoadLocation(tz)
}

// Tokens parsea "token=user,token2=user2". Vacío => nil (modo dev).
func (a AuthConfig) Tokens() (map[string]string, error) {
	raw := strings.TrimSpace(a.StaticTokens)
	if raw == "" {
		return nil, nil
	}

	out := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		token, user, ok := strings.Cut(pair, "=")
		token, user = strings.TrimSpace(token), strings.TrimSpace(user)
		if !ok || token == "" || user == "" {
			return nil, fmt.Errorf("invalid entry %q (want token=user)", pair)
		}
		out[token] = user
	}
	return out, nil
}
