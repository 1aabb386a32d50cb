package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %s (got %q)", strings.Join(logLevels, ", "), c.Log.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %s (got %q)", strings.Join(logFormats, ", "), c.Log.Format)
	}

	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must be >= 0 (got %s)", c.Database.StatementTimeout)
	}

	if c.RateLimit.Enabled && c.RateLimit.ScoringPerMin <= 0 {
		return fmt.Errorf("rate_limit.scoring_per_min must be > 0 when enabled (got %d)", c.RateLimit.ScoringPerMin)
	}

	if err := c.Dictation.validate(); err != nil {
		return fmt.Errorf("dictation: %w", err)
	}

	if err := c.Cache.validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (d DictationConfig) validate() error {
	if d.MaxInputLength <= 0 {
		return fmt.Errorf("max_input_length must be > 0 (got %d)", d.MaxInputLength)
	}
	if d.MaxReferenceLength <= 0 {
		return fmt.Errorf("max_reference_length must be > 0 (got %d)", d.MaxReferenceLength)
	}
	if d.HistoryMaxLimit <= 0 || d.HistoryMaxLimit > 1000 {
		return fmt.Errorf("history_max_limit must be between 1 and 1000 (got %d)", d.HistoryMaxLimit)
	}
	if d.MasteryWorkers <= 0 {
		return fmt.Errorf("mastery_workers must be > 0 (got %d)", d.MasteryWorkers)
	}
	if d.MasteryTimeout <= 0 {
		return fmt.Errorf("mastery_timeout must be > 0 (got %s)", d.MasteryTimeout)
	}
	return nil
}

func (c CacheConfig) validate() error {
	switch c.Driver {
	case CacheDriverMemory:
		if c.SweepInterval <= 0 {
			return fmt.Errorf("sweep_interval must be > 0 (got %s)", c.SweepInterval)
		}
	case CacheDriverRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("redis_url is required for the redis driver")
		}
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", CacheDriverMemory, CacheDriverRedis, c.Driver)
	}
	if c.PhraseTTL <= 0 {
		return fmt.Errorf("phrase_ttl must be > 0 (got %s)", c.PhraseTTL)
	}
	return nil
}
