package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.LockTimeout < 0 {
		return fmt.Errorf("database.lock_timeout must be >= 0 (got %v)", c.Database.LockTimeout)
	}

	if c.Redis.CacheEnabled() && c.Redis.TTL <= 0 {
		return fmt.Errorf("redis.ttl must be > 0 when the cache is enabled (got %v)", c.Redis.TTL)
	}

	if err := c.Board.validate(); err != nil {
		return fmt.Errorf("board: %w", err)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (b *BoardConfig) validate() error {
	if b.CapacityLimit < 1 {
		return fmt.Errorf("capacity_limit must be >= 1 (got %d)", b.CapacityLimit)
	}
	if b.MaxBodyLength < 1 {
		return fmt.Errorf("max_body_length must be >= 1 (got %d)", b.MaxBodyLength)
	}
	if b.MaxTitleLength < 1 {
		return fmt.Errorf("max_title_length must be >= 1 (got %d)", b.MaxTitleLength)
	}
	if b.MaxSummaryLength < 0 {
		return fmt.Errorf("max_summary_length must be >= 0 (got %d)", b.MaxSummaryLength)
	}
	if strings.TrimSpace(b.LimitNotice) == "" {
		return fmt.Errorf("limit_notice is required")
	}
	if b.MaxPageSize < 1 {
		return fmt.Errorf("max_page_size must be >= 1 (got %d)", b.MaxPageSize)
	}
	if b.DefaultPageSize < 1 || b.DefaultPageSize > b.MaxPageSize {
		return fmt.Errorf("default_page_size must be in 1..%d (got %d)", b.MaxPageSize, b.DefaultPageSize)
	}
	if b.PurgeRetentionDays < 1 {
		return fmt.Errorf("purge_retention_days must be >= 1 (got %d)", b.PurgeRetentionDays)
	}
	return nil
}
