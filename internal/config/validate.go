package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := validateBaseURL(c.USDA.BaseURL); err != nil {
		return fmt.Errorf("usda.base_url: %w", err)
	}
	if strings.TrimSpace(c.USDA.APIKey) == "" {
		return fmt.Errorf("usda.api_key is required")
	}
	if c.USDA.PageSize < 1 || c.USDA.PageSize > 200 {
		return fmt.Errorf("usda.page_size must be in [1, 200] (got %d)", c.USDA.PageSize)
	}
	if len(c.USDA.DataTypes()) == 0 {
		return fmt.Errorf("usda.data_types must list at least one data type")
	}
	if c.USDA.Timeout <= 0 {
		return fmt.Errorf("usda.timeout must be > 0 (got %v)", c.USDA.Timeout)
	}

	if err := validateBaseURL(c.OpenFoodFacts.BaseURL); err != nil {
		return fmt.Errorf("openfoodfacts.base_url: %w", err)
	}
	if c.OpenFoodFacts.Timeout <= 0 {
		return fmt.Errorf("openfoodfacts.timeout must be > 0 (got %v)", c.OpenFoodFacts.Timeout)
	}

	if c.Retry.MaxAttempts < 1 || c.Retry.MaxAttempts > 10 {
		return fmt.Errorf("retry.max_attempts must be in [1, 10] (got %d)", c.Retry.MaxAttempts)
	}
	if c.Retry.BaseDelay < 0 {
		return fmt.Errorf("retry.base_delay must be >= 0 (got %v)", c.Retry.BaseDelay)
	}

	if c.RateLimit.FoodsPerMinute < 0 {
		return fmt.Errorf("rate_limit.foods_per_minute must be >= 0 (got %d)", c.RateLimit.FoodsPerMinute)
	}
	if c.RateLimit.FoodsPerMinute > 0 && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	if c.Database.PostgresEnabled() {
		if c.Database.ConnectTimeout <= 0 {
			return fmt.Errorf("database.connect_timeout must be > 0 (got %v)", c.Database.ConnectTimeout)
		}
		if c.Database.MinConns < 0 || c.Database.MaxConns < 1 || c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("database: need 0 <= min_conns <= max_conns, max_conns >= 1 (got %d/%d)",
				c.Database.MinConns, c.Database.MaxConns)
		}
	}

	if err := c.Journal.validate(); err != nil {
		return fmt.Errorf("journal: %w", err)
	}

	return nil
}

func (j *JournalConfig) validate() error {
	if strings.TrimSpace(j.SQLitePath) == "" {
		return fmt.Errorf("sqlite_path is required")
	}

	loc, err := ParseLocation(j.TimeZone)
	if err != nil {
		return fmt.Errorf("time_zone: %w", err)
	}
	j.Location = loc

	return nil
}

// ParseLocation resolves a time zone name. "" and "Local" mean the host zone.
func ParseLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", name, err)
	}
	return loc, nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required (got %q)", raw)
	}
	return nil
}
