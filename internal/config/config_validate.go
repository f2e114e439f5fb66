// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/mediapager/internal/cursor"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateDatabase,
		c.validateServer,
		c.validatePagination,
		c.validateCache,
		c.validateMonitor,
		c.validateBreaker,
		c.validateSecurity,
		c.validateLogging,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateDatabase() error {
	switch c.Database.Driver {
	case "duckdb", "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("DB_PATH is required for driver %q", c.Database.Driver)
		}
	case "postgres":
		if c.Database.DSN == "" {
			return errors.New("DB_DSN is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be duckdb, postgres or sqlite, got %q", c.Database.Driver)
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be non-negative, got %d", c.Database.Threads)
	}
	if c.Database.MaxOpenConns < 0 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be non-negative, got %d", c.Database.MaxOpenConns)
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("DB_QUERY_TIMEOUT must be positive, got %v", c.Database.QueryTimeout)
	}
	if c.Database.SeedItems < 0 {
		return fmt.Errorf("DB_SEED_ITEMS must be non-negative, got %d", c.Database.SeedItems)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validatePagination() error {
	p := c.Pagination
	if p.MaxPageSize < 1 || p.MaxPageSize > HardMaxPageSize {
		return fmt.Errorf("PAGE_SIZE_MAX must be between 1 and %d, got %d", HardMaxPageSize, p.MaxPageSize)
	}
	if p.DefaultPageSize < 1 || p.DefaultPageSize > p.MaxPageSize {
		return fmt.Errorf("PAGE_SIZE_DEFAULT must be between 1 and %d, got %d", p.MaxPageSize, p.DefaultPageSize)
	}
	if _, err := cursor.NewMediaRegistry().Resolve(p.DefaultSort); err != nil {
		return fmt.Errorf("PAGE_SORT_DEFAULT: %w", err)
	}
	switch strings.ToLower(p.DefaultOrder) {
	case "asc", "desc":
	default:
		return fmt.Errorf("PAGE_ORDER_DEFAULT must be asc or desc, got %q", p.DefaultOrder)
	}
	return nil
}

func (c *Config) validateCache() error {
	if !c.Cache.Enabled {
		return nil
	}
	if c.Cache.Capacity < 1 {
		return fmt.Errorf("CACHE_CAPACITY must be at least 1, got %d", c.Cache.Capacity)
	}
	if c.Cache.PageTTL <= 0 || c.Cache.CountTTL <= 0 {
		return errors.New("CACHE_PAGE_TTL and CACHE_COUNT_TTL must be positive")
	}
	return nil
}

func (c *Config) validateMonitor() error {
	if c.Monitor.Capacity < 1 {
		return fmt.Errorf("MONITOR_CAPACITY must be at least 1, got %d", c.Monitor.Capacity)
	}
	if c.Monitor.Window <= 0 {
		return fmt.Errorf("MONITOR_WINDOW must be positive, got %v", c.Monitor.Window)
	}
	return nil
}

func (c *Config) validateBreaker() error {
	if c.Breaker.FailureRatio <= 0 || c.Breaker.FailureRatio > 1 {
		return fmt.Errorf("BREAKER_FAILURE_RATIO must be in (0, 1], got %v", c.Breaker.FailureRatio)
	}
	if c.Breaker.Timeout <= 0 {
		return fmt.Errorf("BREAKER_TIMEOUT must be positive, got %v", c.Breaker.Timeout)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// HasWildcardCORS reports whether any CORS origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, o := range c.Security.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}
