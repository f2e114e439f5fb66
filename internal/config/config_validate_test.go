// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package config

import (
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, true},
		{"postgres without dsn", func(c *Config) { c.Database.Driver = "postgres" }, true},
		{"postgres with dsn", func(c *Config) {
			c.Database.Driver = "postgres"
			c.Database.DSN = "postgres://localhost/media"
		}, false},
		{"sqlite without path", func(c *Config) {
			c.Database.Driver = "sqlite"
			c.Database.Path = ""
		}, true},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, true},
		{"max page size over hard limit", func(c *Config) { c.Pagination.MaxPageSize = 101 }, true},
		{"default page size over max", func(c *Config) {
			c.Pagination.MaxPageSize = 10
			c.Pagination.DefaultPageSize = 20
		}, true},
		{"unknown default sort", func(c *Config) { c.Pagination.DefaultSort = "rating" }, true},
		{"bad default order", func(c *Config) { c.Pagination.DefaultOrder = "up" }, true},
		{"zero cache capacity", func(c *Config) { c.Cache.Capacity = 0 }, true},
		{"zero capacity with cache disabled", func(c *Config) {
			c.Cache.Enabled = false
			c.Cache.Capacity = 0
		}, false},
		{"zero monitor capacity", func(c *Config) { c.Monitor.Capacity = 0 }, true},
		{"failure ratio above one", func(c *Config) { c.Breaker.FailureRatio = 1.5 }, true},
		{"zero rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, true},
		{"zero rate limit disabled", func(c *Config) {
			c.Security.RateLimitReqs = 0
			c.Security.RateLimitDisabled = true
		}, false},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHasWildcardCORS(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if !cfg.HasWildcardCORS() {
		t.Error("default CORS origins should contain wildcard")
	}
	cfg.Security.CORSOrigins = []string{"https://media.example"}
	if cfg.HasWildcardCORS() {
		t.Error("explicit origin list should not be wildcard")
	}
}

func TestServerConfig_Addr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got := s.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q", got)
	}
}
