// Package config loads server configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration.
type Config struct {
	Listen   string `yaml:"listen"`
	LogLevel string `yaml:"log_level"`
	Language string `yaml:"language"`

	Redis  RedisConfig  `yaml:"redis"`
	OpenAI OpenAIConfig `yaml:"openai"`
}

// Duration wraps time.Duration with YAML support for strings like "1h".
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// RedisConfig selects and parametrizes the Redis adapters. When
// disabled, sessions and records live in memory.
type RedisConfig struct {
	Enabled    bool     `yaml:"enabled"`
	Address    string   `yaml:"address"`
	Password   string   `yaml:"password"`
	DB         int      `yaml:"db"`
	SessionTTL Duration `yaml:"session_ttl"`
}

// OpenAIConfig parametrizes the advice generator. An empty key selects
// the static generator.
type OpenAIConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// Default returns the configuration used when no file or environment is
// present.
func Default() *Config {
	return &Config{
		Listen:   ":8080",
		LogLevel: "info",
		Language: "en",
		Redis: RedisConfig{
			Address: "localhost:6379",
		},
	}
}

// Load reads the config file when path is non-empty, then applies
// environment overrides. A missing file at the default path is not an
// error; an explicitly named missing file is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides fields from FINAPP_* variables, plus the
// conventional OPENAI_API_KEY.
func (c *Config) applyEnv() {
	if v := os.Getenv("FINAPP_LISTEN"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv("FINAPP_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("FINAPP_LANGUAGE"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("FINAPP_REDIS_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Redis.Enabled = enabled
		}
	}
	if v := os.Getenv("FINAPP_REDIS_ADDRESS"); v != "" {
		c.Redis.Address = v
	}
	if v := os.Getenv("FINAPP_REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("FINAPP_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			c.Redis.DB = db
		}
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("FINAPP_OPENAI_MODEL"); v != "" {
		c.OpenAI.Model = v
	}
}
