// Package config loads the server configuration from a YAML file with
// sensible defaults for local development.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Store backends supported by the server.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreFile   = "file"
)

// Config is the server configuration.
type Config struct {
	// Listen is the HTTP listen address, e.g. ":8080".
	Listen string `yaml:"listen"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Store selects the flow document backend.
	Store struct {
		Backend string `yaml:"backend"` // memory | redis | file
		// Path is the base directory for the file backend.
		Path  string `yaml:"path"`
		Redis struct {
			Address  string `yaml:"address"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"store"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var c Config
	c.Listen = ":8080"
	c.LogLevel = "info"
	c.Store.Backend = StoreMemory
	c.Store.Redis.Address = "localhost:6379"
	return c
}

// FromFile loads a YAML config file on top of the defaults.
func FromFile(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config file: %w", err)
	}
	if err := c.validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c Config) validate() error {
	switch c.Store.Backend {
	case StoreMemory, StoreRedis, StoreFile:
		return nil
	default:
		return fmt.Errorf("unknown store backend: %q", c.Store.Backend)
	}
}
