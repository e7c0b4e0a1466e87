// Package config resolves stackgraph settings from a YAML file, the
// environment and a .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "STACKGRAPH_"

// DBFileName is the database file looked for when walking up from the working directory.
const DBFileName = ".stackgraph.db"

// Config holds input paths, the database location and logging settings.
type Config struct {
	Posts    string `yaml:"posts"`
	Comments string `yaml:"comments"`
	Users    string `yaml:"users"`
	DB       string `yaml:"db"`
	Output   string `yaml:"output"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Load builds a Config. A .env file in the working directory is loaded first
// if present, then the YAML file at path (skipped when path is empty), then
// STACKGRAPH_* variables override individual fields. Unset logging fields
// fall back to info and text.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	cfg.LogLevel = firstNonEmpty(cfg.LogLevel, "info")
	cfg.LogFormat = firstNonEmpty(cfg.LogFormat, "text")
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Posts = firstNonEmpty(env("POSTS"), c.Posts)
	c.Comments = firstNonEmpty(env("COMMENTS"), c.Comments)
	c.Users = firstNonEmpty(env("USERS"), c.Users)
	c.DB = firstNonEmpty(env("DB"), c.DB)
	c.Output = firstNonEmpty(env("OUTPUT"), c.Output)
	c.LogLevel = firstNonEmpty(env("LOG_LEVEL"), c.LogLevel)
	c.LogFormat = firstNonEmpty(env("LOG_FORMAT"), c.LogFormat)
}

// Validate rejects unknown logging settings.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (want debug, info, warn or error)", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (want text or json)", c.LogFormat)
	}
	return nil
}

// HasDumpFiles reports whether all three dump paths are set.
func (c *Config) HasDumpFiles() bool {
	return c.Posts != "" && c.Comments != "" && c.Users != ""
}

// DiscoverDB finds an existing database using priority: env > explicit path > walk-up
func DiscoverDB(explicit string) (string, error) {
	// 1. Environment variable
	if envPath := env("DB"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
	}

	// 2. Flag or config file
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit, nil
		}
		return "", fmt.Errorf("database not found at --db path: %s", explicit)
	}

	// 3. Walk up from CWD
	dir, err := os.Getwd()
	if err == nil {
		for {
			candidate := filepath.Join(dir, DBFileName)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	return "", fmt.Errorf("no %s found (set %sDB, use --db, or run from a directory containing %s)", DBFileName, EnvPrefix, DBFileName)
}

func env(name string) string {
	return strings.TrimSpace(os.Getenv(EnvPrefix + name))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
