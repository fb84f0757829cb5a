// Package config loads the rotation settings from a YAML file.
//
// The names and the countdown duration are fixed for the lifetime of the
// process: they are read once at startup and validated here so the rest
// of the program can assume a well-formed config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/noel/internal/domain"
)

// EnvConfigPath names the env var that overrides the default config path.
const EnvConfigPath = "NOEL_CONFIG"

// DefaultPath is used when neither -config nor NOEL_CONFIG is set.
const DefaultPath = "noel.yaml"

// Built-in defaults.
const (
	DefaultDurationSeconds = 180
	DefaultSnowflakes      = 50
	DefaultTitle           = "Noël Magique"
)

// DefaultNames is the rotation used when the config file has none.
var DefaultNames = []string{
	"Alice",
	"Bastien",
	"Chloé",
	"Damien",
	"Élise",
	"Gabriel",
	"Inès",
	"Lucas",
}

// Config is the top-level YAML configuration.
type Config struct {
	Title           string   `yaml:"title"`
	Names           []string `yaml:"names"`
	DurationSeconds int      `yaml:"duration_seconds"`
	Snowflakes      int      `yaml:"snowflakes"`
	Chime           bool     `yaml:"chime"`
}

// Default returns the built-in configuration.
func Default() Config {
	names := make([]string, len(DefaultNames))
	copy(names, DefaultNames)
	return Config{
		Title:           DefaultTitle,
		Names:           names,
		DurationSeconds: DefaultDurationSeconds,
		Snowflakes:      DefaultSnowflakes,
		Chime:           true,
	}
}

// Load reads the config at path on top of the defaults. A missing file
// is not an error when allowMissing is set; the defaults are returned.
// The result is validated before it is returned.
func Load(path string, allowMissing bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if allowMissing && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := Parse(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping existing values for absent keys,
// then normalizes and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing yaml: %w", err)
	}
	cfg.normalize()
	return cfg.Validate()
}

func (c *Config) normalize() {
	for i, n := range c.Names {
		c.Names[i] = strings.TrimSpace(n)
	}
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		c.Title = DefaultTitle
	}
}

// Validate reports fatal configuration errors.
func (c Config) Validate() error {
	if len(c.Names) == 0 {
		return domain.ErrNoNames
	}
	for i, n := range c.Names {
		if strings.TrimSpace(n) == "" {
			return fmt.Errorf("names[%d]: %w", i, domain.ErrBlankName)
		}
	}
	if c.DurationSeconds <= 0 {
		return fmt.Errorf("duration_seconds=%d: %w", c.DurationSeconds, domain.ErrInvalidDuration)
	}
	if c.Snowflakes < 0 {
		return fmt.Errorf("snowflakes=%d: %w", c.Snowflakes, domain.ErrInvalidParticleCount)
	}
	return nil
}

// ResolvePath picks the config path: the flag value, then NOEL_CONFIG,
// then DefaultPath. The boolean reports whether the default was used,
// in which case a missing file is tolerated.
func ResolvePath(flagValue string) (string, bool) {
	if flagValue != "" {
		return flagValue, false
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, false
	}
	return DefaultPath, true
}
