// Package config provides configuration structures and defaults for the reader.
package config

import (
	"fmt"

	"github.com/wilhasse/go-sqlitefile/format"
)

const (
	defaultLogLevel     = "warn"
	defaultLogFormat    = "text"
	defaultOutputFormat = "text"
)

// Config holds the knobs fixed for one invocation. The page size is not
// here: it is read from the file header when the database is opened.
type Config struct {
	VarintMode   format.VarintMode
	LogLevel     string // debug, info, warn, error
	LogFormat    string // text, json
	OutputFormat string // text, json (page dumps)
}

// DefaultConfig returns a Config struct populated with default values.
func DefaultConfig() *Config {
	return &Config{
		VarintMode:   format.DefaultVarints,
		LogLevel:     defaultLogLevel,
		LogFormat:    defaultLogFormat,
		OutputFormat: defaultOutputFormat,
	}
}

// FillDefaults sets any zero-value fields in the Config to their default values.
func (c *Config) FillDefaults() {
	def := DefaultConfig()
	if c.VarintMode == "" {
		c.VarintMode = def.VarintMode
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = def.LogFormat
	}
	if c.OutputFormat == "" {
		c.OutputFormat = def.OutputFormat
	}
}

// Validate rejects values no component understands.
func (c *Config) Validate() error {
	if _, err := format.ParseVarintMode(string(c.VarintMode)); err != nil {
		return err
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	for name, v := range map[string]string{"log format": c.LogFormat, "output format": c.OutputFormat} {
		if v != "text" && v != "json" {
			return fmt.Errorf("unknown %s %q", name, v)
		}
	}
	return nil
}
