// Copyright (c) 2025 Hello Demo Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileName is looked up in the working directory.
const fileName = "hello-demo.yaml"

// Config represents the complete hello-demo configuration
type Config struct {
	Greeter GreeterConfig `yaml:"greeter"`
	Demo    DemoConfig    `yaml:"demo"`
	Logging LoggingConfig `yaml:"logging"`
}

// GreeterConfig holds the greeting subject
type GreeterConfig struct {
	Name string `yaml:"name"`
}

// DemoConfig controls the demonstration sequence
type DemoConfig struct {
	Banner  string `yaml:"banner"`
	Addends []int  `yaml:"addends"`
}

// LoggingConfig controls diagnostic output
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration of the canonical run.
func Default() *Config {
	return &Config{
		Greeter: GreeterConfig{Name: "World"},
		Demo: DemoConfig{
			Banner:  "Starting test...",
			Addends: []int{5, 3},
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load loads the configuration from hello-demo.yaml in the working
// directory. A missing file is not an error: the demo runs on defaults,
// and a partial file overrides only the fields it names.
func Load() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Demo.Banner == "" {
		return fmt.Errorf("demo banner is required")
	}

	if len(c.Demo.Addends) != 2 {
		return fmt.Errorf("demo addends must hold exactly two integers, got %d", len(c.Demo.Addends))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level: %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown logging format: %q", c.Logging.Format)
	}

	return nil
}
