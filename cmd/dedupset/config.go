package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultOutput = "set.txt"

// Config is the optional YAML file read with --config.
type Config struct {
	Output   string   `yaml:"output"`
	FoldCase bool     `yaml:"fold_case"`
	Words    []string `yaml:"words"`
}

// loadEnv loads variables from .env files in the working directory without
// overriding the process environment. Missing files are ignored.
func loadEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// loadConfig reads the YAML file at path, expanding environment references.
// An empty path yields the defaults.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		slog.Debug("Loaded configuration", "path", path, "words", len(cfg.Words))
	}
	if cfg.Output == "" {
		cfg.Output = defaultOutput
	}
	return cfg, nil
}
