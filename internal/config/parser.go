package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	kerrors "github.com/alexisbeaulieu97/kindred/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk on top of Default,
// validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	cfg := Default()
	if err := decodeFile(path, cfg); err != nil {
		return nil, err
	}
	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load builds the effective configuration: defaults, then the optional file
// at path, then environment overrides. A nil environ reads the process
// environment.
func Load(path string, environ map[string]string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg, environ); err != nil {
		return nil, err
	}

	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return kerrors.NewParseError(path, 0, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return kerrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

func applyEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return kerrors.NewValidationError("env", fmt.Sprintf("parse env: %v", err), err)
	}
	return nil
}

func finalize(cfg *Config) error {
	normalizePalette(cfg)
	return ValidateConfig(cfg)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
