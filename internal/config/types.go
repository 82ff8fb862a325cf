package config

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/kindred/internal/domain/logo"
)

const (
	SourceEmbedded = "embedded"
	SourceDir      = "dir"
	SourceHTTP     = "http"
	SourceGit      = "git"

	DefaultBaseAsset     = "base.svg"
	DefaultAccentPattern = "accent-%02d.svg"
	DefaultAccentCount   = 36
	DefaultTimeout       = 30 * time.Second
	DefaultConcurrency   = 8
)

// Config represents the kindred configuration file.
type Config struct {
	Palette []string     `yaml:"palette" validate:"required,min=2,dive,palette_color"`
	Assets  AssetsConfig `yaml:"assets"`
	Export  ExportConfig `yaml:"export"`
	Log     LogConfig    `yaml:"log"`
	Seed    *int64       `yaml:"seed,omitempty" env:"KINDRED_SEED"`
}

// AssetsConfig locates the base and accent shape documents.
type AssetsConfig struct {
	Source        string        `yaml:"source" env:"KINDRED_ASSETS_SOURCE" validate:"required,oneof=embedded dir http git"`
	Location      string        `yaml:"location,omitempty" env:"KINDRED_ASSETS_LOCATION" validate:"required_unless=Source embedded"`
	Ref           string        `yaml:"ref,omitempty" env:"KINDRED_ASSETS_REF"`
	Base          string        `yaml:"base" validate:"required,svg_file"`
	Accents       []string      `yaml:"accents,omitempty" validate:"omitempty,dive,svg_file"`
	AccentPattern string        `yaml:"accent_pattern,omitempty"`
	AccentCount   int           `yaml:"accent_count,omitempty" validate:"omitempty,min=1,max=1000"`
	Timeout       time.Duration `yaml:"timeout" env:"KINDRED_ASSETS_TIMEOUT"`
	Concurrency   int           `yaml:"concurrency" validate:"min=1,max=64"`
}

// ExportConfig controls where exported documents are written.
type ExportConfig struct {
	Dir string `yaml:"dir" env:"KINDRED_EXPORT_DIR" validate:"required"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level string `yaml:"level" env:"KINDRED_LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error"`
	Human bool   `yaml:"human" env:"KINDRED_LOG_HUMAN"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	palette := make([]string, len(logo.DefaultColors))
	for i, c := range logo.DefaultColors {
		palette[i] = string(c)
	}

	return &Config{
		Palette: palette,
		Assets: AssetsConfig{
			Source:        SourceEmbedded,
			Base:          DefaultBaseAsset,
			AccentPattern: DefaultAccentPattern,
			AccentCount:   DefaultAccentCount,
			Timeout:       DefaultTimeout,
			Concurrency:   DefaultConcurrency,
		},
		Export: ExportConfig{Dir: "."},
		Log:    LogConfig{Level: "info", Human: true},
	}
}

// AccentNames returns the ordered accent asset names, expanding the pattern
// when no explicit list is configured.
func (c *Config) AccentNames() []string {
	if len(c.Assets.Accents) > 0 {
		out := make([]string, len(c.Assets.Accents))
		copy(out, c.Assets.Accents)
		return out
	}

	names := make([]string, c.Assets.AccentCount)
	for i := range names {
		names[i] = fmt.Sprintf(c.Assets.AccentPattern, i)
	}
	return names
}

// BuildPalette converts the configured colors into a domain palette.
func (c *Config) BuildPalette() (*logo.Palette, error) {
	colors := make([]logo.Color, len(c.Palette))
	for i, s := range c.Palette {
		colors[i] = logo.Color(s)
	}
	return logo.NewPalette(colors...)
}
