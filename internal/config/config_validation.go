package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	kerrors "github.com/alexisbeaulieu97/kindred/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return kerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Palette))
	for i, c := range cfg.Palette {
		if first, exists := seen[c]; exists {
			return kerrors.NewValidationError(fieldForPalette(i), fmt.Sprintf("duplicate palette color %q (first at palette[%d])", c, first), nil)
		}
		seen[c] = i
	}

	return validateAssets(&cfg.Assets)
}

func validateAssets(a *AssetsConfig) error {
	v := validatorInstance()

	switch a.Source {
	case SourceHTTP:
		if err := v.Var(a.Location, "http_base"); err != nil {
			return kerrors.NewValidationError("assets.location", "http source requires an http(s) base URL", err)
		}
	case SourceGit:
		if err := v.Var(a.Location, "git_url"); err != nil {
			return kerrors.NewValidationError("assets.location", "git source requires a repository URL or path", err)
		}
	}

	if a.Ref != "" && a.Source != SourceGit {
		return kerrors.NewValidationError("assets.ref", "ref is only valid for git sources", nil)
	}

	if a.Timeout <= 0 {
		return kerrors.NewValidationError("assets.timeout", "timeout must be positive", nil)
	}

	if len(a.Accents) > 0 {
		seen := make(map[string]struct{}, len(a.Accents))
		for i, name := range a.Accents {
			if _, dup := seen[name]; dup {
				return kerrors.NewValidationError(fmt.Sprintf("assets.accents[%d]", i), fmt.Sprintf("duplicate accent asset %q", name), nil)
			}
			seen[name] = struct{}{}
		}
		return nil
	}

	if a.AccentCount <= 0 {
		return kerrors.NewValidationError("assets.accent_count", "accent_count is required when accents are not listed", nil)
	}
	expanded := fmt.Sprintf(a.AccentPattern, 0)
	if strings.Count(a.AccentPattern, "%") != 1 || strings.Contains(expanded, "%!") {
		return kerrors.NewValidationError("assets.accent_pattern", "accent_pattern must contain exactly one integer verb such as %02d", nil)
	}
	if !isValidAssetName(expanded) {
		return kerrors.NewValidationError("assets.accent_pattern", "accent_pattern must expand to a relative .svg name", nil)
	}

	return nil
}

// normalizePalette rewrites parseable colors to lowercase #rrggbb so that
// "#FFF" and "#ffffff" count as duplicates. Unparseable entries are left for
// the validator to report.
func normalizePalette(cfg *Config) {
	for i, raw := range cfg.Palette {
		cfg.Palette[i] = NormalizeColor(raw)
	}
}

// NormalizeColor rewrites a parseable hex color as lowercase #rrggbb and
// returns anything else trimmed but otherwise untouched.
func NormalizeColor(raw string) string {
	trimmed := strings.TrimSpace(raw)
	c, err := colorful.Hex(trimmed)
	if err != nil {
		return trimmed
	}
	return c.Hex()
}
