package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	kerrors "github.com/alexisbeaulieu97/kindred/pkg/errors"
)

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return kerrors.NewValidationError(field, msg, err)
	}

	return kerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name and snake-cases the remaining
// namespace, e.g. Config.Assets.AccentCount -> assets.accent_count.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, snakeCase(part))
	}
	return strings.Join(lowered, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] != '[' {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func fieldForPalette(index int) string {
	return fmt.Sprintf("palette[%d]", index)
}
