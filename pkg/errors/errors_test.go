package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("kindred.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "kindred.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "read config kindred.yaml:12: unexpected token", err.Error())

	noLine := NewParseError("kindred.yaml", 0, underlying)
	require.Equal(t, "read config kindred.yaml: unexpected token", noLine.Error())
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("palette[2]", "duplicate palette color", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "palette[2]", validationErr.Field)
	require.Contains(t, validationErr.Message, "duplicate palette color")
	require.Equal(t, "invalid config palette[2]: duplicate palette color", err.Error())
	require.Equal(t, "invalid config: configuration is nil", NewValidationError("", "configuration is nil", nil).Error())
}

func TestLoadErrorIncludesAssetAndSource(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("404 Not Found")
	err := NewLoadError("accent-03.svg", "https://cdn.example.com/shapes", underlying)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Equal(t, "accent-03.svg", loadErr.Asset)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "load error: accent-03.svg from https://cdn.example.com/shapes: 404 Not Found", err.Error())

	bare := NewLoadError("base.svg", "", underlying)
	require.Equal(t, "load error: base.svg: 404 Not Found", bare.Error())
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var loadErr *LoadError
	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, loadErr.Error())
	require.Nil(t, loadErr.Unwrap())
}
