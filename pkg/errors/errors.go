// Package errors holds the typed failures kindred reports at its edges:
// reading a config file, checking its values, and fetching shape assets.
// Each type unwraps to its cause so callers can still match with errors.Is.
package errors

import (
	"fmt"
)

// ParseError reports a config file that could not be read or decoded. Line
// is 1-based and zero when the decoder did not say where it stopped.
type ParseError struct {
	Path string
	Line int
	Err  error
}

// NewParseError wraps err as a failure to read the config file at path.
func NewParseError(path string, line int, err error) error {
	return &ParseError{Path: path, Line: line, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	where := e.Path
	if e.Line > 0 {
		where = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("read config %s: %v", where, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError names the config field that holds an unacceptable value,
// using the dotted YAML path such as "assets.timeout" or "palette[2]".
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError reports message against field. err may be nil.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return "invalid config: " + e.Message
	}
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LoadError reports a shape asset that could not be fetched or parsed.
// Source is the fetcher's description (a directory, URL or repository).
type LoadError struct {
	Asset  string
	Source string
	Err    error
}

// NewLoadError wraps err for the named asset and source label.
func NewLoadError(asset, source string, err error) error {
	return &LoadError{Asset: asset, Source: source, Err: err}
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	if e.Source != "" {
		return fmt.Sprintf("load error: %s from %s: %v", e.Asset, e.Source, e.Err)
	}
	return fmt.Sprintf("load error: %s: %v", e.Asset, e.Err)
}

func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
