package logo

import (
	"errors"
	"fmt"
)

// ErrorCode identifies well-known error categories raised by the logo domain.
type ErrorCode string

const (
	ErrCodeConfiguration   ErrorCode = "CONFIGURATION_ERROR"
	ErrCodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"
	ErrCodeColorConflict   ErrorCode = "COLOR_CONFLICT"
	ErrCodeInvalidColor    ErrorCode = "INVALID_COLOR"
	ErrCodeAssetLoad       ErrorCode = "ASSET_LOAD_FAILURE"
	ErrCodeNotReady        ErrorCode = "CATALOG_NOT_READY"
	ErrCodeState           ErrorCode = "INVALID_STATE"
)

// DomainError represents a typed error enriched with contextual data while
// remaining free from infrastructure dependencies.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is allows errors.Is comparisons against other DomainError values.
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if !errors.As(target, &domainErr) {
		return false
	}
	return e.Code == domainErr.Code && e.Message == domainErr.Message
}

// WithContext clones the error with additional contextual metadata.
func (e *DomainError) WithContext(ctx map[string]interface{}) *DomainError {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: merged,
	}
}

// HasCode reports whether err, or any error it wraps, is a DomainError with
// the given code.
func HasCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	for err != nil {
		if !errors.As(err, &domainErr) {
			return false
		}
		if domainErr.Code == code {
			return true
		}
		err = domainErr.Cause
	}
	return false
}

// NewConfigurationError reports a structurally invalid palette or catalog.
func NewConfigurationError(message string, context map[string]interface{}) *DomainError {
	return newDomainError(ErrCodeConfiguration, message, nil, context)
}

// NewAssetLoadError reports a failed asset load with its human-readable reason.
func NewAssetLoadError(reason string, cause error) *DomainError {
	return newDomainError(ErrCodeAssetLoad, "asset load failed", cause, map[string]interface{}{
		"reason": reason,
	})
}

func newDomainError(code ErrorCode, message string, cause error, context map[string]interface{}) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

func newIndexError(index ShapeRef, count int) *DomainError {
	return newDomainError(ErrCodeIndexOutOfRange, "accent index out of range", nil, map[string]interface{}{
		"index": int(index),
		"count": count,
	})
}

func newInvalidColorError(c Color) *DomainError {
	return newDomainError(ErrCodeInvalidColor, "color is not in the palette", nil, map[string]interface{}{
		"color": string(c),
	})
}

func newColorConflictError(c Color) *DomainError {
	return newDomainError(ErrCodeColorConflict, "accent color must differ from base color", nil, map[string]interface{}{
		"color": string(c),
	})
}

func newStateError(message string, context map[string]interface{}) *DomainError {
	return newDomainError(ErrCodeState, message, nil, context)
}
