package utils

import (
	"errors"
	"fmt"
	"strings"

	"bistro-backend/models"

	"github.com/go-playground/validator/v10"
)

// Error kinds drive the HTTP status and the caller's retry strategy:
// validation and domain errors need a changed request, conflicts are safe
// to retry as-is, dependency failures never fail the primary operation.
const (
	KindValidation = "validation"
	KindNotFound   = "not_found"
	KindDomain     = "domain"
	KindConflict   = "conflict"
	KindDependency = "dependency"
)

type AppError struct {
	Kind    string
	Message string
	Fields  []models.FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			parts = append(parts, f.Field+": "+f.Message)
		}
		return strings.Join(parts, "; ")
	}
	return e.Kind
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ValidationError(fields ...models.FieldError) *AppError {
	return &AppError{Kind: KindValidation, Message: "Invalid request", Fields: fields}
}

func NotFoundError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func DomainError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindDomain, Message: fmt.Sprintf(format, args...)}
}

func ConflictError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func DependencyError(message string, err error) *AppError {
	return &AppError{Kind: KindDependency, Message: message, Err: err}
}

// KindOf returns the error's kind, or empty for plain errors (treated as
// internal by the HTTP layer).
func KindOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func FieldsOf(err error) []models.FieldError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}

// FromBindingError converts gin binding failures into a validation error
// carrying every failed field, so clients get the full list instead of a
// single joined string.
func FromBindingError(err error) *AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &AppError{
			Kind:    KindValidation,
			Message: "Invalid request body",
			Fields:  []models.FieldError{{Field: "body", Message: err.Error()}},
		}
	}

	fields := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, models.FieldError{
			Field:   fieldName(fe),
			Message: messageForTag(fe),
		})
	}
	return ValidationError(fields...)
}

func fieldName(fe validator.FieldError) string {
	// StructNamespace looks like "CreateOrderRequest.Items[0].Quantity";
	// drop the request type prefix and snake-case the rest.
	ns := fe.StructNamespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	return toSnake(ns)
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] != '.' && s[i-1] != '[' {
				prev := s[i-1]
				if prev < 'A' || prev > 'Z' {
					b.WriteByte('_')
				}
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "numeric":
		return "must contain only digits"
	default:
		return "is invalid"
	}
}
