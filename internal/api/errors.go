package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/digits/internal/api/shared"
	"github.com/phrazzld/digits/internal/domain"
	"github.com/phrazzld/digits/internal/domain/arith"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	// Arithmetic failure on well-formed input
	case errors.Is(err, domain.ErrDivisionByZero):
		return http.StatusUnprocessableEntity

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidOperator),
		errors.Is(err, domain.ErrInvalidDigitChar),
		errors.Is(err, domain.ErrDigitOutOfRange),
		errors.Is(err, arith.ErrEmptyOperand),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, domain.ErrDivisionByZero):
		return "Division by zero"
	case errors.Is(err, domain.ErrInvalidOperator):
		return "Invalid operator"
	case errors.Is(err, domain.ErrDigitOutOfRange):
		return "Operand out of range: must be between 0 and 9"
	case errors.Is(err, domain.ErrInvalidDigitChar):
		return "Invalid operand: must be a decimal digit"
	case errors.Is(err, arith.ErrEmptyOperand):
		return "Operand is required"
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(err)
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]
		return fmt.Sprintf("Invalid %s: %s", strings.ToLower(first.Field()), getValidationTagMessage(first.Tag()))
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "numeric":
		return "must be a decimal number"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the status code and safe message for err. When
// fallback is non-empty it replaces the message of 500 responses.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
