// Package apperr defines the error taxonomy of the assessment pipeline and its
// mapping to HTTP status codes. Handlers convert every error that reaches them
// into a uniform JSON envelope; stack traces stay server-side.
package apperr

import (
	"fmt"
	"net/http"
)

// ValidationError indicates bad or missing request input. No network call is
// made once validation fails.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validation(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError indicates a missing role profile, application or presentation.
type NotFoundError struct {
	Resource string
	Message  string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func NotFound(resource, message string) *NotFoundError {
	return &NotFoundError{Resource: resource, Message: message}
}

// RateLimitedError indicates the LLM gateway returned 429. The caller may
// retry manually after a cooldown; the pipeline never retries on its own.
type RateLimitedError struct{}

func (e *RateLimitedError) Error() string {
	return "för många förfrågningar till AI-tjänsten, vänta en stund och försök igen"
}

// QuotaExceededError indicates the LLM gateway returned 402. Fatal until an
// operator tops up credits.
type QuotaExceededError struct{}

func (e *QuotaExceededError) Error() string {
	return "AI-tjänsten kräver påfyllning av krediter"
}

// UpstreamError covers every other non-2xx or transport failure from the LLM
// gateway. Status and body are logged at the call site for diagnosis.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return "AI-tjänsten kunde inte nås"
	}
	return fmt.Sprintf("AI-tjänsten svarade med status %d", e.Status)
}

// MalformedResponseError indicates a 2xx gateway response without the expected
// tool call. Free-text output is never salvaged into an assessment.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "AI-tjänsten returnerade ett oväntat svar"
}

// PersistenceError indicates a store write failed after a successful
// generation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ForbiddenError indicates the caller lacks the role required for the action.
type ForbiddenError struct{}

func (e *ForbiddenError) Error() string {
	return "åtkomst nekad"
}

// HTTPStatus returns the response status code for an error from the taxonomy.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ValidationError:
		return http.StatusBadRequest
	case *NotFoundError:
		return http.StatusNotFound
	case *RateLimitedError:
		return http.StatusTooManyRequests
	case *QuotaExceededError:
		return http.StatusPaymentRequired
	case *UpstreamError, *MalformedResponseError:
		return http.StatusBadGateway
	case *ForbiddenError:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
