package ai

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
)

// FailureKind classifies why a generation request failed.
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	FailureAuth
	FailureQuota
	FailureTransport
)

func (k FailureKind) String() string {
	switch k {
	case FailureAuth:
		return "auth"
	case FailureQuota:
		return "quota"
	case FailureTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// GenerationError wraps an LLM failure together with its classified kind so
// callers can branch on the kind instead of matching error text themselves.
type GenerationError struct {
	Kind FailureKind
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed (%s): %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ClassifyFailure maps err to a FailureKind. The structured googleapi error
// is inspected first; error-text substrings are the best-effort fallback for
// transports that do not surface HTTP status codes.
func ClassifyFailure(err error) FailureKind {
	if err == nil {
		return FailureUnknown
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden:
			return FailureAuth
		case apiErr.Code == http.StatusTooManyRequests:
			return FailureQuota
		case apiErr.Code >= http.StatusInternalServerError:
			return FailureTransport
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key") ||
		strings.Contains(msg, "api_key") ||
		strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "unauthenticated"):
		return FailureAuth
	case strings.Contains(msg, "quota") ||
		strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "rate limit"):
		return FailureQuota
	case strings.Contains(msg, "connection") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded") ||
		strings.Contains(msg, "unavailable"):
		return FailureTransport
	}
	return FailureUnknown
}
