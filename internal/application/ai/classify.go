package ai

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoProvider signals that no provider credential is configured at
// all. It is distinct from a provider failure so operators can tell
// missing setup from a transient outage.
var ErrNoProvider = errors.New("no text generation provider configured")

// ErrorClass buckets provider failures for the caller.
type ErrorClass string

const (
	ClassQuotaExceeded ErrorClass = "quota_exceeded"
	ClassAuthFailure   ErrorClass = "auth_failure"
	ClassRateLimited   ErrorClass = "rate_limited"
	ClassUnknown       ErrorClass = "unknown"
)

var userMessages = map[ErrorClass]string{
	ClassQuotaExceeded: "The AI service quota has been exhausted. Please try again later.",
	ClassAuthFailure:   "The AI service rejected our credentials. Please contact the administrator.",
	ClassRateLimited:   "Too many AI requests right now. Please wait a moment and try again.",
	ClassUnknown:       "The AI service is temporarily unavailable. Please try again later.",
}

// ProviderError wraps a provider failure with its class and the fixed
// user-facing message. The raw detail is kept for operator logs and is
// never the only signal surfaced to the caller.
type ProviderError struct {
	Provider string
	Class    ErrorClass
	Raw      string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s failed (%s): %s", e.Provider, e.Class, e.Raw)
}

// UserMessage returns the fixed message for the error class.
func (e *ProviderError) UserMessage() string {
	return userMessages[e.Class]
}

// Classify buckets a provider error by inspecting its lowercase string
// form. The substring rules mirror the messages the provider SDKs and
// REST APIs actually produce.
func Classify(err error) ErrorClass {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota"):
		return ClassQuotaExceeded
	case strings.Contains(msg, "api key"),
		strings.Contains(msg, "permission"),
		strings.Contains(msg, "unauthorized"):
		return ClassAuthFailure
	case strings.Contains(msg, "rate") && strings.Contains(msg, "limit"):
		return ClassRateLimited
	default:
		return ClassUnknown
	}
}
