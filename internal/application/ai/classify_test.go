package ai

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClass
	}{
		{"gemini quota", errors.New("googleapi: Error 429: Quota exceeded for quota metric"), ClassQuotaExceeded},
		{"openai quota", errors.New("You exceeded your current quota, please check your plan"), ClassQuotaExceeded},
		{"invalid api key", errors.New("Incorrect API key provided: sk-proj-***"), ClassAuthFailure},
		{"permission denied", errors.New("PERMISSION_DENIED: the caller does not have permission"), ClassAuthFailure},
		{"unauthorized", errors.New("401 Unauthorized"), ClassAuthFailure},
		{"rate limit", errors.New("Rate limit reached for gpt-4o-mini"), ClassRateLimited},
		{"timeout", errors.New("context deadline exceeded"), ClassUnknown},
		{"connection refused", errors.New("dial tcp: connection refused"), ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestClassify_QuotaWinsOverRate(t *testing.T) {
	// Quota messages often also mention rate limits; quota is the
	// more actionable bucket.
	err := errors.New("429: rate limit: insufficient quota")
	assert.Equal(t, ClassQuotaExceeded, Classify(err))
}

func TestProviderError_UserMessage(t *testing.T) {
	for _, class := range []ErrorClass{ClassQuotaExceeded, ClassAuthFailure, ClassRateLimited, ClassUnknown} {
		perr := &ProviderError{Provider: "gemini", Class: class, Raw: "raw detail"}
		assert.NotEmpty(t, perr.UserMessage(), "class %s", class)
	}
}

func TestProviderError_ErrorIncludesRawDetail(t *testing.T) {
	perr := &ProviderError{Provider: "openai", Class: ClassUnknown, Raw: "boom"}
	assert.Equal(t, fmt.Sprintf("provider openai failed (%s): boom", ClassUnknown), perr.Error())
}
