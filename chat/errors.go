package chat

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ChatError is the catch-all error for chat completion failures and the
// base type every other kind embeds.
type ChatError struct {
	Message string
	Cause   error
}

func (e *ChatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ChatError) Unwrap() error {
	return e.Cause
}

// ModelNotAvailableError reports that the configured model is not served by
// the provider.
type ModelNotAvailableError struct {
	ChatError
	Model string
}

func (e *ModelNotAvailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model %s is not available: %v", e.Model, e.Cause)
	}
	return fmt.Sprintf("model %s is not available", e.Model)
}

// ConnectionError reports a transport-level failure reaching the provider.
type ConnectionError struct {
	ChatError
}

// RateLimitError reports that the provider throttled the request.
type RateLimitError struct {
	ChatError
}

// classifyProviderError re-expresses an error returned by the OpenAI SDK as
// exactly one of the closed error kinds above. SDK error types never escape
// this boundary, and nothing here retries.
//
// Model availability is detected by a case-insensitive substring match on
// the provider's message text. The API exposes no structured signal for it,
// so a provider wording change silently downgrades the error to ChatError.
func classifyProviderError(model string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return &RateLimitError{ChatError: ChatError{Message: "rate limit exceeded", Cause: err}}
		}
		if strings.Contains(strings.ToLower(apiErr.Message), "model not found") {
			return &ModelNotAvailableError{
				ChatError: ChatError{Message: "model not available", Cause: err},
				Model:     model,
			}
		}
		return &ChatError{Message: "OpenAI API error", Cause: err}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode == http.StatusTooManyRequests {
			return &RateLimitError{ChatError: ChatError{Message: "rate limit exceeded", Cause: err}}
		}
		return &ChatError{Message: "OpenAI API error", Cause: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &ConnectionError{ChatError: ChatError{Message: "failed to connect to OpenAI API", Cause: err}}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &ConnectionError{ChatError: ChatError{Message: "failed to connect to OpenAI API", Cause: err}}
	}

	return &ChatError{Message: "unexpected error during chat completion", Cause: err}
}
