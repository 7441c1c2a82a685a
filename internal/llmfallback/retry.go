// Package llmfallback implements the LLM Fallback component: a
// last-resort structured-extraction call issued when both the pattern
// bank and the learned store miss. Modeled as an interface with a
// single method returning an optional intent, with a null
// implementation used when no credentials are configured — decoupling
// the core engine from any specific model provider, per spec.md §9's
// design note.
package llmfallback

import (
	"context"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
)

// RetryConfig mirrors the shape of a typical LLM retry policy, but
// with a much tighter budget for this call: a hard 5s timeout and a
// small token budget, rather than a long-running explainer call.
type RetryConfig struct {
	MaxRetries    int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	Timeout       time.Duration
	MaxTokens     int
}

// DefaultRetryConfig matches §4.6: "a hard timeout of 5s, a small token
// budget (~200)".
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    2,
		InitialDelay:  200 * time.Millisecond,
		MaxDelay:      1 * time.Second,
		BackoffFactor: 2.0,
		Timeout:       5 * time.Second,
		MaxTokens:     200,
	}
}

// RetryWrapper wraps an llms.Model with retryable-error classification
// and exponential backoff, scaled to this component's short deadline.
type RetryWrapper struct {
	model  llms.Model
	config RetryConfig
}

func NewRetryWrapper(model llms.Model, config RetryConfig) *RetryWrapper {
	return &RetryWrapper{model: model, config: config}
}

// GenerateContent retries transient failures with exponential backoff,
// bounded by config.Timeout for the whole call (one hard ceiling across
// every attempt, not a fresh timeout per attempt).
func (w *RetryWrapper) GenerateContent(ctx context.Context, messages []llms.MessageContent) (*llms.ContentResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, w.config.Timeout)
	defer cancel()

	delay := w.config.InitialDelay
	var lastErr error
	for attempt := 0; attempt <= w.config.MaxRetries; attempt++ {
		resp, err := w.model.GenerateContent(ctx, messages, llms.WithMaxTokens(w.config.MaxTokens))
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !isRetryableError(err) || attempt == w.config.MaxRetries {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * w.config.BackoffFactor)
		if delay > w.config.MaxDelay {
			delay = w.config.MaxDelay
		}
	}
	return nil, lastErr
}

// isRetryableError classifies transient network/rate-limit failures as
// worth retrying.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if netErr, ok := err.(net.Error); ok {
		if netErr.Timeout() {
			return true
		}
	}
	var urlErr *url.Error
	if ue, ok := err.(*url.Error); ok {
		urlErr = ue
		err = urlErr.Err
	}
	msg := strings.ToLower(err.Error())
	retryableSubstrings := []string{
		"context canceled", "context cancelled", "context deadline exceeded",
		"connection refused", "connection reset", "connection timeout",
		"no such host", "network is unreachable", "temporary failure",
		"500", "502", "503", "504", "429",
		"rate limit", "overloaded", "server error", "service unavailable", "dns",
	}
	for _, s := range retryableSubstrings {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
