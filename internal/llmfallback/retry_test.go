package llmfallback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tmc/langchaingo/llms"
)

func TestIsRetryableError(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{errors.New("connection refused"), true},
		{errors.New("503 service unavailable"), true},
		{errors.New("rate limit exceeded"), true},
		{errors.New("invalid api key"), false},
		{nil, false},
	}
	for _, c := range cases {
		if got := isRetryableError(c.err); got != c.want {
			t.Errorf("isRetryableError(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

type fakeModel struct {
	calls      int
	failTimes  int
	failWith   error
	lastPrompt []llms.MessageContent
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls++
	f.lastPrompt = messages
	if f.calls <= f.failTimes {
		return nil, f.failWith
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "ok"}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", nil
}

func TestRetryWrapper_SucceedsAfterRetryableFailure(t *testing.T) {
	model := &fakeModel{failTimes: 1, failWith: errors.New("connection reset")}
	w := NewRetryWrapper(model, RetryConfig{
		MaxRetries: 2, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond,
		BackoffFactor: 2, Timeout: time.Second, MaxTokens: 50,
	})

	resp, err := w.GenerateContent(context.Background(), []llms.MessageContent{})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp.Choices[0].Content != "ok" {
		t.Errorf("Content = %q, want %q", resp.Choices[0].Content, "ok")
	}
	if model.calls != 2 {
		t.Errorf("calls = %d, want 2 (one failure, one success)", model.calls)
	}
}

func TestRetryWrapper_NonRetryableFailsImmediately(t *testing.T) {
	model := &fakeModel{failTimes: 99, failWith: errors.New("invalid api key")}
	w := NewRetryWrapper(model, RetryConfig{
		MaxRetries: 2, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond,
		BackoffFactor: 2, Timeout: time.Second, MaxTokens: 50,
	})

	_, err := w.GenerateContent(context.Background(), []llms.MessageContent{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if model.calls != 1 {
		t.Errorf("calls = %d, want 1 (non-retryable error should not be retried)", model.calls)
	}
}

func TestRetryWrapper_ExhaustsRetriesOnPersistentFailure(t *testing.T) {
	model := &fakeModel{failTimes: 99, failWith: errors.New("503 service unavailable")}
	w := NewRetryWrapper(model, RetryConfig{
		MaxRetries: 2, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond,
		BackoffFactor: 2, Timeout: time.Second, MaxTokens: 50,
	})

	_, err := w.GenerateContent(context.Background(), []llms.MessageContent{})
	if err == nil {
		t.Fatal("expected an error after exhausting retries")
	}
	if model.calls != 3 {
		t.Errorf("calls = %d, want 3 (1 initial + 2 retries)", model.calls)
	}
}

func TestRetryWrapper_DefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.MaxTokens != 200 {
		t.Errorf("MaxTokens = %d, want 200", cfg.MaxTokens)
	}
}
