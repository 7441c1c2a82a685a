package llmfallback

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/solintent/engine/internal/intent"
	"github.com/solintent/engine/internal/mints"
	"github.com/solintent/engine/internal/obstrace"
)

// Fallback is the contract: an optional intent for a raw prompt, or
// nil when the model declines, fails, or is not configured. Failures
// are never raised as errors — per §4.6/§7, they are logged and
// treated as a null return so the caller can re-raise the original
// parser error.
type Fallback interface {
	Resolve(ctx context.Context, prompt string) (*intent.ParsedIntent, error)
}

// Null is used when no model credentials are configured; it is always
// a no-op, matching §4.6's "this component is a no-op that returns
// null" requirement.
type Null struct{}

func (Null) Resolve(context.Context, string) (*intent.ParsedIntent, error) { return nil, nil }

// closedActions is the vocabulary the system prompt instructs the model
// to choose from; any other action value is rejected.
var closedActions = map[string]bool{
	"swap": true, "buy": true, "sell": true, "transfer": true,
	"memo": true, "stake": true, "unstake": true, "tip": true,
}

const systemPrompt = `You extract a single Solana transaction intent from a user's prompt.
Respond with ONLY a JSON object, no prose, shaped exactly as:
{"action": "<one of: swap, buy, sell, transfer, memo, stake, unstake, tip>", "params": {...}, "protocol": "<optional venue hint>"}
params may include: from, to, token, amount, text. Use null amount if unspecified.`

// OpenAI issues a single structured-output request via langchaingo's
// openai client, wrapped in RetryWrapper, and parses the reply the same
// way the teacher's protocol_resolver.go extracts a JSON payload out of
// free model text: find the outermost braces, unmarshal, validate.
type OpenAI struct {
	retry    *RetryWrapper
	registry *mints.Registry
}

func NewOpenAI(apiKey string) (*OpenAI, error) {
	model, err := openai.New(openai.WithModel("gpt-4.1-mini"), openai.WithToken(apiKey))
	if err != nil {
		return nil, err
	}
	return &OpenAI{retry: NewRetryWrapper(model, DefaultRetryConfig()), registry: mints.New()}, nil
}

func (o *OpenAI) Resolve(ctx context.Context, prompt string) (*intent.ParsedIntent, error) {
	ctx, span := obstrace.StartLLMFallback(ctx, len(prompt))
	defer span.End()

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}
	resp, err := o.retry.GenerateContent(ctx, messages)
	if err != nil {
		log.Warn().Err(err).Msg("llm fallback: generate failed, returning null")
		return nil, nil
	}
	if len(resp.Choices) == 0 {
		return nil, nil
	}
	text := resp.Choices[0].Content

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		log.Warn().Str("text", text).Msg("llm fallback: no JSON object found")
		return nil, nil
	}

	var reply struct {
		Action   string                 `json:"action"`
		Params   map[string]interface{} `json:"params"`
		Protocol string                 `json:"protocol"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &reply); err != nil {
		log.Warn().Err(err).Msg("llm fallback: invalid JSON reply")
		return nil, nil
	}
	if !closedActions[reply.Action] {
		log.Warn().Str("action", reply.Action).Msg("llm fallback: action outside closed vocabulary")
		return nil, nil
	}

	return o.synthesize(reply.Action, reply.Params), nil
}

// synthesize turns the model's closed-vocabulary reply into a
// ParsedIntent per §4.6's mapping table, at confidence 0.7.
func (o *OpenAI) synthesize(action string, params map[string]interface{}) *intent.ParsedIntent {
	get := func(k string) string {
		if v, ok := params[k].(string); ok {
			return v
		}
		return ""
	}
	amount, hasAmount := params["amount"].(float64)

	switch action {
	case "swap", "buy", "sell":
		from := get("from")
		to := get("to")
		if !hasAmount {
			amount = 1
		}
		return &intent.ParsedIntent{
			Protocol: intent.TagAggregator,
			Action:   "swap",
			Params: map[string]interface{}{
				"amount": amount,
				"from":   o.registry.Resolve(from),
				"to":     o.registry.Resolve(to),
			},
			Confidence: intent.ConfidenceLLM,
		}
	case "transfer":
		token := get("token")
		protocol := intent.TagSPLToken
		if strings.EqualFold(token, "SOL") || token == "" {
			protocol = intent.TagSystem
		}
		if !hasAmount {
			amount = 1
		}
		return &intent.ParsedIntent{
			Protocol: protocol,
			Action:   "transfer",
			Params: map[string]interface{}{
				"amount": amount,
				"to":     get("to"),
				"token":  o.registry.Resolve(token),
			},
			Confidence: intent.ConfidenceLLM,
		}
	case "memo":
		return &intent.ParsedIntent{
			Protocol:   intent.TagMemo,
			Action:     "memo",
			Params:     map[string]interface{}{"text": get("text")},
			Confidence: intent.ConfidenceLLM,
		}
	case "stake", "unstake":
		if !hasAmount {
			amount = 1
		}
		return &intent.ParsedIntent{
			Protocol:   intent.TagNativeStake,
			Action:     action,
			Params:     map[string]interface{}{"amount": amount},
			Confidence: intent.ConfidenceLLM,
		}
	case "tip":
		if !hasAmount {
			amount = 0.001
		}
		return &intent.ParsedIntent{
			Protocol:   intent.TagJito,
			Action:     "tip",
			Params:     map[string]interface{}{"amount": amount},
			Confidence: intent.ConfidenceLLM,
		}
	}
	return nil
}
