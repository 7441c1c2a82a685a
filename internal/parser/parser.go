// Package parser implements the synchronous half of intent recognition:
// pre-processing a segment, walking the pattern bank, and falling back
// to the last-resort "X for Y" skeleton matcher before giving up with
// an UnparseableError. The asynchronous wrapper that adds the learned
// store, the LLM fallback, and sentinel resolution lives in async.go.
package parser

import (
	"regexp"
	"strings"

	"github.com/solintent/engine/internal/intent"
	"github.com/solintent/engine/internal/mints"
	"github.com/solintent/engine/internal/patterns"
)

var registry = mints.New()

// emojiRe strips emoji and variation selectors during pre-processing,
// matching common ranges; Solana prompts arrive from chat UIs where
// users routinely decorate prompts with reaction emoji.
var emojiRe = regexp.MustCompile(`[\x{1F300}-\x{1FAFF}\x{2600}-\x{27BF}\x{FE0E}\x{FE0F}]`)

func preprocess(prompt string) (original, lowered string) {
	cleaned := emojiRe.ReplaceAllString(prompt, "")
	cleaned = strings.TrimSpace(cleaned)
	return cleaned, strings.ToLower(cleaned)
}

// fallbackRe recognizes the bare skeleton "X for Y" / "X to Y" — the
// last resort before raising IntentUnparseable.
var fallbackRe = regexp.MustCompile(`(?i)^(?P<x>.+?)\s+(?:for|to)\s+(?P<y>.+)$`)

var exampleForms = []string{
	`swap 1 SOL for USDC`,
	`send 0.1 SOL to <address>`,
	`memo "gm"`,
	`stake 1 SOL`,
	`supply 100 USDC to Kamino`,
}

// ParseSegment runs the synchronous pipeline on one already-segmented
// piece of text: priority-modifier stripping, pattern-bank matching,
// then the generic fallback matcher.
func ParseSegment(segment string) (*intent.ParsedIntent, *patterns.PriorityHint, error) {
	stripped, hint := patterns.StripPriorityModifiers(segment)
	original, lowered := preprocess(stripped)
	if original == "" {
		return nil, nil, &intent.InputShapeError{Reason: "empty segment"}
	}

	if parsed, ok := patterns.MatchSegment(original, lowered); ok {
		return parsed, hint, nil
	}

	if m := fallbackRe.FindStringSubmatch(original); m != nil {
		x := strings.TrimSpace(m[1])
		y := strings.TrimSpace(m[2])
		return &intent.ParsedIntent{
			Protocol: intent.TagAggregator,
			Action:   "swap",
			Params: map[string]interface{}{
				"amount": 1.0,
				"from":   registry.Resolve(x),
				"to":     registry.Resolve(y),
			},
			Confidence: intent.ConfidenceGenericFallback,
		}, hint, nil
	}

	return nil, hint, &intent.UnparseableError{Prompt: segment, Examples: exampleForms}
}
