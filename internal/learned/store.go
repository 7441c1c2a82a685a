// Package learned implements the Learned-Pattern Store: a persisted
// list of prompts a previous LLM fallback parsed successfully,
// consulted before paying the LLM cost again. The default backend is a
// single append-style JSON file written with atomic rename-on-write
// (per spec.md §9's explicit recommendation, fixing the truncation
// failure mode the original notes); Redis-backed and
// Postgres-backed implementations of the same Store interface are
// available for multi-process deployments.
package learned

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/solintent/engine/internal/intent"
)

// Store is the contract every backend satisfies.
type Store interface {
	Lookup(ctx context.Context, prompt string) (*intent.ParsedIntent, bool, error)
	Save(ctx context.Context, raw string, result intent.ParsedIntent) error
}

var punctRe = regexp.MustCompile(`[^a-z0-9\s]`)
var spaceRe = regexp.MustCompile(`\s+`)

// Normalize lowercases, strips punctuation, and collapses whitespace.
func Normalize(s string) string {
	lower := strings.ToLower(s)
	stripped := punctRe.ReplaceAllString(lower, "")
	return strings.TrimSpace(spaceRe.ReplaceAllString(stripped, " "))
}

var numRe = regexp.MustCompile(`[0-9]*\.?[0-9]+`)
var addrRe = regexp.MustCompile(`[1-9A-HJ-NP-Za-km-z]{32,44}`)

// Templatize replaces every decimal number with __NUM__ and every
// 32-44 char base58 run with __ADDR__, used for the store's
// template-match lookup tier.
func Templatize(normalized string) string {
	t := addrRe.ReplaceAllString(normalized, "__ADDR__")
	return numRe.ReplaceAllString(t, "__NUM__")
}

// firstNumber extracts the first decimal literal in s, if any.
func firstNumber(s string) (string, bool) {
	m := numRe.FindString(s)
	return m, m != ""
}

// lookupInRecords implements the two-tier lookup algorithm shared by
// every backend: exact normalized match, then template match with the
// first numeric parameter substituted from the new prompt.
func lookupInRecords(records []intent.LearnedPattern, prompt string) (*intent.ParsedIntent, bool) {
	normalized := Normalize(prompt)
	for _, r := range records {
		if r.NormalizedKey == normalized {
			result := r.Result
			result.Confidence = intent.ConfidenceLearnedExact
			return &result, true
		}
	}

	template := Templatize(normalized)
	newNum, hasNum := firstNumber(normalized)
	for _, r := range records {
		if Templatize(r.NormalizedKey) != template {
			continue
		}
		result := cloneIntent(r.Result)
		if hasNum {
			replaceFirstNumericParam(result.Params, newNum)
		}
		result.Confidence = intent.ConfidenceLearnedTemplate
		return result, true
	}
	return nil, false
}

func cloneIntent(p intent.ParsedIntent) *intent.ParsedIntent {
	clone := p
	clone.Params = make(map[string]interface{}, len(p.Params))
	for k, v := range p.Params {
		clone.Params[k] = v
	}
	return &clone
}

func replaceFirstNumericParam(params map[string]interface{}, newNum string) {
	for k, v := range params {
		if _, ok := v.(float64); ok {
			if f, err := strconv.ParseFloat(newNum, 64); err == nil {
				params[k] = f
			}
			return
		}
	}
}
