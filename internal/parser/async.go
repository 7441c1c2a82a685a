package parser

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/solintent/engine/internal/intent"
	"github.com/solintent/engine/internal/learned"
	"github.com/solintent/engine/internal/llmfallback"
	"github.com/solintent/engine/internal/patterns"
	"github.com/solintent/engine/internal/venue"
)

// Async orchestrates the synchronous parser plus the self-healing tail
// and venue resolution described in §4.4: learned-store lookup, LLM
// fallback, reparse-sentinel handling, and token/pair resolution.
type Async struct {
	Learned learned.Store
	LLM     llmfallback.Fallback
	Venue   *venue.Resolver
}

// ParseOne runs the full async algorithm on a single already-segmented
// prompt piece, returning the resolved, non-sentinel ParsedIntent the
// builder can consume, plus any priority-fee modifier stripped along
// the way.
func (a *Async) ParseOne(ctx context.Context, segment string) (*intent.ParsedIntent, *patterns.PriorityHint, error) {
	result, hint, err := ParseSegment(segment)
	if err != nil {
		var unparseable *intent.UnparseableError
		if !errors.As(err, &unparseable) {
			return nil, hint, err
		}
		healed, healErr := a.heal(ctx, segment)
		if healErr != nil {
			return nil, hint, healErr
		}
		if healed == nil {
			return nil, hint, err
		}
		result = healed
	}

	resolved, err := a.resolveSentinels(ctx, result)
	if err != nil {
		return nil, hint, err
	}
	return resolved, hint, nil
}

// heal implements step 2: learned-store lookup, then LLM fallback,
// recording a successful LLM parse back into the store.
func (a *Async) heal(ctx context.Context, segment string) (*intent.ParsedIntent, error) {
	if a.Learned != nil {
		if result, ok, err := a.Learned.Lookup(ctx, segment); err == nil && ok {
			return result, nil
		}
	}
	if a.LLM != nil {
		result, err := a.LLM.Resolve(ctx, segment)
		if err != nil {
			log.Warn().Err(err).Msg("llm fallback returned an error, treating as miss")
			return nil, nil
		}
		if result == nil {
			return nil, nil
		}
		if a.Learned != nil {
			if err := a.Learned.Save(ctx, segment, *result); err != nil {
				log.Warn().Err(err).Msg("learned store: save failed")
			}
		}
		return result, nil
	}
	return nil, nil
}

// resolveSentinels implements steps 3-5: reparse, pair resolution,
// token resolution. Every sentinel is resolved before returning; the
// invariant in §3 is that no sentinel tag ever reaches a caller.
func (a *Async) resolveSentinels(ctx context.Context, result *intent.ParsedIntent) (*intent.ParsedIntent, error) {
	switch result.Protocol {
	case intent.TagReparse:
		original, _ := result.Params["originalPrompt"].(string)
		reparsed, _, err := a.ParseOne(ctx, original)
		if err != nil {
			return nil, err
		}
		return reparsed, nil

	case intent.TagResolvePair:
		pool, _ := result.Params["pair"].(string)
		pair, err := a.Venue.ResolvePair(ctx, pool)
		if err != nil || pair == nil {
			result.Protocol = intent.TagAggregator
			result.Confidence = intent.ConfidenceResolveFailedFall
			return result, nil
		}
		result.Protocol = intent.Tag(pair.Protocol)
		result.Params["pool"] = pair.Pool
		result.Params["token"] = pair.BaseMint
		result.Confidence = intent.ConfidenceResolvedUpgrade
		return result, nil

	case intent.TagResolveToken:
		token, _ := result.Params["token"].(string)
		info, err := a.Venue.ResolveToken(ctx, token)
		if err != nil || info == nil {
			result.Protocol = intent.TagAggregator
			result.Confidence = intent.ConfidenceResolveFailedFall
			return result, nil
		}
		result.Protocol = intent.Tag(info.PrimaryVenue)
		result.Params["pool"] = info.PrimaryPool
		result.Confidence = intent.ConfidenceResolvedUpgrade
		return result, nil

	default:
		return result, nil
	}
}
