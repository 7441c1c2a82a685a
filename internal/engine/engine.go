// Package engine is the top-level orchestrator: it wires the Prompt
// Segmenter, async Parser, Venue Resolver, and Transaction Builder into
// the per-request pipeline described by §6, building a fresh request
// context per call and narrating each stage the way the teacher's
// TxplainAgent.ExplainTransaction does.
package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/solintent/engine/internal/builder"
	"github.com/solintent/engine/internal/chainrpc"
	"github.com/solintent/engine/internal/decode"
	"github.com/solintent/engine/internal/estimate"
	"github.com/solintent/engine/internal/intent"
	"github.com/solintent/engine/internal/parser"
	"github.com/solintent/engine/internal/progress"
	"github.com/solintent/engine/internal/segment"
)

// Engine ties every collaborator together for one request at a time.
// Built once at process start; every method is request-scoped and safe
// for concurrent callers, per §5's ownership rules.
type Engine struct {
	Async   *parser.Async
	Builder *builder.Builder
	Decoder *decode.Decoder
}

func New(async *parser.Async, b *builder.Builder, d *decode.Decoder) *Engine {
	return &Engine{Async: async, Builder: b, Decoder: d}
}

// MultiBuildResult pairs each segment of a multi-intent prompt with its
// own build outcome, preserving left-to-right ordering per §5.
type MultiBuildResult struct {
	Segment string
	Result  *intent.BuildResult
}

// BuildFromNaturalLanguage is the headline path: segment a free-text
// prompt into one or more intents, parse+resolve each, and build a
// transaction for each in left-to-right order.
func (e *Engine) BuildFromNaturalLanguage(ctx context.Context, req intent.NaturalIntent, tracker *progress.Tracker) ([]MultiBuildResult, error) {
	if tracker == nil {
		tracker = progress.New(req.RequestID, nil)
	}
	defer tracker.Close()

	tracker.Update(progress.StageSegment, progress.StatusRunning, "splitting prompt into intents")
	segments := segment.Split(req.Prompt)
	tracker.Update(progress.StageSegment, progress.StatusFinished, fmt.Sprintf("%d segment(s)", len(segments)))

	results := make([]MultiBuildResult, 0, len(segments))
	for _, seg := range segments {
		tracker.Update(progress.StageParse, progress.StatusRunning, seg)
		parsed, hint, err := e.Async.ParseOne(ctx, seg)
		if err != nil {
			tracker.Update(progress.StageParse, progress.StatusError, err.Error())
			results = append(results, MultiBuildResult{Segment: seg, Result: &intent.BuildResult{Success: false, Error: err.Error()}})
			continue
		}
		tracker.Update(progress.StageParse, progress.StatusFinished, string(parsed.Protocol))

		segReq := req
		if hint != nil && req.PriorityFeeHint == nil {
			fee := priorityHintToMicroLamports(hint.Raw)
			segReq.PriorityFeeHint = &fee
		}

		tracker.Update(progress.StageBuild, progress.StatusRunning, "building transaction")
		result := e.Builder.Build(ctx, parsed, segReq)
		if result.Success {
			tracker.Update(progress.StageBuild, progress.StatusFinished, "built")
		} else {
			tracker.Update(progress.StageBuild, progress.StatusError, result.Error)
		}
		results = append(results, MultiBuildResult{Segment: seg, Result: result})
	}
	return results, nil
}

// BuildFromStructured skips segmentation and parsing entirely: the
// caller already supplies a resolved (protocol, action, params) triple.
func (e *Engine) BuildFromStructured(ctx context.Context, parsed intent.ParsedIntent, req intent.NaturalIntent) *intent.BuildResult {
	return e.Builder.Build(ctx, &parsed, req)
}

// Decode runs the auxiliary Decoder over a previously-built or
// externally-supplied base64 transaction.
func (e *Engine) Decode(txB64 string) ([]decode.InstructionRecord, error) {
	return e.Decoder.Decode(txB64)
}

// Estimate produces a cheap pre-build cost estimate for a single
// canonical intent key without actually building a transaction.
func (e *Engine) Estimate(intentKey string, amount float64, instructionCount int, priorityFeeMicroLamports uint64) intent.BuildDetails {
	units := estimate.ComputeUnits(intentKey, amount)
	units += estimate.TransactionOverhead(instructionCount)

	var rent uint64
	if estimate.IsAccountCreation(intentKey) {
		rent = estimate.RentExemptionLamports
	}
	priority := estimate.PriorityFeeLamports(units, priorityFeeMicroLamports)
	total := estimate.TotalFeeLamports(priority) + rent

	return intent.BuildDetails{
		Protocol:         intentKey,
		InstructionCount: instructionCount,
		EstimatedFeeSOL:  estimate.FormatSOL(total),
		ComputeUnits:     units,
		PriorityFeeµℓ:    priorityFeeMicroLamports,
	}
}

// Resolve exposes the Venue Resolver directly for callers that only
// want token/pair metadata without building a transaction.
func (e *Engine) Resolve(ctx context.Context, mint string) (*intent.TokenInfo, error) {
	if e.Async.Venue == nil {
		return nil, fmt.Errorf("venue resolver not configured")
	}
	return e.Async.Venue.ResolveToken(ctx, mint)
}

// NetworkResolver adapts chainrpc.NewClient to the function shape the
// Transaction Builder expects, logging each client construction.
func NetworkResolver() func(string) (*chainrpc.Client, error) {
	return func(name string) (*chainrpc.Client, error) {
		client, err := chainrpc.NewClient(name)
		if err != nil {
			log.Warn().Err(err).Str("network", name).Msg("engine: failed to build chain rpc client")
		}
		return client, err
	}
}

func priorityHintToMicroLamports(raw string) uint64 {
	// the priority hint carries a coarse qualitative signal ("urgent",
	// "high priority"); translate it to a fixed microlamport bump rather
	// than parsing the modifier text as a number.
	if raw == "" {
		return 0
	}
	return 10_000
}
