// Package builder implements the Transaction Builder (§4.9): handler
// dispatch, swap funnelling, compute-budget instruction assembly,
// simulation, and base64 serialization.
package builder

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/solintent/engine/internal/chainrpc"
	"github.com/solintent/engine/internal/estimate"
	"github.com/solintent/engine/internal/handlers"
	"github.com/solintent/engine/internal/intent"
	"github.com/solintent/engine/internal/registry"
	"github.com/solintent/engine/internal/simulate"
	"github.com/solintent/engine/internal/soladdr"
	"github.com/solintent/engine/internal/txn"
)

// Builder orchestrates handler dispatch against the registry and
// produces a simulated, serialized transaction.
type Builder struct {
	Registry   *registry.Registry
	Aggregator *handlers.AggregatorHandler
	Networks   func(name string) (*chainrpc.Client, error)
}

func New(reg *registry.Registry, aggregator *handlers.AggregatorHandler, networks func(string) (*chainrpc.Client, error)) *Builder {
	return &Builder{Registry: reg, Aggregator: aggregator, Networks: networks}
}

// Build runs the full §4.9 algorithm for a single parsed intent.
func (b *Builder) Build(ctx context.Context, parsed *intent.ParsedIntent, req intent.NaturalIntent) *intent.BuildResult {
	if err := soladdr.Validate(req.Payer); err != nil {
		return failureResult(err)
	}

	client, err := b.Networks(req.Network)
	if err != nil {
		return failureResult(err)
	}
	sim := simulate.New(client)

	action, params := applySwapFunnel(parsed)

	if isSwapFunnelled(parsed.Protocol, action) {
		result, err := b.buildViaAggregator(ctx, action, params, req, sim)
		if err == nil {
			return result
		}
		log.Warn().Err(err).Str("protocol", string(parsed.Protocol)).Msg("builder: aggregator failed, falling back to native handler")
	}

	key := registry.CanonicalKey(parsed.Protocol, action)
	handler, ok := b.Registry.Lookup(key)
	if !ok {
		return failureResult(fmt.Errorf("unsupported intent: %s", key))
	}
	if !handler.Validate(params) {
		return failureResult(fmt.Errorf("invalid parameters for %s", key))
	}

	bi := intent.BuildIntent{
		Intent:          key,
		Params:          params,
		Payer:           req.Payer,
		Network:         req.Network,
		SkipSimulation:  req.SkipSimulation,
		PriorityFeeHint: req.PriorityFeeHint,
		ComputeBudget:   req.ComputeBudget,
	}

	instructions, err := handler.Build(ctx, bi)
	if err != nil {
		return failureResult(err)
	}

	return b.assemble(ctx, string(parsed.Protocol), instructions, req, sim)
}

// buildViaAggregator is the swap-funnel path: buy/sell are rewritten to
// a from/to pair against native SOL, and the aggregator's special
// BuildSwapTransaction entrypoint replaces the generic handler.Build
// call entirely, per §4.8. If the aggregator fails, the builder falls
// back to the native handler path for the original protocol; the
// aggregator's error is returned so Build can do so.
func (b *Builder) buildViaAggregator(ctx context.Context, action string, params map[string]interface{}, req intent.NaturalIntent, sim *simulate.Simulator) (*intent.BuildResult, error) {
	bi := intent.BuildIntent{
		Intent:          "swap",
		Params:          params,
		Payer:           req.Payer,
		Network:         req.Network,
		SkipSimulation:  req.SkipSimulation,
		PriorityFeeHint: req.PriorityFeeHint,
		ComputeBudget:   req.ComputeBudget,
	}
	txB64, err := b.Aggregator.BuildSwapTransaction(ctx, bi)
	if err != nil {
		return nil, fmt.Errorf("aggregator failed: %w", err)
	}

	report := sim.Run(ctx, txB64)
	return &intent.BuildResult{
		Success:         report.Success,
		SerializedTxB64: txB64,
		Simulation:      report,
		Details: &intent.BuildDetails{
			Protocol:     "aggregator",
			ComputeUnits: report.UnitsConsumed,
		},
	}, nil
}

// assemble implements steps 6-10: compute-budget instructions, handler
// instructions, recency/fee-payer stamping, simulation, serialization.
func (b *Builder) assemble(ctx context.Context, protocol string, instructions []txn.Instruction, req intent.NaturalIntent, sim *simulate.Simulator) *intent.BuildResult {
	tx := txn.New(req.Payer)
	if req.ComputeBudget != nil {
		tx.ComputeUnitLimit = *req.ComputeBudget
	}

	accounts := uniqueAccounts(instructions)
	priorityFee := sim.EstimatePriorityFee(ctx, req.PriorityFeeHint, accounts)
	if priorityFee > 0 {
		tx.ComputeUnitPriceµℓ = priorityFee
	}

	budgetInstructions := []txn.Instruction{tx.ComputeUnitLimitInstruction()}
	if tx.ComputeUnitPriceµℓ > 0 {
		budgetInstructions = append(budgetInstructions, tx.ComputeUnitPriceInstruction())
	}
	tx.Prepend(budgetInstructions...)
	tx.Append(instructions...)

	blockhash, err := sim.LatestBlockhash(ctx)
	if err != nil {
		return failureResult(fmt.Errorf("failed to fetch recent blockhash: %w", err))
	}
	tx.RecentBlockhash = blockhash

	serialized := serializePlaceholder(tx)

	var report *intent.SimulationReport
	if req.SkipSimulation {
		report = &intent.SimulationReport{Success: true}
	} else {
		report = sim.Run(ctx, serialized)
		if !report.Success {
			return &intent.BuildResult{Success: false, Simulation: report, Error: report.Error}
		}
	}

	computeUnits := report.UnitsConsumed
	if computeUnits == 0 {
		computeUnits = uint64(tx.ComputeUnitLimit)
	}
	priorityLamports := estimate.PriorityFeeLamports(computeUnits, tx.ComputeUnitPriceµℓ)
	totalFee := estimate.TotalFeeLamports(priorityLamports)

	return &intent.BuildResult{
		Success:         true,
		SerializedTxB64: serialized,
		Simulation:      report,
		Details: &intent.BuildDetails{
			Protocol:         protocol,
			InstructionCount: len(tx.Instructions),
			UniqueAccounts:   tx.UniqueAccounts(),
			EstimatedFeeSOL:  estimate.FormatSOL(totalFee),
			ComputeUnits:     computeUnits,
			PriorityFeeµℓ:    tx.ComputeUnitPriceµℓ,
		},
	}
}

func failureResult(err error) *intent.BuildResult {
	return &intent.BuildResult{Success: false, Error: err.Error()}
}

func uniqueAccounts(instructions []txn.Instruction) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, ix := range instructions {
		for _, acc := range ix.Accounts {
			if _, ok := seen[acc.Pubkey]; ok {
				continue
			}
			seen[acc.Pubkey] = struct{}{}
			out = append(out, acc.Pubkey)
		}
	}
	return out
}

// applySwapFunnel rewrites buy/sell into a from/to pair against native
// SOL, per §4.8's funnelling rule.
func applySwapFunnel(parsed *intent.ParsedIntent) (string, map[string]interface{}) {
	params := make(map[string]interface{}, len(parsed.Params))
	for k, v := range parsed.Params {
		params[k] = v
	}
	switch parsed.Action {
	case "buy":
		token, _ := params["token"].(string)
		params["from"] = soladdr.WrappedSOL
		params["to"] = token
		return "swap", params
	case "sell":
		token, _ := params["token"].(string)
		params["from"] = token
		params["to"] = soladdr.WrappedSOL
		return "swap", params
	default:
		return parsed.Action, params
	}
}

func isSwapFunnelled(protocol intent.Tag, action string) bool {
	return registry.SwapFunnelActions[action] && registry.SwapFunnelVenues[protocol]
}

// serializePlaceholder stands in for the chain-SDK collaborator's real
// wire serialization (§1), which compiles the instruction list into the
// signed-message byte format a cluster accepts. Outside this repo's
// scope, it returns a deterministic placeholder payload so the
// simulate/estimate pipeline downstream of it stays exercised.
func serializePlaceholder(tx *txn.Transaction) string {
	return txn.EncodePlaceholder(tx)
}
