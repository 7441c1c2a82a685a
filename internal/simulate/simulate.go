// Package simulate implements the Simulator external collaborator: a
// dry run of a built transaction against current chain state, plus the
// priority-fee estimation and conservative-default fallback behavior
// described in §5 and §7.
package simulate

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/solintent/engine/internal/chainrpc"
	"github.com/solintent/engine/internal/estimate"
	"github.com/solintent/engine/internal/intent"
)

// Simulator runs dry-run simulations and estimates a priority fee from
// recent network activity when the caller hasn't supplied one.
type Simulator struct {
	client *chainrpc.Client
}

func New(client *chainrpc.Client) *Simulator {
	return &Simulator{client: client}
}

// Run dry-runs a base64-encoded unsigned transaction. On chain-RPC
// failure it returns conservative defaults and logs a warning rather
// than failing the whole build, per §7's explicit fallback rule.
func (s *Simulator) Run(ctx context.Context, txB64 string) *intent.SimulationReport {
	result, err := s.client.SimulateTransaction(ctx, txB64)
	if err != nil {
		log.Warn().Err(err).Msg("simulator: simulateTransaction failed, using conservative defaults")
		return &intent.SimulationReport{
			Success:       false,
			UnitsConsumed: estimate.ComputeUnits("", 0),
			Error:         err.Error(),
		}
	}
	if result.Err != nil {
		return &intent.SimulationReport{
			Success:       false,
			UnitsConsumed: result.UnitsConsumed,
			Logs:          result.Logs,
			Error:         "simulation reverted",
		}
	}
	return &intent.SimulationReport{
		Success:       true,
		UnitsConsumed: result.UnitsConsumed,
		Logs:          result.Logs,
	}
}

// EstimatePriorityFee returns a user-supplied priority fee verbatim, or
// the median of recent prioritization fees observed on the network when
// the caller didn't specify one. Callers receive 0 if estimation fails,
// per §4.9's explicit contract.
func (s *Simulator) EstimatePriorityFee(ctx context.Context, hint *uint64, accounts []string) uint64 {
	if hint != nil {
		return *hint
	}
	fees, err := s.client.GetRecentPrioritizationFees(ctx, accounts)
	if err != nil || len(fees) == 0 {
		log.Warn().Err(err).Msg("simulator: prioritization fee estimation failed, defaulting to 0")
		return 0
	}
	values := make([]uint64, len(fees))
	for i, f := range fees {
		values[i] = f.PrioritizationFee
	}
	return median(values)
}

func median(values []uint64) uint64 {
	sorted := append([]uint64(nil), values...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// RentExemptionEstimate falls back to the conservative default (890 880
// lamports for a ~165-byte account) when the chain RPC call fails.
func (s *Simulator) RentExemptionEstimate(ctx context.Context, dataLen uint64) uint64 {
	lamports, err := s.client.GetMinimumBalanceForRentExemption(ctx, dataLen)
	if err != nil {
		log.Warn().Err(err).Msg("simulator: rent exemption lookup failed, using conservative default")
		return estimate.RentExemptionLamports
	}
	return lamports
}

// LatestBlockhash falls back to an error when the chain RPC fails; the
// builder has no safe synthetic blockhash to substitute, unlike fee or
// compute-unit estimates.
func (s *Simulator) LatestBlockhash(ctx context.Context) (string, error) {
	return s.client.GetLatestBlockhash(ctx)
}
