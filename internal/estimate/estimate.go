// Package estimate implements the cheap pre-build cost estimate
// described in spec §4.10: table-driven compute-unit guesses, overhead,
// and the single authoritative priority-fee formula the Transaction
// Builder must call rather than recompute.
package estimate

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// Per-intent compute-unit table, §4.10.
var computeUnitTable = map[string]uint64{
	"system-transfer":     450,
	"transfer":            450,
	"spl-transfer":        2500,
	"swap":                400000,
	"raydium-swap":        400000,
	"orca-swap":           400000,
	"meteora-swap":        400000,
	"memo":                450,
	"jito-tip":            1000,
	"pumpfun-buy":         200000,
	"pumpfun-sell":        200000,
	"marinade-stake":      15000,
	"marinade-unstake":    15000,
	"native-stake-stake":  5000,
	"native-stake-unstake": 5000,
}

const defaultComputeUnits = 200000

// BaseFeeLamports is the flat network fee per signature.
const BaseFeeLamports = 5000

// RentExemptionLamports is the ~165-byte account rent-exemption estimate.
const RentExemptionLamports = 890880

const txOverheadBase = 1500
const txOverheadPerInstruction = 200

// ComputeUnits estimates compute units for a single canonical intent key,
// applying the swap-amount and "create"-action adjustments from §4.10.
func ComputeUnits(intentKey string, amount float64) uint64 {
	units, ok := computeUnitTable[intentKey]
	if !ok {
		units = defaultComputeUnits
	}
	if (strings.Contains(intentKey, "swap") || intentKey == "swap") && amount > 1000 {
		units = uint64(math.Ceil(float64(units) * 1.2))
	}
	if strings.Contains(intentKey, "create") {
		units += 2000
	}
	return units
}

// TransactionOverhead returns the fixed per-transaction compute overhead
// given the number of instructions in the transaction.
func TransactionOverhead(instructionCount int) uint64 {
	return txOverheadBase + uint64(instructionCount)*txOverheadPerInstruction
}

// PriorityFeeLamports is the single authoritative priority-fee formula
// (§4.10): ceil(totalComputeUnits * priorityFeeMicroLamports / 1_000_000).
// The builder must call this rather than recompute it independently —
// the earlier double-division bug this fixes is documented in DESIGN.md.
func PriorityFeeLamports(totalComputeUnits uint64, priorityFeeMicroLamports uint64) uint64 {
	return uint64(math.Ceil(float64(totalComputeUnits) * float64(priorityFeeMicroLamports) / 1_000_000))
}

// TotalFeeLamports sums the base fee and the priority fee.
func TotalFeeLamports(priorityFeeLamports uint64) uint64 {
	return BaseFeeLamports + priorityFeeLamports
}

// FormatSOL renders a lamport amount as a fixed-decimal SOL string with
// 9 fractional digits, per §4.10's output contract.
func FormatSOL(lamports uint64) string {
	sol := float64(lamports) / 1_000_000_000
	return fmt.Sprintf("%.9f", sol)
}

// HumanizeLamports is used for human-facing summaries elsewhere in the
// engine (e.g. CLI output) where a SOL string alone is too terse.
func HumanizeLamports(lamports uint64) string {
	return humanize.Comma(int64(lamports)) + " lamports"
}

// IsAccountCreation reports whether an intent key names an
// account-creation action, which needs a rent-exemption estimate added.
func IsAccountCreation(intentKey string) bool {
	return strings.Contains(intentKey, "create")
}
