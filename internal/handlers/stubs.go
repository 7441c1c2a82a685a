package handlers

import (
	"context"

	"github.com/solintent/engine/internal/intent"
	"github.com/solintent/engine/internal/txn"
)

// The handlers in this file are skeleton-only: the pattern bank and the
// venue resolver recognize these protocols, and swaps against them are
// funnelled through the aggregator by the builder (§4.8's swap
// funnelling rule), but their venue-specific, non-swap instruction
// encodings (liquidity provisioning, concentrated-liquidity position
// management, lending market actions) are out of this repo's scope.
// Each raises NotImplemented rather than emit a placeholder instruction
// a caller could mistake for a real one.

type RaydiumHandler struct{}

func NewRaydiumHandler() *RaydiumHandler { return &RaydiumHandler{} }
func (h *RaydiumHandler) Name() string   { return "raydium" }
func (h *RaydiumHandler) Description() string {
	return "Raydium swaps route through the aggregator; other Raydium actions are not implemented."
}
func (h *RaydiumHandler) SupportedActions() []string { return []string{"raydium-swap"} }
func (h *RaydiumHandler) Validate(map[string]interface{}) bool { return true }
func (h *RaydiumHandler) Build(_ context.Context, bi intent.BuildIntent) ([]txn.Instruction, error) {
	return nil, NotImplemented(h.Name(), bi.Intent)
}

type OrcaHandler struct{}

func NewOrcaHandler() *OrcaHandler { return &OrcaHandler{} }
func (h *OrcaHandler) Name() string { return "orca" }
func (h *OrcaHandler) Description() string {
	return "Orca swaps route through the aggregator; Whirlpool liquidity and position actions are not implemented."
}
func (h *OrcaHandler) SupportedActions() []string {
	return []string{"orca-swap", "orca-provide-liquidity", "orca-add-liquidity", "orca-remove-liquidity", "orca-open-position", "orca-close-position"}
}
func (h *OrcaHandler) Validate(map[string]interface{}) bool { return true }
func (h *OrcaHandler) Build(_ context.Context, bi intent.BuildIntent) ([]txn.Instruction, error) {
	return nil, NotImplemented(h.Name(), bi.Intent)
}

type MeteoraHandler struct{}

func NewMeteoraHandler() *MeteoraHandler { return &MeteoraHandler{} }
func (h *MeteoraHandler) Name() string   { return "meteora" }
func (h *MeteoraHandler) Description() string {
	return "Meteora swaps route through the aggregator; DLMM liquidity actions are not implemented."
}
func (h *MeteoraHandler) SupportedActions() []string {
	return []string{"meteora-swap", "meteora-add-liquidity", "meteora-remove-liquidity"}
}
func (h *MeteoraHandler) Validate(map[string]interface{}) bool { return true }
func (h *MeteoraHandler) Build(_ context.Context, bi intent.BuildIntent) ([]txn.Instruction, error) {
	return nil, NotImplemented(h.Name(), bi.Intent)
}

// PumpfunHandler covers pump.fun's bonding-curve buy/sell, which the
// builder's swap funnel always reroutes to the aggregator before this
// handler is ever reached; "create" (launching a new bonding-curve
// token) is the one pump.fun action that cannot be funnelled, and is
// not implemented.
type PumpfunHandler struct{}

func NewPumpfunHandler() *PumpfunHandler { return &PumpfunHandler{} }
func (h *PumpfunHandler) Name() string   { return "pumpfun" }
func (h *PumpfunHandler) Description() string {
	return "Pump.fun buy/sell route through the aggregator; token creation is not implemented."
}
func (h *PumpfunHandler) SupportedActions() []string {
	return []string{"pumpfun-buy", "pumpfun-sell", "pumpfun-create"}
}
func (h *PumpfunHandler) Validate(map[string]interface{}) bool { return true }
func (h *PumpfunHandler) Build(_ context.Context, bi intent.BuildIntent) ([]txn.Instruction, error) {
	return nil, NotImplemented(h.Name(), bi.Intent)
}

type KaminoHandler struct{}

func NewKaminoHandler() *KaminoHandler { return &KaminoHandler{} }
func (h *KaminoHandler) Name() string  { return "kamino" }
func (h *KaminoHandler) Description() string {
	return "Kamino lending actions are not implemented."
}
func (h *KaminoHandler) SupportedActions() []string {
	return []string{"kamino-supply", "kamino-borrow", "kamino-repay", "kamino-withdraw"}
}
func (h *KaminoHandler) Validate(map[string]interface{}) bool { return true }
func (h *KaminoHandler) Build(_ context.Context, bi intent.BuildIntent) ([]txn.Instruction, error) {
	return nil, NotImplemented(h.Name(), bi.Intent)
}

type MarginfiHandler struct{}

func NewMarginfiHandler() *MarginfiHandler { return &MarginfiHandler{} }
func (h *MarginfiHandler) Name() string    { return "marginfi" }
func (h *MarginfiHandler) Description() string {
	return "Marginfi lending actions are not implemented."
}
func (h *MarginfiHandler) SupportedActions() []string {
	return []string{"marginfi-supply", "marginfi-borrow", "marginfi-repay", "marginfi-withdraw"}
}
func (h *MarginfiHandler) Validate(map[string]interface{}) bool { return true }
func (h *MarginfiHandler) Build(_ context.Context, bi intent.BuildIntent) ([]txn.Instruction, error) {
	return nil, NotImplemented(h.Name(), bi.Intent)
}

type SolendHandler struct{}

func NewSolendHandler() *SolendHandler { return &SolendHandler{} }
func (h *SolendHandler) Name() string  { return "solend" }
func (h *SolendHandler) Description() string {
	return "Solend lending actions are not implemented."
}
func (h *SolendHandler) SupportedActions() []string {
	return []string{"solend-supply", "solend-borrow", "solend-repay", "solend-withdraw"}
}
func (h *SolendHandler) Validate(map[string]interface{}) bool { return true }
func (h *SolendHandler) Build(_ context.Context, bi intent.BuildIntent) ([]txn.Instruction, error) {
	return nil, NotImplemented(h.Name(), bi.Intent)
}
