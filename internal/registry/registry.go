// Package registry implements the Protocol Registry & Handler Contract:
// a name-keyed directory of transaction builders, built once at process
// start, and the (protocol, action) -> canonical intent-key mapping the
// Transaction Builder uses to pick a handler. Grounded in shape on the
// other_examples dex_parser.go's name-keyed parser registry
// (`parsers map[string]Parser`, `RegisterParser`), generalized from a
// read-only decode-time lookup to a write-once, read-many dispatch
// table, matching §5's "built once at startup, thereafter immutable"
// rule for this kind of table.
package registry

import (
	"context"

	"github.com/solintent/engine/internal/intent"
	"github.com/solintent/engine/internal/txn"
)

// Handler is the contract every protocol handler implements (§4.8).
type Handler interface {
	Name() string
	Description() string
	SupportedActions() []string
	Validate(params map[string]interface{}) bool
	Build(ctx context.Context, bi intent.BuildIntent) ([]txn.Instruction, error)
}

// AccountLister is an optional extension a handler may implement for
// informational purposes; not every handler needs it.
type AccountLister interface {
	RequiredAccounts(params map[string]interface{}) []string
}

// Registry maps both handler names and the actions they accept to the
// same handler value. Later registrations overwrite earlier ones for a
// colliding key, matching §4.8's explicit "later collisions overwrite
// earlier entries; registration order is part of the contract" rule.
type Registry struct {
	byKey map[string]Handler
	order []string
}

func New() *Registry {
	return &Registry{byKey: make(map[string]Handler)}
}

// Register inserts h under its name and every action it supports.
func (r *Registry) Register(h Handler) {
	r.order = append(r.order, h.Name())
	r.byKey[h.Name()] = h
	for _, action := range h.SupportedActions() {
		r.byKey[action] = h
	}
}

// Lookup finds a handler by name or action key.
func (r *Registry) Lookup(key string) (Handler, bool) {
	h, ok := r.byKey[key]
	return h, ok
}

// RegistrationOrder returns handler names in the order they were
// registered, informational for diagnostics/tests.
func (r *Registry) RegistrationOrder() []string { return append([]string{}, r.order...) }

// actionKeyMap is the ~15-entry table from §4.8 translating a
// (protocol, action) pair into the canonical intent key a handler
// recognizes. Unmapped pairs default to "{protocol}-{action}".
var actionKeyMap = map[string]string{
	"raydium:swap":    "raydium-swap",
	"orca:swap":       "orca-swap",
	"meteora:swap":    "meteora-swap",
	"pumpfun:buy":     "pumpfun-buy",
	"pumpfun:sell":    "pumpfun-sell",
	"aggregator:swap": "swap",
	"aggregator:buy":  "swap",
	"aggregator:sell": "swap",
	"jupiter:buy":     "swap",
	"jupiter:sell":    "swap",
	"jupiter:swap":    "swap",
	"marinade:stake":  "marinade-stake",
	"marinade:unstake": "marinade-unstake",
	"jito:tip":        "jito-tip",
	"memo:memo":       "memo",
}

// CanonicalKey maps a (protocol, action) pair to the canonical intent
// key the Transaction Builder looks the handler up by.
func CanonicalKey(protocol intent.Tag, action string) string {
	if key, ok := actionKeyMap[string(protocol)+":"+action]; ok {
		return key
	}
	return string(protocol) + "-" + action
}

// SwapFunnelActions is the action set routed through the aggregator for any
// of these venues, per §4.8's swap funnelling rule.
var SwapFunnelActions = map[string]bool{"swap": true, "buy": true, "sell": true}

var SwapFunnelVenues = map[intent.Tag]bool{
	intent.TagAggregator: true,
	intent.TagRaydium:    true,
	intent.TagOrca:       true,
	intent.TagMeteora:    true,
	intent.TagPumpfun:    true,
}
