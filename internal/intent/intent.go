// Package intent holds the vocabulary shared by every stage of the
// pipeline: the request a caller sends in, what the parser produces,
// what the builder consumes, and what it hands back. Grounded on the
// shape of github.com/txplain/txplain/internal/models.TransactionRequest
// and ExplanationResult — a plain request struct in, a plain result
// struct out, everything else kept in untyped baggage only within a
// single request's lifetime.
package intent

import "fmt"

// Tag is a protocol tag. It is deliberately a distinct type rather than
// a bare string so the compiler, not a string comparison, enforces the
// boundary between sentinel tags (needing further resolution) and real
// protocol names a caller may observe.
type Tag string

// Sentinel tags. None of these may ever be returned to a caller; the
// async parser (internal/parser) must resolve them before returning.
const (
	TagResolveToken Tag = "__resolve__"
	TagResolvePair  Tag = "__resolve_pair__"
	TagReparse      Tag = "__reparse__"
)

// IsSentinel reports whether t is one of the internal resolution markers.
func (t Tag) IsSentinel() bool {
	switch t {
	case TagResolveToken, TagResolvePair, TagReparse:
		return true
	default:
		return false
	}
}

// Real protocol tags named by the specification's handler catalog.
const (
	TagSystem      Tag = "system"
	TagSPLToken    Tag = "spl-token"
	TagToken2022   Tag = "token-2022"
	TagMemo        Tag = "memo"
	TagAggregator  Tag = "aggregator"
	TagRaydium     Tag = "raydium"
	TagOrca        Tag = "orca"
	TagMeteora     Tag = "meteora"
	TagPumpfun     Tag = "pumpfun"
	TagKamino      Tag = "kamino"
	TagMarginfi    Tag = "marginfi"
	TagSolend      Tag = "solend"
	TagMarinade    Tag = "marinade"
	TagNativeStake Tag = "native-stake"
	TagJito        Tag = "jito"
)

// Confidence bands — contractual per the specification, not magic
// numbers invented per call site.
const (
	ConfidenceDirectMatch       = 0.9
	ConfidenceLearnedExact      = 0.8
	ConfidenceLearnedTemplate   = 0.75
	ConfidenceLLM               = 0.7
	ConfidenceGenericFallback   = 0.5
	ConfidenceResolvedUpgrade   = 0.95
	ConfidenceResolveFailedFall = 0.5
)

// AmountAll is the sentinel amount meaning "all of the holder's balance".
// Only sell/swap actions accept it; validators reject it elsewhere.
const AmountAll = -1.0

// NaturalIntent is a user-supplied request before parsing.
type NaturalIntent struct {
	RequestID       string
	Prompt          string
	Payer           string
	Network         string
	SkipSimulation  bool
	PriorityFeeHint *uint64 // microlamports per compute unit, user-supplied
	ComputeBudget   *uint32
}

// ParsedIntent is what the parser (or its async wrapper) produces.
type ParsedIntent struct {
	Protocol   Tag
	Action     string
	Params     map[string]interface{}
	Confidence float64
}

// BuildIntent is the builder's input, derived from a ParsedIntent plus
// the enclosing request's payer/network/fee hints.
type BuildIntent struct {
	Intent          string // canonical handler key, e.g. "raydium-swap"
	Params          map[string]interface{}
	Payer           string
	Network         string
	SkipSimulation  bool
	PriorityFeeHint *uint64
	ComputeBudget   *uint32
}

// SimulationReport summarizes a dry run against current chain state.
type SimulationReport struct {
	Success        bool
	UnitsConsumed  uint64
	Logs           []string
	Error          string
}

// BuildResult is the builder's output.
type BuildResult struct {
	Success          bool
	SerializedTxB64  string
	Simulation       *SimulationReport
	Details          *BuildDetails
	Error            string
}

// BuildDetails is the human-facing summary attached to a successful result.
type BuildDetails struct {
	Protocol         string
	InstructionCount int
	UniqueAccounts   []string
	EstimatedFeeSOL  string
	ComputeUnits     uint64
	PriorityFeeµℓ    uint64
}

// TokenInfo is the Venue Resolver's cached output for a single mint.
type TokenInfo struct {
	Mint         string
	Symbol       string
	DisplayName  string
	PrimaryVenue string
	PrimaryPool  string
	AllVenues    []string
	PriceUSD     float64
	LiquidityUSD float64
}

// PairInfo is the Venue Resolver's output for a pool/pair lookup.
type PairInfo struct {
	Protocol    string
	BaseMint    string
	QuoteMint   string
	Pool        string
	DisplayInfo string
}

// LearnedPattern is a persisted, previously LLM-parsed prompt.
type LearnedPattern struct {
	RawPrompt      string       `json:"prompt"`
	NormalizedKey  string       `json:"normalized"`
	Result         ParsedIntent `json:"result"`
}

// UnparseableError is raised when the pattern bank, the learned store,
// and the LLM fallback all miss.
type UnparseableError struct {
	Prompt   string
	Examples []string
}

func (e *UnparseableError) Error() string {
	return fmt.Sprintf("could not parse intent from prompt %q (try forms like: %v)", e.Prompt, e.Examples)
}

// InputShapeError covers malformed caller input: empty/too-long prompts,
// non-base58 payers, missing required parameters.
type InputShapeError struct {
	Reason string
}

func (e *InputShapeError) Error() string { return "invalid input: " + e.Reason }
