package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/solintent/engine/internal/intent"
	"github.com/solintent/engine/internal/mints"
	"github.com/solintent/engine/internal/txn"
)

// AggregatorRequestTimeout bounds each of the aggregator's two outbound
// calls, matching the Venue Resolver's 5s external-data budget.
const AggregatorRequestTimeout = 5 * time.Second

type quoteResponse struct {
	OutAmount string `json:"outAmount"`
	RoutePlan []struct {
		SwapInfo struct {
			AmmKey string `json:"ammKey"`
			Label  string `json:"label"`
		} `json:"swapInfo"`
	} `json:"routePlan"`
}

type swapResponse struct {
	SwapTransaction string `json:"swapTransaction"`
}

// AggregatorHandler is the special-cased handler named in §4.8: its
// primary entrypoint is BuildSwapTransaction, not Build. Build exists
// only to satisfy the Handler interface and fails on purpose, since a
// quote-then-swap round trip cannot be expressed as a plain instruction
// list the builder would prepend fee instructions to.
type AggregatorHandler struct {
	baseURL    string
	httpClient *http.Client
	mints      *mints.Registry
}

func NewAggregatorHandler(baseURL string, mintRegistry *mints.Registry) *AggregatorHandler {
	return &AggregatorHandler{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: AggregatorRequestTimeout},
		mints:      mintRegistry,
	}
}

func (h *AggregatorHandler) Name() string { return "aggregator" }
func (h *AggregatorHandler) Description() string {
	return "Routes swaps across venues via quote-then-swap; the only handler with a swap transaction already fully built."
}
func (h *AggregatorHandler) SupportedActions() []string { return []string{"swap"} }

func (h *AggregatorHandler) Validate(params map[string]interface{}) bool {
	if amount, ok := floatParam(params, "amount"); ok && amount <= 0 && amount != intent.AmountAll {
		return false
	}
	return true
}

// Build always fails: the aggregator's output is a fully baked,
// already-signed-instruction-free transaction from the swap endpoint,
// not an instruction list the generic builder pipeline can prepend
// compute-budget instructions to.
func (h *AggregatorHandler) Build(context.Context, intent.BuildIntent) ([]txn.Instruction, error) {
	return nil, &ToolError{
		Tool:    h.Name(),
		Message: "aggregator has no generic build path; call BuildSwapTransaction",
		Code:    "not_implemented",
	}
}

// BuildSwapTransaction performs the two outbound calls named in §4.7/§4.8:
// a GET to /quote, then a POST to /swap, returning the base64-encoded,
// unsigned transaction the swap endpoint already assembled.
func (h *AggregatorHandler) BuildSwapTransaction(ctx context.Context, bi intent.BuildIntent) (string, error) {
	from, _ := stringParam(bi.Params, "from")
	to, _ := stringParam(bi.Params, "to")
	if from == "" || to == "" {
		return "", &ToolError{Tool: h.Name(), Message: "missing required parameters: from/to", Code: "invalid_params"}
	}
	fromMint := h.mints.Resolve(from)
	toMint := h.mints.Resolve(to)
	amount, _ := floatParam(bi.Params, "amount")

	quote, err := h.fetchQuote(ctx, fromMint, toMint, amount)
	if err != nil {
		return "", err
	}
	return h.fetchSwapTx(ctx, quote, bi.Payer)
}

func (h *AggregatorHandler) fetchQuote(ctx context.Context, fromMint, toMint string, amount float64) (*quoteResponse, error) {
	url := fmt.Sprintf("%s/quote?inputMint=%s&outputMint=%s&amount=%d", h.baseURL, fromMint, toMint, uint64(amount*1e9))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, &ToolError{Tool: h.Name(), Message: "quote request failed: " + err.Error(), Code: "upstream_error"}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var q quoteResponse
	if err := json.Unmarshal(body, &q); err != nil {
		return nil, &ToolError{Tool: h.Name(), Message: "malformed quote response", Code: "upstream_error"}
	}
	return &q, nil
}

func (h *AggregatorHandler) fetchSwapTx(ctx context.Context, quote *quoteResponse, payer string) (string, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"quoteResponse":     quote,
		"userPublicKey":     payer,
		"useSharedAccounts": false,
		"wrapAndUnwrapSol":  true,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/swap", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", &ToolError{Tool: h.Name(), Message: "swap request failed: " + err.Error(), Code: "upstream_error"}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var s swapResponse
	if err := json.Unmarshal(body, &s); err != nil {
		return "", &ToolError{Tool: h.Name(), Message: "malformed swap response", Code: "upstream_error"}
	}
	if s.SwapTransaction == "" {
		return "", &ToolError{Tool: h.Name(), Message: "swap response carried no transaction", Code: "upstream_error"}
	}
	return s.SwapTransaction, nil
}
