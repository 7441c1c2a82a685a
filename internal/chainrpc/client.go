// Package chainrpc is a Solana JSON-RPC client. It is retargeted from
// the teacher's Ethereum client to the handful of Solana RPC methods
// the engine needs for simulation, blockhash, fees, and account state
// (§4 external collaborators, §5's 10s per-call chain-RPC timeout).
package chainrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/net/http2"

	"github.com/solintent/engine/internal/obstrace"
)

// RequestTimeout is the per-call chain-RPC timeout (§5), distinct from
// the 5s budget given to venue-resolver/LLM calls.
const RequestTimeout = 10 * time.Second

// Network names a Solana cluster and its RPC endpoint.
type Network struct {
	Name   string
	RPCUrl string
}

// Networks is the fixed, env-overridable cluster table, mirroring the
// teacher's SupportedNetworks convention but keyed by cluster name
// rather than a numeric chain ID, since Solana has no chain-ID concept.
var Networks = map[string]Network{
	"mainnet-beta": {Name: "mainnet-beta", RPCUrl: "https://api.mainnet-beta.solana.com"},
	"devnet":       {Name: "devnet", RPCUrl: "https://api.devnet.solana.com"},
	"testnet":      {Name: "testnet", RPCUrl: "https://api.testnet.solana.com"},
}

func init() {
	if url := os.Getenv("SOLANA_MAINNET_RPC"); url != "" {
		Networks["mainnet-beta"] = Network{Name: "mainnet-beta", RPCUrl: url}
	}
	if url := os.Getenv("SOLANA_DEVNET_RPC"); url != "" {
		Networks["devnet"] = Network{Name: "devnet", RPCUrl: url}
	}
	// A Helius-keyed endpoint is preferred over the public mainnet RPC
	// when an API key is supplied, per §2's external collaborator note.
	if key := os.Getenv("HELIUS_API_KEY"); key != "" {
		Networks["mainnet-beta"] = Network{
			Name:   "mainnet-beta",
			RPCUrl: fmt.Sprintf("https://mainnet.helius-rpc.com/?api-key=%s", key),
		}
	}
}

// GetNetwork resolves a cluster name. An empty name falls back to
// DEFAULT_NETWORK, then to mainnet-beta; "mainnet" is accepted as an
// alias of mainnet-beta.
func GetNetwork(name string) (Network, bool) {
	if name == "" {
		name = os.Getenv("DEFAULT_NETWORK")
	}
	if name == "" || name == "mainnet" {
		name = "mainnet-beta"
	}
	n, ok := Networks[name]
	return n, ok
}

type Client struct {
	httpClient *http.Client
	network    Network
}

type jsonRPCRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	ID      int         `json:"id"`
}

type jsonRPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *jsonRPCError   `json:"error"`
	ID      int             `json:"id"`
}

type jsonRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewClient builds an RPC client bound to the named cluster. The
// transport is tuned for HTTP/2, since every Solana RPC endpoint this
// client talks to negotiates it and a high call-volume simulate/quote
// workload benefits from multiplexed streams over one connection.
func NewClient(networkName string) (*Client, error) {
	network, ok := GetNetwork(networkName)
	if !ok {
		return nil, fmt.Errorf("unsupported network: %s", networkName)
	}
	transport := &http.Transport{}
	if err := http2.ConfigureTransport(transport); err != nil {
		transport = nil
	}
	client := &http.Client{Timeout: RequestTimeout}
	if transport != nil {
		client.Transport = transport
	}
	return &Client{
		httpClient: client,
		network:    network,
	}, nil
}

func (c *Client) call(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	ctx, span := obstrace.StartChainRPC(ctx, method)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	req := jsonRPCRequest{JSONRPC: "2.0", Method: method, Params: params, ID: 1}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.network.RPCUrl, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("rpc request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var rpcResp jsonRPCResponse
	if err := json.Unmarshal(respBody, &rpcResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if rpcResp.Error != nil {
		return nil, fmt.Errorf("rpc error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}
	return rpcResp.Result, nil
}

// GetLatestBlockhash returns the current blockhash used to stamp a
// transaction's recency token.
func (c *Client) GetLatestBlockhash(ctx context.Context) (string, error) {
	result, err := c.call(ctx, "getLatestBlockhash", []interface{}{
		map[string]string{"commitment": "finalized"},
	})
	if err != nil {
		return "", err
	}
	var parsed struct {
		Value struct {
			Blockhash string `json:"blockhash"`
		} `json:"value"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal blockhash: %w", err)
	}
	return parsed.Value.Blockhash, nil
}

// SimulateResult is the subset of simulateTransaction's response the
// engine reports back to callers.
type SimulateResult struct {
	Err           interface{} `json:"err"`
	Logs          []string    `json:"logs"`
	UnitsConsumed uint64      `json:"unitsConsumed"`
}

// SimulateTransaction dry-runs a base64-encoded, unsigned transaction.
func (c *Client) SimulateTransaction(ctx context.Context, txB64 string) (*SimulateResult, error) {
	result, err := c.call(ctx, "simulateTransaction", []interface{}{
		txB64,
		map[string]interface{}{
			"encoding":               "base64",
			"sigVerify":              false,
			"replaceRecentBlockhash": true,
		},
	})
	if err != nil {
		return nil, err
	}
	var parsed struct {
		Value SimulateResult `json:"value"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal simulation: %w", err)
	}
	return &parsed.Value, nil
}

// RecentPrioritizationFee is one entry of getRecentPrioritizationFees.
type RecentPrioritizationFee struct {
	Slot              uint64 `json:"slot"`
	PrioritizationFee uint64 `json:"prioritizationFee"`
}

// GetRecentPrioritizationFees returns recent per-compute-unit fees
// observed on the network, used to estimate a priority fee when the
// caller didn't specify one.
func (c *Client) GetRecentPrioritizationFees(ctx context.Context, accounts []string) ([]RecentPrioritizationFee, error) {
	params := []interface{}{}
	if len(accounts) > 0 {
		params = append(params, accounts)
	}
	result, err := c.call(ctx, "getRecentPrioritizationFees", params)
	if err != nil {
		return nil, err
	}
	var fees []RecentPrioritizationFee
	if err := json.Unmarshal(result, &fees); err != nil {
		return nil, fmt.Errorf("unmarshal prioritization fees: %w", err)
	}
	return fees, nil
}

// GetMinimumBalanceForRentExemption returns the lamport amount needed
// for an account of the given size to be rent-exempt.
func (c *Client) GetMinimumBalanceForRentExemption(ctx context.Context, dataLen uint64) (uint64, error) {
	result, err := c.call(ctx, "getMinimumBalanceForRentExemption", []interface{}{dataLen})
	if err != nil {
		return 0, err
	}
	var lamports uint64
	if err := json.Unmarshal(result, &lamports); err != nil {
		return 0, fmt.Errorf("unmarshal rent exemption: %w", err)
	}
	return lamports, nil
}

// GetAccountInfo fetches raw account info, parsed encoding disabled.
func (c *Client) GetAccountInfo(ctx context.Context, pubkey string) (json.RawMessage, error) {
	return c.call(ctx, "getAccountInfo", []interface{}{
		pubkey,
		map[string]string{"encoding": "base64"},
	})
}

// GetParsedAccountInfo fetches account info with the jsonParsed encoding,
// used for token mint/account introspection.
func (c *Client) GetParsedAccountInfo(ctx context.Context, pubkey string) (json.RawMessage, error) {
	return c.call(ctx, "getAccountInfo", []interface{}{
		pubkey,
		map[string]string{"encoding": "jsonParsed"},
	})
}

// TokenAccountBalance is getTokenAccountBalance's value payload.
type TokenAccountBalance struct {
	Amount   string `json:"amount"`
	Decimals int    `json:"decimals"`
	UIAmount float64 `json:"uiAmount"`
}

// GetTokenAccountBalance fetches an SPL token account's balance.
func (c *Client) GetTokenAccountBalance(ctx context.Context, tokenAccount string) (*TokenAccountBalance, error) {
	result, err := c.call(ctx, "getTokenAccountBalance", []interface{}{tokenAccount})
	if err != nil {
		return nil, err
	}
	var parsed struct {
		Value TokenAccountBalance `json:"value"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal token balance: %w", err)
	}
	return &parsed.Value, nil
}
