package builder

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/solintent/engine/internal/chainrpc"
	"github.com/solintent/engine/internal/handlers"
	"github.com/solintent/engine/internal/intent"
	"github.com/solintent/engine/internal/mints"
	"github.com/solintent/engine/internal/registry"
	"github.com/solintent/engine/internal/soladdr"
)

const testPayer = soladdr.WrappedSOL

func testNetworkResolver(t *testing.T, rpcHandler http.HandlerFunc) func(string) (*chainrpc.Client, error) {
	t.Helper()
	server := httptest.NewServer(rpcHandler)
	t.Cleanup(server.Close)
	chainrpc.Networks["builder-test"] = chainrpc.Network{Name: "builder-test", RPCUrl: server.URL}
	return func(string) (*chainrpc.Client, error) {
		return chainrpc.NewClient("builder-test")
	}
}

func readBody(r *http.Request) []byte {
	body, _ := io.ReadAll(r.Body)
	return body
}

func contains(body []byte, substr string) bool {
	return bytes.Contains(body, []byte(substr))
}

func happyPathRPC(w http.ResponseWriter, r *http.Request) {
	body := readBody(r)
	w.Header().Set("Content-Type", "application/json")
	switch {
	case contains(body, "getLatestBlockhash"):
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"value":{"blockhash":"testblockhash"}}}`))
	case contains(body, "simulateTransaction"):
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"value":{"err":null,"logs":[],"unitsConsumed":450}}}`))
	case contains(body, "getRecentPrioritizationFees"):
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":[{"slot":1,"prioritizationFee":10}]}`))
	default:
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":null}`))
	}
}

func newTestBuilder(t *testing.T, rpcHandler http.HandlerFunc) *Builder {
	t.Helper()
	reg := registry.New()
	reg.Register(handlers.NewSystemHandler())
	reg.Register(handlers.NewMemoHandler())
	aggregator := handlers.NewAggregatorHandler("http://example.invalid", mints.New())
	reg.Register(aggregator)
	return New(reg, aggregator, testNetworkResolver(t, rpcHandler))
}

func TestBuilder_Build_SystemTransfer(t *testing.T) {
	b := newTestBuilder(t, happyPathRPC)
	parsed := &intent.ParsedIntent{
		Protocol: intent.TagSystem,
		Action:   "transfer",
		Params:   map[string]interface{}{"to": testPayer, "amount": 1.0},
	}
	req := intent.NaturalIntent{Payer: testPayer, Network: "builder-test"}

	result := b.Build(context.Background(), parsed, req)
	if !result.Success {
		t.Fatalf("expected success, got error: %s", result.Error)
	}
	if result.Details.Protocol != "system" {
		t.Errorf("Protocol = %q, want %q", result.Details.Protocol, "system")
	}
	if result.SerializedTxB64 == "" {
		t.Error("expected a non-empty serialized transaction")
	}
}

func TestBuilder_Build_RejectsInvalidPayer(t *testing.T) {
	b := newTestBuilder(t, happyPathRPC)
	parsed := &intent.ParsedIntent{Protocol: intent.TagSystem, Action: "transfer", Params: map[string]interface{}{"to": testPayer, "amount": 1.0}}
	req := intent.NaturalIntent{Payer: "not-a-real-address", Network: "builder-test"}

	result := b.Build(context.Background(), parsed, req)
	if result.Success {
		t.Error("expected failure for an invalid payer address")
	}
}

func TestBuilder_Build_UnsupportedIntent(t *testing.T) {
	b := newTestBuilder(t, happyPathRPC)
	parsed := &intent.ParsedIntent{Protocol: intent.TagKamino, Action: "supply", Params: map[string]interface{}{}}
	req := intent.NaturalIntent{Payer: testPayer, Network: "builder-test"}

	result := b.Build(context.Background(), parsed, req)
	if result.Success {
		t.Error("expected failure for a handler that isn't registered")
	}
}

func TestBuilder_Build_SimulationRevertFailsTheBuild(t *testing.T) {
	b := newTestBuilder(t, func(w http.ResponseWriter, r *http.Request) {
		body := readBody(r)
		if contains(body, "getLatestBlockhash") {
			w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"value":{"blockhash":"testblockhash"}}}`))
			return
		}
		if contains(body, "simulateTransaction") {
			w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"value":{"err":{"InstructionError":[0,"Custom"]},"logs":[],"unitsConsumed":0}}}`))
			return
		}
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":[]}`))
	})
	parsed := &intent.ParsedIntent{Protocol: intent.TagSystem, Action: "transfer", Params: map[string]interface{}{"to": testPayer, "amount": 1.0}}
	req := intent.NaturalIntent{Payer: testPayer, Network: "builder-test"}

	result := b.Build(context.Background(), parsed, req)
	if result.Success {
		t.Error("expected failure when simulation reverts")
	}
}

func TestBuilder_Build_SkipSimulation(t *testing.T) {
	b := newTestBuilder(t, func(w http.ResponseWriter, r *http.Request) {
		body := readBody(r)
		if contains(body, "simulateTransaction") {
			t.Error("should not call simulateTransaction when SkipSimulation is set")
		}
		if contains(body, "getLatestBlockhash") {
			w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"value":{"blockhash":"testblockhash"}}}`))
			return
		}
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":[]}`))
	})
	parsed := &intent.ParsedIntent{Protocol: intent.TagSystem, Action: "transfer", Params: map[string]interface{}{"to": testPayer, "amount": 1.0}}
	req := intent.NaturalIntent{Payer: testPayer, Network: "builder-test", SkipSimulation: true}

	result := b.Build(context.Background(), parsed, req)
	if !result.Success {
		t.Fatalf("expected success, got: %s", result.Error)
	}
}
