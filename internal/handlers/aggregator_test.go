package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/solintent/engine/internal/intent"
	"github.com/solintent/engine/internal/mints"
)

func TestAggregatorHandler_BuildAlwaysFails(t *testing.T) {
	h := NewAggregatorHandler("http://example.invalid", mints.New())
	if _, err := h.Build(context.Background(), intent.BuildIntent{Intent: "swap"}); err == nil {
		t.Fatal("expected AggregatorHandler.Build to always fail")
	}
}

func TestAggregatorHandler_BuildSwapTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/quote":
			json.NewEncoder(w).Encode(quoteResponse{OutAmount: "1000"})
		case r.Method == http.MethodPost && r.URL.Path == "/swap":
			var body map[string]interface{}
			json.NewDecoder(r.Body).Decode(&body)
			if body["useSharedAccounts"] != false {
				t.Errorf("expected useSharedAccounts=false, got %v", body["useSharedAccounts"])
			}
			if body["wrapAndUnwrapSol"] != true {
				t.Errorf("expected wrapAndUnwrapSol=true, got %v", body["wrapAndUnwrapSol"])
			}
			json.NewEncoder(w).Encode(swapResponse{SwapTransaction: "base64-swap-tx"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	h := NewAggregatorHandler(server.URL, mints.New())
	bi := intent.BuildIntent{
		Payer:  "payer-addr",
		Params: map[string]interface{}{"from": "SOL", "to": "USDC", "amount": 1.0},
	}

	tx, err := h.BuildSwapTransaction(context.Background(), bi)
	if err != nil {
		t.Fatalf("BuildSwapTransaction: %v", err)
	}
	if tx != "base64-swap-tx" {
		t.Errorf("tx = %q, want %q", tx, "base64-swap-tx")
	}
}

func TestAggregatorHandler_MissingFromTo(t *testing.T) {
	h := NewAggregatorHandler("http://example.invalid", mints.New())
	_, err := h.BuildSwapTransaction(context.Background(), intent.BuildIntent{Params: map[string]interface{}{}})
	if err == nil {
		t.Fatal("expected error for missing from/to")
	}
}

func TestAggregatorHandler_EmptySwapTransactionErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/quote":
			json.NewEncoder(w).Encode(quoteResponse{OutAmount: "1000"})
		case r.URL.Path == "/swap":
			json.NewEncoder(w).Encode(swapResponse{})
		}
	}))
	defer server.Close()

	h := NewAggregatorHandler(server.URL, mints.New())
	bi := intent.BuildIntent{Payer: "payer-addr", Params: map[string]interface{}{"from": "SOL", "to": "USDC", "amount": 1.0}}
	if _, err := h.BuildSwapTransaction(context.Background(), bi); err == nil {
		t.Error("expected error when swap response carries no transaction")
	}
}
