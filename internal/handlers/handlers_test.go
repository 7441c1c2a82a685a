package handlers

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/solintent/engine/internal/intent"
)

func TestSystemHandler_Transfer(t *testing.T) {
	h := NewSystemHandler()
	bi := intent.BuildIntent{
		Intent: "system-transfer",
		Payer:  "payer-addr",
		Params: map[string]interface{}{"to": "dest-addr", "amount": 1.5},
	}

	ixs, err := h.Build(context.Background(), bi)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(ixs) != 1 {
		t.Fatalf("expected 1 instruction, got %d", len(ixs))
	}
	ix := ixs[0]
	if ix.ProgramID != SystemProgramID {
		t.Errorf("ProgramID = %q, want %q", ix.ProgramID, SystemProgramID)
	}
	if len(ix.Accounts) != 2 || ix.Accounts[1].Pubkey != "dest-addr" {
		t.Errorf("unexpected accounts: %+v", ix.Accounts)
	}
	lamports := binary.LittleEndian.Uint64(ix.Data[4:12])
	if lamports != 1_500_000_000 {
		t.Errorf("lamports = %d, want %d", lamports, 1_500_000_000)
	}
}

func TestSystemHandler_TransferMissingTo(t *testing.T) {
	h := NewSystemHandler()
	bi := intent.BuildIntent{Intent: "transfer", Payer: "payer-addr", Params: map[string]interface{}{"amount": 1.0}}
	if _, err := h.Build(context.Background(), bi); err == nil {
		t.Error("expected error for missing 'to' parameter")
	}
}

func TestSystemHandler_ValidateRejectsNonPositiveAmount(t *testing.T) {
	h := NewSystemHandler()
	if h.Validate(map[string]interface{}{"amount": 0.0}) {
		t.Error("expected Validate to reject a zero amount")
	}
	if h.Validate(map[string]interface{}{"amount": -5.0}) {
		t.Error("expected Validate to reject a negative amount")
	}
	if !h.Validate(map[string]interface{}{"to": "x"}) {
		t.Error("expected Validate to accept params with no amount at all")
	}
}

func TestSPLTokenHandler_Transfer(t *testing.T) {
	h := NewSPLTokenHandler()
	bi := intent.BuildIntent{
		Intent: "spl-transfer",
		Payer:  "payer-addr",
		Params: map[string]interface{}{"to": "dest-addr", "token": "mint-addr", "amount": 2.0},
	}

	ixs, err := h.Build(context.Background(), bi)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if ixs[0].ProgramID != SPLTokenProgramID {
		t.Errorf("ProgramID = %q, want %q", ixs[0].ProgramID, SPLTokenProgramID)
	}
	if ixs[0].Data[0] != byte(splTransferInstructionIndex) {
		t.Errorf("discriminant = %d, want %d", ixs[0].Data[0], splTransferInstructionIndex)
	}
}

func TestSPLTokenHandler_CreateATAMissingToken(t *testing.T) {
	h := NewSPLTokenHandler()
	bi := intent.BuildIntent{Intent: "create-ata", Payer: "payer-addr", Params: map[string]interface{}{}}
	if _, err := h.Build(context.Background(), bi); err == nil {
		t.Error("expected error for missing 'token' parameter")
	}
}

func TestToken2022Handler_AlwaysNotImplemented(t *testing.T) {
	h := NewToken2022Handler()
	bi := intent.BuildIntent{Intent: "token2022-transfer", Params: map[string]interface{}{}}
	_, err := h.Build(context.Background(), bi)
	if err == nil {
		t.Fatal("expected Token2022Handler.Build to always fail")
	}
	toolErr, ok := err.(*ToolError)
	if !ok || toolErr.Code != "not_implemented" {
		t.Errorf("expected not_implemented ToolError, got %v", err)
	}
}

func TestMemoHandler_Build(t *testing.T) {
	h := NewMemoHandler()
	bi := intent.BuildIntent{Intent: "memo", Payer: "payer-addr", Params: map[string]interface{}{"text": "gm"}}

	ixs, err := h.Build(context.Background(), bi)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if string(ixs[0].Data) != "gm" {
		t.Errorf("Data = %q, want %q", ixs[0].Data, "gm")
	}
	if ixs[0].ProgramID != MemoProgramID {
		t.Errorf("ProgramID = %q, want %q", ixs[0].ProgramID, MemoProgramID)
	}
}

func TestMemoHandler_ValidateRequiresText(t *testing.T) {
	h := NewMemoHandler()
	if h.Validate(map[string]interface{}{}) {
		t.Error("expected Validate to reject params without text")
	}
	if !h.Validate(map[string]interface{}{"text": "hello"}) {
		t.Error("expected Validate to accept params with text")
	}
}

func TestJitoHandler_DefaultsAmount(t *testing.T) {
	h := NewJitoHandler()
	bi := intent.BuildIntent{Intent: "jito-tip", Payer: "payer-addr", Params: map[string]interface{}{}}

	ixs, err := h.Build(context.Background(), bi)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if ixs[0].ProgramID != SystemProgramID {
		t.Errorf("jito tip should route through the System Program, got %q", ixs[0].ProgramID)
	}
	lamports := binary.LittleEndian.Uint64(ixs[0].Data[4:12])
	if lamports != 1_000_000 { // 0.001 SOL default
		t.Errorf("lamports = %d, want %d", lamports, 1_000_000)
	}
}

func TestJitoHandler_RejectsUnrelatedIntent(t *testing.T) {
	h := NewJitoHandler()
	bi := intent.BuildIntent{Intent: "swap", Params: map[string]interface{}{}}
	if _, err := h.Build(context.Background(), bi); err == nil {
		t.Error("expected JitoHandler to reject a non-tip intent")
	}
}

func TestNativeStakeHandler_Delegate(t *testing.T) {
	h := NewNativeStakeHandler()
	bi := intent.BuildIntent{
		Intent: "native-stake-stake",
		Payer:  "payer-addr",
		Params: map[string]interface{}{"validator": "validator-addr"},
	}
	ixs, err := h.Build(context.Background(), bi)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if ixs[0].Accounts[0].Pubkey != "payer-addr" {
		t.Errorf("expected stake account to default to payer, got %q", ixs[0].Accounts[0].Pubkey)
	}
	if ixs[0].Data[0] != 2 {
		t.Errorf("discriminant = %d, want 2 (DelegateStake)", ixs[0].Data[0])
	}
}

func TestNativeStakeHandler_DelegateMissingValidator(t *testing.T) {
	h := NewNativeStakeHandler()
	bi := intent.BuildIntent{Intent: "stake", Payer: "payer-addr", Params: map[string]interface{}{}}
	if _, err := h.Build(context.Background(), bi); err == nil {
		t.Error("expected error for missing 'validator' parameter")
	}
}

func TestMarinadeHandler_StakeAndUnstakeDiscriminants(t *testing.T) {
	h := NewMarinadeHandler()

	stakeIxs, err := h.Build(context.Background(), intent.BuildIntent{
		Intent: "marinade-stake", Payer: "payer-addr", Params: map[string]interface{}{"amount": 1.0},
	})
	if err != nil {
		t.Fatalf("Build (stake): %v", err)
	}
	if stakeIxs[0].Data[0] != 14 {
		t.Errorf("stake discriminant = %d, want 14 (Deposit)", stakeIxs[0].Data[0])
	}

	unstakeIxs, err := h.Build(context.Background(), intent.BuildIntent{
		Intent: "marinade-unstake", Payer: "payer-addr", Params: map[string]interface{}{"amount": 1.0},
	})
	if err != nil {
		t.Fatalf("Build (unstake): %v", err)
	}
	if unstakeIxs[0].Data[0] != 17 {
		t.Errorf("unstake discriminant = %d, want 17 (LiquidUnstake)", unstakeIxs[0].Data[0])
	}
}

func TestMarinadeHandler_RequiresAmount(t *testing.T) {
	h := NewMarinadeHandler()
	bi := intent.BuildIntent{Intent: "marinade-stake", Payer: "payer-addr", Params: map[string]interface{}{}}
	if _, err := h.Build(context.Background(), bi); err == nil {
		t.Error("expected error for missing 'amount' parameter")
	}
}

func TestStubHandlers_AlwaysNotImplemented(t *testing.T) {
	raydium := NewRaydiumHandler()
	if _, err := raydium.Build(context.Background(), intent.BuildIntent{Intent: "raydium-swap"}); err == nil {
		t.Error("expected RaydiumHandler.Build to always fail")
	}
	orca := NewOrcaHandler()
	if _, err := orca.Build(context.Background(), intent.BuildIntent{Intent: "orca-swap"}); err == nil {
		t.Error("expected OrcaHandler.Build to always fail")
	}
	pumpfun := NewPumpfunHandler()
	if _, err := pumpfun.Build(context.Background(), intent.BuildIntent{Intent: "pumpfun-create"}); err == nil {
		t.Error("expected PumpfunHandler.Build to always fail")
	}
}
