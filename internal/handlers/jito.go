package handlers

import (
	"context"

	"github.com/solintent/engine/internal/intent"
	"github.com/solintent/engine/internal/txn"
)

// jitoTipAccounts are Jito's published tip accounts; a tip instruction
// targets one of these as a plain System Program transfer.
var jitoTipAccounts = []string{
	"96gYZGLnJYVFmbjzopPSU6QiEV5fGqZNyN9nmNhvrZU5",
	"HFqU5x63VTqvQss8hp11i4wVV8bD44PvwucfZ2bU7gRe",
	"Cw8CFyM9FkoMi7K7Crf6HNQqf4uEMzpKw6QNghXLvLkY",
	"ADaUMid9yfUytqMBgopwjb2DTLSokTSzL1zt6iGPaS49",
}

const defaultJitoTipAccountIndex = 0

// JitoHandler builds a tip instruction: a plain lamport transfer to one
// of Jito's published tip accounts, used to bid for inclusion by a
// Jito-integrated validator.
type JitoHandler struct{}

func NewJitoHandler() *JitoHandler { return &JitoHandler{} }

func (h *JitoHandler) Name() string               { return "jito" }
func (h *JitoHandler) Description() string        { return "Builds a Jito validator tip instruction." }
func (h *JitoHandler) SupportedActions() []string { return []string{"jito-tip"} }

func (h *JitoHandler) Validate(params map[string]interface{}) bool {
	if amount, ok := floatParam(params, "amount"); ok && amount <= 0 {
		return false
	}
	return true
}

func (h *JitoHandler) Build(_ context.Context, bi intent.BuildIntent) ([]txn.Instruction, error) {
	if bi.Intent != "tip" && bi.Intent != "jito-tip" {
		return nil, NotImplemented(h.Name(), bi.Intent)
	}
	amount, ok := floatParam(bi.Params, "amount")
	if !ok {
		amount = 0.001
	}
	lamports := uint64(amount * 1_000_000_000)

	data := make([]byte, 12)
	data[0] = 2 // System Program Transfer discriminant, little-endian u32
	for i, b := range lamportsLE(lamports) {
		data[4+i] = b
	}

	return []txn.Instruction{{
		ProgramID: SystemProgramID,
		Accounts: []txn.AccountMeta{
			{Pubkey: bi.Payer, IsSigner: true, IsWritable: true},
			{Pubkey: jitoTipAccounts[defaultJitoTipAccountIndex], IsSigner: false, IsWritable: true},
		},
		Data: data,
	}}, nil
}

func lamportsLE(lamports uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(lamports >> (8 * i))
	}
	return b
}
