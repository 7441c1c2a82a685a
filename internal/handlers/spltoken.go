package handlers

import (
	"context"
	"encoding/binary"

	"github.com/solintent/engine/internal/intent"
	"github.com/solintent/engine/internal/txn"
)

// SPLTokenProgramID is the classic SPL Token program.
const SPLTokenProgramID = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"

// ATAProgramID is the Associated Token Account program.
const ATAProgramID = "ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL"

const splTransferInstructionIndex = uint8(3)

// SPLTokenHandler handles classic SPL token transfers and associated
// token account creation.
type SPLTokenHandler struct{}

func NewSPLTokenHandler() *SPLTokenHandler { return &SPLTokenHandler{} }

func (h *SPLTokenHandler) Name() string        { return "spl-token" }
func (h *SPLTokenHandler) Description() string { return "SPL token transfers and associated token account creation." }
func (h *SPLTokenHandler) SupportedActions() []string {
	return []string{"spl-transfer", "create-ata"}
}

func (h *SPLTokenHandler) Validate(params map[string]interface{}) bool {
	if amount, ok := floatParam(params, "amount"); ok && amount <= 0 {
		return false
	}
	return true
}

func (h *SPLTokenHandler) Build(_ context.Context, bi intent.BuildIntent) ([]txn.Instruction, error) {
	switch bi.Intent {
	case "transfer", "spl-transfer":
		return h.buildTransfer(bi)
	case "create-account", "create-ata", "spl-token-create-account":
		return h.buildCreateATA(bi)
	}
	return nil, NotImplemented(h.Name(), bi.Intent)
}

func (h *SPLTokenHandler) buildTransfer(bi intent.BuildIntent) ([]txn.Instruction, error) {
	to, ok := stringParam(bi.Params, "to")
	if !ok {
		return nil, &ToolError{Tool: h.Name(), Message: "missing required parameter: to", Code: "invalid_params"}
	}
	token, _ := stringParam(bi.Params, "token")
	amount, _ := floatParam(bi.Params, "amount")

	data := make([]byte, 9)
	data[0] = splTransferInstructionIndex
	binary.LittleEndian.PutUint64(data[1:9], uint64(amount*1e6)) // raw units left to the decimals the chain-SDK collaborator resolves

	return []txn.Instruction{{
		ProgramID: SPLTokenProgramID,
		Accounts: []txn.AccountMeta{
			{Pubkey: token, IsSigner: false, IsWritable: false},
			{Pubkey: to, IsSigner: false, IsWritable: true},
			{Pubkey: bi.Payer, IsSigner: true, IsWritable: false},
		},
		Data: data,
	}}, nil
}

func (h *SPLTokenHandler) buildCreateATA(bi intent.BuildIntent) ([]txn.Instruction, error) {
	token, ok := stringParam(bi.Params, "token")
	if !ok {
		return nil, &ToolError{Tool: h.Name(), Message: "missing required parameter: token", Code: "invalid_params"}
	}
	return []txn.Instruction{{
		ProgramID: ATAProgramID,
		Accounts: []txn.AccountMeta{
			{Pubkey: bi.Payer, IsSigner: true, IsWritable: true},
			{Pubkey: token, IsSigner: false, IsWritable: false},
		},
		Data: []byte{},
	}}, nil
}

// Token2022Handler is a skeleton-only stub: the specification documents
// token-2022 transfers as a recognized pattern, but this repo's scope
// does not include the transfer-fee/confidential-transfer extension
// logic a real Token-2022 encoder needs, so it raises the explicit
// not-implemented error rather than emit an instruction that silently
// omits extension handling.
type Token2022Handler struct{}

func NewToken2022Handler() *Token2022Handler { return &Token2022Handler{} }

func (h *Token2022Handler) Name() string        { return "token-2022" }
func (h *Token2022Handler) Description() string { return "Token-2022 transfers (skeleton only)." }
func (h *Token2022Handler) SupportedActions() []string { return []string{"token2022-transfer"} }
func (h *Token2022Handler) Validate(map[string]interface{}) bool { return true }
func (h *Token2022Handler) Build(_ context.Context, bi intent.BuildIntent) ([]txn.Instruction, error) {
	return nil, NotImplemented(h.Name(), bi.Intent)
}
