package handlers

import (
	"context"

	"github.com/solintent/engine/internal/intent"
	"github.com/solintent/engine/internal/txn"
)

// MemoProgramID is the SPL Memo program.
const MemoProgramID = "MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr"

// MemoHandler writes an arbitrary UTF-8 memo as instruction data, per
// the Memo program's convention of accepting raw text with no
// discriminant prefix.
type MemoHandler struct{}

func NewMemoHandler() *MemoHandler { return &MemoHandler{} }

func (h *MemoHandler) Name() string                  { return "memo" }
func (h *MemoHandler) Description() string           { return "Writes an on-chain memo via the SPL Memo program." }
func (h *MemoHandler) SupportedActions() []string    { return []string{"memo"} }
func (h *MemoHandler) Validate(params map[string]interface{}) bool {
	_, ok := stringParam(params, "text")
	return ok
}

func (h *MemoHandler) Build(_ context.Context, bi intent.BuildIntent) ([]txn.Instruction, error) {
	text, ok := stringParam(bi.Params, "text")
	if !ok {
		return nil, &ToolError{Tool: h.Name(), Message: "missing required parameter: text", Code: "invalid_params"}
	}
	return []txn.Instruction{{
		ProgramID: MemoProgramID,
		Accounts: []txn.AccountMeta{
			{Pubkey: bi.Payer, IsSigner: true, IsWritable: false},
		},
		Data: []byte(text),
	}}, nil
}
