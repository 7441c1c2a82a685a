package handlers

import (
	"context"
	"encoding/binary"

	"github.com/solintent/engine/internal/intent"
	"github.com/solintent/engine/internal/txn"
)

// SystemProgramID is Solana's native System Program.
const SystemProgramID = "11111111111111111111111111111111111111"

// systemTransferInstructionIndex is the System Program's Transfer
// instruction discriminant.
const systemTransferInstructionIndex = uint32(2)

// SystemHandler handles native SOL transfers and bare account creation.
type SystemHandler struct{}

func NewSystemHandler() *SystemHandler { return &SystemHandler{} }

func (h *SystemHandler) Name() string        { return "system" }
func (h *SystemHandler) Description() string { return "Native SOL transfers and account creation via the System Program." }
func (h *SystemHandler) SupportedActions() []string {
	return []string{"transfer", "create-account"}
}

// Validate is a structural check shared across this handler's actions;
// amount, when present, must be positive — the -1 ("all of balance")
// sentinel is reserved for sell/swap actions, never a plain transfer,
// per §3's invariant. "to" is checked at Build time, where the action
// actually being built is known.
func (h *SystemHandler) Validate(params map[string]interface{}) bool {
	if amount, ok := floatParam(params, "amount"); ok && amount <= 0 {
		return false
	}
	return true
}

func (h *SystemHandler) Build(_ context.Context, bi intent.BuildIntent) ([]txn.Instruction, error) {
	switch bi.Intent {
	case "transfer", "system-transfer":
		return h.buildTransfer(bi)
	case "create-account", "system-create-account":
		return h.buildCreateAccount(bi)
	}
	return nil, NotImplemented(h.Name(), bi.Intent)
}

func (h *SystemHandler) buildTransfer(bi intent.BuildIntent) ([]txn.Instruction, error) {
	to, ok := stringParam(bi.Params, "to")
	if !ok {
		return nil, &ToolError{Tool: h.Name(), Message: "missing required parameter: to", Code: "invalid_params"}
	}
	amount, _ := floatParam(bi.Params, "amount")
	lamports := uint64(amount * 1_000_000_000)

	data := make([]byte, 12)
	binary.LittleEndian.PutUint32(data[0:4], systemTransferInstructionIndex)
	binary.LittleEndian.PutUint64(data[4:12], lamports)

	return []txn.Instruction{{
		ProgramID: SystemProgramID,
		Accounts: []txn.AccountMeta{
			{Pubkey: bi.Payer, IsSigner: true, IsWritable: true},
			{Pubkey: to, IsSigner: false, IsWritable: true},
		},
		Data: data,
	}}, nil
}

func (h *SystemHandler) buildCreateAccount(bi intent.BuildIntent) ([]txn.Instruction, error) {
	return []txn.Instruction{{
		ProgramID: SystemProgramID,
		Accounts: []txn.AccountMeta{
			{Pubkey: bi.Payer, IsSigner: true, IsWritable: true},
		},
		Data: []byte{0}, // CreateAccount discriminant; size/owner filled in by the chain-SDK collaborator
	}}, nil
}
