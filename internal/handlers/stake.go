package handlers

import (
	"context"

	"github.com/solintent/engine/internal/intent"
	"github.com/solintent/engine/internal/txn"
)

// StakeProgramID is the native Stake Program.
const StakeProgramID = "Stake11111111111111111111111111111111111"

// NativeStakeHandler covers stake-account lifecycle actions against the
// native Stake Program: delegate, deactivate, and withdraw. Creating
// the stake account itself is left to the chain-SDK collaborator,
// which allocates and assigns the account before this handler's
// instructions run.
type NativeStakeHandler struct{}

func NewNativeStakeHandler() *NativeStakeHandler { return &NativeStakeHandler{} }

func (h *NativeStakeHandler) Name() string { return "native-stake" }
func (h *NativeStakeHandler) Description() string {
	return "Delegates, deactivates, and withdraws native stake accounts."
}
func (h *NativeStakeHandler) SupportedActions() []string {
	return []string{"native-stake-stake", "native-stake-unstake", "native-stake-withdraw"}
}

func (h *NativeStakeHandler) Validate(params map[string]interface{}) bool {
	if amount, ok := floatParam(params, "amount"); ok && amount <= 0 {
		return false
	}
	return true
}

func (h *NativeStakeHandler) Build(_ context.Context, bi intent.BuildIntent) ([]txn.Instruction, error) {
	switch bi.Intent {
	case "stake", "native-stake-stake":
		return h.buildDelegate(bi)
	case "unstake", "native-stake-unstake":
		return h.buildDeactivate(bi)
	case "withdraw", "native-stake-withdraw":
		return h.buildWithdraw(bi)
	}
	return nil, NotImplemented(h.Name(), bi.Intent)
}

func (h *NativeStakeHandler) buildDelegate(bi intent.BuildIntent) ([]txn.Instruction, error) {
	validator, ok := stringParam(bi.Params, "validator")
	if !ok {
		return nil, &ToolError{Tool: h.Name(), Message: "missing required parameter: validator", Code: "invalid_params"}
	}
	stakeAccount, ok := stringParam(bi.Params, "stakeAccount")
	if !ok {
		stakeAccount = bi.Payer
	}
	return []txn.Instruction{{
		ProgramID: StakeProgramID,
		Accounts: []txn.AccountMeta{
			{Pubkey: stakeAccount, IsSigner: false, IsWritable: true},
			{Pubkey: validator, IsSigner: false, IsWritable: false},
			{Pubkey: bi.Payer, IsSigner: true, IsWritable: false},
		},
		Data: []byte{2}, // DelegateStake discriminant
	}}, nil
}

func (h *NativeStakeHandler) buildDeactivate(bi intent.BuildIntent) ([]txn.Instruction, error) {
	stakeAccount, ok := stringParam(bi.Params, "stakeAccount")
	if !ok {
		return nil, &ToolError{Tool: h.Name(), Message: "missing required parameter: stakeAccount", Code: "invalid_params"}
	}
	return []txn.Instruction{{
		ProgramID: StakeProgramID,
		Accounts: []txn.AccountMeta{
			{Pubkey: stakeAccount, IsSigner: false, IsWritable: true},
			{Pubkey: bi.Payer, IsSigner: true, IsWritable: false},
		},
		Data: []byte{5}, // Deactivate discriminant
	}}, nil
}

func (h *NativeStakeHandler) buildWithdraw(bi intent.BuildIntent) ([]txn.Instruction, error) {
	stakeAccount, ok := stringParam(bi.Params, "stakeAccount")
	if !ok {
		return nil, &ToolError{Tool: h.Name(), Message: "missing required parameter: stakeAccount", Code: "invalid_params"}
	}
	return []txn.Instruction{{
		ProgramID: StakeProgramID,
		Accounts: []txn.AccountMeta{
			{Pubkey: stakeAccount, IsSigner: false, IsWritable: true},
			{Pubkey: bi.Payer, IsSigner: true, IsWritable: true},
		},
		Data: []byte{4}, // Withdraw discriminant
	}}, nil
}

// MarinadeHandler covers liquid staking via Marinade: depositing SOL for
// mSOL, and unstaking (either delayed-unstake or immediate liquid-unstake,
// both funnelled to the same instruction shape here since the difference
// is only which Marinade pool account the caller resolved).
type MarinadeHandler struct{}

func NewMarinadeHandler() *MarinadeHandler { return &MarinadeHandler{} }

func (h *MarinadeHandler) Name() string        { return "marinade" }
func (h *MarinadeHandler) Description() string { return "Marinade liquid staking: deposit and unstake." }
func (h *MarinadeHandler) SupportedActions() []string {
	return []string{"marinade-stake", "marinade-unstake"}
}

const marinadeStateAccount = "8szGkuLTAux9XMgZ2vtY39jVSowEcpBfFfD8hXSEqdGC"

func (h *MarinadeHandler) Validate(params map[string]interface{}) bool {
	if amount, ok := floatParam(params, "amount"); ok && amount <= 0 {
		return false
	}
	return true
}

func (h *MarinadeHandler) Build(_ context.Context, bi intent.BuildIntent) ([]txn.Instruction, error) {
	amount, ok := floatParam(bi.Params, "amount")
	if !ok {
		return nil, &ToolError{Tool: h.Name(), Message: "missing required parameter: amount", Code: "invalid_params"}
	}
	lamports := uint64(amount * 1_000_000_000)
	data := make([]byte, 9)
	switch bi.Intent {
	case "stake", "marinade-stake":
		data[0] = 14 // Deposit discriminant
	case "unstake", "marinade-unstake":
		data[0] = 17 // LiquidUnstake discriminant
	default:
		return nil, NotImplemented(h.Name(), bi.Intent)
	}
	for i, b := range lamportsLE(lamports) {
		data[1+i] = b
	}
	return []txn.Instruction{{
		ProgramID: "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD",
		Accounts: []txn.AccountMeta{
			{Pubkey: marinadeStateAccount, IsSigner: false, IsWritable: true},
			{Pubkey: bi.Payer, IsSigner: true, IsWritable: true},
		},
		Data: data,
	}}, nil
}
