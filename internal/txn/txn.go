// Package txn holds the opaque on-chain building blocks the engine
// assembles but never interprets: instructions and the transaction that
// accumulates them. Wire-level encoding of any individual protocol's
// instruction data is delegated to a chain-SDK collaborator outside this
// package; txn only carries the records around.
package txn

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
)

// ComputeBudgetProgramID is Solana's built-in Compute Budget program,
// used to set a transaction's compute-unit limit and priority fee.
const ComputeBudgetProgramID = "ComputeBudget111111111111111111111111111"

const (
	computeBudgetSetUnitLimit = uint8(2)
	computeBudgetSetUnitPrice = uint8(3)
)

// AccountMeta tags a single account reference inside an Instruction.
type AccountMeta struct {
	Pubkey     string
	IsSigner   bool
	IsWritable bool
}

// Instruction is an opaque on-chain instruction record: a program
// identifier, an ordered list of tagged account references, and a raw
// data payload. Nothing in this package inspects Data's contents.
type Instruction struct {
	ProgramID string
	Accounts  []AccountMeta
	Data      []byte
}

// DefaultComputeUnitLimit is used when the caller and the estimator both
// have nothing better to offer.
const DefaultComputeUnitLimit = 200_000

// Transaction is the mutable accumulator the builder fills in. It never
// carries signatures; serialization produces an unsigned wire blob.
type Transaction struct {
	Instructions       []Instruction
	FeePayer           string
	RecentBlockhash    string
	ComputeUnitLimit   uint32
	ComputeUnitPriceµℓ uint64 // microlamports per compute unit
}

// New starts an empty transaction for the given fee payer.
func New(feePayer string) *Transaction {
	return &Transaction{FeePayer: feePayer, ComputeUnitLimit: DefaultComputeUnitLimit}
}

// Prepend inserts instructions at the front, used for the compute-budget
// pair the builder always stamps ahead of the handler's own instructions.
func (t *Transaction) Prepend(ixs ...Instruction) {
	t.Instructions = append(append([]Instruction{}, ixs...), t.Instructions...)
}

// Append adds instructions to the tail in order.
func (t *Transaction) Append(ixs ...Instruction) {
	t.Instructions = append(t.Instructions, ixs...)
}

// ComputeUnitLimitInstruction builds the Compute Budget program's
// SetComputeUnitLimit instruction for this transaction's current limit.
func (t *Transaction) ComputeUnitLimitInstruction() Instruction {
	data := make([]byte, 5)
	data[0] = computeBudgetSetUnitLimit
	binary.LittleEndian.PutUint32(data[1:5], t.ComputeUnitLimit)
	return Instruction{ProgramID: ComputeBudgetProgramID, Data: data}
}

// ComputeUnitPriceInstruction builds the Compute Budget program's
// SetComputeUnitPrice instruction for this transaction's current price.
func (t *Transaction) ComputeUnitPriceInstruction() Instruction {
	data := make([]byte, 9)
	data[0] = computeBudgetSetUnitPrice
	binary.LittleEndian.PutUint64(data[1:9], t.ComputeUnitPriceµℓ)
	return Instruction{ProgramID: ComputeBudgetProgramID, Data: data}
}

// EncodePlaceholder stands in for the chain-SDK collaborator's real
// wire-format serialization (§1), which is outside this repo's scope.
// It base64-encodes a deterministic JSON view of the transaction so the
// simulate/estimate pipeline downstream has a stable, well-formed
// base64 string to operate on.
func EncodePlaceholder(t *Transaction) string {
	blob, err := json.Marshal(t)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(blob)
}

// UniqueAccounts returns the distinct account pubkeys referenced across
// every instruction, in first-seen order — used for BuildResult.Details.
func (t *Transaction) UniqueAccounts() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, ix := range t.Instructions {
		for _, a := range ix.Accounts {
			if _, ok := seen[a.Pubkey]; ok {
				continue
			}
			seen[a.Pubkey] = struct{}{}
			out = append(out, a.Pubkey)
		}
	}
	return out
}
