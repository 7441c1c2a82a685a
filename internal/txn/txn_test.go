package txn

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"testing"
)

func TestNew_SetsDefaultComputeUnitLimit(t *testing.T) {
	tx := New("payer")
	if tx.FeePayer != "payer" {
		t.Errorf("FeePayer = %q, want %q", tx.FeePayer, "payer")
	}
	if tx.ComputeUnitLimit != DefaultComputeUnitLimit {
		t.Errorf("ComputeUnitLimit = %d, want %d", tx.ComputeUnitLimit, DefaultComputeUnitLimit)
	}
}

func TestPrepend_InsertsAtFront(t *testing.T) {
	tx := New("payer")
	tx.Append(Instruction{ProgramID: "a"})
	tx.Prepend(Instruction{ProgramID: "budget1"}, Instruction{ProgramID: "budget2"})

	want := []string{"budget1", "budget2", "a"}
	if len(tx.Instructions) != len(want) {
		t.Fatalf("len(Instructions) = %d, want %d", len(tx.Instructions), len(want))
	}
	for i, id := range want {
		if tx.Instructions[i].ProgramID != id {
			t.Errorf("Instructions[%d].ProgramID = %q, want %q", i, tx.Instructions[i].ProgramID, id)
		}
	}
}

func TestAppend_AddsToTail(t *testing.T) {
	tx := New("payer")
	tx.Append(Instruction{ProgramID: "a"})
	tx.Append(Instruction{ProgramID: "b"}, Instruction{ProgramID: "c"})

	if len(tx.Instructions) != 3 {
		t.Fatalf("len(Instructions) = %d, want 3", len(tx.Instructions))
	}
	if tx.Instructions[2].ProgramID != "c" {
		t.Errorf("Instructions[2].ProgramID = %q, want %q", tx.Instructions[2].ProgramID, "c")
	}
}

func TestComputeUnitLimitInstruction_EncodesLimit(t *testing.T) {
	tx := New("payer")
	tx.ComputeUnitLimit = 300_000
	ix := tx.ComputeUnitLimitInstruction()

	if ix.ProgramID != ComputeBudgetProgramID {
		t.Errorf("ProgramID = %q, want %q", ix.ProgramID, ComputeBudgetProgramID)
	}
	if len(ix.Data) != 5 {
		t.Fatalf("len(Data) = %d, want 5", len(ix.Data))
	}
	if ix.Data[0] != computeBudgetSetUnitLimit {
		t.Errorf("Data[0] = %d, want %d", ix.Data[0], computeBudgetSetUnitLimit)
	}
	got := binary.LittleEndian.Uint32(ix.Data[1:5])
	if got != 300_000 {
		t.Errorf("encoded limit = %d, want 300000", got)
	}
}

func TestComputeUnitPriceInstruction_EncodesPrice(t *testing.T) {
	tx := New("payer")
	tx.ComputeUnitPriceµℓ = 12345
	ix := tx.ComputeUnitPriceInstruction()

	if len(ix.Data) != 9 {
		t.Fatalf("len(Data) = %d, want 9", len(ix.Data))
	}
	if ix.Data[0] != computeBudgetSetUnitPrice {
		t.Errorf("Data[0] = %d, want %d", ix.Data[0], computeBudgetSetUnitPrice)
	}
	got := binary.LittleEndian.Uint64(ix.Data[1:9])
	if got != 12345 {
		t.Errorf("encoded price = %d, want 12345", got)
	}
}

func TestEncodePlaceholder_ProducesDecodableBase64JSON(t *testing.T) {
	tx := New("payer")
	tx.Append(Instruction{ProgramID: "prog", Data: []byte{1, 2, 3}})
	tx.RecentBlockhash = "hash"

	encoded := EncodePlaceholder(tx)
	if encoded == "" {
		t.Fatal("expected a non-empty encoding")
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("base64 decode: %v", err)
	}
	var decoded Transaction
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if decoded.RecentBlockhash != "hash" {
		t.Errorf("RecentBlockhash = %q, want %q", decoded.RecentBlockhash, "hash")
	}
}

func TestUniqueAccounts_DedupesInFirstSeenOrder(t *testing.T) {
	tx := New("payer")
	tx.Append(Instruction{Accounts: []AccountMeta{{Pubkey: "a"}, {Pubkey: "b"}}})
	tx.Append(Instruction{Accounts: []AccountMeta{{Pubkey: "b"}, {Pubkey: "c"}}})

	got := tx.UniqueAccounts()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("UniqueAccounts() = %v, want %v", got, want)
	}
	for i, pk := range want {
		if got[i] != pk {
			t.Errorf("UniqueAccounts()[%d] = %q, want %q", i, got[i], pk)
		}
	}
}

func TestUniqueAccounts_EmptyForNoInstructions(t *testing.T) {
	tx := New("payer")
	if got := tx.UniqueAccounts(); len(got) != 0 {
		t.Errorf("UniqueAccounts() = %v, want empty", got)
	}
}
